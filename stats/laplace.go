// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"github.com/aclements/go-distfn/grid"
	"github.com/aclements/go-distfn/num"
)

// Dlaplace returns the density at x of the Laplace (double
// exponential) distribution with location mu and scale sigma, or its
// natural log if logForm.
func Dlaplace[W num.Float](x, mu, sigma W, logForm bool) W {
	if !locScaleValid(mu, sigma) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	if num.IsInf(x, 0) {
		return zeroProb[W](logForm)
	}
	return expUnless(-num.Log(2*sigma)-num.Abs(x-mu)/sigma, logForm)
}

// Plaplace returns the cumulative probability at x of the Laplace
// distribution with location mu and scale sigma, or its natural log if
// logForm.
func Plaplace[W num.Float](x, mu, sigma W, logForm bool) W {
	if !locScaleValid(mu, sigma) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	switch {
	case num.IsInf(x, -1):
		return zeroProb[W](logForm)
	case num.IsInf(x, 1):
		return oneProb[W](logForm)
	}
	z := (x - mu) / sigma
	if z < 0 {
		return logIf(num.Exp(z)/2, logForm)
	}
	return logIf(1-num.Exp(-z)/2, logForm)
}

// Qlaplace returns the quantile at p of the Laplace distribution with
// location mu and scale sigma.
func Qlaplace[W num.Float](p, mu, sigma W) W {
	if !locScaleValid(mu, sigma) {
		return num.NaN[W]()
	}
	if q, ok := quantileEdge(p, num.Inf[W](-1), num.Inf[W](1)); ok {
		return q
	}
	if p < 0.5 {
		return mu + sigma*num.Log(2*p)
	}
	return mu - sigma*num.Log(2*(1-p))
}

// DlaplaceGrid returns Dlaplace of every element of xs.
func DlaplaceGrid[X num.Real, W num.Float](xs grid.Reader[X], mu, sigma W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Dlaplace(x, mu, sigma, logForm) })
}

// PlaplaceGrid returns Plaplace of every element of xs.
func PlaplaceGrid[X num.Real, W num.Float](xs grid.Reader[X], mu, sigma W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Plaplace(x, mu, sigma, logForm) })
}

// QlaplaceGrid returns Qlaplace of every element of ps.
func QlaplaceGrid[X num.Real, W num.Float](ps grid.Reader[X], mu, sigma W) *grid.Grid[W] {
	return grid.Map(ps, func(p W) W { return Qlaplace(p, mu, sigma) })
}

// LaplaceDist is a Laplace distribution with location Mu and scale
// Sigma.
type LaplaceDist struct {
	Mu, Sigma float64
}

func (d LaplaceDist) PDF(x float64) float64    { return Dlaplace(x, d.Mu, d.Sigma, false) }
func (d LaplaceDist) LogPDF(x float64) float64 { return Dlaplace(x, d.Mu, d.Sigma, true) }
func (d LaplaceDist) CDF(x float64) float64    { return Plaplace(x, d.Mu, d.Sigma, false) }
func (d LaplaceDist) LogCDF(x float64) float64 { return Plaplace(x, d.Mu, d.Sigma, true) }
func (d LaplaceDist) InvCDF(y float64) float64 { return Qlaplace(y, d.Mu, d.Sigma) }

func (d LaplaceDist) PDFEach(xs []float64) []float64 {
	return DlaplaceGrid(column(xs), d.Mu, d.Sigma, false).RawData()
}

func (d LaplaceDist) CDFEach(xs []float64) []float64 {
	return PlaplaceGrid(column(xs), d.Mu, d.Sigma, false).RawData()
}

func (d LaplaceDist) InvCDFEach(ys []float64) []float64 {
	return QlaplaceGrid(column(ys), d.Mu, d.Sigma).RawData()
}

func (d LaplaceDist) Bounds() (float64, float64) {
	return tailBounds(d.InvCDF)
}
