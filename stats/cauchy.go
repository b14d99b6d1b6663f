// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-distfn/grid"
	"github.com/aclements/go-distfn/num"
)

// Dcauchy returns the density at x of the Cauchy distribution with
// location mu and scale sigma, or its natural log if logForm.
func Dcauchy[W num.Float](x, mu, sigma W, logForm bool) W {
	if !locScaleValid(mu, sigma) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	if num.IsInf(x, 0) {
		return zeroProb[W](logForm)
	}
	z := (x - mu) / sigma
	if logForm {
		return -num.Log(math.Pi*sigma) - num.Log1p(z*z)
	}
	return 1 / (math.Pi * sigma * (1 + z*z))
}

// Pcauchy returns the cumulative probability at x of the Cauchy
// distribution with location mu and scale sigma, or its natural log if
// logForm.
func Pcauchy[W num.Float](x, mu, sigma W, logForm bool) W {
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
	return logIf(0.5+num.Atan(z)/math.Pi, logForm)
}

// Qcauchy returns the quantile at p of the Cauchy distribution with
// location mu and scale sigma.
func Qcauchy[W num.Float](p, mu, sigma W) W {
	if !locScaleValid(mu, sigma) {
		return num.NaN[W]()
	}
	if q, ok := quantileEdge(p, num.Inf[W](-1), num.Inf[W](1)); ok {
		return q
	}
	return mu + sigma*num.Tan(math.Pi*(p-0.5))
}

// DcauchyGrid returns Dcauchy of every element of xs.
func DcauchyGrid[X num.Real, W num.Float](xs grid.Reader[X], mu, sigma W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Dcauchy(x, mu, sigma, logForm) })
}

// PcauchyGrid returns Pcauchy of every element of xs.
func PcauchyGrid[X num.Real, W num.Float](xs grid.Reader[X], mu, sigma W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Pcauchy(x, mu, sigma, logForm) })
}

// QcauchyGrid returns Qcauchy of every element of ps.
func QcauchyGrid[X num.Real, W num.Float](ps grid.Reader[X], mu, sigma W) *grid.Grid[W] {
	return grid.Map(ps, func(p W) W { return Qcauchy(p, mu, sigma) })
}

// CauchyDist is a Cauchy distribution with location Mu and scale
// Sigma.
type CauchyDist struct {
	Mu, Sigma float64
}

func (d CauchyDist) PDF(x float64) float64    { return Dcauchy(x, d.Mu, d.Sigma, false) }
func (d CauchyDist) LogPDF(x float64) float64 { return Dcauchy(x, d.Mu, d.Sigma, true) }
func (d CauchyDist) CDF(x float64) float64    { return Pcauchy(x, d.Mu, d.Sigma, false) }
func (d CauchyDist) LogCDF(x float64) float64 { return Pcauchy(x, d.Mu, d.Sigma, true) }
func (d CauchyDist) InvCDF(y float64) float64 { return Qcauchy(y, d.Mu, d.Sigma) }

func (d CauchyDist) PDFEach(xs []float64) []float64 {
	return DcauchyGrid(column(xs), d.Mu, d.Sigma, false).RawData()
}

func (d CauchyDist) CDFEach(xs []float64) []float64 {
	return PcauchyGrid(column(xs), d.Mu, d.Sigma, false).RawData()
}

func (d CauchyDist) InvCDFEach(ys []float64) []float64 {
	return QcauchyGrid(column(ys), d.Mu, d.Sigma).RawData()
}

func (d CauchyDist) Bounds() (float64, float64) {
	// The Cauchy distribution has very heavy tails; the central
	// 99.8% would swamp any plot.
	return d.InvCDF(0.05), d.InvCDF(0.95)
}
