// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"github.com/aclements/go-distfn/grid"
	"github.com/aclements/go-distfn/num"
)

// Dlogis returns the density at x of the logistic distribution with
// location mu and scale sigma, or its natural log if logForm.
func Dlogis[W num.Float](x, mu, sigma W, logForm bool) W {
	if !locScaleValid(mu, sigma) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	if num.IsInf(x, 0) {
		return zeroProb[W](logForm)
	}
	// The density is symmetric in z; using -|z| keeps exp from
	// overflowing.
	a := num.Abs((x - mu) / sigma)
	return expUnless(-a-num.Log(sigma)-2*num.Log1p(num.Exp(-a)), logForm)
}

// Plogis returns the cumulative probability at x of the logistic
// distribution with location mu and scale sigma, or its natural log if
// logForm.
func Plogis[W num.Float](x, mu, sigma W, logForm bool) W {
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
	if logForm {
		return -num.Log1p(num.Exp(-z))
	}
	return 1 / (1 + num.Exp(-z))
}

// Qlogis returns the quantile at p of the logistic distribution with
// location mu and scale sigma.
func Qlogis[W num.Float](p, mu, sigma W) W {
	if !locScaleValid(mu, sigma) {
		return num.NaN[W]()
	}
	if q, ok := quantileEdge(p, num.Inf[W](-1), num.Inf[W](1)); ok {
		return q
	}
	return mu + sigma*num.Log(p/(1-p))
}

// DlogisGrid returns Dlogis of every element of xs.
func DlogisGrid[X num.Real, W num.Float](xs grid.Reader[X], mu, sigma W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Dlogis(x, mu, sigma, logForm) })
}

// PlogisGrid returns Plogis of every element of xs.
func PlogisGrid[X num.Real, W num.Float](xs grid.Reader[X], mu, sigma W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Plogis(x, mu, sigma, logForm) })
}

// QlogisGrid returns Qlogis of every element of ps.
func QlogisGrid[X num.Real, W num.Float](ps grid.Reader[X], mu, sigma W) *grid.Grid[W] {
	return grid.Map(ps, func(p W) W { return Qlogis(p, mu, sigma) })
}

// LogisticDist is a logistic distribution with location Mu and scale
// Sigma.
type LogisticDist struct {
	Mu, Sigma float64
}

func (d LogisticDist) PDF(x float64) float64    { return Dlogis(x, d.Mu, d.Sigma, false) }
func (d LogisticDist) LogPDF(x float64) float64 { return Dlogis(x, d.Mu, d.Sigma, true) }
func (d LogisticDist) CDF(x float64) float64    { return Plogis(x, d.Mu, d.Sigma, false) }
func (d LogisticDist) LogCDF(x float64) float64 { return Plogis(x, d.Mu, d.Sigma, true) }
func (d LogisticDist) InvCDF(y float64) float64 { return Qlogis(y, d.Mu, d.Sigma) }

func (d LogisticDist) PDFEach(xs []float64) []float64 {
	return DlogisGrid(column(xs), d.Mu, d.Sigma, false).RawData()
}

func (d LogisticDist) CDFEach(xs []float64) []float64 {
	return PlogisGrid(column(xs), d.Mu, d.Sigma, false).RawData()
}

func (d LogisticDist) InvCDFEach(ys []float64) []float64 {
	return QlogisGrid(column(ys), d.Mu, d.Sigma).RawData()
}

func (d LogisticDist) Bounds() (float64, float64) {
	return tailBounds(d.InvCDF)
}
