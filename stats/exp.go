// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"github.com/aclements/go-distfn/grid"
	"github.com/aclements/go-distfn/num"
)

func expValid[W num.Float](rate W) bool {
	return num.IsFinite(rate) && rate > 0
}

// Dexp returns the density at x of the exponential distribution with
// the given rate, or its natural log if logForm.
func Dexp[W num.Float](x, rate W, logForm bool) W {
	if !expValid(rate) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	if x < 0 || num.IsInf(x, 1) {
		return zeroProb[W](logForm)
	}
	return expUnless(num.Log(rate)-rate*x, logForm)
}

// Pexp returns the cumulative probability at x of the exponential
// distribution with the given rate, or its natural log if logForm.
func Pexp[W num.Float](x, rate W, logForm bool) W {
	if !expValid(rate) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	switch {
	case belowEpsilon(x):
		return zeroProb[W](logForm)
	case num.IsInf(x, 1):
		return oneProb[W](logForm)
	}
	return logIf(-num.Expm1(-rate*x), logForm)
}

// Qexp returns the quantile at p of the exponential distribution with
// the given rate.
func Qexp[W num.Float](p, rate W) W {
	if !expValid(rate) {
		return num.NaN[W]()
	}
	if q, ok := quantileEdge(p, 0, num.Inf[W](1)); ok {
		return q
	}
	return -num.Log1p(-p) / rate
}

// DexpGrid returns Dexp of every element of xs.
func DexpGrid[X num.Real, W num.Float](xs grid.Reader[X], rate W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Dexp(x, rate, logForm) })
}

// PexpGrid returns Pexp of every element of xs.
func PexpGrid[X num.Real, W num.Float](xs grid.Reader[X], rate W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Pexp(x, rate, logForm) })
}

// QexpGrid returns Qexp of every element of ps.
func QexpGrid[X num.Real, W num.Float](ps grid.Reader[X], rate W) *grid.Grid[W] {
	return grid.Map(ps, func(p W) W { return Qexp(p, rate) })
}

// ExpDist is an exponential distribution with rate parameter Rate.
type ExpDist struct {
	Rate float64
}

func (d ExpDist) PDF(x float64) float64    { return Dexp(x, d.Rate, false) }
func (d ExpDist) LogPDF(x float64) float64 { return Dexp(x, d.Rate, true) }
func (d ExpDist) CDF(x float64) float64    { return Pexp(x, d.Rate, false) }
func (d ExpDist) LogCDF(x float64) float64 { return Pexp(x, d.Rate, true) }
func (d ExpDist) InvCDF(y float64) float64 { return Qexp(y, d.Rate) }

func (d ExpDist) PDFEach(xs []float64) []float64 {
	return DexpGrid(column(xs), d.Rate, false).RawData()
}

func (d ExpDist) CDFEach(xs []float64) []float64 {
	return PexpGrid(column(xs), d.Rate, false).RawData()
}

func (d ExpDist) InvCDFEach(ys []float64) []float64 {
	return QexpGrid(column(ys), d.Rate).RawData()
}

func (d ExpDist) Bounds() (float64, float64) {
	return 0, d.InvCDF(0.999)
}
