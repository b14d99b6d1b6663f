// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"github.com/aclements/go-distfn/grid"
	"github.com/aclements/go-distfn/mathx"
	"github.com/aclements/go-distfn/num"
)

func invgammaValid[W num.Float](shape, rate W) bool {
	return num.IsFinite(shape) && shape > 0 && num.IsFinite(rate) && rate > 0
}

// Dinvgamma returns the density at x of the inverse-gamma distribution
// with the given shape and rate, or its natural log if logForm. This is
// the distribution of 1/Y where Y is gamma with the given shape and
// scale 1/rate.
func Dinvgamma[W num.Float](x, shape, rate W, logForm bool) W {
	if !invgammaValid(shape, rate) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	if x <= 0 || num.IsInf(x, 1) {
		return zeroProb[W](logForm)
	}
	lp := shape*num.Log(rate) - mathx.Lgamma(shape) - (shape+1)*num.Log(x) - rate/x
	return expUnless(lp, logForm)
}

// Pinvgamma returns the cumulative probability at x of the
// inverse-gamma distribution with the given shape and rate, or its
// natural log if logForm.
func Pinvgamma[W num.Float](x, shape, rate W, logForm bool) W {
	if !invgammaValid(shape, rate) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	switch {
	case belowEpsilon(x):
		return zeroProb[W](logForm)
	case num.IsInf(x, 1):
		return oneProb[W](logForm)
	}
	return logIf(mathx.GammaIncComp(shape, rate/x), logForm)
}

// Qinvgamma returns the quantile at p of the inverse-gamma
// distribution with the given shape and rate.
func Qinvgamma[W num.Float](p, shape, rate W) W {
	if !invgammaValid(shape, rate) {
		return num.NaN[W]()
	}
	if q, ok := quantileEdge(p, 0, num.Inf[W](1)); ok {
		return q
	}
	return rate / mathx.GammaIncCompInv(shape, p)
}

// DinvgammaGrid returns Dinvgamma of every element of xs.
func DinvgammaGrid[X num.Real, W num.Float](xs grid.Reader[X], shape, rate W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Dinvgamma(x, shape, rate, logForm) })
}

// PinvgammaGrid returns Pinvgamma of every element of xs.
func PinvgammaGrid[X num.Real, W num.Float](xs grid.Reader[X], shape, rate W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Pinvgamma(x, shape, rate, logForm) })
}

// QinvgammaGrid returns Qinvgamma of every element of ps.
func QinvgammaGrid[X num.Real, W num.Float](ps grid.Reader[X], shape, rate W) *grid.Grid[W] {
	return grid.Map(ps, func(p W) W { return Qinvgamma(p, shape, rate) })
}

// InvGammaDist is an inverse-gamma distribution with the given Shape
// and Rate.
type InvGammaDist struct {
	Shape, Rate float64
}

func (d InvGammaDist) PDF(x float64) float64    { return Dinvgamma(x, d.Shape, d.Rate, false) }
func (d InvGammaDist) LogPDF(x float64) float64 { return Dinvgamma(x, d.Shape, d.Rate, true) }
func (d InvGammaDist) CDF(x float64) float64    { return Pinvgamma(x, d.Shape, d.Rate, false) }
func (d InvGammaDist) LogCDF(x float64) float64 { return Pinvgamma(x, d.Shape, d.Rate, true) }
func (d InvGammaDist) InvCDF(y float64) float64 { return Qinvgamma(y, d.Shape, d.Rate) }

func (d InvGammaDist) PDFEach(xs []float64) []float64 {
	return DinvgammaGrid(column(xs), d.Shape, d.Rate, false).RawData()
}

func (d InvGammaDist) CDFEach(xs []float64) []float64 {
	return PinvgammaGrid(column(xs), d.Shape, d.Rate, false).RawData()
}

func (d InvGammaDist) InvCDFEach(ys []float64) []float64 {
	return QinvgammaGrid(column(ys), d.Shape, d.Rate).RawData()
}

func (d InvGammaDist) Bounds() (float64, float64) {
	return 0, d.InvCDF(0.99)
}
