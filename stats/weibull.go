// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"github.com/aclements/go-distfn/grid"
	"github.com/aclements/go-distfn/num"
)

func weibullValid[W num.Float](shape, scale W) bool {
	return num.IsFinite(shape) && shape > 0 && num.IsFinite(scale) && scale > 0
}

// Dweibull returns the density at x of the Weibull distribution with
// the given shape and scale, or its natural log if logForm.
//
// At x == 0 the density is +Inf if shape < 1, 1/scale if shape == 1,
// and 0 if shape > 1.
func Dweibull[W num.Float](x, shape, scale W, logForm bool) W {
	if !weibullValid(shape, scale) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	switch {
	case x < 0 || num.IsInf(x, 1):
		return zeroProb[W](logForm)
	case x == 0:
		switch {
		case shape < 1:
			return logIf(num.Inf[W](1), logForm)
		case shape == 1:
			return logIf(1/scale, logForm)
		}
		return zeroProb[W](logForm)
	}
	z := x / scale
	lp := num.Log(shape/scale) + (shape-1)*num.Log(z) - num.Pow(z, shape)
	return expUnless(lp, logForm)
}

// Pweibull returns the cumulative probability at x of the Weibull
// distribution with the given shape and scale, or its natural log if
// logForm.
func Pweibull[W num.Float](x, shape, scale W, logForm bool) W {
	if !weibullValid(shape, scale) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	switch {
	case belowEpsilon(x):
		return zeroProb[W](logForm)
	case num.IsInf(x, 1):
		return oneProb[W](logForm)
	}
	return logIf(-num.Expm1(-num.Pow(x/scale, shape)), logForm)
}

// Qweibull returns the quantile at p of the Weibull distribution with
// the given shape and scale.
func Qweibull[W num.Float](p, shape, scale W) W {
	if !weibullValid(shape, scale) {
		return num.NaN[W]()
	}
	if q, ok := quantileEdge(p, 0, num.Inf[W](1)); ok {
		return q
	}
	return scale * num.Pow(-num.Log1p(-p), 1/shape)
}

// DweibullGrid returns Dweibull of every element of xs.
func DweibullGrid[X num.Real, W num.Float](xs grid.Reader[X], shape, scale W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Dweibull(x, shape, scale, logForm) })
}

// PweibullGrid returns Pweibull of every element of xs.
func PweibullGrid[X num.Real, W num.Float](xs grid.Reader[X], shape, scale W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Pweibull(x, shape, scale, logForm) })
}

// QweibullGrid returns Qweibull of every element of ps.
func QweibullGrid[X num.Real, W num.Float](ps grid.Reader[X], shape, scale W) *grid.Grid[W] {
	return grid.Map(ps, func(p W) W { return Qweibull(p, shape, scale) })
}

// WeibullDist is a Weibull distribution with shape k and scale λ.
type WeibullDist struct {
	Shape, Scale float64
}

func (d WeibullDist) PDF(x float64) float64    { return Dweibull(x, d.Shape, d.Scale, false) }
func (d WeibullDist) LogPDF(x float64) float64 { return Dweibull(x, d.Shape, d.Scale, true) }
func (d WeibullDist) CDF(x float64) float64    { return Pweibull(x, d.Shape, d.Scale, false) }
func (d WeibullDist) LogCDF(x float64) float64 { return Pweibull(x, d.Shape, d.Scale, true) }
func (d WeibullDist) InvCDF(y float64) float64 { return Qweibull(y, d.Shape, d.Scale) }

func (d WeibullDist) PDFEach(xs []float64) []float64 {
	return DweibullGrid(column(xs), d.Shape, d.Scale, false).RawData()
}

func (d WeibullDist) CDFEach(xs []float64) []float64 {
	return PweibullGrid(column(xs), d.Shape, d.Scale, false).RawData()
}

func (d WeibullDist) InvCDFEach(ys []float64) []float64 {
	return QweibullGrid(column(ys), d.Shape, d.Scale).RawData()
}

func (d WeibullDist) Bounds() (float64, float64) {
	return 0, d.InvCDF(0.999)
}
