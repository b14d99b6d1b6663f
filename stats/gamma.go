// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"github.com/aclements/go-distfn/grid"
	"github.com/aclements/go-distfn/mathx"
	"github.com/aclements/go-distfn/num"
)

func gammaValid[W num.Float](shape, scale W) bool {
	return num.IsFinite(shape) && shape >= 0 && num.IsFinite(scale) && scale > 0
}

// Dgamma returns the density at x of the gamma distribution with the
// given shape and scale, or its natural log if logForm.
//
// At x == 0 the density is +Inf if shape < 1, 1/scale if shape == 1,
// and 0 if shape > 1. A shape of 0 is the point mass at 0.
func Dgamma[W num.Float](x, shape, scale W, logForm bool) W {
	if !gammaValid(shape, scale) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	switch {
	case x < 0:
		return zeroProb[W](logForm)
	case x == 0:
		switch {
		case shape < 1:
			return logIf(num.Inf[W](1), logForm)
		case shape == 1:
			return logIf(1/scale, logForm)
		}
		return zeroProb[W](logForm)
	case shape == 0 || num.IsInf(x, 1):
		return zeroProb[W](logForm)
	}
	lp := -mathx.Lgamma(shape) - shape*num.Log(scale) + (shape-1)*num.Log(x) - x/scale
	return expUnless(lp, logForm)
}

// Pgamma returns the cumulative probability at x of the gamma
// distribution with the given shape and scale, or its natural log if
// logForm.
func Pgamma[W num.Float](x, shape, scale W, logForm bool) W {
	if !gammaValid(shape, scale) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	if shape == 0 {
		if x < 0 {
			return zeroProb[W](logForm)
		}
		return oneProb[W](logForm)
	}
	switch {
	case belowEpsilon(x):
		return zeroProb[W](logForm)
	case num.IsInf(x, 1):
		return oneProb[W](logForm)
	}
	return logIf(mathx.GammaInc(shape, x/scale), logForm)
}

// Qgamma returns the quantile at p of the gamma distribution with the
// given shape and scale.
func Qgamma[W num.Float](p, shape, scale W) W {
	if !gammaValid(shape, scale) {
		return num.NaN[W]()
	}
	if shape == 0 && classifyP(p) != edgeInvalid {
		return 0
	}
	if q, ok := quantileEdge(p, 0, num.Inf[W](1)); ok {
		return q
	}
	return scale * mathx.GammaIncInv(shape, p)
}

// DgammaGrid returns Dgamma of every element of xs.
func DgammaGrid[X num.Real, W num.Float](xs grid.Reader[X], shape, scale W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Dgamma(x, shape, scale, logForm) })
}

// PgammaGrid returns Pgamma of every element of xs.
func PgammaGrid[X num.Real, W num.Float](xs grid.Reader[X], shape, scale W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Pgamma(x, shape, scale, logForm) })
}

// QgammaGrid returns Qgamma of every element of ps.
func QgammaGrid[X num.Real, W num.Float](ps grid.Reader[X], shape, scale W) *grid.Grid[W] {
	return grid.Map(ps, func(p W) W { return Qgamma(p, shape, scale) })
}

// GammaDist is a gamma distribution.
type GammaDist struct {
	// Shape is the shape parameter k >= 0. Shape == 0 is the
	// degenerate distribution at 0.
	Shape float64

	// Scale is the scale parameter θ > 0. The rate is 1/Scale.
	Scale float64
}

func (d GammaDist) PDF(x float64) float64    { return Dgamma(x, d.Shape, d.Scale, false) }
func (d GammaDist) LogPDF(x float64) float64 { return Dgamma(x, d.Shape, d.Scale, true) }
func (d GammaDist) CDF(x float64) float64    { return Pgamma(x, d.Shape, d.Scale, false) }
func (d GammaDist) LogCDF(x float64) float64 { return Pgamma(x, d.Shape, d.Scale, true) }
func (d GammaDist) InvCDF(y float64) float64 { return Qgamma(y, d.Shape, d.Scale) }

func (d GammaDist) PDFEach(xs []float64) []float64 {
	return DgammaGrid(column(xs), d.Shape, d.Scale, false).RawData()
}

func (d GammaDist) CDFEach(xs []float64) []float64 {
	return PgammaGrid(column(xs), d.Shape, d.Scale, false).RawData()
}

func (d GammaDist) InvCDFEach(ys []float64) []float64 {
	return QgammaGrid(column(ys), d.Shape, d.Scale).RawData()
}

func (d GammaDist) Bounds() (float64, float64) {
	return 0, d.InvCDF(0.999)
}

func (d GammaDist) Mean() float64 {
	return d.Shape * d.Scale
}

func (d GammaDist) Variance() float64 {
	return d.Shape * d.Scale * d.Scale
}
