// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"github.com/aclements/go-distfn/grid"
	"github.com/aclements/go-distfn/mathx"
	"github.com/aclements/go-distfn/num"
)

func chisqValid[W num.Float](dof W) bool {
	return num.IsFinite(dof) && dof > 0
}

// Dchisq returns the density at x of the chi-squared distribution with
// dof degrees of freedom, or its natural log if logForm.
//
// At x == 0 the density is +Inf if dof < 2, 0.5 if dof == 2, and 0 if
// dof > 2.
func Dchisq[W num.Float](x, dof W, logForm bool) W {
	if !chisqValid(dof) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	switch {
	case x < 0 || num.IsInf(x, 1):
		return zeroProb[W](logForm)
	case x == 0:
		switch {
		case dof < 2:
			return logIf(num.Inf[W](1), logForm)
		case dof == 2:
			return logIf(W(0.5), logForm)
		}
		return zeroProb[W](logForm)
	}
	k := dof / 2
	lp := -k*ln2 - mathx.Lgamma(k) + (k-1)*num.Log(x) - x/2
	return expUnless(lp, logForm)
}

// Pchisq returns the cumulative probability at x of the chi-squared
// distribution with dof degrees of freedom, or its natural log if
// logForm.
func Pchisq[W num.Float](x, dof W, logForm bool) W {
	if !chisqValid(dof) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	switch {
	case belowEpsilon(x):
		return zeroProb[W](logForm)
	case num.IsInf(x, 1):
		return oneProb[W](logForm)
	}
	return logIf(mathx.GammaInc(dof/2, x/2), logForm)
}

// Qchisq returns the quantile at p of the chi-squared distribution
// with dof degrees of freedom.
func Qchisq[W num.Float](p, dof W) W {
	if !chisqValid(dof) {
		return num.NaN[W]()
	}
	if q, ok := quantileEdge(p, 0, num.Inf[W](1)); ok {
		return q
	}
	return 2 * mathx.GammaIncInv(dof/2, p)
}

// DchisqGrid returns Dchisq of every element of xs.
func DchisqGrid[X num.Real, W num.Float](xs grid.Reader[X], dof W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Dchisq(x, dof, logForm) })
}

// PchisqGrid returns Pchisq of every element of xs.
func PchisqGrid[X num.Real, W num.Float](xs grid.Reader[X], dof W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Pchisq(x, dof, logForm) })
}

// QchisqGrid returns Qchisq of every element of ps.
func QchisqGrid[X num.Real, W num.Float](ps grid.Reader[X], dof W) *grid.Grid[W] {
	return grid.Map(ps, func(p W) W { return Qchisq(p, dof) })
}

// ChiSquaredDist is a chi-squared distribution with K degrees of
// freedom.
type ChiSquaredDist struct {
	K float64
}

func (d ChiSquaredDist) PDF(x float64) float64    { return Dchisq(x, d.K, false) }
func (d ChiSquaredDist) LogPDF(x float64) float64 { return Dchisq(x, d.K, true) }
func (d ChiSquaredDist) CDF(x float64) float64    { return Pchisq(x, d.K, false) }
func (d ChiSquaredDist) LogCDF(x float64) float64 { return Pchisq(x, d.K, true) }
func (d ChiSquaredDist) InvCDF(y float64) float64 { return Qchisq(y, d.K) }

func (d ChiSquaredDist) PDFEach(xs []float64) []float64 {
	return DchisqGrid(column(xs), d.K, false).RawData()
}

func (d ChiSquaredDist) CDFEach(xs []float64) []float64 {
	return PchisqGrid(column(xs), d.K, false).RawData()
}

func (d ChiSquaredDist) InvCDFEach(ys []float64) []float64 {
	return QchisqGrid(column(ys), d.K).RawData()
}

func (d ChiSquaredDist) Bounds() (float64, float64) {
	return 0, d.InvCDF(0.999)
}
