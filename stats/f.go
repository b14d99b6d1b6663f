// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"github.com/aclements/go-distfn/grid"
	"github.com/aclements/go-distfn/mathx"
	"github.com/aclements/go-distfn/num"
)

func fValid[W num.Float](df1, df2 W) bool {
	return num.IsFinite(df1) && df1 > 0 && num.IsFinite(df2) && df2 > 0
}

// Df returns the density at x of the F distribution with df1 and df2
// degrees of freedom, or its natural log if logForm.
//
// At x == 0 the density is +Inf if df1 < 2, 1 if df1 == 2, and 0 if
// df1 > 2.
func Df[W num.Float](x, df1, df2 W, logForm bool) W {
	if !fValid(df1, df2) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	switch {
	case x < 0 || num.IsInf(x, 1):
		return zeroProb[W](logForm)
	case x == 0:
		switch {
		case df1 < 2:
			return logIf(num.Inf[W](1), logForm)
		case df1 == 2:
			return oneProb[W](logForm)
		}
		return zeroProb[W](logForm)
	}
	a, b := df1/2, df2/2
	lp := a*num.Log(df1) + b*num.Log(df2) + (a-1)*num.Log(x) -
		(a+b)*num.Log(df2+df1*x) - mathx.Lbeta(a, b)
	return expUnless(lp, logForm)
}

// Pf returns the cumulative probability at x of the F distribution
// with df1 and df2 degrees of freedom, or its natural log if logForm.
//
// This is I_{r/(1+r)}(df1/2, df2/2), where r = df1·x/df2.
func Pf[W num.Float](x, df1, df2 W, logForm bool) W {
	if !fValid(df1, df2) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	if belowEpsilon(x) {
		return zeroProb[W](logForm)
	}
	r := df1 * x / df2
	if num.IsInf(r, 1) {
		return oneProb[W](logForm)
	}
	return logIf(mathx.BetaInc(r/(1+r), df1/2, df2/2), logForm)
}

// Qf returns the quantile at p of the F distribution with df1 and df2
// degrees of freedom.
func Qf[W num.Float](p, df1, df2 W) W {
	if !fValid(df1, df2) {
		return num.NaN[W]()
	}
	if q, ok := quantileEdge(p, 0, num.Inf[W](1)); ok {
		return q
	}
	i := mathx.BetaIncInv(p, df1/2, df2/2)
	if i >= 1 {
		return num.Inf[W](1)
	}
	return df2 * i / (df1 * (1 - i))
}

// DfGrid returns Df of every element of xs.
func DfGrid[X num.Real, W num.Float](xs grid.Reader[X], df1, df2 W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Df(x, df1, df2, logForm) })
}

// PfGrid returns Pf of every element of xs.
func PfGrid[X num.Real, W num.Float](xs grid.Reader[X], df1, df2 W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Pf(x, df1, df2, logForm) })
}

// QfGrid returns Qf of every element of ps.
func QfGrid[X num.Real, W num.Float](ps grid.Reader[X], df1, df2 W) *grid.Grid[W] {
	return grid.Map(ps, func(p W) W { return Qf(p, df1, df2) })
}

// FDist is an F distribution with D1 and D2 degrees of freedom.
type FDist struct {
	D1, D2 float64
}

func (d FDist) PDF(x float64) float64    { return Df(x, d.D1, d.D2, false) }
func (d FDist) LogPDF(x float64) float64 { return Df(x, d.D1, d.D2, true) }
func (d FDist) CDF(x float64) float64    { return Pf(x, d.D1, d.D2, false) }
func (d FDist) LogCDF(x float64) float64 { return Pf(x, d.D1, d.D2, true) }
func (d FDist) InvCDF(y float64) float64 { return Qf(y, d.D1, d.D2) }

func (d FDist) PDFEach(xs []float64) []float64 {
	return DfGrid(column(xs), d.D1, d.D2, false).RawData()
}

func (d FDist) CDFEach(xs []float64) []float64 {
	return PfGrid(column(xs), d.D1, d.D2, false).RawData()
}

func (d FDist) InvCDFEach(ys []float64) []float64 {
	return QfGrid(column(ys), d.D1, d.D2).RawData()
}

func (d FDist) Bounds() (float64, float64) {
	return 0, d.InvCDF(0.999)
}
