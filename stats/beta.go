// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"github.com/aclements/go-distfn/grid"
	"github.com/aclements/go-distfn/mathx"
	"github.com/aclements/go-distfn/num"
)

func betaValid[W num.Float](a, b W) bool {
	return num.IsFinite(a) && a > 0 && num.IsFinite(b) && b > 0
}

// Dbeta returns the density at x of the beta distribution with shape
// parameters a and b, or its natural log if logForm.
//
// At x == 0 the density is +Inf if a < 1, b if a == 1, and 0 if a > 1.
// At x == 1 the roles of a and b are swapped.
func Dbeta[W num.Float](x, a, b W, logForm bool) W {
	if !betaValid(a, b) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	switch {
	case x < 0 || x > 1:
		return zeroProb[W](logForm)
	case x == 0:
		return logIf(betaEdge(a, b), logForm)
	case x == 1:
		return logIf(betaEdge(b, a), logForm)
	}
	lp := (a-1)*num.Log(x) + (b-1)*num.Log1p(-x) - mathx.Lbeta(a, b)
	return expUnless(lp, logForm)
}

// betaEdge returns the limit of the beta density with shape a, b as x
// approaches 0.
func betaEdge[W num.Float](a, b W) W {
	switch {
	case a < 1:
		return num.Inf[W](1)
	case a == 1:
		return b
	}
	return 0
}

// Pbeta returns the cumulative probability at x of the beta
// distribution with shape parameters a and b, or its natural log if
// logForm.
func Pbeta[W num.Float](x, a, b W, logForm bool) W {
	if !betaValid(a, b) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	switch {
	case belowEpsilon(x):
		return zeroProb[W](logForm)
	case x >= 1:
		return oneProb[W](logForm)
	}
	return logIf(mathx.BetaInc(x, a, b), logForm)
}

// Qbeta returns the quantile at p of the beta distribution with shape
// parameters a and b.
func Qbeta[W num.Float](p, a, b W) W {
	if !betaValid(a, b) {
		return num.NaN[W]()
	}
	if q, ok := quantileEdge[W](p, 0, 1); ok {
		return q
	}
	return mathx.BetaIncInv(p, a, b)
}

// DbetaGrid returns Dbeta of every element of xs.
func DbetaGrid[X num.Real, W num.Float](xs grid.Reader[X], a, b W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Dbeta(x, a, b, logForm) })
}

// PbetaGrid returns Pbeta of every element of xs.
func PbetaGrid[X num.Real, W num.Float](xs grid.Reader[X], a, b W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Pbeta(x, a, b, logForm) })
}

// QbetaGrid returns Qbeta of every element of ps.
func QbetaGrid[X num.Real, W num.Float](ps grid.Reader[X], a, b W) *grid.Grid[W] {
	return grid.Map(ps, func(p W) W { return Qbeta(p, a, b) })
}

// BetaDist is a beta distribution with shape parameters Alpha and
// Beta, supported on [0, 1].
type BetaDist struct {
	Alpha, Beta float64
}

func (d BetaDist) PDF(x float64) float64    { return Dbeta(x, d.Alpha, d.Beta, false) }
func (d BetaDist) LogPDF(x float64) float64 { return Dbeta(x, d.Alpha, d.Beta, true) }
func (d BetaDist) CDF(x float64) float64    { return Pbeta(x, d.Alpha, d.Beta, false) }
func (d BetaDist) LogCDF(x float64) float64 { return Pbeta(x, d.Alpha, d.Beta, true) }
func (d BetaDist) InvCDF(y float64) float64 { return Qbeta(y, d.Alpha, d.Beta) }

func (d BetaDist) PDFEach(xs []float64) []float64 {
	return DbetaGrid(column(xs), d.Alpha, d.Beta, false).RawData()
}

func (d BetaDist) CDFEach(xs []float64) []float64 {
	return PbetaGrid(column(xs), d.Alpha, d.Beta, false).RawData()
}

func (d BetaDist) InvCDFEach(ys []float64) []float64 {
	return QbetaGrid(column(ys), d.Alpha, d.Beta).RawData()
}

func (d BetaDist) Bounds() (float64, float64) {
	return 0, 1
}
