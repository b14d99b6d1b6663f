// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-distfn/grid"
	"github.com/aclements/go-distfn/mathx"
	"github.com/aclements/go-distfn/num"
)

// tValid reports whether dof is a valid number of degrees of freedom.
// dof may be +Inf, which is the standard normal distribution.
func tValid[W num.Float](dof W) bool {
	return !num.IsNaN(dof) && dof > 0
}

// Dt returns the density at x of Student's t-distribution with dof
// degrees of freedom, or its natural log if logForm.
//
// If dof is +Inf, Dt is exactly Dnorm(x, 0, 1, logForm).
func Dt[W num.Float](x, dof W, logForm bool) W {
	if !tValid(dof) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	if num.IsInf(dof, 1) {
		return Dnorm(x, 0, 1, logForm)
	}
	if num.IsInf(x, 0) {
		return zeroProb[W](logForm)
	}
	lp := tNormConst(dof) - (dof+1)/2*num.Log1p(x*x/dof)
	return expUnless(lp, logForm)
}

// tNormConst returns the log of the normalizing constant of the t
// density, Γ((dof+1)/2) / (Γ(dof/2) √(dof π)).
func tNormConst[W num.Float](dof W) W {
	if dof <= 100 {
		return mathx.Lgamma((dof+1)/2) - mathx.Lgamma(dof/2) - num.Log(dof*math.Pi)/2
	}
	// The log-gamma terms are large and nearly equal here. Use the
	// expansion of ln(Γ(a+½)/Γ(a)) - ½ ln a with a = dof/2, which
	// leaves the normal constant plus a small correction.
	r := 1 / (dof / 2)
	r2 := r * r
	return -lnSqrt2Pi + r*(-W(1)/8+r2*(W(1)/192-r2/640))
}

// tApproxDOF is the number of degrees of freedom above which the t cdf
// and quantile use the normal approximation of Abramowitz and Stegun
// 26.7.8.
const tApproxDOF = 4e5

// tApproxScale returns the factor the approximation for dof degrees of
// freedom applies to x to get a standard normal deviate:
// z = x·(1-v)/√(1+2v·x²) with v = 1/(4·dof).
func tApproxScale[W num.Float](x, dof W) W {
	v := 1 / (4 * dof)
	return (1 - v) / num.Sqrt(1+2*v*x*x)
}

// Pt returns the cumulative probability at x of Student's
// t-distribution with dof degrees of freedom, or its natural log if
// logForm.
//
// If dof is +Inf, Pt is exactly Pnorm(x, 0, 1, logForm).
func Pt[W num.Float](x, dof W, logForm bool) W {
	if !tValid(dof) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	if num.IsInf(dof, 1) {
		return Pnorm(x, 0, 1, logForm)
	}
	switch {
	case num.IsInf(x, -1):
		return zeroProb[W](logForm)
	case num.IsInf(x, 1):
		return oneProb[W](logForm)
	case x == 0:
		return logIf(W(0.5), logForm)
	}
	if dof > tApproxDOF {
		return Pnorm(x*tApproxScale(x, dof), 0, 1, logForm)
	}
	// Probability of the tail beyond |x|. Close to the center,
	// dof/(dof+x²) rounds toward 1, so use the complementary
	// integral.
	var tail W
	if x*x < dof {
		tail = 0.5 - mathx.BetaInc(x*x/(dof+x*x), 0.5, dof/2)/2
	} else {
		tail = mathx.BetaInc(dof/(dof+x*x), dof/2, 0.5) / 2
	}
	if x < 0 {
		return logIf(tail, logForm)
	}
	return logIf(1-tail, logForm)
}

// Qt returns the quantile at p of Student's t-distribution with dof
// degrees of freedom.
func Qt[W num.Float](p, dof W) W {
	if !tValid(dof) {
		return num.NaN[W]()
	}
	if q, ok := quantileEdge(p, num.Inf[W](-1), num.Inf[W](1)); ok {
		return q
	}
	if num.IsInf(dof, 1) {
		return Qnorm(p, 0, 1)
	}
	if p == 0.5 {
		return 0
	}
	if dof > tApproxDOF {
		// Invert z = x·(1-v)/√(1+2v·x²) exactly.
		z := Qnorm(p, 0, 1)
		v := 1 / (4 * dof)
		return z / num.Sqrt((1-v)*(1-v)-2*v*z*z)
	}
	tail := p
	if tail > 0.5 {
		tail = 1 - p
	}
	var x W
	if tail > 0.25 {
		// 2·tail is close to 1; invert the complementary integral
		// for x²/(dof+x²).
		j := mathx.BetaIncInv(1-2*tail, 0.5, dof/2)
		x = num.Sqrt(dof * j / (1 - j))
	} else {
		i := mathx.BetaIncInv(2*tail, dof/2, 0.5)
		x = num.Sqrt(dof * (1/i - 1))
	}
	if p < 0.5 {
		return -x
	}
	return x
}

// DtGrid returns Dt of every element of xs.
func DtGrid[X num.Real, W num.Float](xs grid.Reader[X], dof W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Dt(x, dof, logForm) })
}

// PtGrid returns Pt of every element of xs.
func PtGrid[X num.Real, W num.Float](xs grid.Reader[X], dof W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Pt(x, dof, logForm) })
}

// QtGrid returns Qt of every element of ps.
func QtGrid[X num.Real, W num.Float](ps grid.Reader[X], dof W) *grid.Grid[W] {
	return grid.Map(ps, func(p W) W { return Qt(p, dof) })
}

// A TDist is a Student's t-distribution with V degrees of freedom.
// V may be +Inf.
type TDist struct {
	V float64
}

func (t TDist) PDF(x float64) float64    { return Dt(x, t.V, false) }
func (t TDist) LogPDF(x float64) float64 { return Dt(x, t.V, true) }
func (t TDist) CDF(x float64) float64    { return Pt(x, t.V, false) }
func (t TDist) LogCDF(x float64) float64 { return Pt(x, t.V, true) }
func (t TDist) InvCDF(y float64) float64 { return Qt(y, t.V) }

func (t TDist) PDFEach(xs []float64) []float64 {
	return DtGrid(column(xs), t.V, false).RawData()
}

func (t TDist) CDFEach(xs []float64) []float64 {
	return PtGrid(column(xs), t.V, false).RawData()
}

func (t TDist) InvCDFEach(ys []float64) []float64 {
	return QtGrid(column(ys), t.V).RawData()
}

func (t TDist) Bounds() (float64, float64) {
	return tailBounds(t.InvCDF)
}
