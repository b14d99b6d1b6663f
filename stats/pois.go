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

func poisValid[W num.Float](rate W) bool {
	return num.IsFinite(rate) && rate >= 0
}

// Dpois returns the mass at x of the Poisson distribution with the
// given rate, or its natural log if logForm. This is 0 unless x is a
// non-negative integer. A rate of 0 is the point mass at 0.
func Dpois[W num.Float](x, rate W, logForm bool) W {
	if !poisValid(rate) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	if !num.IsInt(x) || x < 0 {
		return zeroProb[W](logForm)
	}
	if rate == 0 {
		if x == 0 {
			return oneProb[W](logForm)
		}
		return zeroProb[W](logForm)
	}
	lp := x*num.Log(rate) - rate - mathx.Lgamma(x+1)
	return expUnless(lp, logForm)
}

// Ppois returns the cumulative probability at x of the Poisson
// distribution with the given rate, or its natural log if logForm.
func Ppois[W num.Float](x, rate W, logForm bool) W {
	if !poisValid(rate) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	switch {
	case x < 0:
		return zeroProb[W](logForm)
	case rate == 0 || num.IsInf(x, 1):
		return oneProb[W](logForm)
	}
	return logIf(mathx.GammaIncComp(num.Floor(x)+1, rate), logForm)
}

// Qpois returns the quantile at p of the Poisson distribution with the
// given rate: the smallest k such that Ppois(k, rate) >= p.
func Qpois[W num.Float](p, rate W) W {
	if !poisValid(rate) {
		return num.NaN[W]()
	}
	// A rate of 0 puts the whole mass at 0, even for p == 1.
	if rate == 0 && classifyP(p) != edgeInvalid {
		return 0
	}
	if q, ok := quantileEdge(p, 0, num.Inf[W](1)); ok {
		return q
	}
	rate64 := float64(rate)
	sd := math.Sqrt(rate64)
	guess := cornishFisher(float64(p), rate64, sd, 1/sd)
	return discreteQuantile(p, guess, math.Inf(1), func(k float64) float64 {
		return Ppois(k, rate64, false)
	})
}

// DpoisGrid returns Dpois of every element of xs.
func DpoisGrid[X num.Real, W num.Float](xs grid.Reader[X], rate W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Dpois(x, rate, logForm) })
}

// PpoisGrid returns Ppois of every element of xs.
func PpoisGrid[X num.Real, W num.Float](xs grid.Reader[X], rate W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Ppois(x, rate, logForm) })
}

// QpoisGrid returns Qpois of every element of ps.
func QpoisGrid[X num.Real, W num.Float](ps grid.Reader[X], rate W) *grid.Grid[W] {
	return grid.Map(ps, func(p W) W { return Qpois(p, rate) })
}

// PoissonDist is a Poisson distribution with the given Rate (mean).
type PoissonDist struct {
	Rate float64
}

func (d PoissonDist) PMF(x float64) float64    { return Dpois(x, d.Rate, false) }
func (d PoissonDist) LogPMF(x float64) float64 { return Dpois(x, d.Rate, true) }
func (d PoissonDist) CDF(x float64) float64    { return Ppois(x, d.Rate, false) }
func (d PoissonDist) LogCDF(x float64) float64 { return Ppois(x, d.Rate, true) }
func (d PoissonDist) InvCDF(y float64) float64 { return Qpois(y, d.Rate) }

func (d PoissonDist) Step() float64 {
	return 1
}

func (d PoissonDist) Bounds() (float64, float64) {
	return 0, d.InvCDF(0.999)
}

func (d PoissonDist) Mean() float64 {
	return d.Rate
}

func (d PoissonDist) Variance() float64 {
	return d.Rate
}
