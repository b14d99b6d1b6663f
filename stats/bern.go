// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"github.com/aclements/go-distfn/grid"
	"github.com/aclements/go-distfn/num"
)

func probValid[W num.Float](prob W) bool {
	return prob >= 0 && prob <= 1
}

// Dbern returns the mass at x of the Bernoulli distribution with
// success probability prob, or its natural log if logForm.
func Dbern[W num.Float](x, prob W, logForm bool) W {
	if !probValid(prob) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	switch x {
	case 0:
		return logIf(1-prob, logForm)
	case 1:
		return logIf(prob, logForm)
	}
	return zeroProb[W](logForm)
}

// Pbern returns the cumulative probability at x of the Bernoulli
// distribution with success probability prob, or its natural log if
// logForm.
func Pbern[W num.Float](x, prob W, logForm bool) W {
	if !probValid(prob) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	switch {
	case x < 0:
		return zeroProb[W](logForm)
	case x < 1:
		return logIf(1-prob, logForm)
	}
	return oneProb[W](logForm)
}

// Qbern returns the quantile at p of the Bernoulli distribution with
// success probability prob: 1 if p > 1-prob and 0 otherwise.
func Qbern[W num.Float](p, prob W) W {
	if !probValid(prob) {
		return num.NaN[W]()
	}
	if classifyP(p) == edgeInvalid {
		return num.NaN[W]()
	}
	if p > 1-prob {
		return 1
	}
	return 0
}

// DbernGrid returns Dbern of every element of xs.
func DbernGrid[X num.Real, W num.Float](xs grid.Reader[X], prob W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Dbern(x, prob, logForm) })
}

// PbernGrid returns Pbern of every element of xs.
func PbernGrid[X num.Real, W num.Float](xs grid.Reader[X], prob W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Pbern(x, prob, logForm) })
}

// QbernGrid returns Qbern of every element of ps.
func QbernGrid[X num.Real, W num.Float](ps grid.Reader[X], prob W) *grid.Grid[W] {
	return grid.Map(ps, func(p W) W { return Qbern(p, prob) })
}

// BernoulliDist is a Bernoulli distribution with success probability
// P.
type BernoulliDist struct {
	P float64
}

func (d BernoulliDist) PMF(x float64) float64    { return Dbern(x, d.P, false) }
func (d BernoulliDist) LogPMF(x float64) float64 { return Dbern(x, d.P, true) }
func (d BernoulliDist) CDF(x float64) float64    { return Pbern(x, d.P, false) }
func (d BernoulliDist) LogCDF(x float64) float64 { return Pbern(x, d.P, true) }
func (d BernoulliDist) InvCDF(y float64) float64 { return Qbern(y, d.P) }

func (d BernoulliDist) Step() float64 {
	return 1
}

func (d BernoulliDist) Bounds() (float64, float64) {
	return 0, 1
}

func (d BernoulliDist) Mean() float64 {
	return d.P
}

func (d BernoulliDist) Variance() float64 {
	return d.P * (1 - d.P)
}
