// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-distfn/grid"
	"github.com/aclements/go-distfn/mathx"
	"github.com/aclements/go-distfn/num"
)

func binomValid[W num.Float](n, prob W) bool {
	return num.IsInt(n) && n >= 0 && probValid(prob)
}

// Dbinom returns the probability of getting exactly x successes in n
// independent Bernoulli trials with probability prob, or its natural
// log if logForm. This is 0 unless x is an integer in [0, n].
func Dbinom[W num.Float](x, n, prob W, logForm bool) W {
	if !binomValid(n, prob) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	if !num.IsInt(x) || x < 0 || x > n {
		return zeroProb[W](logForm)
	}
	switch prob {
	case 0:
		if x == 0 {
			return oneProb[W](logForm)
		}
		return zeroProb[W](logForm)
	case 1:
		if x == n {
			return oneProb[W](logForm)
		}
		return zeroProb[W](logForm)
	}
	lp := mathx.Lchoose(n, x) + x*num.Log(prob) + (n-x)*num.Log1p(-prob)
	return expUnless(lp, logForm)
}

// Pbinom returns the probability of getting x or fewer successes in n
// independent Bernoulli trials with probability prob, or its natural
// log if logForm.
func Pbinom[W num.Float](x, n, prob W, logForm bool) W {
	if !binomValid(n, prob) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	k := num.Floor(x)
	switch {
	case k < 0:
		return zeroProb[W](logForm)
	case k >= n || prob == 0:
		return oneProb[W](logForm)
	case prob == 1:
		return zeroProb[W](logForm)
	}
	return logIf(mathx.BetaInc(1-prob, n-k, k+1), logForm)
}

// Qbinom returns the quantile at p of the binomial distribution with n
// trials and success probability prob: the smallest k such that
// Pbinom(k, n, prob) >= p.
func Qbinom[W num.Float](p, n, prob W) W {
	if !binomValid(n, prob) {
		return num.NaN[W]()
	}
	// With no trials or no chance of success, the whole mass is at 0,
	// even for p == 1.
	if (n == 0 || prob == 0) && classifyP(p) != edgeInvalid {
		return 0
	}
	if q, ok := quantileEdge(p, 0, n); ok {
		return q
	}
	if prob == 1 {
		return n
	}
	n64, prob64 := float64(n), float64(prob)
	sd := math.Sqrt(n64 * prob64 * (1 - prob64))
	guess := cornishFisher(float64(p), n64*prob64, sd, (1-2*prob64)/sd)
	return discreteQuantile(p, guess, n64, func(k float64) float64 {
		return Pbinom(k, n64, prob64, false)
	})
}

// DbinomGrid returns Dbinom of every element of xs.
func DbinomGrid[X num.Real, W num.Float](xs grid.Reader[X], n, prob W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Dbinom(x, n, prob, logForm) })
}

// PbinomGrid returns Pbinom of every element of xs.
func PbinomGrid[X num.Real, W num.Float](xs grid.Reader[X], n, prob W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Pbinom(x, n, prob, logForm) })
}

// QbinomGrid returns Qbinom of every element of ps.
func QbinomGrid[X num.Real, W num.Float](ps grid.Reader[X], n, prob W) *grid.Grid[W] {
	return grid.Map(ps, func(p W) W { return Qbinom(p, n, prob) })
}

// BinomialDist is a binomial distribution.
type BinomialDist struct {
	// N is the number of independent Bernoulli trials. N >= 0.
	//
	// If N=1, this is equivalent to the Bernoulli distribution.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64
}

// PMF is the probability of getting exactly k successes in d.N
// independent Bernoulli trials with probability d.P. It is 0 if k is
// not an integer.
func (d BinomialDist) PMF(k float64) float64 {
	return Dbinom(k, float64(d.N), d.P, false)
}

// LogPMF is the natural log of PMF(k).
func (d BinomialDist) LogPMF(k float64) float64 {
	return Dbinom(k, float64(d.N), d.P, true)
}

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) CDF(k float64) float64 {
	return Pbinom(k, float64(d.N), d.P, false)
}

// LogCDF is the natural log of CDF(k).
func (d BinomialDist) LogCDF(k float64) float64 {
	return Pbinom(k, float64(d.N), d.P, true)
}

func (d BinomialDist) InvCDF(y float64) float64 {
	return Qbinom(y, float64(d.N), d.P)
}

func (d BinomialDist) Bounds() (float64, float64) {
	return 0, float64(d.N)
}

func (d BinomialDist) Step() float64 {
	return 1
}

func (d BinomialDist) Mean() float64 {
	return float64(d.N) * d.P
}

func (d BinomialDist) Variance() float64 {
	return float64(d.N) * d.P * (1 - d.P)
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d BinomialDist) NormalApprox() NormalDist {
	return NormalDist{Mu: d.Mean(), Sigma: math.Sqrt(d.Variance())}
}
