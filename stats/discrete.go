// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-distfn/num"
)

// discreteQuantile returns the smallest integer k in [0, hi] with
// cdf(k) >= p for a distribution on the non-negative integers, for p
// in (0, 1). The search starts at guess, which should be close to the
// answer, and moves in steps of about guess/1000, refining the step
// by a factor of 100 until it is 1.
//
// The search runs in float64 whatever W is, so integers above 2^24
// stay distinct for float32 callers. p is reduced by a few ulps of W
// so that rounding in the cdf does not push an exact quantile to the
// next point.
func discreteQuantile[W num.Float](p W, guess, hi float64, cdf func(k float64) float64) W {
	target := float64(p) * (1 - 64*float64(num.Epsilon[W]()))
	y := math.Floor(guess)
	if !(y >= 0) {
		// Also catches a NaN guess.
		y = 0
	}
	if y > hi {
		y = hi
	}
	incr := math.Max(1, math.Floor(y/1000))
	for {
		y = quantileSearch(y, incr, target, hi, cdf)
		if incr == 1 {
			return W(y)
		}
		incr = math.Max(1, math.Floor(incr/100))
	}
}

// quantileSearch moves y in steps of incr to the smallest y' on that
// grid (bounded by 0 and hi) with cdf(y') >= target.
func quantileSearch(y, incr, target, hi float64, cdf func(k float64) float64) float64 {
	if cdf(y) >= target {
		for y > 0 {
			next := math.Max(0, y-incr)
			if next == y || cdf(next) < target {
				break
			}
			y = next
		}
		return y
	}
	for y < hi {
		next := math.Min(hi, y+incr)
		if next == y {
			break
		}
		y = next
		if cdf(y) >= target {
			break
		}
	}
	return y
}

// cornishFisher returns the Cornish-Fisher estimate of the p quantile
// of a distribution with the given mean, standard deviation and
// skewness.
func cornishFisher(p, mean, sd, skew float64) float64 {
	z := Qnorm(p, 0, 1)
	return mean + sd*(z+skew*(z*z-1)/6) + 0.5
}
