// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-distfn/grid"
	"github.com/aclements/go-distfn/num"
)

func wilcoxValid[W num.Float](m, n W) bool {
	return num.IsInt(m) && m >= 1 && num.IsInt(n) && n >= 1
}

// mannWhitney returns the probabilities of the Mann-Whitney U
// statistic for samples of sizes m and n and no ties, for U from 0 up
// to and including ulim.
//
// This runs in Θ(m*n*ulim) time.
//
// The details of computing this distribution can be found in Mann,
// Henry B.; Whitney, Donald R. (1947). "On a Test of Whether one of
// Two Random Variables is Stochastically Larger than the Other".
// Annals of Mathematical Statistics 18 (1): 50–60.
func mannWhitney(m, n, ulim int) []float64 {
	// This is a dynamic programming implementation of the
	// recurrence
	//
	//   p_{i,j}(U) = (i * p_{i-1,j}(U-j) + j * p_{i,j-1}(U)) / (i+j)
	//   p_{i,j}(U) = 0                           if U < 0
	//   p_{0,j}(U) = p_{i,0}(U) = 1 / nCr(i+j, i) if U = 0
	//                           = 0              if U > 0
	//
	// p_{i,j} only depends on p_{i-1,j} and p_{i,j-1}, and
	// p_{i,j} = p_{j,i}, so we keep one row of the i ≤ j triangle
	// at a time. Within a row, each U slice only depends on the
	// same and smaller U, so it is overwritten in place starting
	// from the largest U.
	if m > n {
		m, n = n, m
	}

	memo := make([][]float64, m+1)
	for i := range memo {
		memo[i] = make([]float64, ulim+1)
	}

	for j := 0; j <= n; j++ {
		memo[0][0] = 1

		ilim := m
		if j < ilim {
			ilim = j
		}
		for i := 1; i <= ilim; i++ {
			lp := memo[i-1] // p_{i-1,j}
			var rp []float64
			if i <= j-1 {
				rp = memo[i] // p_{i,j-1}
			} else {
				rp = memo[j-1] // p_{j-1,i} and i==j
			}

			ui := i * j
			if ulim < ui {
				ui = ulim
			}

			out := memo[i]
			ij := float64(i + j)
			for u := ui; u >= 0; u-- {
				l := 0.0
				if u-j >= 0 {
					l = float64(i) * lp[u-j]
				}
				out[u] = (l + float64(j)*rp[u]) / ij
			}
		}
	}
	return memo[m]
}

// wilcoxExactLimit is the largest sample size for which the exact U
// distribution is computed. Computing the distribution for two 50
// value samples takes a few milliseconds; if either sample is larger,
// the functions below use a normal approximation with a continuity
// correction.
const wilcoxExactLimit = 50

func wilcoxExact[W num.Float](m, n W) bool {
	return m <= wilcoxExactLimit && n <= wilcoxExactLimit
}

// wilcoxNormal returns the mean and standard deviation of U.
func wilcoxNormal[W num.Float](m, n W) (mu, sigma float64) {
	m64, n64 := float64(m), float64(n)
	return m64 * n64 / 2, math.Sqrt(m64 * n64 * (m64 + n64 + 1) / 12)
}

// Dwilcox returns the probability that the Mann-Whitney U statistic
// of samples of sizes m and n with no ties is exactly x, or its
// natural log if logForm.
//
// If m or n is larger than 50, this uses the normal approximation
// to U with a continuity correction.
func Dwilcox[W num.Float](x, m, n W, logForm bool) W {
	if !wilcoxValid(m, n) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	mn := m * n
	if !num.IsInt(x) || x < 0 || x > mn {
		return zeroProb[W](logForm)
	}
	if !wilcoxExact(m, n) {
		mu, sigma := wilcoxNormal(m, n)
		if sigma > 1e3 {
			// The unit interval is narrow enough that the
			// density is within 1/(24*sigma^2) of its integral,
			// and the difference below would cancel to 0.
			return W(Dnorm(float64(x), mu, sigma, logForm))
		}
		// Take the difference in the lower half, where it does
		// not cancel.
		d := math.Abs(float64(x) - mu)
		hi := Pnorm(-d+0.5, 0, sigma, false)
		lo := Pnorm(-d-0.5, 0, sigma, false)
		return logIf(W(hi-lo), logForm)
	}
	// The distribution is symmetric around m*n/2.
	u := int(x)
	if x > mn/2 {
		u = int(mn - x)
	}
	return logIf(W(mannWhitney(int(m), int(n), u)[u]), logForm)
}

// Pwilcox returns the probability that the Mann-Whitney U statistic
// of samples of sizes m and n with no ties is at most x, or its
// natural log if logForm.
//
// If m or n is larger than 50, this uses the normal approximation
// to U with a continuity correction.
func Pwilcox[W num.Float](x, m, n W, logForm bool) W {
	if !wilcoxValid(m, n) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	mn := m * n
	switch {
	case x < 0:
		return zeroProb[W](logForm)
	case x >= mn:
		return oneProb[W](logForm)
	}
	if !wilcoxExact(m, n) {
		mu, sigma := wilcoxNormal(m, n)
		return W(Pnorm(math.Floor(float64(x))+0.5, mu, sigma, logForm))
	}
	return logIf(W(wilcoxCDF(int(m), int(n), int(num.Floor(x)), nil)), logForm)
}

// wilcoxCDF returns P(U <= u) for the exact distribution, 0 <= u <
// m*n, summing up whichever tail is smaller. If pmf is non-nil, it
// must be mannWhitney(m, n, ulim) for some ulim large enough to cover
// the tail and is used instead of recomputing it.
func wilcoxCDF(m, n, u int, pmf []float64) float64 {
	total := m * n
	flip := u >= (total+1)/2
	if flip {
		u = total - u - 1
	}
	if pmf == nil {
		pmf = mannWhitney(m, n, u)
	}
	p := 0.0
	for _, pu := range pmf[:u+1] {
		p += pu
	}
	if flip {
		p = 1 - p
	}
	return p
}

// Qwilcox returns the quantile at p of the Mann-Whitney U statistic
// of samples of sizes m and n with no ties.
//
// If m or n is larger than 50, this inverts the normal
// approximation used by Pwilcox.
func Qwilcox[W num.Float](p, m, n W) W {
	if !wilcoxValid(m, n) {
		return num.NaN[W]()
	}
	mn := m * n
	if q, ok := quantileEdge(p, 0, mn); ok {
		return q
	}
	mu, sigma := wilcoxNormal(m, n)
	guess := cornishFisher(float64(p), mu, sigma, 0)
	if !wilcoxExact(m, n) {
		return discreteQuantile(p, guess, float64(mn), func(k float64) float64 {
			return Pwilcox(k, float64(m), float64(n), false)
		})
	}
	im, in := int(m), int(n)
	total := im * in
	pmf := mannWhitney(im, in, total/2)
	return discreteQuantile(p, guess, float64(total), func(k float64) float64 {
		if int(k) >= total {
			return 1
		}
		return wilcoxCDF(im, in, int(k), pmf)
	})
}

// DwilcoxGrid returns Dwilcox of every element of xs.
func DwilcoxGrid[X num.Real, W num.Float](xs grid.Reader[X], m, n W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Dwilcox(x, m, n, logForm) })
}

// PwilcoxGrid returns Pwilcox of every element of xs.
func PwilcoxGrid[X num.Real, W num.Float](xs grid.Reader[X], m, n W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Pwilcox(x, m, n, logForm) })
}

// QwilcoxGrid returns Qwilcox of every element of ps.
func QwilcoxGrid[X num.Real, W num.Float](ps grid.Reader[X], m, n W) *grid.Grid[W] {
	return grid.Map(ps, func(p W) W { return Qwilcox(p, m, n) })
}

// A WilcoxDist is the discrete probability distribution of the
// Mann-Whitney U statistic for a pair of samples of sizes M and N
// with no ties.
type WilcoxDist struct {
	M, N int
}

func (d WilcoxDist) PMF(U float64) float64 {
	return Dwilcox(U, float64(d.M), float64(d.N), false)
}

func (d WilcoxDist) LogPMF(U float64) float64 {
	return Dwilcox(U, float64(d.M), float64(d.N), true)
}

func (d WilcoxDist) CDF(U float64) float64 {
	return Pwilcox(U, float64(d.M), float64(d.N), false)
}

func (d WilcoxDist) LogCDF(U float64) float64 {
	return Pwilcox(U, float64(d.M), float64(d.N), true)
}

func (d WilcoxDist) InvCDF(y float64) float64 {
	return Qwilcox(y, float64(d.M), float64(d.N))
}

func (d WilcoxDist) Step() float64 {
	return 1
}

func (d WilcoxDist) Bounds() (float64, float64) {
	return 0, float64(d.M * d.N)
}

func (d WilcoxDist) Mean() float64 {
	return float64(d.M*d.N) / 2
}

func (d WilcoxDist) Variance() float64 {
	return float64(d.M*d.N*(d.M+d.N+1)) / 12
}
