// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mathext"
)

func TestBetaDist(t *testing.T) {
	d := BetaDist{Alpha: 2, Beta: 2}
	testFunc(t, fmt.Sprintf("%+v.PDF", d), d.PDF, map[float64]float64{
		-1:   0,
		0:    0,
		0.1:  0.54,
		0.25: 1.125,
		0.5:  1.5,
		0.9:  0.54,
		1:    0,
		2:    0,
	})
	// For a = b = 2, the CDF is 3x²-2x³.
	testFunc(t, fmt.Sprintf("%+v.CDF", d), d.CDF, map[float64]float64{
		-1:   0,
		0:    0,
		0.1:  0.028,
		0.25: 0.15625,
		0.5:  0.5,
		0.9:  0.972,
		1:    1,
		2:    1,
	})
	testInvCDF(t, fmt.Sprintf("%+v", d), d)
	testEach(t, fmt.Sprintf("%+v", d), d)

	d13 := BetaDist{Alpha: 1, Beta: 3}
	testFunc(t, fmt.Sprintf("%+v.PDF", d13), d13.PDF, map[float64]float64{
		0:   3,
		0.1: 2.43,
		0.5: 0.75,
		1:   0,
	})
	testFunc(t, fmt.Sprintf("%+v.CDF", d13), d13.CDF, map[float64]float64{
		0.1: 0.271,
		0.5: 0.875,
	})

	// Densities at the edges of the support.
	assert.True(t, math.IsInf(Dbeta(0.0, 0.5, 2, false), 1))
	assert.True(t, math.IsInf(Dbeta(1.0, 2, 0.5, false), 1))
	assert.Equal(t, 2.0, Dbeta(1.0, 2, 1, false))
	assert.Equal(t, 0.0, Qbeta(0.0, 2, 3))
	assert.Equal(t, 1.0, Qbeta(1.0, 2, 3))
	assert.True(t, math.IsNaN(Dbeta(0.5, math.Inf(1), 1, false)))
}

func TestFDist(t *testing.T) {
	// For d1 = d2 = 2, the PDF is 1/(1+x)² and the CDF is x/(1+x).
	d := FDist{D1: 2, D2: 2}
	testFunc(t, fmt.Sprintf("%+v.PDF", d), d.PDF, map[float64]float64{
		-1:  0,
		0:   1,
		0.5: 0.4444444444444444,
		1:   0.25,
		3:   0.0625,
	})
	testFunc(t, fmt.Sprintf("%+v.CDF", d), d.CDF, map[float64]float64{
		-1:          0,
		0:           0,
		0.5:         1.0 / 3,
		1:           0.5,
		3:           0.75,
		math.Inf(1): 1,
	})
	testFunc(t, fmt.Sprintf("%+v.InvCDF", d), d.InvCDF, map[float64]float64{
		0:    0,
		0.5:  1,
		0.75: 3,
	})
	testInvCDF(t, fmt.Sprintf("%+v", d), d)
	testEach(t, fmt.Sprintf("%+v", d), d)

	d57 := FDist{D1: 5, D2: 7}
	testFunc(t, fmt.Sprintf("%+v.PDF", d57), d57.PDF, map[float64]float64{
		0: 0,
		1: 0.4614764175151056,
	})
	testInvCDF(t, fmt.Sprintf("%+v", d57), d57)

	// The CDF is exactly the regularized incomplete beta function
	// at r/(1+r).
	assert.Equal(t, mathext.RegIncBeta(5, 6, 1.25/2.25), Pf(1.5, 10, 12, false))

	assert.True(t, math.IsInf(Df(0.0, 1, 3, false), 1))
	assert.True(t, math.IsNaN(Df(1.0, 1, math.Inf(1), false)))
}

func TestTDist(t *testing.T) {
	d := TDist{V: 2}
	testFunc(t, fmt.Sprintf("%+v.PDF", d), d.PDF, map[float64]float64{
		-2: 0.06804138174397717,
		0:  0.35355339059327373,
		1:  0.19245008972987523,
		3:  0.027410122234342145,
	})
	// For 2 degrees of freedom, the CDF is ½ + x/(2√(2+x²)).
	testFunc(t, fmt.Sprintf("%+v.CDF", d), d.CDF, map[float64]float64{
		math.Inf(-1): 0,
		-2:           0.09175170953613693,
		0:            0.5,
		1:            0.7886751345948129,
		3:            0.9522670168666454,
		math.Inf(1):  1,
	})
	testFunc(t, fmt.Sprintf("%+v.InvCDF", d), d.InvCDF, map[float64]float64{
		0.1:  -1.8856180831641267,
		0.5:  0,
		0.75: 0.8164965809277261,
		0.95: 2.9199855803537242,
	})
	testInvCDF(t, fmt.Sprintf("%+v", d), d)
	testEach(t, fmt.Sprintf("%+v", d), d)

	d5 := TDist{V: 5}
	testFunc(t, fmt.Sprintf("%+v.PDF", d5), d5.PDF, map[float64]float64{
		0: 0.3796066898224941,
		1: 0.2196797973509804,
		2: 0.0650903103262164,
	})

	// With 1 degree of freedom, t is the standard Cauchy.
	c := CauchyDist{Mu: 0, Sigma: 1}
	for _, x := range []float64{-3, -0.5, 0.5, 3} {
		assert.InDelta(t, c.PDF(x), Dt(x, 1, false), 1e-10, "Dt(%v, 1)", x)
		assert.InDelta(t, c.CDF(x), Pt(x, 1, false), 1e-10, "Pt(%v, 1)", x)
	}
}

func TestTInfiniteDOF(t *testing.T) {
	inf := math.Inf(1)
	for _, x := range []float64{-4, -1, 0, 0.3, 2.5} {
		if got, want := Dt(x, inf, false), Dnorm(x, 0, 1, false); got != want {
			t.Errorf("Dt(%v, Inf) = %v, want Dnorm = %v", x, got, want)
		}
		if got, want := Dt(x, inf, true), Dnorm(x, 0, 1, true); got != want {
			t.Errorf("log Dt(%v, Inf) = %v, want %v", x, got, want)
		}
		if got, want := Pt(x, inf, false), Pnorm(x, 0, 1, false); got != want {
			t.Errorf("Pt(%v, Inf) = %v, want Pnorm = %v", x, got, want)
		}
	}
	for _, p := range []float64{0.01, 0.5, 0.9} {
		if got, want := Qt(p, inf), Qnorm(p, 0, 1); got != want {
			t.Errorf("Qt(%v, Inf) = %v, want Qnorm = %v", p, got, want)
		}
	}
	for _, dof := range []float64{0, -1, math.NaN(), math.Inf(-1)} {
		assert.True(t, math.IsNaN(Dt(0.0, dof, false)), "Dt(0, %v)", dof)
	}
}

func TestTLargeDOF(t *testing.T) {
	// The t-distribution differs from the standard normal by O(1/dof).
	for _, dof := range []float64{1e6, 1e10, 1e20} {
		tol := 30/dof + 1e-13
		for _, x := range []float64{-3, -1, -1e-3, 0, 1e-3, 1, 2.5} {
			if got, want := Dt(x, dof, false), Dnorm(x, 0, 1, false); !scalar.EqualWithinAbsOrRel(got, want, tol, tol) {
				t.Errorf("Dt(%v, %v) = %v, want ≈%v", x, dof, got, want)
			}
			if got, want := Dt(x, dof, true), Dnorm(x, 0, 1, true); !scalar.EqualWithinAbsOrRel(got, want, tol, tol) {
				t.Errorf("log Dt(%v, %v) = %v, want ≈%v", x, dof, got, want)
			}
			if got, want := Pt(x, dof, false), Pnorm(x, 0, 1, false); !scalar.EqualWithinAbs(got, want, tol) {
				t.Errorf("Pt(%v, %v) = %v, want ≈%v", x, dof, got, want)
			}
		}
		for _, p := range []float64{0.001, 0.025, 0.4, 0.5, 0.6, 0.975} {
			if got, want := Qt(p, dof), Qnorm(p, 0, 1); !scalar.EqualWithinAbs(got, want, tol) {
				t.Errorf("Qt(%v, %v) = %v, want ≈%v", p, dof, got, want)
			}
		}
	}
	assert.InDelta(t, 0.3989422804014327, Dt[float32](0, 1e20, false), 1e-6)
	assert.InDelta(t, 0.8413447460685429, Pt[float32](1, 1e20, false), 1e-6)
	assert.InDelta(t, 1.959963984540054, Qt[float32](0.975, 1e20), 1e-5)
}

func TestTModerateDOF(t *testing.T) {
	// Both sides of the switch to the series normalizing constant and
	// to the normal approximation of the cdf agree closely.
	for _, pair := range [][2]float64{{100, 100 + 1e-6}, {4e5, 4e5 + 1}} {
		for _, x := range []float64{-2, -1e-4, 0.5, 3} {
			assert.InDelta(t, Dt(x, pair[0], false), Dt(x, pair[1], false), 1e-8, "Dt(%v) near dof %v", x, pair[0])
			assert.InDelta(t, Pt(x, pair[0], false), Pt(x, pair[1], false), 1e-8, "Pt(%v) near dof %v", x, pair[0])
		}
		for _, p := range []float64{0.01, 0.3, 0.7} {
			assert.InDelta(t, Qt(p, pair[0]), Qt(p, pair[1]), 1e-7, "Qt(%v) near dof %v", p, pair[0])
		}
	}
	// Near the center, the cdf keeps its precision.
	d := Dt(0.0, 1e5, false)
	assert.InDelta(t, 1e-6*d, Pt(1e-6, 1e5, false)-0.5, 1e-15)
}
