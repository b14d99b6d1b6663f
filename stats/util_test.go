// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func aeq(expect, got float64) bool {
	if expect < 0 && got < 0 {
		expect, got = -expect, -got
	}
	return expect*0.99999 <= got && got*0.99999 <= expect ||
		math.Abs(expect-got) < 0.00001
}

// feq reports whether a and b are equal to within tight relative and
// absolute tolerances, treating NaNs and same-signed infinities as
// equal.
func feq(a, b float64) bool {
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return math.IsNaN(a) && math.IsNaN(b)
	case math.IsInf(a, 0) || math.IsInf(b, 0):
		return a == b
	}
	return scalar.EqualWithinAbsOrRel(a, b, 1e-9, 1e-9)
}

// testFunc checks that f(x) = vals[x] for each x in vals. name is
// used in error messages. If name contains "%v", it is formatted with
// x; otherwise the message is name(x).
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if math.IsNaN(want) && math.IsNaN(got) || want == got || aeq(want, got) {
			continue
		}
		var label string
		if strings.Contains(name, "%v") {
			label = fmt.Sprintf(name, x)
		} else {
			label = fmt.Sprintf("%s(%v)", name, x)
		}
		t.Errorf("want %s=%v, got %v", label, want, got)
	}
}

// testDiscreteCDF checks that dist's CDF is the running sum of its PMF
// over its bounds, both at and between defined points.
func testDiscreteCDF(t *testing.T, name string, dist DiscreteDist) {
	t.Helper()
	l, h := dist.Bounds()
	s := dist.Step()
	want := map[float64]float64{l - 0.1: 0}
	sum := 0.0
	for x := l; x <= h; x += s {
		sum += dist.PMF(x)
		want[x] = sum
		want[x+s/2] = sum
	}
	testFunc(t, name, dist.CDF, want)
}

// testInvCDF checks that dist.InvCDF inverts dist.CDF across the body
// of the distribution, and that InvCDF handles the edges of [0, 1].
func testInvCDF(t *testing.T, name string, dist Dist) {
	t.Helper()
	for _, p := range []float64{0.01, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99} {
		x := dist.InvCDF(p)
		if got := dist.CDF(x); !scalar.EqualWithinAbsOrRel(got, p, 1e-7, 1e-7) {
			t.Errorf("%s: CDF(InvCDF(%v)) = CDF(%v) = %v", name, p, x, got)
		}
	}
	for _, p := range []float64{-0.5, 1.5, math.NaN()} {
		if got := dist.InvCDF(p); !math.IsNaN(got) {
			t.Errorf("%s: InvCDF(%v) = %v, want NaN", name, p, got)
		}
	}
	if lo, hi := dist.InvCDF(0), dist.InvCDF(1); !(lo <= dist.InvCDF(0.5) && dist.InvCDF(0.5) <= hi) {
		t.Errorf("%s: InvCDF(0)=%v, InvCDF(1)=%v do not bracket the median", name, lo, hi)
	}
}

// testEach checks that the *Each methods of dist agree with the
// scalar methods.
func testEach(t *testing.T, name string, dist Dist) {
	t.Helper()
	xs := []float64{-2, -0.5, 0, 0.25, 0.5, 1, 3, 10}
	check := func(method string, got []float64, f func(float64) float64) {
		if len(got) != len(xs) {
			t.Errorf("%s.%s: got %d results, want %d", name, method, len(got), len(xs))
			return
		}
		for i, x := range xs {
			if want := f(x); !feq(want, got[i]) {
				t.Errorf("%s.%s[%d]: want %v, got %v", name, method, i, want, got[i])
			}
		}
	}
	check("PDFEach", dist.PDFEach(xs), dist.PDF)
	check("CDFEach", dist.CDFEach(xs), dist.CDF)
	ps := []float64{-1, 0, 0.1, 0.25, 0.5, 0.75, 1, 2}
	got := dist.InvCDFEach(ps)
	for i, p := range ps {
		if want := dist.InvCDF(p); !feq(want, got[i]) {
			t.Errorf("%s.InvCDFEach[%d]: want %v, got %v", name, i, want, got[i])
		}
	}
}
