// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "github.com/aclements/go-distfn/num"

// Natural logarithms of constants used by the density formulas.
const (
	ln2       = 0.693147180559945309417232121458176568
	lnSqrt2Pi = 0.918938533204672741780329736405617639
)

// zeroProb returns a probability or density of 0, or its log if
// logForm.
func zeroProb[W num.Float](logForm bool) W {
	if logForm {
		return num.Inf[W](-1)
	}
	return 0
}

// oneProb returns a probability of 1, or its log if logForm.
func oneProb[W num.Float](logForm bool) W {
	if logForm {
		return 0
	}
	return 1
}

// logIf returns ln(v) if logForm and v otherwise. It is used to
// express a value computed in the natural domain, including the
// limiting values 0 and +Inf, in the requested form.
func logIf[W num.Float](v W, logForm bool) W {
	if logForm {
		return num.Log(v)
	}
	return v
}

// expUnless returns lv if logForm and exp(lv) otherwise. It is used
// by formulas that are computed in the log domain.
func expUnless[W num.Float](lv W, logForm bool) W {
	if logForm {
		return lv
	}
	return num.Exp(lv)
}

// edge classifies a quantile argument against the edges of [0, 1].
type edge int

const (
	edgeInterior edge = iota
	edgeInvalid       // NaN or outside [0, 1]
	edgeZero          // p == 0
	edgeOne           // p == 1
)

func classifyP[W num.Float](p W) edge {
	switch {
	case num.IsNaN(p) || p < 0 || p > 1:
		return edgeInvalid
	case p == 0:
		return edgeZero
	case p == 1:
		return edgeOne
	}
	return edgeInterior
}

// quantileEdge handles the quantile arguments that never reach a
// closed form: NaN or out of range p yields NaN, and p == 0 or
// p == 1 yields the lower or upper bound of the support. If p is in
// (0, 1), quantileEdge returns ok == false.
func quantileEdge[W num.Float](p, lo, hi W) (q W, ok bool) {
	switch classifyP(p) {
	case edgeInvalid:
		return num.NaN[W](), true
	case edgeZero:
		return lo, true
	case edgeOne:
		return hi, true
	}
	return 0, false
}

// belowEpsilon reports whether x is small enough that the cdf of a
// distribution supported on [0, ∞) is taken to be 0.
func belowEpsilon[W num.Float](x W) bool {
	return x < num.Epsilon[W]()
}
