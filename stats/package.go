// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats evaluates the density, cumulative distribution and
// quantile functions of common probability distributions.
//
// Every family Foo is available in three forms:
//
//   - scalar functions Dfoo, Pfoo and Qfoo, generic over the
//     floating-point working type, following R's naming;
//   - container forms DfooGrid, PfooGrid and QfooGrid, which apply the
//     scalar function to every element of a grid.Reader;
//   - a FooDist value type implementing Dist or DiscreteDist.
//
// Dfoo and Pfoo take a logForm argument; if it is true, they return
// the natural log of the density or probability. Quantile functions
// always return the natural value.
//
// Nothing in this package panics or returns an error. Invalid
// parameters (for example a non-positive scale) produce NaN from every
// function of the family, for every input, and NaN inputs produce NaN.
// Inputs outside the support produce the well-defined boundary value:
// a density of 0, a probability of 0 or 1, or, for quantiles of p
// outside [0, 1], NaN.
package stats // import "github.com/aclements/go-distfn/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
