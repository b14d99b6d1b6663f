// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "github.com/aclements/go-distfn/grid"

// A Dist is a continuous statistical distribution.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64

	// PDFEach returns PDF(xs[i]) for each i.
	PDFEach(xs []float64) []float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x. This is the integral
	// of the PDF from -inf to x.
	CDF(x float64) float64

	// CDFEach returns CDF(xs[i]) for each i.
	CDFEach(xs []float64) []float64

	// InvCDF returns the inverse of the CDF for y. That is,
	// InvCDF(CDF(x)) = x. If y is not in [0, 1], InvCDF
	// returns NaN.
	InvCDF(y float64) float64

	// InvCDFEach returns InvCDF(ys[i]) for each i.
	InvCDFEach(ys []float64) []float64

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)
}

// A LogDist is a Dist that can evaluate its PDF and CDF in log space.
//
// For distributions whose density under- or overflows float64, LogPDF
// is computed directly rather than as the log of PDF.
type LogDist interface {
	Dist

	// LogPDF returns the natural log of PDF(x). Where PDF(x) is
	// 0, this is -Inf.
	LogPDF(x float64) float64

	// LogCDF returns the natural log of CDF(x).
	LogCDF(x float64) float64
}

// A DiscreteDist is a discrete statistical distribution.
//
// Most discrete distributions are defined only at integral values of
// the random variable. However, some are defined at other intervals,
// so this interface takes a float64 value for the random variable.
type DiscreteDist interface {
	// PMF returns the value of the probability mass function
	// Pr[X = x]. This is 0 for any x that is not a defined point
	// of the distribution.
	PMF(x float64) float64

	// CDF returns the cumulative probability Pr[X <= x].
	CDF(x float64) float64

	// InvCDF returns the smallest defined point x such that
	// CDF(x) >= y. If y is not in [0, 1], InvCDF returns NaN.
	InvCDF(y float64) float64

	// Step returns s, where the distribution is defined for sℕ.
	Step() float64

	// Bounds returns reasonable bounds for this distribution's
	// PMF and CDF. Both bounds must be integer multiples of
	// Step().
	Bounds() (float64, float64)
}

// column returns a column-vector view of xs for the container forms.
func column(xs []float64) grid.Reader[float64] {
	return grid.Slice[float64](xs)
}

// tailBounds returns the central 99.8% of a distribution with quantile
// function invCDF.
func tailBounds(invCDF func(float64) float64) (float64, float64) {
	return invCDF(0.001), invCDF(0.999)
}
