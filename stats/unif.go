// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"github.com/aclements/go-distfn/grid"
	"github.com/aclements/go-distfn/num"
)

func unifValid[W num.Float](a, b W) bool {
	return num.IsFinite(a) && num.IsFinite(b) && a < b
}

// Dunif returns the density at x of the uniform distribution on
// [a, b], or its natural log if logForm.
func Dunif[W num.Float](x, a, b W, logForm bool) W {
	if !unifValid(a, b) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	if x < a || x > b {
		return zeroProb[W](logForm)
	}
	return logIf(1/(b-a), logForm)
}

// Punif returns the cumulative probability at x of the uniform
// distribution on [a, b], or its natural log if logForm.
func Punif[W num.Float](x, a, b W, logForm bool) W {
	if !unifValid(a, b) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	switch {
	case x <= a:
		return zeroProb[W](logForm)
	case x >= b:
		return oneProb[W](logForm)
	}
	return logIf((x-a)/(b-a), logForm)
}

// Qunif returns the quantile at p of the uniform distribution on
// [a, b].
func Qunif[W num.Float](p, a, b W) W {
	if !unifValid(a, b) {
		return num.NaN[W]()
	}
	if q, ok := quantileEdge(p, a, b); ok {
		return q
	}
	return a + p*(b-a)
}

// DunifGrid returns Dunif of every element of xs.
func DunifGrid[X num.Real, W num.Float](xs grid.Reader[X], a, b W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Dunif(x, a, b, logForm) })
}

// PunifGrid returns Punif of every element of xs.
func PunifGrid[X num.Real, W num.Float](xs grid.Reader[X], a, b W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Punif(x, a, b, logForm) })
}

// QunifGrid returns Qunif of every element of ps.
func QunifGrid[X num.Real, W num.Float](ps grid.Reader[X], a, b W) *grid.Grid[W] {
	return grid.Map(ps, func(p W) W { return Qunif(p, a, b) })
}

// UniformDist is a continuous uniform distribution on [A, B].
type UniformDist struct {
	A, B float64
}

func (d UniformDist) PDF(x float64) float64    { return Dunif(x, d.A, d.B, false) }
func (d UniformDist) LogPDF(x float64) float64 { return Dunif(x, d.A, d.B, true) }
func (d UniformDist) CDF(x float64) float64    { return Punif(x, d.A, d.B, false) }
func (d UniformDist) LogCDF(x float64) float64 { return Punif(x, d.A, d.B, true) }
func (d UniformDist) InvCDF(y float64) float64 { return Qunif(y, d.A, d.B) }

func (d UniformDist) PDFEach(xs []float64) []float64 {
	return DunifGrid(column(xs), d.A, d.B, false).RawData()
}

func (d UniformDist) CDFEach(xs []float64) []float64 {
	return PunifGrid(column(xs), d.A, d.B, false).RawData()
}

func (d UniformDist) InvCDFEach(ys []float64) []float64 {
	return QunifGrid(column(ys), d.A, d.B).RawData()
}

func (d UniformDist) Bounds() (float64, float64) {
	return d.A, d.B
}
