// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func square(x float64) float64 { return x * x }

func TestShape(t *testing.T) {
	s := Shape{Rows: 3, Cols: 4}
	assert.Equal(t, 12, s.Len())
	assert.Equal(t, 7, s.index(1, 3))
	assert.Equal(t, "3x4 row-major", s.String())

	s.ColMajor = true
	assert.Equal(t, 10, s.index(1, 3))
	assert.Equal(t, "3x4 col-major", s.String())

	assert.Panics(t, func() { s.index(3, 0) })
	assert.Panics(t, func() { s.index(0, -1) })
}

func TestFromRows(t *testing.T) {
	g := FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	r, c := g.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, g.RawData())
	assert.Equal(t, 6, g.Cell(1, 2))

	g.SetCell(0, 1, 9)
	assert.Equal(t, 9, g.At(1))

	assert.Equal(t, 0, FromRows[float64](nil).Len())
	assert.Panics(t, func() { FromRows([][]int{{1, 2}, {3}}) })
	assert.Panics(t, func() { New[float64](Shape{Rows: -1, Cols: 2}) })
}

func TestMapMatrix(t *testing.T) {
	src := FromRows([][]int32{{0, 1, 2, 3}, {4, 5, 6, 7}, {8, 9, 10, 11}})
	got := Map(src, func(x float64) float64 { return x / 2 })
	require.Equal(t, src.Shape(), got.Shape())
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			assert.Equal(t, float64(src.Cell(r, c))/2, got.Cell(r, c))
		}
	}
}

func TestMapVector(t *testing.T) {
	got := Map(Slice[float32]{1, 2, 3}, func(x float32) float32 { return -x })
	assert.Equal(t, Shape{Rows: 3, Cols: 1}, got.Shape())
	assert.Equal(t, []float32{-1, -2, -3}, got.RawData())

	empty := Map(Slice[int]{}, func(x float64) float64 { return x })
	assert.Equal(t, 0, empty.Len())
}

func TestMapPreservesColMajor(t *testing.T) {
	src := New[float64](Shape{Rows: 2, Cols: 3, ColMajor: true})
	for i := range src.RawData() {
		src.Set(i, float64(i))
	}
	got := Map(src, square)
	assert.Equal(t, src.Shape(), got.Shape())
	assert.Equal(t, []float64{0, 1, 4, 9, 16, 25}, got.RawData())
	assert.Equal(t, 4.0, got.Cell(0, 1))
}

func TestMapInto(t *testing.T) {
	dst := make(Slice[float64], 3)
	MapInto(dst, Slice[int]{1, 2, 3}, square)
	assert.Equal(t, Slice[float64]{1, 4, 9}, dst)

	assert.Panics(t, func() {
		MapInto(make(Slice[float64], 2), Slice[int]{1, 2, 3}, square)
	})
}

func TestMapSlice(t *testing.T) {
	got := MapSlice([]uint8{1, 2, 3}, func(x float32) float32 { return x + 0.5 })
	assert.Equal(t, []float32{1.5, 2.5, 3.5}, got)
	assert.Equal(t, []float64{}, MapSlice([]float64{}, square))
}

func TestMapDense(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	got := MapDense(m, math.Sqrt)
	assert.True(t, mat.EqualApprox(got, mat.NewDense(2, 3, []float64{
		1, math.Sqrt2, math.Sqrt(3), 2, math.Sqrt(5), math.Sqrt(6),
	}), 1e-15))

	// A view into a larger matrix has a stride wider than its
	// column count.
	view := m.Slice(0, 2, 1, 3).(*mat.Dense)
	got = MapDense(view, square)
	assert.True(t, mat.Equal(got, mat.NewDense(2, 2, []float64{4, 9, 25, 36})))

	d := Dense{view}
	assert.Equal(t, 4, d.Len())
	assert.Equal(t, Shape{Rows: 2, Cols: 2}, d.Shape())
	assert.Equal(t, 5.0, d.At(2))
	d.Set(3, -1)
	assert.Equal(t, -1.0, m.At(1, 2))

	// Non-Dense matrices go through Apply.
	got = MapDense(m.T(), square)
	r, c := got.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 16.0, got.At(0, 1))
}

func TestMapVec(t *testing.T) {
	v := mat.NewVecDense(3, []float64{1, 2, 3})
	got := MapVec(v, square)
	assert.True(t, mat.Equal(got, mat.NewVecDense(3, []float64{1, 4, 9})))

	g := Map(Vec{v}, func(x float64) float64 { return x + 1 })
	assert.Equal(t, Shape{Rows: 3, Cols: 1}, g.Shape())
	assert.Equal(t, []float64{2, 3, 4}, g.RawData())
}
