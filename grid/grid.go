// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid applies scalar functions element-wise over numeric
// containers.
//
// A container is seen through a flat view: an element count, a shape
// descriptor, and indexed reads or writes over a buffer of Len()
// elements. The order of that buffer (row- or column-major) does not
// matter for element-wise evaluation; the shape descriptor is carried
// over to the output unchanged.
package grid // import "github.com/aclements/go-distfn/grid"

import (
	"fmt"

	"github.com/aclements/go-distfn/num"
)

// Shape describes the layout of a two-dimensional container. A vector
// of n elements has shape {n, 1}.
type Shape struct {
	Rows, Cols int

	// ColMajor indicates that the flat buffer stores columns
	// contiguously.
	ColMajor bool
}

// Len returns the number of elements in a container of shape s.
func (s Shape) Len() int {
	return s.Rows * s.Cols
}

// index returns the flat index of element (r, c).
func (s Shape) index(r, c int) int {
	if r < 0 || r >= s.Rows || c < 0 || c >= s.Cols {
		panic(fmt.Sprintf("grid: index (%d, %d) out of range for %dx%d", r, c, s.Rows, s.Cols))
	}
	if s.ColMajor {
		return c*s.Rows + r
	}
	return r*s.Cols + c
}

func (s Shape) String() string {
	order := "row-major"
	if s.ColMajor {
		order = "col-major"
	}
	return fmt.Sprintf("%dx%d %s", s.Rows, s.Cols, order)
}

// A Reader is a read-only flat view of a container.
type Reader[T num.Real] interface {
	// Len returns the number of elements in the container.
	Len() int

	// Shape returns the container's shape descriptor.
	Shape() Shape

	// At returns the i'th element of the flat buffer.
	At(i int) T
}

// A Writer is a writable flat view of a container.
type Writer[T num.Real] interface {
	Len() int
	Shape() Shape

	// Set sets the i'th element of the flat buffer to v.
	Set(i int, v T)
}

// Grid is a dense two-dimensional container that owns its buffer.
type Grid[T num.Real] struct {
	shape Shape
	data  []T
}

// New returns a zero-filled Grid of the given shape.
func New[T num.Real](shape Shape) *Grid[T] {
	if shape.Rows < 0 || shape.Cols < 0 {
		panic(fmt.Sprintf("grid: negative dimension %dx%d", shape.Rows, shape.Cols))
	}
	return &Grid[T]{shape, make([]T, shape.Len())}
}

// FromSlice returns a len(xs)x1 Grid backed by xs.
func FromSlice[T num.Real](xs []T) *Grid[T] {
	return &Grid[T]{Shape{Rows: len(xs), Cols: 1}, xs}
}

// FromRows returns a row-major Grid holding a copy of rows. All rows
// must have the same length.
func FromRows[T num.Real](rows [][]T) *Grid[T] {
	if len(rows) == 0 {
		return New[T](Shape{})
	}
	g := New[T](Shape{Rows: len(rows), Cols: len(rows[0])})
	for i, row := range rows {
		if len(row) != g.shape.Cols {
			panic(fmt.Sprintf("grid: row %d has %d columns, want %d", i, len(row), g.shape.Cols))
		}
		copy(g.data[i*g.shape.Cols:], row)
	}
	return g
}

func (g *Grid[T]) Len() int       { return len(g.data) }
func (g *Grid[T]) Shape() Shape   { return g.shape }
func (g *Grid[T]) At(i int) T     { return g.data[i] }
func (g *Grid[T]) Set(i int, v T) { g.data[i] = v }

// Dims returns the number of rows and columns of g.
func (g *Grid[T]) Dims() (r, c int) {
	return g.shape.Rows, g.shape.Cols
}

// Cell returns the element at row r, column c.
func (g *Grid[T]) Cell(r, c int) T {
	return g.data[g.shape.index(r, c)]
}

// SetCell sets the element at row r, column c.
func (g *Grid[T]) SetCell(r, c int, v T) {
	g.data[g.shape.index(r, c)] = v
}

// RawData returns the flat buffer of g. Modifying it modifies g.
func (g *Grid[T]) RawData() []T {
	return g.data
}

// Slice is a Reader and Writer over a plain slice, shaped as a column
// vector.
type Slice[T num.Real] []T

func (s Slice[T]) Len() int       { return len(s) }
func (s Slice[T]) Shape() Shape   { return Shape{Rows: len(s), Cols: 1} }
func (s Slice[T]) At(i int) T     { return s[i] }
func (s Slice[T]) Set(i int, v T) { s[i] = v }
