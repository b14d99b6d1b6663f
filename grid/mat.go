// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "gonum.org/v1/gonum/mat"

// Dense adapts a gonum *mat.Dense to a Reader and Writer. Elements are
// visited in row-major order; the matrix's stride is honored, so
// slices of a larger matrix are supported.
type Dense struct {
	M *mat.Dense
}

func (d Dense) Len() int {
	r, c := d.M.Dims()
	return r * c
}

func (d Dense) Shape() Shape {
	r, c := d.M.Dims()
	return Shape{Rows: r, Cols: c}
}

func (d Dense) At(i int) float64 {
	raw := d.M.RawMatrix()
	return raw.Data[i/raw.Cols*raw.Stride+i%raw.Cols]
}

func (d Dense) Set(i int, v float64) {
	raw := d.M.RawMatrix()
	raw.Data[i/raw.Cols*raw.Stride+i%raw.Cols] = v
}

// Vec adapts a gonum *mat.VecDense to a Reader and Writer.
type Vec struct {
	V *mat.VecDense
}

func (v Vec) Len() int             { return v.V.Len() }
func (v Vec) Shape() Shape         { return Shape{Rows: v.V.Len(), Cols: 1} }
func (v Vec) At(i int) float64     { return v.V.AtVec(i) }
func (v Vec) Set(i int, x float64) { v.V.SetVec(i, x) }

// MapDense returns a new matrix with the dimensions of m where each
// element is f applied to the corresponding element of m.
func MapDense(m mat.Matrix, f func(float64) float64) *mat.Dense {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		// gonum does not allow empty matrices.
		return &mat.Dense{}
	}
	out := mat.NewDense(r, c, nil)
	if d, ok := m.(*mat.Dense); ok {
		MapInto[float64, float64](Dense{out}, Dense{d}, f)
		return out
	}
	out.Apply(func(i, j int, v float64) float64 { return f(v) }, m)
	return out
}

// MapVec returns a new vector where each element is f applied to the
// corresponding element of v.
func MapVec(v *mat.VecDense, f func(float64) float64) *mat.VecDense {
	if v.Len() == 0 {
		return &mat.VecDense{}
	}
	out := mat.NewVecDense(v.Len(), nil)
	MapInto[float64, float64](Vec{out}, Vec{v}, f)
	return out
}
