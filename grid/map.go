// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"fmt"

	"github.com/aclements/go-distfn/num"
)

// Map returns a new Grid with src's shape where element i is
// f(src.At(i)), with src's elements promoted to the working type W.
//
// Each element is evaluated independently of every other.
func Map[X num.Real, W num.Float](src Reader[X], f func(W) W) *Grid[W] {
	out := New[W](src.Shape())
	if out.Len() != src.Len() {
		panic(fmt.Sprintf("grid: shape %v does not hold %d elements", src.Shape(), src.Len()))
	}
	MapInto[X, W](out, src, f)
	return out
}

// MapInto sets dst[i] = f(src[i]) for every element of src. dst must
// already have exactly as many elements as src.
func MapInto[X num.Real, W num.Float](dst Writer[W], src Reader[X], f func(W) W) {
	n := src.Len()
	if dst.Len() != n {
		panic(fmt.Sprintf("grid: output has %d elements, input has %d", dst.Len(), n))
	}
	for i := 0; i < n; i++ {
		dst.Set(i, f(num.Promote[W](src.At(i))))
	}
}

// MapSlice returns a new slice where element i is f(xs[i]).
func MapSlice[X num.Real, W num.Float](xs []X, f func(W) W) []W {
	res := make([]W, len(xs))
	MapInto[X, W](Slice[W](res), Slice[X](xs), f)
	return res
}
