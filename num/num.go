// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num defines the numeric types distribution functions are
// evaluated in and the rules for promoting arguments to them.
//
// Every evaluation has exactly one working type, a floating-point type
// W. All arithmetic, comparisons against 0, 1 and machine epsilon, and
// the NaN and infinity sentinels used to signal results are expressed
// in W.
package num // import "github.com/aclements/go-distfn/num"

import (
	"math"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Real is any integer or floating-point type. Container elements and
// promoted arguments may be of any Real type.
type Real interface {
	constraints.Integer | constraints.Float
}

// Float is a floating-point working type.
type Float interface {
	constraints.Float
}

// Promote converts v to the working type W.
func Promote[W Float, T Real](v T) W {
	return W(v)
}

// Precision identifies a working type.
type Precision int

const (
	// Float64 is the default working precision. Integer arguments
	// promote to Float64.
	Float64 Precision = iota
	Float32
)

func (p Precision) String() string {
	switch p {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	}
	return "Precision(" + strconv.Itoa(int(p)) + ")"
}

// PrecisionOf returns the working precision T promotes to. Types whose
// underlying type is float32 stay single precision; everything else,
// including every integer type, promotes to Float64.
func PrecisionOf[T Real]() Precision {
	one := T(1)
	if one/2 != 0 && unsafe.Sizeof(one) == 4 {
		return Float32
	}
	return Float64
}

// Resolve returns the common working precision of a call whose
// arguments have precisions ps. The result is the least precise type
// that holds every argument without narrowing, which is Float32 only
// if every argument is Float32. With no arguments, Resolve returns
// Float64.
func Resolve(ps ...Precision) Precision {
	if len(ps) == 0 {
		return Float64
	}
	for _, p := range ps {
		if p != Float32 {
			return Float64
		}
	}
	return Float32
}

// NaN returns the quiet NaN of W.
func NaN[W Float]() W {
	return W(math.NaN())
}

// Inf returns positive infinity in W if sign >= 0, negative infinity
// if sign < 0.
func Inf[W Float](sign int) W {
	return W(math.Inf(sign))
}

// Epsilon returns the machine epsilon of W: the difference between 1
// and the next representable value.
func Epsilon[W Float]() W {
	var z W
	if unsafe.Sizeof(z) == 4 {
		return W(math.Nextafter32(1, 2) - 1)
	}
	return W(math.Nextafter(1, 2) - 1)
}
