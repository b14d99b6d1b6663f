// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import "math"

// The functions below evaluate the corresponding math package function
// and round the result to the working type W.

func Abs[W Float](x W) W   { return W(math.Abs(float64(x))) }
func Atan[W Float](x W) W  { return W(math.Atan(float64(x))) }
func Erfc[W Float](x W) W  { return W(math.Erfc(float64(x))) }
func Exp[W Float](x W) W   { return W(math.Exp(float64(x))) }
func Expm1[W Float](x W) W { return W(math.Expm1(float64(x))) }
func Floor[W Float](x W) W { return W(math.Floor(float64(x))) }
func Log[W Float](x W) W   { return W(math.Log(float64(x))) }
func Log1p[W Float](x W) W { return W(math.Log1p(float64(x))) }
func Sqrt[W Float](x W) W  { return W(math.Sqrt(float64(x))) }
func Tan[W Float](x W) W   { return W(math.Tan(float64(x))) }

func Pow[W Float](x, y W) W { return W(math.Pow(float64(x), float64(y))) }

// IsNaN reports whether x is a NaN.
func IsNaN[W Float](x W) bool {
	return x != x
}

// IsInf reports whether x is an infinity, according to sign. If
// sign > 0, IsInf reports whether x is positive infinity. If sign < 0,
// IsInf reports whether x is negative infinity. If sign == 0, IsInf
// reports whether x is either infinity.
func IsInf[W Float](x W, sign int) bool {
	return math.IsInf(float64(x), sign)
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite[W Float](x W) bool {
	return !IsNaN(x) && !IsInf(x, 0)
}

// IsInt reports whether x is a finite integral value.
func IsInt[W Float](x W) bool {
	return IsFinite(x) && Floor(x) == x
}
