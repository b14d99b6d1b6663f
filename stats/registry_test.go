// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-distfn/num"
)

func TestLookup(t *testing.T) {
	f, err := Lookup("gamma")
	require.NoError(t, err)
	assert.Equal(t, "gamma", f.Name)
	assert.Equal(t, []string{"shape", "scale"}, f.Params)
	assert.False(t, f.Discrete)

	f, err = Lookup("pois")
	require.NoError(t, err)
	assert.True(t, f.Discrete)

	_, err = Lookup("zipf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFamily))
	assert.Contains(t, err.Error(), `"zipf"`)
}

func TestFamilyEval(t *testing.T) {
	f, err := Lookup("gamma")
	require.NoError(t, err)

	v, err := f.Eval(PDF, 2, []float64{2, 3}, false, num.Float64)
	require.NoError(t, err)
	assert.Equal(t, Dgamma(2.0, 2, 3, false), v)

	v, err = f.Eval(CDF, 2, []float64{2, 3}, true, num.Float64)
	require.NoError(t, err)
	assert.Equal(t, Pgamma(2.0, 2, 3, true), v)

	// logForm does not apply to quantiles.
	v, err = f.Eval(Quantile, 0.5, []float64{2, 3}, true, num.Float64)
	require.NoError(t, err)
	assert.Equal(t, Qgamma(0.5, 2, 3), v)

	v, err = f.Eval(PDF, 2, []float64{2, 3}, false, num.Float32)
	require.NoError(t, err)
	assert.Equal(t, float64(Dgamma[float32](2, 2, 3, false)), v)

	_, err = f.Eval(PDF, 2, []float64{2}, false, num.Float64)
	assert.True(t, errors.Is(err, ErrParamCount))

	_, err = f.Eval(Kind(7), 2, []float64{2, 3}, false, num.Float64)
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{PDF, CDF, Quantile} {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("hazard")
	assert.True(t, errors.Is(err, ErrUnknownKind))
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

type celsius float32

func TestEvalAs(t *testing.T) {
	f, err := Lookup("gamma")
	require.NoError(t, err)

	// float32 arguments and parameters evaluate in float32.
	v, err := EvalAs(f, PDF, float32(2), []float32{2, 3}, false)
	require.NoError(t, err)
	assert.Equal(t, float64(Dgamma[float32](2, 2, 3, false)), v)

	v, err = EvalAs(f, CDF, celsius(2), []float32{2, 3}, false)
	require.NoError(t, err)
	assert.Equal(t, float64(Pgamma[float32](2, 2, 3, false)), v)

	// Anything wider, or an integer, promotes to float64.
	v, err = EvalAs(f, PDF, float32(2), []float64{2, 3}, false)
	require.NoError(t, err)
	assert.Equal(t, Dgamma(2.0, 2, 3, false), v)

	v, err = EvalAs(f, PDF, 2, []int{2, 3}, true)
	require.NoError(t, err)
	assert.Equal(t, Dgamma(2.0, 2, 3, true), v)

	_, err = EvalAs(f, PDF, 2, []int{2}, false)
	assert.True(t, errors.Is(err, ErrParamCount))
}
