// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/aclements/go-distfn/grid"
)

func TestGridFormsMatchScalar(t *testing.T) {
	// Integer elements promote to float64.
	xs := grid.FromRows([][]int{{0, 1, 2, 3}, {4, 5, 6, 7}, {8, 9, 10, 11}})
	got := DgammaGrid(xs, 2.0, 3.0, false)
	require.Equal(t, xs.Shape(), got.Shape())
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			x := float64(xs.Cell(r, c))
			assert.Equal(t, Dgamma(x, 2, 3, false), got.Cell(r, c), "(%d, %d)", r, c)
		}
	}

	lp := PnormGrid(xs, 5.0, 2.0, true)
	for i := 0; i < xs.Len(); i++ {
		assert.Equal(t, Pnorm(float64(xs.At(i)), 5, 2, true), lp.At(i))
	}

	ps := grid.Slice[float64]{-1, 0, 0.25, 0.5, 1, math.NaN()}
	qs := QbinomGrid(ps, 10.0, 0.3)
	require.Equal(t, grid.Shape{Rows: 6, Cols: 1}, qs.Shape())
	for i, p := range ps {
		want := Qbinom(p, 10, 0.3)
		if math.IsNaN(want) {
			assert.True(t, math.IsNaN(qs.At(i)), "Qbinom(%v)", p)
			continue
		}
		assert.Equal(t, want, qs.At(i), "Qbinom(%v)", p)
	}
}

func TestGridFormsFloat32(t *testing.T) {
	xs := grid.Slice[float32]{-1, 0, 0.5, 1, 2}
	got := DnormGrid(xs, float32(0), float32(1), false)
	require.Equal(t, len(xs), got.Len())
	for i, x := range xs {
		assert.Equal(t, Dnorm(x, 0, 1, false), got.At(i))
	}

	// An empty container produces an empty result of the same
	// shape.
	empty := PexpGrid(grid.Slice[float32]{}, float32(2), false)
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, grid.Shape{Rows: 0, Cols: 1}, empty.Shape())
}

func TestGridColMajorShape(t *testing.T) {
	src := grid.New[float64](grid.Shape{Rows: 2, Cols: 3, ColMajor: true})
	for i := 0; i < src.Len(); i++ {
		src.Set(i, float64(i)/4)
	}
	got := PunifGrid(src, 0.0, 2.0, false)
	assert.Equal(t, src.Shape(), got.Shape())
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			assert.Equal(t, Punif(src.Cell(r, c), 0, 2, false), got.Cell(r, c))
		}
	}
}

func TestGridDense(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{0.1, 0.5, 0.9, 0.99})
	out := grid.MapDense(m, NormalDist{Mu: 0, Sigma: 1}.InvCDF)
	r, c := out.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.Equal(t, Qnorm(m.At(i, j), 0, 1), out.At(i, j))
		}
	}

	g := QlogisGrid(grid.Dense{M: m}, 0.0, 1.0)
	assert.Equal(t, grid.Shape{Rows: 2, Cols: 2}, g.Shape())
	assert.Equal(t, Qlogis(0.9, 0, 1), g.Cell(1, 0))
}

func TestEachMethods(t *testing.T) {
	for _, d := range []Dist{
		BetaDist{2, 3}, CauchyDist{0, 1}, ChiSquaredDist{4}, ExpDist{2},
		FDist{3, 8}, GammaDist{1.5, 2}, InvGammaDist{3, 2},
		LaplaceDist{1, 1}, LogisticDist{0, 2}, LogNormalDist{0, 0.5},
		NormalDist{0, 1}, TDist{3}, UniformDist{0, 4}, WeibullDist{2, 1},
	} {
		testEach(t, fmt.Sprintf("%T%+v", d, d), d)
	}
}

var (
	_ LogDist = BetaDist{}
	_ LogDist = CauchyDist{}
	_ LogDist = ChiSquaredDist{}
	_ LogDist = ExpDist{}
	_ LogDist = FDist{}
	_ LogDist = GammaDist{}
	_ LogDist = InvGammaDist{}
	_ LogDist = LaplaceDist{}
	_ LogDist = LogisticDist{}
	_ LogDist = LogNormalDist{}
	_ LogDist = NormalDist{}
	_ LogDist = TDist{}
	_ LogDist = UniformDist{}
	_ LogDist = WeibullDist{}

	_ DiscreteDist = BernoulliDist{}
	_ DiscreteDist = BinomialDist{}
	_ DiscreteDist = PoissonDist{}
	_ DiscreteDist = WilcoxDist{}
)
