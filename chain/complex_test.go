// SPDX-License-Identifier: MIT

package chain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/builder"
	"github.com/katalvlaran/homalg/chain"
	"github.com/katalvlaran/homalg/elimination"
	"github.com/katalvlaran/homalg/matrix"
	"github.com/katalvlaran/homalg/numbers"
	"github.com/katalvlaran/homalg/polynomial"
	"github.com/katalvlaran/homalg/simplicial"
)

type (
	Z = numbers.Int
	Q = numbers.Rational
)

func build(t *testing.T, cons ...builder.Constructor) *simplicial.Complex {
	t.Helper()
	c, err := builder.BuildComplex([]builder.BuilderOption{builder.WithSeed(11), builder.WithDisjointUnion()}, cons...)
	require.NoError(t, err)

	return c
}

func TestFromSimplicial_BoundaryOfBoundaryIsZero(t *testing.T) {
	cases := map[string][]builder.Constructor{
		"point":     {builder.Point()},
		"cycle":     {builder.Cycle(6)},
		"simplex":   {builder.Simplex(4)},
		"sphere":    {builder.Sphere(3)},
		"disk":      {builder.Disk(5)},
		"torus":     {builder.Torus()},
		"rp2":       {builder.ProjectivePlane()},
		"klein":     {builder.KleinBottle()},
		"flag":      {builder.RandomFlag(10, 0.5)},
		"composite": {builder.Torus(), builder.Sphere(2), builder.Cycle(3)},
	}
	for name, cons := range cases {
		t.Run(name, func(t *testing.T) {
			sc := build(t, cons...)
			zc, err := chain.FromSimplicial[Z](sc)
			require.NoError(t, err)
			require.NoError(t, zc.Validate())

			dense, err := chain.FromSimplicial[numbers.Z2](sc, chain.WithStorage(matrix.Dense))
			require.NoError(t, err)
			require.Equal(t, matrix.Dense, dense.Storage())
			require.NoError(t, dense.Validate())
		})
	}
}

func TestFromSimplicial_TriangleMatrices(t *testing.T) {
	cc, err := chain.FromSimplicial[Z](build(t, builder.Simplex(2)))
	require.NoError(t, err)
	require.Equal(t, 2, cc.Dim())
	require.Equal(t, 3, cc.Rank(1))
	require.Equal(t, 0, cc.Rank(3))

	d1, err := matrix.FromInts[Z]([][]int64{{-1, -1, 0}, {1, 0, -1}, {0, 1, 1}})
	require.NoError(t, err)
	require.True(t, cc.Boundary(1).Equal(d1), cc.Boundary(1).String())

	d2, err := matrix.FromInts[Z]([][]int64{{1}, {-1}, {1}})
	require.NoError(t, err)
	require.True(t, cc.Boundary(2).Equal(d2))

	require.Equal(t, 0, cc.Boundary(0).Rows())
	require.Equal(t, 3, cc.Boundary(0).Cols())
	require.Equal(t, 1, cc.Boundary(3).Rows())
	require.Equal(t, 0, cc.Boundary(3).Cols())
	require.Equal(t, 0, cc.Boundary(-1).Cols())
}

func TestFromFiltration_GradedEntries(t *testing.T) {
	f, err := builder.BuildFiltration(nil, builder.Cycle(3), builder.Empty(), builder.Simplex(2))
	require.NoError(t, err)
	cc, err := chain.FromFiltration[Q](f)
	require.NoError(t, err)
	require.NoError(t, cc.Validate())

	x2 := polynomial.Monomial(numbers.RationalFromInt(1), 2)
	col, err := cc.Boundary(2).Col(0)
	require.NoError(t, err)
	require.True(t, col[0].Equal(x2))
	require.True(t, col[1].Equal(x2.Neg()))
	require.True(t, col[2].Equal(x2))

	one := polynomial.Constant(numbers.RationalFromInt(1))
	e, err := cc.Boundary(1).At(1, 0)
	require.NoError(t, err)
	require.True(t, e.Equal(one))
}

func TestFromFiltration_RandomFlag(t *testing.T) {
	f, err := builder.RandomFlagFiltration(9, 0.6, builder.WithSeed(3), builder.WithUniformTimes(0, 5))
	require.NoError(t, err)
	cc, err := chain.FromFiltration[numbers.Z3](f)
	require.NoError(t, err)
	require.NoError(t, cc.Validate())
}

func TestNew_ShapeErrors(t *testing.T) {
	a := simplicial.MustSimplex(0)
	b := simplicial.MustSimplex(1)
	ab := simplicial.MustSimplex(0, 1)
	d0, _ := matrix.Zero[Z](0, 2)
	bad, _ := matrix.Zero[Z](3, 1)

	_, err := chain.New([][]simplicial.Simplex{{a, b}, {ab}}, []*matrix.Matrix[Z]{d0})
	require.ErrorIs(t, err, chain.ErrBoundaryShape)
	_, err = chain.New([][]simplicial.Simplex{{a, b}, {ab}}, []*matrix.Matrix[Z]{d0, bad})
	require.ErrorIs(t, err, chain.ErrBoundaryShape)
	require.ErrorIs(t, err, algebra.ErrDomain)

	// ∂_1 with equal signs is not a complex once ∂_2 exists.
	d1, _ := matrix.FromInts[Z]([][]int64{{1, 1, 0}, {1, 0, 1}, {0, 1, 1}})
	d2, _ := matrix.FromInts[Z]([][]int64{{1}, {1}, {1}})
	d0, _ = matrix.Zero[Z](0, 3)
	verts := []simplicial.Simplex{simplicial.MustSimplex(0), simplicial.MustSimplex(1), simplicial.MustSimplex(2)}
	edges := []simplicial.Simplex{ab, simplicial.MustSimplex(0, 2), simplicial.MustSimplex(1, 2)}
	cc, err := chain.New([][]simplicial.Simplex{verts, edges, {simplicial.MustSimplex(0, 1, 2)}},
		[]*matrix.Matrix[Z]{d0, d1, d2})
	require.NoError(t, err)
	require.ErrorIs(t, cc.Validate(), chain.ErrNotComplex)
}

func TestElimination_CachedOnSuccessOnly(t *testing.T) {
	cc, err := chain.FromSimplicial[Z](build(t, builder.Torus()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = cc.Elimination(ctx, 1)
	require.True(t, elimination.IsCancelled(err))

	first, err := cc.Elimination(context.Background(), 1)
	require.NoError(t, err)
	second, err := cc.Elimination(context.Background(), 1)
	require.NoError(t, err)
	require.Same(t, first, second)
	require.Equal(t, 6, first.Rank())

	top, err := cc.Elimination(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, 0, top.Rank())
}

func TestElimination_Capability(t *testing.T) {
	cc, err := chain.FromSimplicial[numbers.Z4](build(t, builder.Cycle(3)))
	require.NoError(t, err)
	require.NoError(t, cc.Validate())
	_, err = cc.Elimination(context.Background(), 1)
	require.ErrorIs(t, err, algebra.ErrCapability)
}
