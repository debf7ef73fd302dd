// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/matrix"
	"github.com/katalvlaran/homalg/numbers"
)

func TestDeterminant(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int64
		want string
	}{
		{"1x1", [][]int64{{-7}}, "-7"},
		{"2x2", [][]int64{{1, 2}, {3, 4}}, "-2"},
		{"3x3", [][]int64{{2, 0, 1}, {1, 3, 2}, {1, 1, 2}}, "6"},
		{"Singular", [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, "0"},
		{"Permutation", [][]int64{{0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}, {1, 0, 0, 0}}, "-1"},
		{"Triangular5", [][]int64{
			{2, 1, 1, 1, 1},
			{0, 3, 1, 1, 1},
			{0, 0, -1, 1, 1},
			{0, 0, 0, 5, 1},
			{0, 0, 0, 0, 1},
		}, "-30"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := MustInts(t, tc.rows).Determinant()
			require.NoError(t, err)
			require.Equal(t, tc.want, d.String())
		})
	}

	empty, err := matrix.Zero[Z](0, 0)
	require.NoError(t, err)
	d, err := empty.Determinant()
	require.NoError(t, err)
	require.Equal(t, "1", d.String())
}

func TestDeterminant_NonSquare(t *testing.T) {
	_, err := MustInts(t, [][]int64{{1, 2, 3}}).Determinant()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.ErrorIs(t, err, algebra.ErrDomain)
}

func TestDeterminant_Multiplicative(t *testing.T) {
	a := MustInts(t, [][]int64{{1, 2, 0}, {0, 1, -1}, {3, 0, 2}})
	b := MustInts(t, [][]int64{{2, 0, 1}, {1, 1, 0}, {0, -2, 1}})
	ab, err := a.Mul(b)
	require.NoError(t, err)

	da, _ := a.Determinant()
	db, _ := b.Determinant()
	dab, _ := ab.Determinant()
	require.True(t, da.Mul(db).Equal(dab))
}

func TestDeterminant_OverField(t *testing.T) {
	half, _ := numbers.NewRational(1, 2)
	m, err := matrix.New(2, 2, []numbers.Rational{
		half, numbers.RationalFromInt(1),
		numbers.RationalFromInt(3), numbers.RationalFromInt(4),
	})
	require.NoError(t, err)
	d, err := m.Determinant()
	require.NoError(t, err)
	require.Equal(t, "-1", d.String())
}
