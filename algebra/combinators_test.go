// SPDX-License-Identifier: MIT
package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/numbers"
)

func TestProductRing_Componentwise(t *testing.T) {
	a := algebra.NewProductRing(numbers.NewInt(2), numbers.NewZ3(2))
	b := algebra.NewProductRing(numbers.NewInt(-1), numbers.NewZ3(2))

	sum := a.Add(b)
	require.Equal(t, "(1, [1])", sum.String())
	require.Equal(t, "(-2, [1])", a.Mul(b).String())
	require.True(t, a.Sub(a).IsZero())
	require.Equal(t, "(5, [2])", a.FromInt64(5).String())

	require.False(t, a.IsUnit(), "2 is not a unit of ℤ")
	require.True(t, b.IsUnit())
	inv, ok := b.UnitInverse()
	require.True(t, ok)
	require.True(t, inv.Mul(b).Equal(b.One()))
}

func TestProductMonoidAndGroup(t *testing.T) {
	m := algebra.NewProductMonoid(numbers.NewInt(3), numbers.RationalFromInt(2))
	require.True(t, algebra.Pow(m, 3).Equal(algebra.NewProductMonoid(numbers.NewInt(27), numbers.RationalFromInt(8))))

	g := algebra.NewProductGroup(numbers.NewInt(3), numbers.NewZ2(1))
	require.True(t, g.Add(g).Equal(algebra.NewProductGroup(numbers.NewInt(6), numbers.NewZ2(0))))
	require.True(t, g.Add(g.Neg()).IsZero())
}

// oddInts selects the multiplicative monoid of odd integers.
type oddInts struct{}

func (oddInts) Contains(x numbers.Int) bool {
	_, r, _ := x.DivMod(numbers.NewInt(2))

	return !r.IsZero()
}

func TestSubmonoid(t *testing.T) {
	three, err := algebra.NewSubmonoid[numbers.Int, oddInts](numbers.NewInt(3))
	require.NoError(t, err)
	require.Equal(t, "9", three.Mul(three).Embed().String())
	require.Equal(t, "1", three.One().String())

	_, err = algebra.NewSubmonoid[numbers.Int, oddInts](numbers.NewInt(4))
	require.ErrorIs(t, err, algebra.ErrNotMember)
}

func TestQuotient_RepresentativeIndependence(t *testing.T) {
	a := algebra.NewQuotientRing[numbers.Int, numbers.IntIdeal[numbers.Mod4]](numbers.NewInt(7))
	b := algebra.NewQuotientRing[numbers.Int, numbers.IntIdeal[numbers.Mod4]](numbers.NewInt(-1))
	require.True(t, a.Equal(b))
	require.Equal(t, "3", a.Representative().String())

	f := numbers.NewZ5(3)
	q, r, err := f.DivMod(numbers.NewZ5(4))
	require.NoError(t, err)
	require.True(t, r.IsZero())
	require.True(t, q.Mul(numbers.NewZ5(4)).Equal(f))
	require.Equal(t, 0, f.CompareSize(numbers.NewZ5(1)))
	require.Equal(t, -1, numbers.NewZ5(0).CompareSize(f))
	require.True(t, algebra.Normalize(f).Equal(f.One()))
}
