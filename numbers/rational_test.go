// SPDX-License-Identifier: MIT
package numbers_test

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/numbers"
)

// TestRational_ReducedForm checks, for random p and q ≠ 0, that the stored pair is
// (p/g, q/g) up to a common sign, coprime, with a positive denominator, and that
// rebuilding from the reduced pair is idempotent.
func TestRational_ReducedForm(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	var p, q int64
	for iter := 0; iter < 500; iter++ {
		p = rng.Int63n(2001) - 1000
		q = rng.Int63n(2001) - 1000
		if q == 0 {
			continue
		}

		r, err := numbers.NewRational(p, q)
		require.NoError(t, err)

		num, den := r.Num().Big(), r.Den().Big()
		require.Equal(t, 1, den.Sign(), "denominator must be positive for %d/%d", p, q)

		g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
		if num.Sign() != 0 {
			require.Equal(t, int64(1), g.Int64(), "num/den must be coprime for %d/%d", p, q)
		}

		// (p/g, q/g) up to sign normalization.
		gpq := new(big.Int).GCD(nil, nil, big.NewInt(abs(p)), big.NewInt(abs(q))).Int64()
		wantNum, wantDen := p/gpq, q/gpq
		if wantDen < 0 {
			wantNum, wantDen = -wantNum, -wantDen
		}
		if p == 0 {
			wantNum, wantDen = 0, 1
		}
		require.Equal(t, wantNum, num.Int64())
		require.Equal(t, wantDen, den.Int64())

		again, err := numbers.RationalFromInts(r.Num(), r.Den())
		require.NoError(t, err)
		require.True(t, again.Equal(r), "reconstruction must be idempotent")
	}
}

func TestRational_ZeroDenominator(t *testing.T) {
	_, err := numbers.NewRational(3, 0)
	require.Error(t, err)
	require.True(t, errors.Is(err, algebra.ErrDivisionByZero))
	require.True(t, errors.Is(err, algebra.ErrDomain))
}

func TestRational_Arithmetic(t *testing.T) {
	half := mustRational(t, 1, 2)
	third := mustRational(t, 1, 3)

	require.Equal(t, "5/6", half.Add(third).String())
	require.Equal(t, "1/6", half.Sub(third).String())
	require.Equal(t, "1/6", half.Mul(third).String())
	require.Equal(t, "-1/2", half.Neg().String())
	require.Equal(t, -1, third.Cmp(half))

	inv, err := mustRational(t, -2, 6).Inverse()
	require.NoError(t, err)
	require.Equal(t, "-3", inv.String())

	_, err = numbers.Rational{}.Inverse()
	require.True(t, errors.Is(err, algebra.ErrDivisionByZero))

	// The zero value is a usable 0/1.
	var zero numbers.Rational
	require.True(t, zero.IsZero())
	require.True(t, zero.Add(half).Equal(half))
	require.Equal(t, "1", zero.One().String())
}

func TestRational_FieldDivision(t *testing.T) {
	x := mustRational(t, 3, 4)
	d := mustRational(t, -5, 2)

	q, r, err := x.DivMod(d)
	require.NoError(t, err)
	require.True(t, r.IsZero())
	require.True(t, q.Mul(d).Equal(x))
	require.Equal(t, 0, x.CompareSize(d))
	require.True(t, algebra.Normalize(d).Equal(d.One()))
}

func mustRational(t *testing.T, p, q int64) numbers.Rational {
	t.Helper()
	r, err := numbers.NewRational(p, q)
	require.NoError(t, err)

	return r
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}
