// SPDX-License-Identifier: MIT
package algebra_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/numbers"
)

func TestCapabilityProbes(t *testing.T) {
	require.True(t, algebra.IsEuclidean[numbers.Int]())
	require.False(t, algebra.IsField[numbers.Int]())
	require.True(t, algebra.IsField[numbers.Rational]())
	require.True(t, algebra.IsEuclidean[numbers.Z3]())
	require.False(t, algebra.IsEuclidean[numbers.Z4]())
	require.False(t, algebra.IsEuclidean[algebra.ProductRing[numbers.Int, numbers.Int]]())

	_, ok := algebra.AsEuclidean(numbers.NewZ4(1))
	require.False(t, ok)
}

func TestPow(t *testing.T) {
	require.Equal(t, "1024", algebra.Pow(numbers.NewInt(2), 10).String())
	require.Equal(t, "1", algebra.Pow(numbers.NewInt(7), 0).String())
	require.True(t, algebra.Pow(numbers.NewZ3(2), 5).Equal(numbers.NewZ3(2)))
}

// TestBezoutIdentity checks s·a + t·b = g = gcd(a, b) ≥ 0 on random integers.
func TestBezoutIdentity(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))
	for iter := 0; iter < 300; iter++ {
		a := numbers.NewInt(rng.Int63n(401) - 200)
		b := numbers.NewInt(rng.Int63n(401) - 200)

		s, u, g := algebra.Bezout(a, b)
		require.True(t, s.Mul(a).Add(u.Mul(b)).Equal(g), "bezout for %s, %s", a, b)
		require.GreaterOrEqual(t, g.Sign(), 0)
		require.True(t, g.Equal(algebra.Gcd(a, b)))
		if !g.IsZero() {
			require.True(t, algebra.Divides(g, a))
			require.True(t, algebra.Divides(g, b))
		}
	}
}

func TestGcdLcm(t *testing.T) {
	require.Equal(t, "6", algebra.Gcd(numbers.NewInt(-12), numbers.NewInt(18)).String())
	require.Equal(t, "36", algebra.Lcm(numbers.NewInt(-12), numbers.NewInt(18)).String())
	require.Equal(t, "0", algebra.Gcd(numbers.Int{}, numbers.Int{}).String())
	require.Equal(t, "0", algebra.Lcm(numbers.NewInt(5), numbers.Int{}).String())

	require.False(t, algebra.Divides(numbers.Int{}, numbers.NewInt(3)))
	require.True(t, algebra.Divides(numbers.Int{}, numbers.Int{}))

	q, ok := algebra.ExactQuo(numbers.NewInt(21), numbers.NewInt(-7))
	require.True(t, ok)
	require.Equal(t, "-3", q.String())
	_, ok = algebra.ExactQuo(numbers.NewInt(22), numbers.NewInt(7))
	require.False(t, ok)
}

func TestInverseAndDiv(t *testing.T) {
	_, err := algebra.Inverse(numbers.Int{})
	require.True(t, errors.Is(err, algebra.ErrDivisionByZero))

	var de *algebra.DomainError
	require.True(t, errors.As(err, &de))
	require.Equal(t, "Inverse", de.Op)

	_, err = algebra.Div(numbers.NewInt(3), numbers.NewInt(2))
	require.True(t, errors.Is(err, algebra.ErrNotUnit))
	require.True(t, errors.Is(err, algebra.ErrDomain))

	v, err := algebra.Div(numbers.NewInt(3), numbers.NewInt(-1))
	require.NoError(t, err)
	require.Equal(t, "-3", v.String())
}

func TestSumProduct(t *testing.T) {
	xs := []numbers.Int{numbers.NewInt(2), numbers.NewInt(3), numbers.NewInt(-4)}
	require.Equal(t, "1", algebra.Sum(xs...).String())
	require.Equal(t, "-24", algebra.Product(xs...).String())
	require.Equal(t, "0", algebra.Sum[numbers.Int]().String())
	require.Equal(t, "1", algebra.Product[numbers.Int]().String())
}

func TestCapabilityError(t *testing.T) {
	err := algebra.CapabilityError("Eliminate", "EuclideanRing", numbers.NewZ4(0))
	require.True(t, errors.Is(err, algebra.ErrCapability))
	require.False(t, errors.Is(err, algebra.ErrDomain))
	require.Contains(t, err.Error(), "EuclideanRing")
}
