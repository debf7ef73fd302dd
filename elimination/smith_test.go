// SPDX-License-Identifier: MIT
package elimination_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/elimination"
	"github.com/katalvlaran/homalg/matrix"
	"github.com/katalvlaran/homalg/numbers"
)

type Z = numbers.Int

func mustInts(t *testing.T, rows [][]int64, opts ...matrix.Option) *matrix.Matrix[Z] {
	t.Helper()
	m, err := matrix.FromInts[Z](rows, opts...)
	require.NoError(t, err)

	return m
}

func mustMul[R algebra.Ring[R]](t *testing.T, a, b *matrix.Matrix[R]) *matrix.Matrix[R] {
	t.Helper()
	p, err := a.Mul(b)
	require.NoError(t, err)

	return p
}

func isIdentity[R algebra.Ring[R]](t *testing.T, m *matrix.Matrix[R]) bool {
	t.Helper()
	id, err := matrix.Identity[R](m.Rows())
	require.NoError(t, err)

	return m.Equal(id)
}

// requireSmithInvariants checks every guarantee of Diagonal mode on res for input a.
func requireSmithInvariants(t *testing.T, a *matrix.Matrix[Z], res *elimination.Result[Z]) {
	t.Helper()

	// P·A·Q = D exactly.
	pa := mustMul(t, res.P(), a)
	paq := mustMul(t, pa, res.Q())
	require.True(t, paq.Equal(res.Reduced()), "P·A·Q must equal the reduced matrix")
	require.True(t, res.Reduced().IsDiagonal())

	// Transforms are invertible with the reported inverses.
	require.True(t, isIdentity(t, mustMul(t, res.P(), res.PInverse())))
	require.True(t, isIdentity(t, mustMul(t, res.PInverse(), res.P())))
	require.True(t, isIdentity(t, mustMul(t, res.Q(), res.QInverse())))
	require.True(t, isIdentity(t, mustMul(t, res.QInverse(), res.Q())))

	// Nonzero entries first, positive, each dividing the next.
	d := res.Diagonal()
	for i, x := range d {
		if i < res.Rank() {
			require.False(t, x.IsZero(), "d[%d] must be nonzero", i)
			require.Equal(t, 1, x.Sign(), "d[%d] must be canonical", i)
		} else {
			require.True(t, x.IsZero(), "d[%d] must be zero past the rank", i)
		}
		if i > 0 && i < res.Rank() {
			require.True(t, algebra.Divides(d[i-1], x), "d[%d]=%s must divide d[%d]=%s", i-1, d[i-1], i, x)
		}
	}

	// Kernel columns are annihilated by A; image columns are A-images.
	kernel := res.KernelMatrix()
	require.Equal(t, a.Cols()-res.Rank(), kernel.Cols())
	require.True(t, mustMul(t, a, kernel).IsZero(), "A·ker must vanish")
	require.Len(t, res.Image(), res.Rank())
}

func TestSmith_KnownForm(t *testing.T) {
	a := mustInts(t, [][]int64{
		{2, 4, 4},
		{-6, 6, 12},
		{10, -4, -16},
	})
	res, err := elimination.Eliminate(a)
	require.NoError(t, err)
	requireSmithInvariants(t, a, res)

	require.Equal(t, 3, res.Rank())
	got := make([]string, 0, 3)
	for _, d := range res.Diagonal() {
		got = append(got, d.String())
	}
	require.Equal(t, []string{"2", "6", "12"}, got)
	require.Equal(t, elimination.Diagonal, res.Mode())
}

func TestSmith_DivisibilityRepair(t *testing.T) {
	// diag(2, 3) is already diagonal but violates 2 | 3: expect diag(1, 6).
	a := mustInts(t, [][]int64{{2, 0}, {0, 3}})
	res, err := elimination.Eliminate(a)
	require.NoError(t, err)
	requireSmithInvariants(t, a, res)
	require.Equal(t, "1", res.Diagonal()[0].String())
	require.Equal(t, "6", res.Diagonal()[1].String())

	// diag(4, 2): 2 | 4, resolved by swapping.
	b := mustInts(t, [][]int64{{4, 0, 0}, {0, 2, 0}})
	res, err = elimination.Eliminate(b)
	require.NoError(t, err)
	requireSmithInvariants(t, b, res)
	require.Equal(t, "2", res.Diagonal()[0].String())
	require.Equal(t, "4", res.Diagonal()[1].String())
}

func TestSmith_RandomIntegerMatrices(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 60; iter++ {
		r, c := 1+rng.Intn(5), 1+rng.Intn(5)
		rows := make([][]int64, r)
		for i := range rows {
			rows[i] = make([]int64, c)
			for j := range rows[i] {
				if rng.Intn(3) > 0 {
					rows[i][j] = rng.Int63n(21) - 10
				}
			}
		}
		storage := matrix.Dense
		if iter%2 == 1 {
			storage = matrix.Sparse
		}
		a := mustInts(t, rows, matrix.WithStorage(storage))

		res, err := elimination.Eliminate(a)
		require.NoError(t, err)
		requireSmithInvariants(t, a, res)
		require.Equal(t, storage, res.Reduced().Storage())
	}
}

// TestSmith_RankMatchesMinors compares the elimination rank with the size of the
// largest nonvanishing minor, computed by permutation-expansion determinants.
func TestSmith_RankMatchesMinors(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	for iter := 0; iter < 40; iter++ {
		r, c := 1+rng.Intn(4), 1+rng.Intn(4)
		rows := make([][]int64, r)
		for i := range rows {
			rows[i] = make([]int64, c)
			for j := range rows[i] {
				rows[i][j] = rng.Int63n(5) - 2
			}
		}
		// Force some rank deficiency.
		if r > 1 && iter%3 == 0 {
			copy(rows[r-1], rows[0])
		}
		a := mustInts(t, rows)

		res, err := elimination.Eliminate(a)
		require.NoError(t, err)
		require.Equal(t, minorRank(t, a), res.Rank(), "matrix %v", rows)
	}
}

func minorRank(t *testing.T, a *matrix.Matrix[Z]) int {
	t.Helper()
	for k := min(a.Rows(), a.Cols()); k > 0; k-- {
		for _, ri := range subsets(a.Rows(), k) {
			for _, ci := range subsets(a.Cols(), k) {
				sub, err := a.Select(ri, ci)
				require.NoError(t, err)
				d, err := sub.Determinant()
				require.NoError(t, err)
				if !d.IsZero() {
					return k
				}
			}
		}
	}

	return 0
}

// subsets lists the k-element subsets of {0..n-1} in lexicographic order.
func subsets(n, k int) [][]int {
	var out [][]int
	cur := make([]int, 0, k)
	var rec func(start int)
	rec = func(start int) {
		if len(cur) == k {
			out = append(out, append([]int(nil), cur...))

			return
		}
		for i := start; i < n; i++ {
			cur = append(cur, i)
			rec(i + 1)
			cur = cur[:len(cur)-1]
		}
	}
	rec(0)

	return out
}

func TestSmith_DegenerateShapes(t *testing.T) {
	empty, err := matrix.Zero[Z](0, 3)
	require.NoError(t, err)
	res, err := elimination.Eliminate(empty)
	require.NoError(t, err)
	require.Equal(t, 0, res.Rank())
	require.Len(t, res.Kernel(), 3, "every vector of Z³ is in the kernel of the 0×3 map")

	zero := mustInts(t, [][]int64{{0, 0}, {0, 0}})
	res, err = elimination.Eliminate(zero)
	require.NoError(t, err)
	require.Equal(t, 0, res.Rank())
	require.Empty(t, res.Divisors())
}

func TestSmith_OverRationals(t *testing.T) {
	half, _ := numbers.NewRational(1, 2)
	q := func(n int64) numbers.Rational { return numbers.RationalFromInt(n) }
	a, err := matrix.New(2, 3, []numbers.Rational{half, q(1), q(0), q(1), q(2), q(0)})
	require.NoError(t, err)

	res, err := elimination.Eliminate(a)
	require.NoError(t, err)
	require.Equal(t, 1, res.Rank())
	require.True(t, res.Diagonal()[0].Equal(q(1)), "field divisors normalize to 1")

	paq := mustMul(t, mustMul(t, res.P(), a), res.Q())
	require.True(t, paq.Equal(res.Reduced()))
	require.True(t, mustMul(t, a, res.KernelMatrix()).IsZero())
}
