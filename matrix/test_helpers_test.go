// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homalg/matrix"
	"github.com/katalvlaran/homalg/numbers"
)

type Z = numbers.Int

// MustInts builds an integer matrix or fails the test.
func MustInts(t *testing.T, rows [][]int64, opts ...matrix.Option) *matrix.Matrix[Z] {
	t.Helper()
	m, err := matrix.FromInts[Z](rows, opts...)
	require.NoError(t, err)

	return m
}

// randomInts returns an r×c matrix with entries in [-bound, bound] and roughly
// the given share of zeros.
func randomInts(rng *rand.Rand, r, c int, bound int64, zeroShare float64) [][]int64 {
	rows := make([][]int64, r)
	for i := range rows {
		rows[i] = make([]int64, c)
		for j := range rows[i] {
			if rng.Float64() < zeroShare {
				continue
			}
			rows[i][j] = rng.Int63n(2*bound+1) - bound
		}
	}

	return rows
}
