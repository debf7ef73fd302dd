// SPDX-License-Identifier: MIT
// Package elimination: Smith normal form over a EuclideanRing.

package elimination

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/homalg/algebra"
)

// smith diagonalizes w in place and returns the rank.
func smith[R algebra.Ring[R]](ctx context.Context, w *workspace[R], logger log.FieldLogger) (int, error) {
	var e euclid[R]
	debug := debugEnabled(logger)
	n := min(w.rows, w.cols)

	k := 0
	for ; k < n; k++ {
		if err := checkContext(ctx); err != nil {
			return 0, err
		}
		pi, pj, ok := minimalPivot(w, k, e)
		if !ok {
			break
		}
		w.rowSwap(k, pi)
		w.colSwap(k, pj)

		repivots := 0
		for !clearCross(w, k, e) {
			repivots++
			if err := checkContext(ctx); err != nil {
				return 0, err
			}
		}
		if debug {
			logger.WithFields(log.Fields{
				"step":     k,
				"pivot":    w.a[k][k].String(),
				"repivots": repivots,
				"maxBits":  maxBitLen(w.a, k+1),
			}).Debug("elimination: pivot settled")
		}
	}
	rank := k

	if err := repairDivisibility(ctx, w, rank, e); err != nil {
		return 0, err
	}
	for i := 0; i < rank; i++ {
		u := e.normalizingUnit(w.a[i][i])
		if u.Equal(u.One()) {
			continue
		}
		uInv, _ := u.UnitInverse()
		w.rowScale(i, u, uInv)
	}

	return rank, nil
}

// minimalPivot finds the nonzero entry of minimal size in a[k:, k:].
func minimalPivot[R algebra.Ring[R]](w *workspace[R], k int, e euclid[R]) (int, int, bool) {
	bi, bj, found := 0, 0, false
	for i := k; i < w.rows; i++ {
		for j := k; j < w.cols; j++ {
			x := w.a[i][j]
			if x.IsZero() {
				continue
			}
			if !found || e.smaller(x, w.a[bi][bj]) {
				bi, bj, found = i, j, true
			}
		}
	}

	return bi, bj, found
}

// clearCross reduces column k below and row k right of the pivot (k, k).
// It returns false after swapping a smaller remainder into the pivot position,
// in which case the caller repeats.
func clearCross[R algebra.Ring[R]](w *workspace[R], k int, e euclid[R]) bool {
	for i := k + 1; i < w.rows; i++ {
		x := w.a[i][k]
		if x.IsZero() {
			continue
		}
		q, r := e.divMod(x, w.a[k][k])
		w.rowAdd(i, k, q.Neg())
		if !r.IsZero() {
			w.rowSwap(i, k)

			return false
		}
	}
	for j := k + 1; j < w.cols; j++ {
		x := w.a[k][j]
		if x.IsZero() {
			continue
		}
		q, r := e.divMod(x, w.a[k][k])
		w.colAdd(j, k, q.Neg())
		if !r.IsZero() {
			w.colSwap(j, k)

			return false
		}
	}

	return true
}

// repairDivisibility enforces d_i | d_j for all i < j < rank.
//
// For each pair violating the chain:
//   - d_j | d_i: swap positions i and j (keeps entries unchanged, so homogeneous
//     entries such as monomials stay homogeneous);
//   - otherwise, with s·a + t·b = g (a = d_i, b = d_j):
//     col_i += col_j, rows (i, j) ← [[s, t], [-b/g, a/g]], col_j -= (t·b/g)·col_i,
//     which turns diag(a, b) into diag(g, a·b/g).
//
// After position i is processed it divides every later entry, and later repairs
// only replace entries by gcds and lcms of multiples of d_i.
func repairDivisibility[R algebra.Ring[R]](ctx context.Context, w *workspace[R], rank int, e euclid[R]) error {
	for i := 0; i < rank; i++ {
		if err := checkContext(ctx); err != nil {
			return err
		}
		for j := i + 1; j < rank; j++ {
			a, b := w.a[i][i], w.a[j][j]
			if e.divides(a, b) {
				continue
			}
			if e.divides(b, a) {
				w.rowSwap(i, j)
				w.colSwap(i, j)

				continue
			}
			s, t, g := e.bezout(a, b)
			w.colAdd(i, j, a.One())
			w.rowCombine(i, j, s, t, e.exactQuo(b, g).Neg(), e.exactQuo(a, g))
			w.colAdd(j, i, e.exactQuo(t.Mul(b), g).Neg())
		}
	}

	return nil
}

// maxBitLen reports the largest bit length among entries of the trailing block
// a[from:, from:], for coefficient types that expose BitLen (integers); -1 otherwise.
func maxBitLen[R any](a [][]R, from int) int {
	best := -1
	for i := from; i < len(a); i++ {
		for j := from; j < len(a[i]); j++ {
			b, ok := any(a[i][j]).(interface{ BitLen() int })
			if !ok {
				return -1
			}
			best = max(best, b.BitLen())
		}
	}

	return best
}
