// SPDX-License-Identifier: MIT
// Package elimination: row-echelon reduction over any ring.

package elimination

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/homalg/algebra"
)

// echelon reduces w by row operations only and returns the pivot columns.
//
// Euclidean rings use the same remainder re-pivoting as the diagonal mode,
// restricted to one column, and normalize each pivot. Other rings need a unit
// pivot in every column that still has nonzero entries below the current row;
// a column without one is reported as a capability error, since clearing it would
// require division the ring does not offer.
func echelon[R algebra.Ring[R]](ctx context.Context, w *workspace[R], logger log.FieldLogger) ([]int, error) {
	euclidean := algebra.IsEuclidean[R]()
	var e euclid[R]
	var pivots []int

	k := 0
	for col := 0; col < w.cols && k < w.rows; col++ {
		if err := checkContext(ctx); err != nil {
			return nil, err
		}
		var found bool
		var err error
		if euclidean {
			found, err = euclideanColumn(ctx, w, k, col, e)
		} else {
			found, err = unitColumn(w, k, col)
		}
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		pivots = append(pivots, col)
		logger.WithFields(log.Fields{"row": k, "col": col}).Debug("elimination: echelon pivot")
		k++
	}

	return pivots, nil
}

// euclideanColumn clears a[k+1:, col] and leaves a normalized pivot at (k, col).
func euclideanColumn[R algebra.Ring[R]](ctx context.Context, w *workspace[R], k, col int, e euclid[R]) (bool, error) {
	for {
		if err := checkContext(ctx); err != nil {
			return false, err
		}
		best := -1
		for i := k; i < w.rows; i++ {
			if x := w.a[i][col]; !x.IsZero() && (best < 0 || e.smaller(x, w.a[best][col])) {
				best = i
			}
		}
		if best < 0 {
			return false, nil
		}
		w.rowSwap(k, best)

		clean := true
		for i := k + 1; i < w.rows; i++ {
			x := w.a[i][col]
			if x.IsZero() {
				continue
			}
			q, r := e.divMod(x, w.a[k][col])
			w.rowAdd(i, k, q.Neg())
			if !r.IsZero() {
				clean = false
			}
		}
		if clean {
			break
		}
	}

	u := e.normalizingUnit(w.a[k][col])
	if !u.Equal(u.One()) {
		uInv, _ := u.UnitInverse()
		w.rowScale(k, u, uInv)
	}

	return true, nil
}

// unitColumn clears a[k+1:, col] against a unit pivot.
func unitColumn[R algebra.Ring[R]](w *workspace[R], k, col int) (bool, error) {
	pivot, nonzero := -1, false
	for i := k; i < w.rows; i++ {
		x := w.a[i][col]
		if x.IsZero() {
			continue
		}
		nonzero = true
		if x.IsUnit() {
			pivot = i

			break
		}
	}
	if pivot < 0 {
		if nonzero {
			var zero R

			return false, algebra.CapabilityError("Eliminate", "a unit pivot (EuclideanRing)", zero)
		}

		return false, nil
	}
	w.rowSwap(k, pivot)

	inv, _ := w.a[k][col].UnitInverse()
	for i := k + 1; i < w.rows; i++ {
		if x := w.a[i][col]; !x.IsZero() {
			w.rowAdd(i, k, x.Mul(inv).Neg())
		}
	}

	return true, nil
}
