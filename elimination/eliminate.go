// SPDX-License-Identifier: MIT

package elimination

import (
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/matrix"
)

// Eliminate reduces a according to the configured Mode.
//
// Stage 1 (Validate): Diagonal mode requires algebra.EuclideanRing; otherwise the
// call fails with algebra.ErrCapability before touching the data.
// Stage 2 (Prepare): copy a into a private workspace with identity transforms.
// Stage 3 (Execute): Smith normal form or row echelon, checking the context once
// per pivot iteration.
// Stage 4 (Finalize): freeze the workspace into immutable matrices.
//
// Errors: algebra.ErrCapability, ErrCancelled (wrapping the context error).
// The input is never modified.
func Eliminate[R algebra.Ring[R]](a *matrix.Matrix[R], opts ...Option) (*Result[R], error) {
	o := gatherOptions(opts...)
	if o.mode == Diagonal && !algebra.IsEuclidean[R]() {
		var zero R

		return nil, algebra.CapabilityError("Eliminate", "algebra.EuclideanRing", zero)
	}

	rows, cols := a.Rows(), a.Cols()
	w := newWorkspace(a.ToRows(), rows, cols)
	logger := o.logger.WithFields(log.Fields{"rows": rows, "cols": cols, "mode": o.mode.String()})

	res := &Result[R]{mode: o.mode}
	switch o.mode {
	case RowEchelon:
		pivots, err := echelon(o.ctx, w, logger)
		if err != nil {
			return nil, err
		}
		res.rank = len(pivots)
		res.pivots = pivots
		res.diagonal = make([]R, min(rows, cols))
		for k, c := range pivots {
			res.diagonal[k] = w.a[k][c]
		}
	default:
		rank, err := smith(o.ctx, w, logger)
		if err != nil {
			return nil, err
		}
		res.rank = rank
		res.pivots = make([]int, rank)
		res.diagonal = make([]R, min(rows, cols))
		for k := range res.diagonal {
			res.diagonal[k] = w.a[k][k]
		}
		for k := range res.pivots {
			res.pivots[k] = k
		}
	}

	storage := matrix.WithStorage(a.Storage())
	res.reduced = freeze(w.a, rows, cols, storage)
	res.p = freeze(w.p, rows, rows, storage)
	res.pInv = freeze(w.pInv, rows, rows, storage)
	if o.mode == RowEchelon {
		res.q = freeze(identity[R](cols), cols, cols, storage)
		res.qInv = res.q
	} else {
		res.q = freeze(w.q, cols, cols, storage)
		res.qInv = freeze(w.qInv, cols, cols, storage)
	}
	logger.WithField("rank", res.rank).Debug("elimination: done")

	return res, nil
}

// freeze flattens a workspace block into an immutable matrix. Shapes are known to
// be consistent, so construction cannot fail.
func freeze[R algebra.Ring[R]](m [][]R, rows, cols int, opt matrix.Option) *matrix.Matrix[R] {
	data := make([]R, 0, rows*cols)
	for _, row := range m {
		data = append(data, row...)
	}
	out, err := matrix.New(rows, cols, data, opt)
	if err != nil {
		panic("elimination: inconsistent workspace shape: " + err.Error())
	}

	return out
}
