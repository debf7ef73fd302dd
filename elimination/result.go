// SPDX-License-Identifier: MIT

package elimination

import (
	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/matrix"
)

// Result is the immutable outcome of Eliminate.
//
// Diagonal mode: Reduced = P·A·Q is diagonal, Diagonal() lists its min(rows, cols)
// main-diagonal entries (nonzero entries first, each dividing the next).
// RowEchelon mode: Reduced = P·A, Q = Q⁻¹ = I, Diagonal() lists the pivot values
// followed by zeros, and PivotColumns() the pivot column of each nonzero row.
type Result[R algebra.Ring[R]] struct {
	mode     Mode
	rank     int
	diagonal []R
	pivots   []int

	p, pInv, q, qInv, reduced *matrix.Matrix[R]
}

// Mode returns the reduction that produced the result.
func (r *Result[R]) Mode() Mode { return r.mode }

// Rank returns the number of nonzero diagonal entries (pivots).
func (r *Result[R]) Rank() int { return r.rank }

// Diagonal returns a copy of the diagonal sequence.
func (r *Result[R]) Diagonal() []R {
	out := make([]R, len(r.diagonal))
	copy(out, r.diagonal)

	return out
}

// Divisors returns the nonzero diagonal entries (the elementary divisors in Diagonal mode).
func (r *Result[R]) Divisors() []R { return r.Diagonal()[:r.rank] }

// PivotColumns returns the pivot column per nonzero row (RowEchelon mode; the
// identity 0..rank-1 in Diagonal mode).
func (r *Result[R]) PivotColumns() []int {
	out := make([]int, len(r.pivots))
	copy(out, r.pivots)

	return out
}

// P returns the row transform.
func (r *Result[R]) P() *matrix.Matrix[R] { return r.p }

// PInverse returns P⁻¹.
func (r *Result[R]) PInverse() *matrix.Matrix[R] { return r.pInv }

// Q returns the column transform.
func (r *Result[R]) Q() *matrix.Matrix[R] { return r.q }

// QInverse returns Q⁻¹.
func (r *Result[R]) QInverse() *matrix.Matrix[R] { return r.qInv }

// Reduced returns P·A·Q (Diagonal) or P·A (RowEchelon).
func (r *Result[R]) Reduced() *matrix.Matrix[R] { return r.reduced }

// Kernel returns a basis of ker A: the columns of Q at positions rank..cols-1.
// Only Diagonal mode yields a kernel basis; RowEchelon returns nil.
func (r *Result[R]) Kernel() [][]R {
	if r.mode != Diagonal {
		return nil
	}
	cols := r.q.Cols()
	out := make([][]R, 0, cols-r.rank)
	for j := r.rank; j < cols; j++ {
		c, _ := r.q.Col(j)
		out = append(out, c)
	}

	return out
}

// KernelMatrix returns the kernel basis as the columns of a cols×(cols-rank) matrix.
func (r *Result[R]) KernelMatrix() *matrix.Matrix[R] {
	m, _ := matrix.FromColumns(r.q.Rows(), r.Kernel(), matrix.WithStorage(r.q.Storage()))

	return m
}

// Image returns generators of im A in the target coordinates: d_i·P⁻¹[:, i] for i < rank.
// In Diagonal mode they form a basis of the image.
func (r *Result[R]) Image() [][]R {
	if r.mode != Diagonal {
		return nil
	}
	out := make([][]R, 0, r.rank)
	for i := 0; i < r.rank; i++ {
		c, _ := r.pInv.Col(i)
		d := r.diagonal[i]
		for k := range c {
			c[k] = c[k].Mul(d)
		}
		out = append(out, c)
	}

	return out
}

// ImageMatrix returns the image generators as columns of a rows×rank matrix.
func (r *Result[R]) ImageMatrix() *matrix.Matrix[R] {
	m, _ := matrix.FromColumns(r.pInv.Rows(), r.Image(), matrix.WithStorage(r.pInv.Storage()))

	return m
}
