// SPDX-License-Identifier: MIT
// Package matrix: multiplication strategies.
//
// The strategy is an explicit value chosen at the call site; there is no
// package-level switch. All strategies produce identical results.

package matrix

import (
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/internal/concurrency"
)

// MulStrategy selects the multiplication kernel used by MulWith.
type MulStrategy interface {
	mulStrategy()
}

// NaiveMul is the schoolbook triple loop over dense rows.
type NaiveMul struct{}

// SparseMul multiplies row by row, touching only nonzero entries of both operands.
type SparseMul struct{}

// ParallelMul splits the output rows over Workers goroutines (≤ 0 selects GOMAXPROCS).
// Each worker writes a disjoint block of rows; operands are only read.
type ParallelMul struct {
	Workers int
}

func (NaiveMul) mulStrategy()    {}
func (SparseMul) mulStrategy()   {}
func (ParallelMul) mulStrategy() {}

// Mul returns m·o using SparseMul when either operand is sparse, NaiveMul otherwise.
// Errors: ErrDimensionMismatch when m.Cols() != o.Rows().
func (m *Matrix[R]) Mul(o *Matrix[R]) (*Matrix[R], error) {
	var s MulStrategy = NaiveMul{}
	if m.storage == Sparse || o.storage == Sparse {
		s = SparseMul{}
	}
	p, err := m.MulWith(o, s)
	if err != nil {
		return nil, matrixErrorf("Mul", err)
	}

	return p, nil
}

// MulWith returns m·o computed by the given strategy; nil selects NaiveMul.
// The result takes the receiver's layout.
func (m *Matrix[R]) MulWith(o *Matrix[R], s MulStrategy) (*Matrix[R], error) {
	if err := validateMulShape(m.cols, o.rows); err != nil {
		return nil, matrixErrorf("MulWith", err)
	}

	switch st := s.(type) {
	case SparseMul:
		return m.mulSparse(o).withStorage(m.storage), nil
	case ParallelMul:
		p, err := m.mulParallel(o, st.Workers)
		if err != nil {
			return nil, matrixErrorf("MulWith", err)
		}

		return p.withStorage(m.storage), nil
	default:
		data := make([]R, m.rows*o.cols)
		a, b := m.ToDense(), o.ToDense()
		mulRows(a, b, data, 0, m.rows)

		return fromDense(m.rows, o.cols, m.storage, data), nil
	}
}

// mulRows fills out rows [lo, hi) of a·b; a and b are dense.
func mulRows[R algebra.Ring[R]](a, b *Matrix[R], out []R, lo, hi int) {
	n, k := b.cols, a.cols
	for i := lo; i < hi; i++ {
		row := out[i*n : (i+1)*n]
		for t := 0; t < k; t++ {
			x := a.data[i*k+t]
			if x.IsZero() {
				continue
			}
			for j := 0; j < n; j++ {
				row[j] = row[j].Add(x.Mul(b.data[t*n+j]))
			}
		}
	}
}

func (m *Matrix[R]) mulParallel(o *Matrix[R], workers int) (*Matrix[R], error) {
	a, b := m.ToDense(), o.ToDense()
	data := make([]R, m.rows*o.cols)
	slots := concurrency.Workers(workers)
	block := (m.rows + len(slots) - 1) / max(len(slots), 1)
	if block == 0 {
		block = 1
	}

	pool := concurrency.NewPool(slots)
	for lo := 0; lo < m.rows; lo += block {
		hi := min(lo+block, m.rows)
		pool.Run(func(int) error {
			mulRows(a, b, data, lo, hi)

			return nil
		})
	}
	if err := pool.Wait(); err != nil {
		return nil, err
	}

	return &Matrix[R]{rows: m.rows, cols: o.cols, storage: Dense, data: data}, nil
}

// mulSparse accumulates each output row in a scratch buffer indexed by column.
func (m *Matrix[R]) mulSparse(o *Matrix[R]) *Matrix[R] {
	a, b := m.ToSparse(), o.ToSparse()
	acc := make([]R, o.cols)
	touched := make([]bool, o.cols)
	var cols []int
	var entries []Entry[R]

	for i := 0; i < a.rows; i++ {
		cols = cols[:0]
		for _, x := range a.rowSpan(i) {
			for _, y := range b.rowSpan(x.Col) {
				if !touched[y.Col] {
					touched[y.Col] = true
					cols = append(cols, y.Col)
				}
				acc[y.Col] = acc[y.Col].Add(x.Value.Mul(y.Value))
			}
		}
		slices.Sort(cols)
		var zero R
		for _, j := range cols {
			if !acc[j].IsZero() {
				entries = append(entries, Entry[R]{Row: i, Col: j, Value: acc[j]})
			}
			acc[j] = zero
			touched[j] = false
		}
	}

	return &Matrix[R]{rows: m.rows, cols: o.cols, storage: Sparse, entries: entries}
}
