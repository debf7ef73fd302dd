// SPDX-License-Identifier: MIT
// Package matrix: constructors.
//
// Every constructor validates shape before allocating and returns a sentinel
// wrapped with its own tag. Input slices are copied; the caller keeps ownership.

package matrix

import (
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/homalg/algebra"
)

// New builds a rows×cols matrix from a row-major element list.
// Errors: ErrBadShape for negative dimensions, ErrElementCount when
// len(data) != rows*cols.
func New[R algebra.Ring[R]](rows, cols int, data []R, opts ...Option) (*Matrix[R], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf("New", err)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf("New", ErrElementCount)
	}
	o := gatherOptions(DefaultStorage, opts...)
	buf := make([]R, len(data))
	copy(buf, data)

	return fromDense(rows, cols, o.storage, buf), nil
}

// NewSparse builds a matrix from (row, col, value) triples in any order; zero values
// are dropped. The result is sparse unless WithStorage(Dense) is given.
// Errors: ErrBadShape, ErrOutOfRange, ErrDuplicateEntry.
func NewSparse[R algebra.Ring[R]](rows, cols int, entries []Entry[R], opts ...Option) (*Matrix[R], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf("NewSparse", err)
	}
	sorted := make([]Entry[R], 0, len(entries))
	for _, e := range entries {
		if err := validateIndex(rows, cols, e.Row, e.Col); err != nil {
			return nil, matrixErrorf("NewSparse", err)
		}
		sorted = append(sorted, e)
	}
	slices.SortStableFunc(sorted, compareEntries[R])

	kept := sorted[:0]
	for k, e := range sorted {
		if k > 0 && sorted[k-1].Row == e.Row && sorted[k-1].Col == e.Col {
			return nil, matrixErrorf("NewSparse", ErrDuplicateEntry)
		}
		if !e.Value.IsZero() {
			kept = append(kept, e)
		}
	}
	o := gatherOptions(Sparse, opts...)
	m := &Matrix[R]{rows: rows, cols: cols, storage: Sparse, entries: kept}

	return m.withStorage(o.storage), nil
}

// Zero returns the rows×cols zero matrix.
func Zero[R algebra.Ring[R]](rows, cols int, opts ...Option) (*Matrix[R], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf("Zero", err)
	}
	o := gatherOptions(DefaultStorage, opts...)

	return zeroOf[R](rows, cols, o.storage), nil
}

// Identity returns the n×n identity matrix.
func Identity[R algebra.Ring[R]](n int, opts ...Option) (*Matrix[R], error) {
	if err := validateShape(n, n); err != nil {
		return nil, matrixErrorf("Identity", err)
	}
	o := gatherOptions(DefaultStorage, opts...)

	return identityOf[R](n, o.storage), nil
}

// FromRows builds a matrix from a list of equally long rows. An empty list yields 0×0.
// Errors: ErrElementCount for ragged rows.
func FromRows[R algebra.Ring[R]](rows [][]R, opts ...Option) (*Matrix[R], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	data := make([]R, 0, r*c)
	for _, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf("FromRows", ErrElementCount)
		}
		data = append(data, row...)
	}
	o := gatherOptions(DefaultStorage, opts...)

	return fromDense(r, c, o.storage, data), nil
}

// FromColumns builds a rows×len(columns) matrix whose j-th column is columns[j].
// Errors: ErrBadShape for negative rows, ErrElementCount when a column has the wrong length.
func FromColumns[R algebra.Ring[R]](rows int, columns [][]R, opts ...Option) (*Matrix[R], error) {
	if err := validateShape(rows, len(columns)); err != nil {
		return nil, matrixErrorf("FromColumns", err)
	}
	cols := len(columns)
	data := make([]R, rows*cols)
	for j, col := range columns {
		if len(col) != rows {
			return nil, matrixErrorf("FromColumns", ErrElementCount)
		}
		for i, v := range col {
			data[i*cols+j] = v
		}
	}
	o := gatherOptions(DefaultStorage, opts...)

	return fromDense(rows, cols, o.storage, data), nil
}

// FromInts maps integer rows through the canonical ring map ℤ → R.
func FromInts[R algebra.Ring[R]](rows [][]int64, opts ...Option) (*Matrix[R], error) {
	var one R
	one = one.One()
	conv := make([][]R, len(rows))
	for i, row := range rows {
		conv[i] = make([]R, len(row))
		for j, n := range row {
			conv[i][j] = one.FromInt64(n)
		}
	}
	m, err := FromRows(conv, opts...)
	if err != nil {
		return nil, matrixErrorf("FromInts", err)
	}

	return m, nil
}

// fromDense takes ownership of a row-major buffer and stores it in layout s.
func fromDense[R algebra.Ring[R]](rows, cols int, s Storage, data []R) *Matrix[R] {
	m := &Matrix[R]{rows: rows, cols: cols, storage: Dense, data: data}
	if s == Sparse {
		return m.ToSparse()
	}

	return m
}

func zeroOf[R algebra.Ring[R]](rows, cols int, s Storage) *Matrix[R] {
	if s == Sparse {
		return &Matrix[R]{rows: rows, cols: cols, storage: Sparse}
	}

	return &Matrix[R]{rows: rows, cols: cols, storage: Dense, data: make([]R, rows*cols)}
}

func identityOf[R algebra.Ring[R]](n int, s Storage) *Matrix[R] {
	var one R
	one = one.One()
	if s == Sparse {
		entries := make([]Entry[R], n)
		for i := range entries {
			entries[i] = Entry[R]{Row: i, Col: i, Value: one}
		}

		return &Matrix[R]{rows: n, cols: n, storage: Sparse, entries: entries}
	}
	data := make([]R, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = one
	}

	return &Matrix[R]{rows: n, cols: n, storage: Dense, data: data}
}
