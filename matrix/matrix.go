// SPDX-License-Identifier: MIT

package matrix

import (
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/homalg/algebra"
)

// Entry is one (row, col, value) triple of a sparse listing.
type Entry[R any] struct {
	Row, Col int
	Value    R
}

// Matrix is an immutable rows×cols matrix over the ring R.
// The Go zero value of R is its additive zero; storage relies on that.
type Matrix[R algebra.Ring[R]] struct {
	rows, cols int
	storage    Storage
	data       []R        // Dense: row-major, len == rows*cols
	entries    []Entry[R] // Sparse: row-major order, unique keys, nonzero values
}

// Rows returns the number of rows.
func (m *Matrix[R]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[R]) Cols() int { return m.cols }

// Storage reports the physical layout.
func (m *Matrix[R]) Storage() Storage { return m.storage }

// IsSquare reports rows == cols.
func (m *Matrix[R]) IsSquare() bool { return m.rows == m.cols }

// at reads (i, j) without bounds checks.
func (m *Matrix[R]) at(i, j int) R {
	if m.storage == Dense {
		return m.data[i*m.cols+j]
	}
	k := m.search(i, j)
	if k < len(m.entries) && m.entries[k].Row == i && m.entries[k].Col == j {
		return m.entries[k].Value
	}
	var zero R

	return zero
}

// search returns the position of (i, j) or of its successor in the sparse list.
func (m *Matrix[R]) search(i, j int) int {
	k, _ := slices.BinarySearchFunc(m.entries, Entry[R]{Row: i, Col: j}, compareEntries[R])

	return k
}

// compareEntries orders sparse entries row-major.
func compareEntries[R any](a, b Entry[R]) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}

	return a.Col - b.Col
}

// rowSpan returns the sparse entries of row i.
func (m *Matrix[R]) rowSpan(i int) []Entry[R] {
	lo := m.search(i, 0)
	hi := m.search(i+1, 0)

	return m.entries[lo:hi]
}

// At returns the element at (i, j); ErrOutOfRange for invalid indices.
// Complexity: O(1) dense, O(log nnz) sparse.
func (m *Matrix[R]) At(i, j int) (R, error) {
	if err := validateIndex(m.rows, m.cols, i, j); err != nil {
		var zero R

		return zero, matrixErrorf("At", err)
	}

	return m.at(i, j), nil
}

// Set returns a copy of m with (i, j) replaced by v.
func (m *Matrix[R]) Set(i, j int, v R) (*Matrix[R], error) {
	if err := validateIndex(m.rows, m.cols, i, j); err != nil {
		return nil, matrixErrorf("Set", err)
	}
	if m.storage == Dense {
		data := make([]R, len(m.data))
		copy(data, m.data)
		data[i*m.cols+j] = v

		return &Matrix[R]{rows: m.rows, cols: m.cols, storage: Dense, data: data}, nil
	}

	k := m.search(i, j)
	present := k < len(m.entries) && m.entries[k].Row == i && m.entries[k].Col == j
	entries := make([]Entry[R], 0, len(m.entries)+1)
	entries = append(entries, m.entries[:k]...)
	if !v.IsZero() {
		entries = append(entries, Entry[R]{Row: i, Col: j, Value: v})
	}
	if present {
		k++
	}
	entries = append(entries, m.entries[k:]...)

	return &Matrix[R]{rows: m.rows, cols: m.cols, storage: Sparse, entries: entries}, nil
}

// Row returns a copy of row i.
func (m *Matrix[R]) Row(i int) ([]R, error) {
	if err := validateIndex(m.rows, 1, i, 0); err != nil {
		return nil, matrixErrorf("Row", err)
	}

	return m.row(i), nil
}

func (m *Matrix[R]) row(i int) []R {
	out := make([]R, m.cols)
	if m.storage == Dense {
		copy(out, m.data[i*m.cols:(i+1)*m.cols])

		return out
	}
	for _, e := range m.rowSpan(i) {
		out[e.Col] = e.Value
	}

	return out
}

// Col returns a copy of column j.
func (m *Matrix[R]) Col(j int) ([]R, error) {
	if err := validateIndex(1, m.cols, 0, j); err != nil {
		return nil, matrixErrorf("Col", err)
	}

	return m.col(j), nil
}

func (m *Matrix[R]) col(j int) []R {
	out := make([]R, m.rows)
	if m.storage == Dense {
		for i := 0; i < m.rows; i++ {
			out[i] = m.data[i*m.cols+j]
		}

		return out
	}
	for _, e := range m.entries {
		if e.Col == j {
			out[e.Row] = e.Value
		}
	}

	return out
}

// Columns returns every column as a fresh slice.
func (m *Matrix[R]) Columns() [][]R {
	out := make([][]R, m.cols)
	for j := range out {
		out[j] = m.col(j)
	}

	return out
}

// ToRows returns a fresh row-major copy as a slice of rows; callers may mutate it freely.
func (m *Matrix[R]) ToRows() [][]R {
	out := make([][]R, m.rows)
	for i := range out {
		out[i] = m.row(i)
	}

	return out
}

// NonZero lists the nonzero entries in row-major order.
func (m *Matrix[R]) NonZero() []Entry[R] {
	if m.storage == Sparse {
		out := make([]Entry[R], len(m.entries))
		copy(out, m.entries)

		return out
	}
	var out []Entry[R]
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if v := m.data[i*m.cols+j]; !v.IsZero() {
				out = append(out, Entry[R]{Row: i, Col: j, Value: v})
			}
		}
	}

	return out
}

// NonZeroCount returns the number of nonzero entries.
func (m *Matrix[R]) NonZeroCount() int {
	if m.storage == Sparse {
		return len(m.entries)
	}
	n := 0
	for _, v := range m.data {
		if !v.IsZero() {
			n++
		}
	}

	return n
}

// ToDense returns m in dense layout (m itself when already dense).
func (m *Matrix[R]) ToDense() *Matrix[R] {
	if m.storage == Dense {
		return m
	}
	data := make([]R, m.rows*m.cols)
	for _, e := range m.entries {
		data[e.Row*m.cols+e.Col] = e.Value
	}

	return &Matrix[R]{rows: m.rows, cols: m.cols, storage: Dense, data: data}
}

// ToSparse returns m in sparse layout (m itself when already sparse).
func (m *Matrix[R]) ToSparse() *Matrix[R] {
	if m.storage == Sparse {
		return m
	}

	return &Matrix[R]{rows: m.rows, cols: m.cols, storage: Sparse, entries: m.NonZero()}
}

// withStorage converts to the requested layout.
func (m *Matrix[R]) withStorage(s Storage) *Matrix[R] {
	if s == Sparse {
		return m.ToSparse()
	}

	return m.ToDense()
}

// Equal reports same shape and equal elements, independent of storage.
func (m *Matrix[R]) Equal(o *Matrix[R]) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	if m.storage == Dense && o.storage == Dense {
		for k := range m.data {
			if !m.data[k].Equal(o.data[k]) {
				return false
			}
		}

		return true
	}
	a, b := m.NonZero(), o.NonZero()
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if a[k].Row != b[k].Row || a[k].Col != b[k].Col || !a[k].Value.Equal(b[k].Value) {
			return false
		}
	}

	return true
}

// IsZero reports whether every element is zero.
func (m *Matrix[R]) IsZero() bool { return m.NonZeroCount() == 0 }

// IsDiagonal reports whether every nonzero element lies on the main diagonal.
func (m *Matrix[R]) IsDiagonal() bool {
	for _, e := range m.NonZero() {
		if e.Row != e.Col {
			return false
		}
	}

	return true
}

// Diagonal returns the min(rows, cols) main-diagonal elements.
func (m *Matrix[R]) Diagonal() []R {
	n := min(m.rows, m.cols)
	out := make([]R, n)
	for i := 0; i < n; i++ {
		out[i] = m.at(i, i)
	}

	return out
}

// Submatrix returns rows [r0, r1) and columns [c0, c1).
func (m *Matrix[R]) Submatrix(r0, r1, c0, c1 int) (*Matrix[R], error) {
	if err := validateRange(r0, r1, m.rows); err != nil {
		return nil, matrixErrorf("Submatrix", err)
	}
	if err := validateRange(c0, c1, m.cols); err != nil {
		return nil, matrixErrorf("Submatrix", err)
	}
	rows, cols := r1-r0, c1-c0
	data := make([]R, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = m.at(r0+i, c0+j)
		}
	}

	return fromDense(rows, cols, m.storage, data), nil
}

// Select returns the matrix formed by the listed rows and columns, in the given order.
// Repeated indices are allowed.
func (m *Matrix[R]) Select(rowIdx, colIdx []int) (*Matrix[R], error) {
	for _, i := range rowIdx {
		if i < 0 || i >= m.rows {
			return nil, matrixErrorf("Select", ErrOutOfRange)
		}
	}
	for _, j := range colIdx {
		if j < 0 || j >= m.cols {
			return nil, matrixErrorf("Select", ErrOutOfRange)
		}
	}
	rows, cols := len(rowIdx), len(colIdx)
	data := make([]R, rows*cols)
	for a, i := range rowIdx {
		for b, j := range colIdx {
			data[a*cols+b] = m.at(i, j)
		}
	}

	return fromDense(rows, cols, m.storage, data), nil
}
