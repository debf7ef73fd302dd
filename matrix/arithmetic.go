// SPDX-License-Identifier: MIT
// Package matrix: element-wise arithmetic, scaling and transpose.
//
// Result layout follows the receiver. Sparse operands are merged entry by entry,
// so Add/Sub on two sparse matrices cost O(nnz(a) + nnz(b)).

package matrix

// Add returns m + o; ErrDimensionMismatch for different shapes.
func (m *Matrix[R]) Add(o *Matrix[R]) (*Matrix[R], error) {
	if err := validateSameShape(m.rows, m.cols, o.rows, o.cols); err != nil {
		return nil, matrixErrorf("Add", err)
	}

	return m.zipWith(o, func(x, y R) R { return x.Add(y) }), nil
}

// Sub returns m - o; ErrDimensionMismatch for different shapes.
func (m *Matrix[R]) Sub(o *Matrix[R]) (*Matrix[R], error) {
	if err := validateSameShape(m.rows, m.cols, o.rows, o.cols); err != nil {
		return nil, matrixErrorf("Sub", err)
	}

	return m.zipWith(o, func(x, y R) R { return x.Sub(y) }), nil
}

// Neg returns -m.
func (m *Matrix[R]) Neg() *Matrix[R] {
	return m.mapValues(func(x R) R { return x.Neg() })
}

// ScaleLeft returns c·m (c multiplies from the left, relevant for non-commutative R).
func (m *Matrix[R]) ScaleLeft(c R) *Matrix[R] {
	return m.mapValues(func(x R) R { return c.Mul(x) })
}

// ScaleRight returns m·c.
func (m *Matrix[R]) ScaleRight(c R) *Matrix[R] {
	return m.mapValues(func(x R) R { return x.Mul(c) })
}

// Transpose returns mᵀ.
func (m *Matrix[R]) Transpose() *Matrix[R] {
	if m.storage == Dense {
		data := make([]R, len(m.data))
		for i := 0; i < m.rows; i++ {
			for j := 0; j < m.cols; j++ {
				data[j*m.rows+i] = m.data[i*m.cols+j]
			}
		}

		return &Matrix[R]{rows: m.cols, cols: m.rows, storage: Dense, data: data}
	}

	// Counting sort by column keeps the output row-major without a comparison sort.
	counts := make([]int, m.cols+1)
	for _, e := range m.entries {
		counts[e.Col+1]++
	}
	for j := 0; j < m.cols; j++ {
		counts[j+1] += counts[j]
	}
	entries := make([]Entry[R], len(m.entries))
	for _, e := range m.entries {
		entries[counts[e.Col]] = Entry[R]{Row: e.Col, Col: e.Row, Value: e.Value}
		counts[e.Col]++
	}

	return &Matrix[R]{rows: m.cols, cols: m.rows, storage: Sparse, entries: entries}
}

// mapValues applies f to every element; f must map zero to zero for sparse input.
func (m *Matrix[R]) mapValues(f func(R) R) *Matrix[R] {
	if m.storage == Dense {
		data := make([]R, len(m.data))
		for k, v := range m.data {
			data[k] = f(v)
		}

		return &Matrix[R]{rows: m.rows, cols: m.cols, storage: Dense, data: data}
	}
	entries := make([]Entry[R], 0, len(m.entries))
	for _, e := range m.entries {
		if v := f(e.Value); !v.IsZero() {
			entries = append(entries, Entry[R]{Row: e.Row, Col: e.Col, Value: v})
		}
	}

	return &Matrix[R]{rows: m.rows, cols: m.cols, storage: Sparse, entries: entries}
}

// zipWith combines same-shaped matrices element-wise; f(0, 0) must be 0.
func (m *Matrix[R]) zipWith(o *Matrix[R], f func(x, y R) R) *Matrix[R] {
	if m.storage == Dense {
		data := make([]R, len(m.data))
		for i := 0; i < m.rows; i++ {
			for j := 0; j < m.cols; j++ {
				k := i*m.cols + j
				data[k] = f(m.data[k], o.at(i, j))
			}
		}

		return &Matrix[R]{rows: m.rows, cols: m.cols, storage: Dense, data: data}
	}

	a, b := m.entries, o.NonZero()
	var zero R
	entries := make([]Entry[R], 0, len(a)+len(b))
	push := func(i, j int, v R) {
		if !v.IsZero() {
			entries = append(entries, Entry[R]{Row: i, Col: j, Value: v})
		}
	}
	x, y := 0, 0
	for x < len(a) || y < len(b) {
		switch {
		case y == len(b) || (x < len(a) && compareEntries(a[x], b[y]) < 0):
			push(a[x].Row, a[x].Col, f(a[x].Value, zero))
			x++
		case x == len(a) || compareEntries(b[y], a[x]) < 0:
			push(b[y].Row, b[y].Col, f(zero, b[y].Value))
			y++
		default:
			push(a[x].Row, a[x].Col, f(a[x].Value, b[y].Value))
			x++
			y++
		}
	}

	return &Matrix[R]{rows: m.rows, cols: m.cols, storage: Sparse, entries: entries}
}

