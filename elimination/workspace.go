// SPDX-License-Identifier: MIT
// Package elimination: the mutable working state of one reduction.
//
// A workspace is owned by a single Eliminate call and never shared. Every public
// step applies the same elementary operation to A and to the matching transform,
// and the inverse operation to the matching inverse transform:
//
//	row op E on A  ⇒  P ← E·P,   P⁻¹ ← P⁻¹·E⁻¹
//	col op F on A  ⇒  Q ← Q·F,   Q⁻¹ ← F⁻¹·Q⁻¹

package elimination

import "github.com/katalvlaran/homalg/algebra"

type workspace[R algebra.Ring[R]] struct {
	rows, cols int
	a          [][]R // rows × cols, equals P·A·Q at every step
	p, pInv    [][]R // rows × rows
	q, qInv    [][]R // cols × cols
}

func newWorkspace[R algebra.Ring[R]](a [][]R, rows, cols int) *workspace[R] {
	return &workspace[R]{
		rows: rows, cols: cols, a: a,
		p: identity[R](rows), pInv: identity[R](rows),
		q: identity[R](cols), qInv: identity[R](cols),
	}
}

func identity[R algebra.Ring[R]](n int) [][]R {
	var one R
	one = one.One()
	m := make([][]R, n)
	for i := range m {
		m[i] = make([]R, n)
		m[i][i] = one
	}

	return m
}

// rowAdd: row_dst += c·row_src.
func (w *workspace[R]) rowAdd(dst, src int, c R) {
	if c.IsZero() {
		return
	}
	addRowMultiple(w.a, dst, src, c)
	addRowMultiple(w.p, dst, src, c)
	addColMultiple(w.pInv, src, dst, c.Neg())
}

// colAdd: col_dst += c·col_src.
func (w *workspace[R]) colAdd(dst, src int, c R) {
	if c.IsZero() {
		return
	}
	addColMultiple(w.a, dst, src, c)
	addColMultiple(w.q, dst, src, c)
	addRowMultiple(w.qInv, src, dst, c.Neg())
}

func (w *workspace[R]) rowSwap(i, j int) {
	if i == j {
		return
	}
	w.a[i], w.a[j] = w.a[j], w.a[i]
	w.p[i], w.p[j] = w.p[j], w.p[i]
	swapCols(w.pInv, i, j)
}

func (w *workspace[R]) colSwap(i, j int) {
	if i == j {
		return
	}
	swapCols(w.a, i, j)
	swapCols(w.q, i, j)
	w.qInv[i], w.qInv[j] = w.qInv[j], w.qInv[i]
}

// rowScale multiplies row i by the unit u (uInv = u⁻¹).
func (w *workspace[R]) rowScale(i int, u, uInv R) {
	for j := range w.a[i] {
		w.a[i][j] = u.Mul(w.a[i][j])
	}
	for j := range w.p[i] {
		w.p[i][j] = u.Mul(w.p[i][j])
	}
	for r := range w.pInv {
		w.pInv[r][i] = w.pInv[r][i].Mul(uInv)
	}
}

// rowCombine replaces (row_i, row_j) by (s·row_i + t·row_j, u·row_i + v·row_j).
// The 2×2 matrix [[s, t], [u, v]] must have determinant 1.
func (w *workspace[R]) rowCombine(i, j int, s, t, u, v R) {
	combineRows(w.a, i, j, s, t, u, v)
	combineRows(w.p, i, j, s, t, u, v)
	// inverse [[v, -t], [-u, s]] acts on the columns of P⁻¹ from the right
	combineCols(w.pInv, i, j, v, u.Neg(), t.Neg(), s)
}

func addRowMultiple[R algebra.Ring[R]](m [][]R, dst, src int, c R) {
	for j, x := range m[src] {
		if !x.IsZero() {
			m[dst][j] = m[dst][j].Add(c.Mul(x))
		}
	}
}

func addColMultiple[R algebra.Ring[R]](m [][]R, dst, src int, c R) {
	for _, row := range m {
		if x := row[src]; !x.IsZero() {
			row[dst] = row[dst].Add(x.Mul(c))
		}
	}
}

func swapCols[R any](m [][]R, i, j int) {
	for _, row := range m {
		row[i], row[j] = row[j], row[i]
	}
}

func combineRows[R algebra.Ring[R]](m [][]R, i, j int, s, t, u, v R) {
	ri, rj := m[i], m[j]
	for k := range ri {
		x, y := ri[k], rj[k]
		ri[k] = s.Mul(x).Add(t.Mul(y))
		rj[k] = u.Mul(x).Add(v.Mul(y))
	}
}

// combineCols replaces (col_i, col_j) by (col_i·s + col_j·t, col_i·u + col_j·v).
func combineCols[R algebra.Ring[R]](m [][]R, i, j int, s, t, u, v R) {
	for _, row := range m {
		x, y := row[i], row[j]
		row[i] = x.Mul(s).Add(y.Mul(t))
		row[j] = x.Mul(u).Add(y.Mul(v))
	}
}
