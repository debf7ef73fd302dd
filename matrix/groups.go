// SPDX-License-Identifier: MIT
// Package matrix: classical matrix groups as membership predicates.
//
// GeneralLinear, SpecialLinear and Symplectic are zero-size types implementing
// algebra.Predicate[*Matrix[R]]; the matrix dimension is read from the candidate,
// so one predicate type serves every n. Membership is decided exactly:
//
//	GL(n, R) ∋ g  ⇔  det g is a unit of R
//	SL(n, R) ∋ g  ⇔  det g = 1
//	Sp(2n, K) ∋ g ⇔  gᵀ·J·g = J,  J = [[0, -I], [I, 0]]
//
// Determinants use the permutation expansion, so GL and SL checks are meant for
// small matrices.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/homalg/algebra"
)

// GeneralLinear selects the invertible square matrices over R.
type GeneralLinear[R algebra.Ring[R]] struct{}

// Contains reports whether g is square with a unit determinant.
func (GeneralLinear[R]) Contains(g *Matrix[R]) bool {
	if g == nil || validateSquare(g.rows, g.cols) != nil {
		return false
	}
	d, err := g.Determinant()

	return err == nil && d.IsUnit()
}

// Symbol names the group for n×n matrices, e.g. "GL(3, Z)".
func (GeneralLinear[R]) Symbol(n int) string {
	return fmt.Sprintf("GL(%d, %s)", n, algebra.SymbolOf[R]())
}

// SpecialLinear selects the square matrices of determinant 1 over R.
type SpecialLinear[R algebra.Ring[R]] struct{}

// Contains reports whether g is square with det g = 1.
func (SpecialLinear[R]) Contains(g *Matrix[R]) bool {
	if g == nil || validateSquare(g.rows, g.cols) != nil {
		return false
	}
	d, err := g.Determinant()

	return err == nil && d.Equal(d.One())
}

// Symbol names the group for n×n matrices, e.g. "SL(2, Z)".
func (SpecialLinear[R]) Symbol(n int) string {
	return fmt.Sprintf("SL(%d, %s)", n, algebra.SymbolOf[R]())
}

// Symplectic selects the matrices preserving the standard symplectic form over K.
type Symplectic[K algebra.Field[K]] struct{}

// Contains reports whether g is 2n×2n and gᵀ·J·g = J for J = StandardSymplectic(n).
func (Symplectic[K]) Contains(g *Matrix[K]) bool {
	if g == nil || validateSquare(g.rows, g.cols) != nil || g.rows%2 != 0 {
		return false
	}
	j := standardSymplectic[K](g.rows/2, g.storage)
	gtj, err := g.Transpose().Mul(j)
	if err != nil {
		return false
	}
	gtjg, err := gtj.Mul(g)

	return err == nil && gtjg.Equal(j)
}

// Symbol names the group for size×size matrices, e.g. "Sp(4, Q)".
func (Symplectic[K]) Symbol(size int) string {
	return fmt.Sprintf("Sp(%d, %s)", size, algebra.SymbolOf[K]())
}

// StandardSymplectic returns the 2n×2n matrix J with -1 at (i, n+i) and 1 at (n+i, i).
//
// Errors: ErrBadShape for n < 0.
//
// Complexity: O(n) entries in sparse storage, O(n²) in dense.
func StandardSymplectic[R algebra.Ring[R]](n int, opts ...Option) (*Matrix[R], error) {
	if err := validateShape(n, n); err != nil {
		return nil, matrixErrorf("StandardSymplectic", err)
	}
	o := gatherOptions(DefaultStorage, opts...)

	return standardSymplectic[R](n, o.storage), nil
}

func standardSymplectic[R algebra.Ring[R]](n int, s Storage) *Matrix[R] {
	var one R
	one = one.One()
	entries := make([]Entry[R], 0, 2*n)
	for i := 0; i < n; i++ {
		entries = append(entries, Entry[R]{Row: i, Col: n + i, Value: one.Neg()})
	}
	for i := 0; i < n; i++ {
		entries = append(entries, Entry[R]{Row: n + i, Col: i, Value: one})
	}
	j := &Matrix[R]{rows: 2 * n, cols: 2 * n, storage: Sparse, entries: entries}
	if s == Dense {
		return j.ToDense()
	}

	return j
}

// CheckMember returns g unchanged when P accepts it, and an error wrapping
// algebra.ErrNotMember otherwise.
//
//	g, err := matrix.CheckMember[numbers.Rational, matrix.Symplectic[numbers.Rational]](g)
func CheckMember[R algebra.Ring[R], P algebra.Predicate[*Matrix[R]]](g *Matrix[R]) (*Matrix[R], error) {
	var p P
	if !p.Contains(g) {
		return nil, matrixErrorf("CheckMember", algebra.ErrNotMember)
	}

	return g, nil
}
