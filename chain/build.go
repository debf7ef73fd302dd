// SPDX-License-Identifier: MIT

package chain

import (
	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/matrix"
	"github.com/katalvlaran/homalg/polynomial"
	"github.com/katalvlaran/homalg/simplicial"
)

// entryFn returns the ∂ entry for the k-th face τ of σ.
type entryFn[R algebra.Ring[R]] func(sigma, tau simplicial.Simplex, k int) R

// FromSimplicial builds the simplicial chain complex of c over R: ∂_d has the entry
// (-1)^k at (index of face k of σ, index of σ).
func FromSimplicial[R algebra.Ring[R]](c *simplicial.Complex, opts ...Option) (*Complex[R], error) {
	var one R
	one = one.One()

	return assemble[R](c, func(_, _ simplicial.Simplex, k int) R {
		return one.FromInt64(simplicial.FaceSign(k))
	}, opts...)
}

// FromFiltration builds the graded chain complex of f over K[x]: the entry for the
// k-th face τ of σ is (-1)^k·x^{t(σ)-t(τ)}, t being the birth time. The basis is
// the final stage's cells.
func FromFiltration[K algebra.Field[K]](f *simplicial.Filtration, opts ...Option) (*Complex[polynomial.Polynomial[K]], error) {
	var unit K
	unit = unit.One()

	return assemble[polynomial.Polynomial[K]](f.Final(), func(sigma, tau simplicial.Simplex, k int) polynomial.Polynomial[K] {
		ts, _ := f.BirthTime(sigma)
		tt, _ := f.BirthTime(tau)

		return polynomial.Monomial(unit.FromInt64(simplicial.FaceSign(k)), ts-tt)
	}, opts...)
}

// assemble walks the cells of c in basis order and emits one sparse matrix per degree.
func assemble[R algebra.Ring[R]](c *simplicial.Complex, entry entryFn[R], opts ...Option) (*Complex[R], error) {
	top := c.Dim()
	bases := make([][]simplicial.Simplex, top+1)
	maps := make([]*matrix.Matrix[R], top+1)
	for d := 0; d <= top; d++ {
		bases[d] = c.Cells(d)
		rows := c.CellCount(d - 1)
		var entries []matrix.Entry[R]
		if d > 0 {
			entries = make([]matrix.Entry[R], 0, len(bases[d])*(d+1))
			for j, sigma := range bases[d] {
				for k, tau := range sigma.Faces() {
					i, _ := c.Index(tau)
					entries = append(entries, matrix.Entry[R]{Row: i, Col: j, Value: entry(sigma, tau, k)})
				}
			}
		}
		m, err := matrix.NewSparse(rows, len(bases[d]), entries)
		if err != nil {
			return nil, chainErrorf("assemble", err)
		}
		maps[d] = m
	}

	return New(bases, maps, opts...)
}
