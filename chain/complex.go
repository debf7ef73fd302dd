// SPDX-License-Identifier: MIT

package chain

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/elimination"
	"github.com/katalvlaran/homalg/matrix"
	"github.com/katalvlaran/homalg/simplicial"
)

// Complex is a finite chain complex over R with simplicial bases.
type Complex[R algebra.Ring[R]] struct {
	bases   [][]simplicial.Simplex
	index   []map[string]int
	maps    []*matrix.Matrix[R] // maps[i] = ∂_i
	storage matrix.Storage
	logger  log.FieldLogger

	slots []eliminationSlot[R] // one per degree 0..Dim()+1
}

// eliminationSlot serializes the first elimination of one boundary map.
type eliminationSlot[R algebra.Ring[R]] struct {
	mu  sync.Mutex
	res *elimination.Result[R]
}

// New assembles a complex from per-degree bases and boundary maps (maps[i] = ∂_i).
// Errors: ErrBoundaryShape when len(maps) ≠ len(bases) or a map has the wrong shape.
func New[R algebra.Ring[R]](bases [][]simplicial.Simplex, maps []*matrix.Matrix[R], opts ...Option) (*Complex[R], error) {
	if len(maps) != len(bases) {
		return nil, chainErrorf("New", ErrBoundaryShape)
	}
	for i, m := range maps {
		below := 0
		if i > 0 {
			below = len(bases[i-1])
		}
		if m == nil || m.Rows() != below || m.Cols() != len(bases[i]) {
			return nil, chainErrorf(fmt.Sprintf("New: ∂_%d", i), ErrBoundaryShape)
		}
	}

	o := gatherOptions(opts...)
	c := &Complex[R]{
		bases:   make([][]simplicial.Simplex, len(bases)),
		index:   make([]map[string]int, len(bases)),
		maps:    make([]*matrix.Matrix[R], len(maps)),
		storage: o.storage,
		logger:  o.logger,
		slots:   make([]eliminationSlot[R], len(bases)+1),
	}
	for i, b := range bases {
		c.bases[i] = append([]simplicial.Simplex(nil), b...)
		c.index[i] = make(map[string]int, len(b))
		for k, s := range b {
			c.index[i][s.Key()] = k
		}
		c.maps[i] = convert(maps[i], o.storage)
	}

	return c, nil
}

func convert[R algebra.Ring[R]](m *matrix.Matrix[R], s matrix.Storage) *matrix.Matrix[R] {
	if s == matrix.Sparse {
		return m.ToSparse()
	}

	return m.ToDense()
}

// Dim returns the top degree with a basis; -1 for the empty complex.
func (c *Complex[R]) Dim() int { return len(c.bases) - 1 }

// Rank returns the size of the basis in degree i (0 outside 0..Dim()).
func (c *Complex[R]) Rank(i int) int {
	if i < 0 || i >= len(c.bases) {
		return 0
	}

	return len(c.bases[i])
}

// Basis returns a copy of the degree-i basis.
func (c *Complex[R]) Basis(i int) []simplicial.Simplex {
	if i < 0 || i >= len(c.bases) {
		return nil
	}

	return append([]simplicial.Simplex(nil), c.bases[i]...)
}

// Storage returns the boundary-matrix layout.
func (c *Complex[R]) Storage() matrix.Storage { return c.storage }

// Boundary returns ∂_i as a Rank(i-1)×Rank(i) matrix.
func (c *Complex[R]) Boundary(i int) *matrix.Matrix[R] {
	if i >= 0 && i < len(c.maps) {
		return c.maps[i]
	}
	z, _ := matrix.Zero[R](c.Rank(i-1), c.Rank(i), matrix.WithStorage(c.storage))

	return z
}

// Validate checks ∂_{i-1}∘∂_i = 0 for every degree. Intended for tests and
// diagnostics; the homology engine does not call it.
func (c *Complex[R]) Validate() error {
	for i := 1; i < len(c.maps); i++ {
		prod, err := c.maps[i-1].Mul(c.maps[i])
		if err != nil {
			return chainErrorf("Validate", err)
		}
		if !prod.IsZero() {
			return chainErrorf(fmt.Sprintf("Validate: ∂_%d∘∂_%d", i-1, i), ErrNotComplex)
		}
	}

	return nil
}

// Elimination returns the Smith normal form of ∂_i, computing it on first use.
// Only successful results are cached, so a cancelled call can be retried.
// Errors: algebra.ErrCapability (R not Euclidean), elimination.ErrCancelled.
func (c *Complex[R]) Elimination(ctx context.Context, i int) (*elimination.Result[R], error) {
	if i < 0 || i >= len(c.slots) {
		return elimination.Eliminate(c.Boundary(i),
			elimination.WithContext(ctx), elimination.WithLogger(c.logger))
	}

	slot := &c.slots[i]
	slot.mu.Lock()
	defer slot.mu.Unlock()
	if slot.res != nil {
		return slot.res, nil
	}
	logger := c.logger.WithField("degree", i)
	res, err := elimination.Eliminate(c.Boundary(i),
		elimination.WithContext(ctx), elimination.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("chain: Elimination(∂_%d): %w", i, err)
	}
	slot.res = res

	return res, nil
}

// ChainOf turns a coordinate vector of degree i into a Chain.
// Errors: matrix.ErrElementCount when len(v) ≠ Rank(i).
func (c *Complex[R]) ChainOf(i int, v []R) (Chain[R], error) {
	if len(v) != c.Rank(i) {
		return Chain[R]{}, chainErrorf("ChainOf", matrix.ErrElementCount)
	}
	terms := make([]Term[R], 0, len(v))
	for k, x := range v {
		terms = append(terms, Term[R]{Simplex: c.bases[i][k], Coeff: x})
	}

	return NewChain(terms...), nil
}

// Coordinates returns the coefficient vector of ch in the degree-i basis.
// Errors: ErrNotInBasis for a term outside Basis(i).
func (c *Complex[R]) Coordinates(i int, ch Chain[R]) ([]R, error) {
	v := make([]R, c.Rank(i))
	for _, t := range ch.terms {
		if i < 0 || i >= len(c.index) {
			return nil, chainErrorf("Coordinates", ErrNotInBasis)
		}
		k, ok := c.index[i][t.Simplex.Key()]
		if !ok {
			return nil, chainErrorf(fmt.Sprintf("Coordinates(%s)", t.Simplex), ErrNotInBasis)
		}
		v[k] = t.Coeff
	}

	return v, nil
}

// Apply returns ∂ch computed with the stored boundary matrix of ch's degree.
// The zero chain maps to the zero chain. Errors: ErrMixedDegree, ErrNotInBasis.
func (c *Complex[R]) Apply(ch Chain[R]) (Chain[R], error) {
	if ch.IsZero() {
		return ch, nil
	}
	i, err := ch.Degree()
	if err != nil {
		return Chain[R]{}, chainErrorf("Apply", err)
	}
	if i == 0 {
		return Chain[R]{}, nil
	}
	v, err := c.Coordinates(i, ch)
	if err != nil {
		return Chain[R]{}, chainErrorf("Apply", err)
	}
	col, err := matrix.FromColumns(len(v), [][]R{v})
	if err != nil {
		return Chain[R]{}, chainErrorf("Apply", err)
	}
	img, err := c.maps[i].Mul(col)
	if err != nil {
		return Chain[R]{}, chainErrorf("Apply", err)
	}
	out, _ := img.Col(0)

	return c.ChainOf(i-1, out)
}
