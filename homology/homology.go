// SPDX-License-Identifier: MIT

package homology

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/chain"
	"github.com/katalvlaran/homalg/elimination"
	"github.com/katalvlaran/homalg/internal/concurrency"
	"github.com/katalvlaran/homalg/matrix"
)

// Homology holds H_0..H_Dim of a chain complex.
type Homology[R algebra.Ring[R]] struct {
	groups []*Group[R]
}

// Compute returns the homology of cc.
//
// Errors:
//   - algebra.ErrCapability when R is not a EuclideanRing (checked before any work);
//   - elimination.ErrCancelled when ctx is done before every degree finished.
//
// Complexity: three Smith reductions per degree; degrees run concurrently on at
// most WithParallelism workers.
func Compute[R algebra.Ring[R]](ctx context.Context, cc *chain.Complex[R], opts ...Option) (*Homology[R], error) {
	if !algebra.IsEuclidean[R]() {
		var zero R

		return nil, algebra.CapabilityError("homology.Compute", "algebra.EuclideanRing", zero)
	}
	o := gatherOptions(opts...)
	logger := o.logger.WithField("coefficients", algebra.SymbolOf[R]())

	top := cc.Dim()
	h := &Homology[R]{groups: make([]*Group[R], top+1)}
	if top < 0 {
		return h, nil
	}

	pool := concurrency.NewPool(concurrency.Workers(min(o.parallelism, top+1)))
	for i := 0; i <= top; i++ {
		pool.Run(func(worker int) error {
			g, err := degree(ctx, cc, i, o.mul, logger.WithFields(log.Fields{"degree": i, "worker": worker}))
			if err != nil {
				return fmt.Errorf("homology: H_%d: %w", i, err)
			}
			h.groups[i] = g

			return nil
		})
	}
	if err := pool.Wait(); err != nil {
		return nil, err
	}

	return h, nil
}

// degree computes H_i.
func degree[R algebra.Ring[R]](ctx context.Context, cc *chain.Complex[R], i int, mul matrix.MulStrategy, logger log.FieldLogger) (*Group[R], error) {
	cur, err := cc.Elimination(ctx, i)
	if err != nil {
		return nil, err
	}
	next, err := cc.Elimination(ctx, i+1)
	if err != nil {
		return nil, err
	}

	n, r := cc.Rank(i), cur.Rank()
	g := &Group[R]{degree: i}
	if n == r {
		logger.Debug("homology: trivial kernel")

		return g, nil
	}

	// Image generators in Q_i coordinates; the first r rows vanish because im ⊆ ker.
	coords, err := multiply(cur.QInverse(), next.ImageMatrix(), mul)
	if err != nil {
		return nil, err
	}
	b, err := coords.Submatrix(r, n, 0, next.Rank())
	if err != nil {
		return nil, err
	}
	rel, err := elimination.Eliminate(b,
		elimination.WithContext(ctx), elimination.WithLogger(logger.WithField("stage", "relations")))
	if err != nil {
		return nil, err
	}
	basis, err := multiply(cur.KernelMatrix(), rel.PInverse(), mul)
	if err != nil {
		return nil, err
	}

	divisors := rel.Diagonal()
	var torsion []Summand[R]
	for j := 0; j < basis.Cols(); j++ {
		col, _ := basis.Col(j)
		z, err := cc.ChainOf(i, col)
		if err != nil {
			return nil, err
		}
		switch {
		case j >= rel.Rank():
			g.summands = append(g.summands, NewFree(z))
		case divisors[j].IsUnit():
		default:
			torsion = append(torsion, NewTorsion(divisors[j], z))
		}
	}
	g.summands = append(g.summands, torsion...)

	logger.WithFields(log.Fields{"rank": g.Rank(), "torsion": len(torsion)}).Debug("homology: degree computed")

	return g, nil
}

// multiply uses s when set and the storage-driven default otherwise.
func multiply[R algebra.Ring[R]](a, b *matrix.Matrix[R], s matrix.MulStrategy) (*matrix.Matrix[R], error) {
	if s == nil {
		return a.Mul(b)
	}

	return a.MulWith(b, s)
}

// Dim returns the top degree.
func (h *Homology[R]) Dim() int { return len(h.groups) - 1 }

// Group returns H_i; degrees outside 0..Dim() are trivial.
func (h *Homology[R]) Group(i int) *Group[R] {
	if i < 0 || i >= len(h.groups) {
		return &Group[R]{degree: i}
	}

	return h.groups[i]
}

// Groups returns H_0..H_Dim.
func (h *Homology[R]) Groups() []*Group[R] { return append([]*Group[R](nil), h.groups...) }

// Betti returns the free ranks of H_0..H_Dim.
func (h *Homology[R]) Betti() []int {
	out := make([]int, len(h.groups))
	for i, g := range h.groups {
		out[i] = g.Rank()
	}

	return out
}

// EulerCharacteristic returns Σ (-1)^i rank H_i.
func (h *Homology[R]) EulerCharacteristic() int {
	chi := 0
	for i, b := range h.Betti() {
		if i%2 == 0 {
			chi += b
		} else {
			chi -= b
		}
	}

	return chi
}

// Format renders one "H_i = …" line per degree.
func (h *Homology[R]) Format(style Style) string {
	lines := make([]string, len(h.groups))
	for i, g := range h.groups {
		lines[i] = fmt.Sprintf("H_%d = %s", i, g.Format(style))
	}

	return strings.Join(lines, "\n")
}

func (h *Homology[R]) String() string { return h.Format(Unicode) }
