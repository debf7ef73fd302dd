// SPDX-License-Identifier: MIT

package persistence

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/chain"
	"github.com/katalvlaran/homalg/homology"
	"github.com/katalvlaran/homalg/polynomial"
	"github.com/katalvlaran/homalg/simplicial"
)

// Diagram is the set of persistence intervals of a filtration, per degree.
type Diagram[K algebra.Field[K]] struct {
	stages    int
	intervals [][]Interval[K]
}

// Compute builds the graded chain complex of f, computes its homology over K[x] and
// decodes every summand into an interval.
// Errors: elimination.ErrCancelled when ctx is done; construction errors from chain.
func Compute[K algebra.Field[K]](ctx context.Context, f *simplicial.Filtration, opts ...Option) (*Diagram[K], error) {
	o := gatherOptions(opts...)
	cc, err := chain.FromFiltration[K](f, o.chain...)
	if err != nil {
		return nil, fmt.Errorf("persistence: %w", err)
	}
	h, err := homology.Compute(ctx, cc, o.homology...)
	if err != nil {
		return nil, fmt.Errorf("persistence: %w", err)
	}

	d := &Diagram[K]{stages: f.Len(), intervals: make([][]Interval[K], h.Dim()+1)}
	for i, g := range h.Groups() {
		for _, s := range g.Summands() {
			iv, err := decode[K](f, i, s)
			if err != nil {
				return nil, fmt.Errorf("persistence: H_%d: %w", i, err)
			}
			d.intervals[i] = append(d.intervals[i], iv)
		}
		slices.SortStableFunc(d.intervals[i], Interval[K].compare)
	}

	return d, nil
}

// decode turns a K[x]-summand into an interval.
func decode[K algebra.Field[K]](f *simplicial.Filtration, degree int, s homology.Summand[polynomial.Polynomial[K]]) (Interval[K], error) {
	terms := s.Generator().Terms()
	if len(terms) == 0 {
		return Interval[K]{}, fmt.Errorf("empty generator: %w", algebra.ErrDomain)
	}
	born, err := f.BirthTime(terms[0].Simplex)
	if err != nil {
		return Interval[K]{}, err
	}

	iv := Interval[K]{degree: degree, birth: terms[0].Coeff.LowestDegree() + born, infinite: s.IsFree()}
	if !iv.infinite {
		iv.death = iv.birth + s.Divisor().Degree()
	}
	flat := make([]chain.Term[K], len(terms))
	for k, t := range terms {
		flat[k] = chain.Term[K]{Simplex: t.Simplex, Coeff: t.Coeff.LeadCoeff()}
	}
	iv.generator = chain.NewChain(flat...)

	return iv, nil
}

// Dim returns the top degree.
func (d *Diagram[K]) Dim() int { return len(d.intervals) - 1 }

// Stages returns the number of filtration stages.
func (d *Diagram[K]) Stages() int { return d.stages }

// Intervals returns the degree-i intervals ordered by (birth, death).
func (d *Diagram[K]) Intervals(i int) []Interval[K] {
	if i < 0 || i >= len(d.intervals) {
		return nil
	}

	return append([]Interval[K](nil), d.intervals[i]...)
}

// All returns every interval, degree by degree.
func (d *Diagram[K]) All() []Interval[K] {
	var out []Interval[K]
	for _, ivs := range d.intervals {
		out = append(out, ivs...)
	}

	return out
}

// BettiAt returns the number of degree-i classes alive at stage t, which equals
// dim H_i(K_t; K).
func (d *Diagram[K]) BettiAt(i, t int) int {
	n := 0
	for _, iv := range d.Intervals(i) {
		if iv.Alive(t) {
			n++
		}
	}

	return n
}

// Format lists the intervals per degree with their generators:
//
//	H_1:
//		[1, 3) : [0,1] - [0,2] + [1,2]
func (d *Diagram[K]) Format(style homology.Style) string {
	blocks := make([]string, len(d.intervals))
	for i, ivs := range d.intervals {
		var sb strings.Builder
		fmt.Fprintf(&sb, "H_%d:", i)
		for _, iv := range ivs {
			fmt.Fprintf(&sb, "\n\t%s : %s", iv.Format(style), iv.generator)
		}
		blocks[i] = sb.String()
	}

	return strings.Join(blocks, "\n")
}

func (d *Diagram[K]) String() string { return d.Format(homology.Unicode) }

// Barcode draws one bar per interval across the filtration stages:
//
//	H_0 [0, ∞) ████
//	H_1 [1, 3) ·██·
func (d *Diagram[K]) Barcode(style homology.Style) string {
	alive, dead := "█", "·"
	if style == homology.ASCII {
		alive, dead = "#", "."
	}

	var lines []string
	width := 0
	for _, iv := range d.All() {
		width = max(width, len([]rune(iv.Format(style))))
	}
	for _, iv := range d.All() {
		label := iv.Format(style)
		var sb strings.Builder
		fmt.Fprintf(&sb, "H_%d %s%s ", iv.degree, label, strings.Repeat(" ", width-len([]rune(label))))
		for t := 0; t < d.stages; t++ {
			if iv.Alive(t) {
				sb.WriteString(alive)
			} else {
				sb.WriteString(dead)
			}
		}
		lines = append(lines, sb.String())
	}

	return strings.Join(lines, "\n")
}
