// SPDX-License-Identifier: MIT
// Package: homalg/builder
//
// simplex_set.go: the accumulator shared by constructors.

package builder

import "github.com/katalvlaran/homalg/simplicial"

// simplexSet collects generating simplices in insertion order; closure happens
// once, in the orchestrator.
type simplexSet struct {
	simplices []simplicial.Simplex
	next      int // one past the largest vertex id added so far
}

// offset is the id of local vertex 0 for the next constructor.
func (s *simplexSet) offset(cfg builderConfig) int {
	if cfg.disjoint {
		return s.next
	}

	return 0
}

// add records the simplex on off+local ids.
func (s *simplexSet) add(off int, local ...int) {
	vs := make([]simplicial.Vertex, len(local))
	for i, v := range local {
		vs[i] = simplicial.Vertex(off + v)
		s.next = max(s.next, off+v+1)
	}
	s.simplices = append(s.simplices, simplicial.MustSimplex(vs...))
}

// complex closes the collected simplices, applying the skeleton cap and labels.
func (s *simplexSet) complex(cfg builderConfig) *simplicial.Complex {
	var opts []simplicial.Option
	if cfg.labelFn != nil {
		labels := make(map[simplicial.Vertex]string, s.next)
		for v := 0; v < s.next; v++ {
			labels[simplicial.Vertex(v)] = cfg.labelFn(v)
		}
		opts = append(opts, simplicial.WithLabels(labels))
	}
	c := simplicial.NewComplex(s.simplices, opts...)
	if cfg.maxDim != unlimitedDim && c.Dim() > cfg.maxDim {
		c = c.Skeleton(cfg.maxDim)
	}

	return c
}
