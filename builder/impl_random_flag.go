// SPDX-License-Identifier: MIT
// Package: homalg/builder
//
// impl_random_flag.go: RandomFlag(n, p) and RandomFlagFiltration(n, p).
//
// Model:
//   - Erdős–Rényi graph: each pair {i,j}, i<j, is an edge with probability p,
//     trials in ascending (i, j) order.
//   - Flag (clique) complex: every clique of size ≤ flagDim+1 becomes a simplex.
//   - Filtration variant: each sampled edge draws an entry time from cfg.timeFn;
//     a clique enters when its last edge does; vertices enter at step 0.
//
// Contract:
//   - n ≥ MinRandomFlagVertices (ErrTooFewVertices), 0 ≤ p ≤ 1 (ErrInvalidProbability),
//     RNG required for 0 < p < 1 (ErrNeedRandSource).
//
// Complexity:
//   - O(n²) Bernoulli trials; clique enumeration O(n·C(n, k)) for k = flagDim+1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/homalg/simplicial"
)

// flagGraph is the sampled 1-skeleton with per-edge entry times.
type flagGraph struct {
	n    int
	adj  [][]bool
	time [][]int
}

// sampleFlagGraph validates (n, p) and draws the edges.
func sampleFlagGraph(n int, p float64, cfg builderConfig) (*flagGraph, error) {
	if err := validateMin(MethodRandomFlag, "n", n, MinRandomFlagVertices); err != nil {
		return nil, err
	}
	if err := validateProbability(MethodRandomFlag, p); err != nil {
		return nil, err
	}
	if err := validateRand(MethodRandomFlag, cfg, p); err != nil {
		return nil, err
	}

	g := &flagGraph{n: n, adj: make([][]bool, n), time: make([][]int, n)}
	for i := range g.adj {
		g.adj[i] = make([]bool, n)
		g.time[i] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var keep bool
			switch p {
			case MaxProbability:
				keep = true
			case MinProbability:
				keep = false
			default:
				keep = cfg.rng.Float64() < p
			}
			if !keep {
				continue
			}
			t := cfg.timeFn(cfg.rng)
			if t < 0 {
				return nil, fmt.Errorf("%s: negative entry time %d for edge {%d,%d}: %w",
					MethodRandomFlag, t, i, j, ErrConstructFailed)
			}
			g.adj[i][j], g.adj[j][i] = true, true
			g.time[i][j], g.time[j][i] = t, t
		}
	}

	return g, nil
}

// cliques calls visit for every clique with at most maxSize vertices, in
// lexicographic order, together with its entry time.
func (g *flagGraph) cliques(maxSize int, visit func(vs []int, t int)) {
	var extend func(vs []int, t int)
	extend = func(vs []int, t int) {
		visit(vs, t)
		if len(vs) == maxSize {
			return
		}
		for w := vs[len(vs)-1] + 1; w < g.n; w++ {
			tw, ok := t, true
			for _, v := range vs {
				if !g.adj[v][w] {
					ok = false
					break
				}
				tw = max(tw, g.time[v][w])
			}
			if ok {
				next := make([]int, len(vs), len(vs)+1)
				copy(next, vs)
				extend(append(next, w), tw)
			}
		}
	}
	for v := 0; v < g.n; v++ {
		extend([]int{v}, 0)
	}
}

// RandomFlag adds the flag complex of a seeded Erdős–Rényi graph on n vertices.
func RandomFlag(n int, p float64) Constructor {
	return func(set *simplexSet, cfg builderConfig) error {
		g, err := sampleFlagGraph(n, p, cfg)
		if err != nil {
			return err
		}
		off := set.offset(cfg)
		g.cliques(cfg.flagDim()+1, func(vs []int, _ int) { set.add(off, vs...) })

		return nil
	}
}

// RandomFlagFiltration samples a flag complex whose simplices enter at the time of
// their latest edge (cfg.timeFn, default step 0). The filtration has
// max(entry time)+1 stages.
func RandomFlagFiltration(n int, p float64, opts ...BuilderOption) (*simplicial.Filtration, error) {
	cfg := newBuilderConfig(opts...)
	g, err := sampleFlagGraph(n, p, cfg)
	if err != nil {
		return nil, fmt.Errorf("RandomFlagFiltration: %w", err)
	}

	var additions [][]simplicial.Simplex
	g.cliques(cfg.flagDim()+1, func(vs []int, t int) {
		for len(additions) <= t {
			additions = append(additions, nil)
		}
		local := make([]simplicial.Vertex, len(vs))
		for i, v := range vs {
			local[i] = simplicial.Vertex(v)
		}
		additions[t] = append(additions[t], simplicial.MustSimplex(local...))
	})

	f, err := simplicial.FromStages(additions...)
	if err != nil {
		return nil, fmt.Errorf("RandomFlagFiltration: %w: %w", ErrConstructFailed, err)
	}

	return f, nil
}
