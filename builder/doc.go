// SPDX-License-Identifier: MIT

// Package builder assembles canonical simplicial complexes and filtrations from
// composable, deterministic constructors.
//
// The package offers the following key components:
//
//   - Orchestrators:
//     – BuildComplex:   applies Constructors to a shared simplex set and closes it.
//     – BuildFiltration: one Constructor per stage; stage t holds stages 0..t.
//     – RandomFlagFiltration: seeded flag complex with per-edge entry times.
//   - Constructors (Constructor closures):
//     – Point, Cycle(n), Simplex(n), Sphere(n), Disk(n).
//     – Torus (7 vertices), ProjectivePlane (6 vertices), KleinBottle (9 vertices).
//     – RandomFlag(n, p): clique complex of a seeded Erdős–Rényi graph.
//   - Options (BuilderOption):
//     – WithSeed / WithRand:     randomness for RandomFlag*.
//     – WithMaxDim:              truncate to the k-skeleton.
//     – WithDisjointUnion:       give each constructor fresh vertex ids.
//     – WithLabelScheme & co.:   vertex display labels (DefaultLabelFn, SymbolLabelFn, …).
//     – WithTimeFn & co.:        entry-time distribution for RandomFlagFiltration.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical complexes.
//   - Constructors never panic; they return errors wrapping the package sentinels
//     (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed).
//   - Option constructors panic on meaningless values (nil functions, negative bounds).
//
// Vertex numbering: each constructor numbers its vertices 0..n-1; with WithDisjointUnion
// the numbering is shifted past every vertex used by earlier constructors, otherwise
// constructors share vertex ids and their simplices are glued.
package builder
