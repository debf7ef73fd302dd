// SPDX-License-Identifier: MIT

// Package simplicial models finite abstract simplicial complexes and filtrations.
//
// What:
//   - Simplex: a nonempty, sorted, duplicate-free tuple of Vertex ids. Its i-th face
//     omits the i-th vertex and carries the incidence sign (-1)^i.
//   - Complex: the downward closure of a set of simplices, grouped by dimension.
//     Within a dimension cells are ordered lexicographically, which fixes the basis
//     order of every chain group derived from the complex.
//   - Filtration: nested complexes K₀ ⊆ K₁ ⊆ … ⊆ Kₙ; the birth time of a simplex
//     is the first index containing it.
//
// Determinism:
//   - All enumerations are ordered (dimension, then lexicographic vertex order).
//   - Values are immutable once constructed; accessors return copies.
//
// Complexity:
//   - NewComplex: O(Σ 2^{|σ|}) for the downward closure plus sorting.
//   - Index/Contains: O(d) map lookup on the simplex key.
package simplicial
