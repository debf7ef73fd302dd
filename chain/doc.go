// SPDX-License-Identifier: MIT

// Package chain builds chain complexes C_n → … → C_0 → 0 over a coefficient ring and
// provides formal chains (R-linear combinations of basis simplices).
//
// Conventions:
//   - Degree i has the basis Basis(i) (ordered as the source complex orders its cells).
//   - Boundary(i) is the Rank(i-1)×Rank(i) matrix of ∂_i; ∂_0 is 0×Rank(0) and every
//     degree outside 0..Dim() has rank 0, so Boundary is defined for all i.
//   - FromSimplicial uses the incidence signs (-1)^k; FromFiltration uses the graded
//     entries (-1)^k · x^{t(σ)-t(τ)} over K[x], t being the birth time.
//
// Eliminations of the boundary maps are computed on demand and cached per degree;
// a failed or cancelled elimination is not cached. A Complex is safe for concurrent use.
package chain
