// SPDX-License-Identifier: MIT

// Package polynomial implements the univariate polynomial ring K[x] over a field K.
//
// What:
//   - Polynomial[K] is a Ring, a EuclideanRing (long division, degree as size,
//     monic canonical associates) and a K-module (Scale).
//   - Extension[K, M] is the principal ideal (m(x)); plugged into
//     algebra.QuotientField it yields algebraic extensions such as ℚ[x]/(x²+1).
//
// Why:
//   - K[x] is the coefficient ring of persistent homology: a boundary entry
//     x^{t(σ)-t(τ)} records how long a face waited for its coface, and the
//     Smith form over K[x] turns those exponents into birth/death times.
//
// Representation:
//   - Coefficients in ascending degree order, trailing zeros trimmed, so the
//     zero polynomial is the empty slice and the Go zero value is usable.
//   - Values are immutable; every operation allocates a fresh coefficient slice.
//
// Complexity:
//   - Add/Sub O(n), Mul O(n·m), DivMod O((n-m+1)·m), Evaluate O(n) (Horner).
package polynomial
