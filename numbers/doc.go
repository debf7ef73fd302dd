// SPDX-License-Identifier: MIT

// Package numbers provides the concrete exact coefficient types used by homalg.
//
//   - Int: arbitrary-precision integers ℤ (EuclideanRing, size = |n|).
//   - Rational: ℚ, always stored in lowest terms with a positive denominator (Field).
//   - Fr: the BLS12-377 scalar field, a large prime field backed by gnark-crypto (Field).
//   - IntIdeal[M]: the ideal nℤ, giving ℤ/n via algebra.QuotientRing / QuotientField
//     (aliases Z2, Z3, Z5, Z7 are fields, Z4 is a ring with zero divisors).
//
// All types are immutable values whose Go zero value is the additive zero.
// Field types also implement algebra.EuclideanRing with the constant field size, so
// the elimination engine can diagonalize over them.
package numbers
