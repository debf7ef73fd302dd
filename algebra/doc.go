// SPDX-License-Identifier: MIT

// Package algebra declares the capability contracts every coefficient type of
// homalg is written against, plus the structural combinators built on top of them.
//
// The package provides:
//
//   - Small composable contracts: Set, Monoid, AdditiveGroup, Ring, Field,
//     EuclideanRing, Module and Ideal. Each is an F-bounded generic interface,
//     i.e. T is the implementing value type itself (Int implements Ring[Int]).
//   - Generic free functions with "default" behavior shared by every ring:
//     Pow, Inverse, Divides, Gcd, Lcm, Bezout, Sum, Product.
//   - Combinators: ProductMonoid / ProductGroup / ProductRing (componentwise),
//     Submonoid / Subring (embedding via a membership predicate) and
//     QuotientRing / QuotientField (canonical representatives via an Ideal).
//
// Conventions:
//
//   - Values are immutable: every operation returns a new value.
//   - The Go zero value of an element type is its additive zero, so generic code
//     may write `var z R` and call z.One(), z.FromInt64(n), ...
//   - Equality is exact and structural; there is no tolerance anywhere.
//
// Capability probing: generic algorithms are written against Ring[R] and probe for
// richer structure at run time (IsEuclidean). A request that needs a capability the
// coefficient type lacks fails with ErrCapability before any work is attempted.
package algebra
