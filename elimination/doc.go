// SPDX-License-Identifier: MIT

// Package elimination reduces a matrix over a ring by unimodular row and column
// operations.
//
// Modes:
//
//	Diagonal   – Smith normal form P·A·Q = D over a EuclideanRing: D is diagonal,
//	             nonzero entries come first, each divides the next and each is the
//	             canonical associate (positive integer, monic polynomial, 1 in a field).
//	RowEchelon – P·A in row-echelon form over any Ring (Euclidean row reduction when
//	             the ring is Euclidean, unit pivots otherwise).
//
// Diagonal mode over a ring that is not Euclidean is rejected with
// algebra.ErrCapability before any work is done.
//
// Algorithm (Diagonal):
//  1. In the trailing submatrix A[k:, k:], pick the nonzero entry of minimal
//     Euclidean size (first in row-major order on ties).
//  2. Swap it to (k, k).
//  3. Reduce every entry of column k and row k by the pivot. A nonzero remainder is
//     strictly smaller than the pivot; it is swapped in as the new pivot and step 3
//     restarts. Strict size decrease guarantees termination.
//  4. Advance k.
//  5. Repair the divisibility chain pairwise: when d_j | d_i the two positions are
//     swapped, otherwise the 2×2 block is replaced by (gcd, lcm) with a unimodular
//     Bezout transform. Finally each d_i is scaled to its canonical associate.
//
// Every operation on A is mirrored on P (rows) or Q (columns) and, inversely, on
// P⁻¹ and Q⁻¹, so all four transforms are exact and P·P⁻¹ = I, Q·Q⁻¹ = I.
//
// Cancellation:
//
//	WithContext installs a context checked once per pivot iteration. A cancelled run
//	returns an error matching ErrCancelled (see IsCancelled); no partial result is
//	returned. Cancellation is neither a domain nor a capability error.
//
// Complexity:
//
//	O(min(r, c) · r · c) ring operations per pivot pass, times the number of
//	re-pivots caused by nonzero remainders. Integer entries can grow between
//	passes; sizes are logged at debug level.
package elimination
