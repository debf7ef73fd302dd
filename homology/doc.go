// SPDX-License-Identifier: MIT

// Package homology computes the homology groups H_i = ker ∂_i / im ∂_{i+1} of a chain
// complex over a Euclidean coefficient ring, with explicit generating cycles.
//
// Each group is reported as a direct sum of summands:
//   - Free(z):       a copy of R generated by the cycle z;
//   - Torsion(d, z): a copy of R/(d) generated by z, d a non-unit divisor.
//
// Algorithm (per degree i):
//  1. Smith-reduce ∂_i: the columns of Q_i past its rank span ker ∂_i.
//  2. Smith-reduce ∂_{i+1}: its image is spanned by d_j·P⁻¹[:, j].
//  3. Rewrite the image in kernel coordinates (Q_i⁻¹·image, rows past rank ∂_i).
//  4. Smith-reduce that matrix B and re-base the kernel by P_B⁻¹; diagonal units
//     drop out, non-units give Torsion, columns past rank B give Free summands.
//
// Degrees are independent and run in parallel on a bounded pool; boundary
// eliminations are shared through the chain complex cache.
package homology
