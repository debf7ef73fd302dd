// SPDX-License-Identifier: MIT

// Package matrix provides an exact, immutable two-dimensional container over any
// algebra.Ring element type.
//
// What & Why:
//
//	Matrix[R] backs every boundary operator and every transform produced by the
//	elimination engine. Entries are compared structurally (never with a tolerance),
//	so a Matrix over numbers.Int, numbers.Rational or polynomial.Polynomial[K] is
//	exact by construction.
//
// Storage:
//
//	Dense  – row-major buffer of rows×cols elements.
//	Sparse – row-major list of (row, col, value) triples with value ≠ 0 and unique keys.
//	Storage never changes an observable value: Equal, At, String and every
//	arithmetic operation return the same results for both layouts.
//
// Immutability:
//
//	No method mutates its receiver. Set returns a modified copy; arithmetic
//	allocates a fresh result whose storage follows the receiver's.
//
// Multiplication strategy:
//
//	Mul picks NaiveMul (dense) or SparseMul (any sparse operand). MulWith takes the
//	strategy explicitly at the call site; ParallelMul{Workers} splits the output rows
//	over a bounded worker pool.
//
// Complexity:
//
//	At: O(1) dense, O(log nnz) sparse. Add/Sub: O(r·c) dense, O(nnz) sparse.
//	Mul: O(r·k·c) naive. Determinant: O(n·n!).
package matrix
