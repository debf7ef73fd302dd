// SPDX-License-Identifier: MIT

// Package homalg is an exact-arithmetic engine for the homology and persistent
// homology of simplicial complexes, over any coefficient ring you can describe.
//
// 🚀 What is homalg?
//
//	A generic, allocation-conscious library that brings together:
//		• Algebra: capability contracts (Ring, EuclideanRing, Field) and combinators
//		  (products, subrings, quotients R/I)
//		• Numbers: ℤ and ℚ on math/big, ℤ/n residue rings, the BLS12-377 scalar field
//		• Polynomials K[x] with Euclidean division
//		• Matrices: dense and sparse storage, exact determinant, Smith normal form
//		• Topology: simplices, complexes, filtrations, canonical surfaces
//		• Homology: free and torsion summands with representing cycles
//		• Persistence: birth/death intervals and barcodes from a single K[x] reduction
//
// ✨ Why homalg?
//
//   - Exact: no floating point anywhere; ℝP² really has H₁ = ℤ/2
//   - Generic: one elimination engine for ℤ, ℚ, ℤ/p, Fr and K[x]
//   - Honest errors: capability mismatches surface as algebra.ErrCapability
//   - Cancellable: every long reduction honours context.Context
//
// Under the hood:
//
//	algebra/      contracts, Gcd/Bezout, product/sub/quotient structures
//	numbers/      Int, Rational, Fr, IntIdeal and the Z2…Z7 aliases
//	polynomial/   Polynomial[K] and the Extension ideal
//	matrix/       Matrix[R], determinant, multiplication strategies
//	elimination/  Smith normal form and row echelon with P, P⁻¹, Q, Q⁻¹
//	simplicial/   Simplex, Complex, Filtration
//	builder/      Cycle, Sphere, Torus, ProjectivePlane, KleinBottle, RandomFlag…
//	chain/        chain complexes and formal chains
//	homology/     Compute, Group, Summand
//	persistence/  Compute, Interval, Diagram
//	cmd/homalg    command-line front end
//
// Quick ASCII example (ℝP², 6 vertices, 10 triangles):
//
//	rp2, _ := builder.BuildComplex(nil, builder.ProjectivePlane())
//	cc, _  := chain.FromSimplicial[numbers.Int](rp2)
//	h, _   := homology.Compute(ctx, cc)
//	fmt.Println(h)   // H_0 = Z
//	                 // H_1 = Z/2
//	                 // H_2 = 0
//
// Get started:
//
//	go get github.com/katalvlaran/homalg
package homalg
