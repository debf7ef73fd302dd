// SPDX-License-Identifier: MIT

// Package persistence decodes persistent homology of a filtration from the homology
// of its graded chain complex over K[x].
//
// A filtration K₀ ⊆ … ⊆ Kₙ becomes one chain complex over K[x] whose boundary
// entries carry x^{t(σ)-t(τ)}. Its homology splits into summands K[x] (classes that
// never die) and K[x]/(x^k) (classes that die k steps after birth). For a summand
// generated by z:
//
//	birth = lowest exponent of the first term of z + birth time of that term's simplex
//	death = birth + deg(divisor)  (∞ for free summands)
//
// Every interval is half-open, [birth, death): the class exists in stages
// birth..death-1.
package persistence
