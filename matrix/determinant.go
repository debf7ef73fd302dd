// SPDX-License-Identifier: MIT
// Package matrix: determinant by permutation expansion.
//
// Implementation:
//   - Leibniz formula det A = Σ_σ sgn(σ) Π_i A[i, σ(i)].
//   - Permutations are generated iteratively by Heap's algorithm: consecutive
//     permutations differ by one transposition, so the sign simply alternates and
//     no recursion or per-permutation allocation is needed.
//
// Complexity: O(n·n!) time, O(n) extra space. Works over any commutative ring
// (no division), which makes it an independent check for the elimination engine
// on small matrices.

package matrix

// Determinant returns det(m); ErrNonSquare for non-square input. det of 0×0 is 1.
func (m *Matrix[R]) Determinant() (R, error) {
	var zero R
	if err := validateSquare(m.rows, m.cols); err != nil {
		return zero, matrixErrorf("Determinant", err)
	}
	n := m.rows
	a := m.ToDense()

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	c := make([]int, n)

	term := func() R {
		p := zero.One()
		for i := 0; i < n; i++ {
			v := a.data[i*n+perm[i]]
			if v.IsZero() {
				return zero
			}
			p = p.Mul(v)
		}

		return p
	}

	det := term()
	positive := true
	for i := 1; i < n; {
		if c[i] < i {
			if i%2 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[c[i]], perm[i] = perm[i], perm[c[i]]
			}
			positive = !positive
			if t := term(); !t.IsZero() {
				if positive {
					det = det.Add(t)
				} else {
					det = det.Sub(t)
				}
			}
			c[i]++
			i = 1
		} else {
			c[i] = 0
			i++
		}
	}

	return det, nil
}
