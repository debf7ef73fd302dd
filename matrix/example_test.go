// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/homalg/matrix"
	"github.com/katalvlaran/homalg/numbers"
)

// ExampleMatrix_Mul multiplies a sparse boundary-like matrix by a dense one.
func ExampleMatrix_Mul() {
	d1, _ := matrix.FromInts[numbers.Int]([][]int64{
		{-1, -1, 0},
		{1, 0, -1},
		{0, 1, 1},
	}, matrix.WithStorage(matrix.Sparse))
	cycle, _ := matrix.FromInts[numbers.Int]([][]int64{{1}, {-1}, {1}})

	p, _ := d1.Mul(cycle)
	fmt.Println(p.IsZero())

	det, _ := d1.Determinant()
	fmt.Println(det)
	// Output:
	// true
	// 0
}

// ExampleMatrix_String shows the aligned rendering.
func ExampleMatrix_String() {
	m, _ := matrix.FromInts[numbers.Int]([][]int64{{12, 0}, {-3, 7}})
	fmt.Println(m)
	// Output:
	// [12  0]
	// [-3  7]
}
