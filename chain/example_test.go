// SPDX-License-Identifier: MIT

package chain_test

import (
	"fmt"

	"github.com/katalvlaran/homalg/builder"
	"github.com/katalvlaran/homalg/chain"
	"github.com/katalvlaran/homalg/numbers"
)

func ExampleFromSimplicial() {
	sc, _ := builder.BuildComplex(nil, builder.Simplex(2))
	cc, err := chain.FromSimplicial[numbers.Int](sc)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(cc.Boundary(1))
	fmt.Println(cc.Validate())
	// Output:
	// [-1  -1   0]
	// [ 1   0  -1]
	// [ 0   1   1]
	// <nil>
}
