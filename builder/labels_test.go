// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homalg/builder"
)

func TestLabelFns(t *testing.T) {
	tests := []struct {
		name string
		fn   builder.LabelFn
		in   int
		want string
	}{
		{"Default_zero", builder.DefaultLabelFn, 0, "0"},
		{"Default_multi", builder.DefaultLabelFn, 123, "123"},
		{"Symbol_A", builder.SymbolLabelFn, 0, "A"},
		{"Symbol_Z", builder.SymbolLabelFn, 25, "Z"},
		{"Symbol_AA", builder.SymbolLabelFn, 26, "AA"},
		{"Symbol_AB", builder.SymbolLabelFn, 27, "AB"},
		{"Prefix", builder.PrefixLabelFn("v"), 7, "v7"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.fn(tc.in))
		})
	}
}

func TestTimeFns(t *testing.T) {
	require.Equal(t, 0, builder.DefaultTimeFn(nil))
	require.Equal(t, 4, builder.ConstantTimeFn(4)(nil))
	require.Equal(t, 2, builder.UniformTimeFn(2, 9)(nil))

	rng := rand.New(rand.NewSource(7))
	fn := builder.UniformTimeFn(1, 3)
	for i := 0; i < 200; i++ {
		v := fn(rng)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 3)
	}
}
