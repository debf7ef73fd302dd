// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	cfg := newBuilderConfig()
	require.Nil(t, cfg.labelFn)
	require.Nil(t, cfg.rng)
	require.Equal(t, unlimitedDim, cfg.maxDim)
	require.False(t, cfg.disjoint)
	require.Equal(t, 0, cfg.timeFn(nil))
	require.Equal(t, DefaultFlagMaxDim, cfg.flagDim())
}

func TestNewBuilderConfig_LastWins(t *testing.T) {
	cfg := newBuilderConfig(WithMaxDim(3), WithMaxDim(1), nil, WithSymbolLabels(), WithPrefixLabels("v"))
	require.Equal(t, 1, cfg.maxDim)
	require.Equal(t, 1, cfg.flagDim())
	require.Equal(t, "v4", cfg.labelFn(4))
}

func TestSeedReproducibility(t *testing.T) {
	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	for i := 0; i < 10; i++ {
		require.Equal(t, a.rng.Int63(), b.rng.Int63())
	}

	r := rand.New(rand.NewSource(1))
	require.Same(t, r, newBuilderConfig(WithRand(r)).rng)
}

func TestSimplexSet_Offset(t *testing.T) {
	set := &simplexSet{}
	shared := newBuilderConfig()
	disjoint := newBuilderConfig(WithDisjointUnion())

	set.add(set.offset(shared), 0, 1)
	require.Equal(t, 2, set.next)
	require.Equal(t, 0, set.offset(shared))
	require.Equal(t, 2, set.offset(disjoint))
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { WithRand(nil) })
	require.Panics(t, func() { WithMaxDim(-1) })
	require.Panics(t, func() { WithLabelScheme(nil) })
	require.Panics(t, func() { WithTimeFn(nil) })
	require.Panics(t, func() { ConstantTimeFn(-1) })
	require.Panics(t, func() { UniformTimeFn(3, 2) })
	require.Panics(t, func() { SymbolLabelFn(-1) })
}
