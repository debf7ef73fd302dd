// SPDX-License-Identifier: MIT
// Package: homalg/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • labelFn  = nil           (vertices render as their decimal id)
//   • rng      = nil           (stochastic constructors require WithSeed/WithRand)
//   • timeFn   = ConstantTimeFn(0)
//   • maxDim   = unlimited
//   • disjoint = false         (constructors share vertex ids)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	labelFn  LabelFn    // vertex display names; nil keeps decimal ids
	rng      *rand.Rand // nil means "no randomness"
	timeFn   TimeFn     // entry time of a sampled edge (filtrations only)
	maxDim   int        // skeleton cap; unlimitedDim keeps everything
	disjoint bool       // shift each constructor past previously used vertices
}

// newBuilderConfig applies options in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		timeFn: DefaultTimeFn,
		maxDim: unlimitedDim,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// flagDim is the clique-size cap used by RandomFlag.
func (c builderConfig) flagDim() int {
	if c.maxDim == unlimitedDim {
		return DefaultFlagMaxDim
	}

	return c.maxDim
}
