// SPDX-License-Identifier: MIT
// Package: homalg/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs;
//     constructors themselves never panic.
//   • Seeding is explicit via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes the resolved builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new seeded *rand.Rand (reproducible RandomFlag output).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxDim truncates the result to its k-skeleton and caps RandomFlag cliques.
// Panics if k < 0.
func WithMaxDim(k int) BuilderOption {
	if k < 0 {
		panic("builder: WithMaxDim(k<0)")
	}

	return func(c *builderConfig) { c.maxDim = k }
}

// WithDisjointUnion numbers each constructor's vertices after those already used,
// so composed constructors produce a disjoint union instead of a gluing.
func WithDisjointUnion() BuilderOption {
	return func(c *builderConfig) { c.disjoint = true }
}

// WithLabelScheme sets the vertex label generator. Panics on nil.
func WithLabelScheme(fn LabelFn) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelScheme(nil)")
	}

	return func(c *builderConfig) { c.labelFn = fn }
}

// WithTimeFn sets the entry-time generator for RandomFlagFiltration. Panics on nil.
func WithTimeFn(fn TimeFn) BuilderOption {
	if fn == nil {
		panic("builder: WithTimeFn(nil)")
	}

	return func(c *builderConfig) { c.timeFn = fn }
}
