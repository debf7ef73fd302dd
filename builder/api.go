// SPDX-License-Identifier: MIT
// Package: homalg/builder
//
// api.go: public entry points for the builder package.
//
// Design contract:
//   - BuildComplex(bopts, cons...) resolves the config once and runs cons in order
//     over a shared simplex set, then takes the downward closure.
//   - BuildFiltration(bopts, stages...) snapshots the closure after each stage.
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical output.
//   - Constructors return sentinel-wrapped errors; nothing here panics.

package builder

import (
	"fmt"

	"github.com/katalvlaran/homalg/simplicial"
)

// Constructor adds the generating simplices of one shape to the shared set.
// Constructors validate parameters before touching the set and must keep
// their output deterministic for a fixed config.
type Constructor func(set *simplexSet, cfg builderConfig) error

// BuildComplex applies cons in order and returns the closed complex.
// Errors are wrapped as "BuildComplex: %w"; a nil constructor yields ErrConstructFailed.
//
// Complexity: Σ cost(cons) plus the closure, O(Σ 2^{|σ|}) over generating simplices.
func BuildComplex(bopts []BuilderOption, cons ...Constructor) (*simplicial.Complex, error) {
	cfg := newBuilderConfig(bopts...)
	set := &simplexSet{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildComplex: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(set, cfg); err != nil {
			return nil, fmt.Errorf("BuildComplex: %w", err)
		}
	}

	return set.complex(cfg), nil
}

// BuildFiltration treats each constructor as one stage: stage t is the closure of
// everything added by stages 0..t. Use Compose to put several shapes in one stage.
func BuildFiltration(bopts []BuilderOption, stages ...Constructor) (*simplicial.Filtration, error) {
	if len(stages) == 0 {
		return nil, fmt.Errorf("BuildFiltration: no stages: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	set := &simplexSet{}
	snapshots := make([]*simplicial.Complex, len(stages))
	for t, fn := range stages {
		if fn == nil {
			return nil, fmt.Errorf("BuildFiltration: nil stage %d: %w", t, ErrConstructFailed)
		}
		if err := fn(set, cfg); err != nil {
			return nil, fmt.Errorf("BuildFiltration: stage %d: %w", t, err)
		}
		snapshots[t] = set.complex(cfg)
	}

	f, err := simplicial.NewFiltration(snapshots...)
	if err != nil {
		return nil, fmt.Errorf("BuildFiltration: %w: %w", ErrConstructFailed, err)
	}

	return f, nil
}

// Compose runs cons in order as a single Constructor.
func Compose(cons ...Constructor) Constructor {
	return func(set *simplexSet, cfg builderConfig) error {
		for i, fn := range cons {
			if fn == nil {
				return fmt.Errorf("Compose: nil constructor at index %d: %w", i, ErrConstructFailed)
			}
			if err := fn(set, cfg); err != nil {
				return err
			}
		}

		return nil
	}
}

// Empty adds nothing; useful as a stage where the filtration does not change.
func Empty() Constructor {
	return func(*simplexSet, builderConfig) error { return nil }
}
