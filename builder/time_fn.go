// SPDX-License-Identifier: MIT
// Package: homalg/builder
//
// time_fn.go: entry-time distributions for RandomFlagFiltration. A TimeFn draws the
// filtration step at which a sampled edge appears; it must be deterministic for a
// given RNG state and return a value ≥ 0.

package builder

import (
	"fmt"
	"math/rand"
)

// TimeFn draws an entry time from an optional RNG.
type TimeFn func(rng *rand.Rand) int

// DefaultTimeFn places every edge at step 0.
func DefaultTimeFn(_ *rand.Rand) int { return 0 }

// ConstantTimeFn always returns t. Panics if t < 0.
func ConstantTimeFn(t int) TimeFn {
	if t < 0 {
		panic(fmt.Sprintf("ConstantTimeFn: t must be ≥ 0, got %d", t))
	}

	return func(_ *rand.Rand) int { return t }
}

// UniformTimeFn draws uniformly from [min, max]. With a nil RNG it returns min.
// Panics unless 0 ≤ min ≤ max.
func UniformTimeFn(min, max int) TimeFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformTimeFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Intn(max-min+1)
	}
}

// WithUniformTimes is WithTimeFn(UniformTimeFn(min, max)).
func WithUniformTimes(min, max int) BuilderOption {
	return WithTimeFn(UniformTimeFn(min, max))
}
