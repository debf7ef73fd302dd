// SPDX-License-Identifier: MIT
// Package: homalg/builder
//
// validators.go: parameter checks shared by constructors. Each returns an error
// wrapping the matching sentinel, prefixed with the constructor's method tag.

package builder

import "fmt"

// validateMin ensures that the supplied integer got is ≥ min.
// Returns "<Method>: <param>=<got> < min=<min>: ..." wrapping ErrTooFewVertices otherwise.
//
// Parameters:
//   - method: constructor name constant, e.g. MethodCycle.
//   - param:  name of the checked argument as the caller spells it ("n", "rows").
//   - got:    actual value supplied by the user.
//   - min:    minimal acceptable value.
//
// Complexity: O(1) time and space.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Used by RandomFlag. Returns "<Method>: p=<p> not in [0.0,1.0]: ..." wrapping
// ErrInvalidProbability when out of range (NaN included).
//
// Parameters:
//   - method: canonical constructor name.
//   - p:      edge probability to validate.
//
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// validateRand requires an RNG whenever sampling is genuinely random (0 < p < 1).
// The endpoints are deterministic and need no source.
//
// Parameters:
//   - method: canonical constructor name.
//   - cfg:    resolved builder options carrying the optional *rand.Rand.
//   - p:      edge probability, already checked by validateProbability.
//
// Complexity: O(1) time and space.
func validateRand(method string, cfg builderConfig, p float64) error {
	if cfg.rng == nil && p > MinProbability && p < MaxProbability {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}
