// SPDX-License-Identifier: MIT
// Package: homalg/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w ("Cycle: n=2 < min=3: builder: parameter too small").
//   • Runtime paths never panic; option constructors do (see options.go).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, dimension) is below the
// minimum the constructor can triangulate.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor used without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the orchestrator could not assemble a complex
// (nil constructor, empty stage list, inconsistent stages).
var ErrConstructFailed = errors.New("builder: construction failed")
