// SPDX-License-Identifier: MIT
// Package simplicial: sentinel errors, prefixed "simplicial: ".

package simplicial

import "errors"

var (
	// ErrEmptySimplex is returned when a simplex would have no vertices.
	ErrEmptySimplex = errors.New("simplicial: simplex has no vertices")

	// ErrNotNested indicates a filtration stage that is not a subcomplex of the next one.
	ErrNotNested = errors.New("simplicial: filtration stages are not nested")

	// ErrEmptyFiltration is returned for a filtration without stages.
	ErrEmptyFiltration = errors.New("simplicial: filtration has no stages")

	// ErrUnknownSimplex indicates a simplex that is not part of the complex or filtration.
	ErrUnknownSimplex = errors.New("simplicial: unknown simplex")
)
