// SPDX-License-Identifier: MIT
// Package chain: sentinel errors. ErrBoundaryShape, ErrNotComplex and ErrMixedDegree
// belong to the algebra.ErrDomain class.

package chain

import (
	"fmt"

	"github.com/katalvlaran/homalg/algebra"
)

type domainSentinel struct{ msg string }

func (e *domainSentinel) Error() string { return e.msg }

func (e *domainSentinel) Unwrap() error { return algebra.ErrDomain }

var (
	// ErrBoundaryShape is returned by New when ∂_i is not Rank(i-1)×Rank(i).
	ErrBoundaryShape error = &domainSentinel{"chain: boundary map shape mismatch"}

	// ErrNotComplex reports ∂_{i-1}∘∂_i ≠ 0.
	ErrNotComplex error = &domainSentinel{"chain: boundary of a boundary is not zero"}

	// ErrMixedDegree is returned when a chain mixes simplices of different dimensions,
	// or does not live in the degree an operation expects.
	ErrMixedDegree error = &domainSentinel{"chain: chain is not homogeneous"}

	// ErrNotInBasis is returned when a chain term is not a basis element of its degree.
	ErrNotInBasis error = &domainSentinel{"chain: simplex is not a basis element"}
)

func chainErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
