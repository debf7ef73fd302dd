// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// Every sentinel belongs to the algebra.ErrDomain class: errors.Is(err, algebra.ErrDomain)
// holds for all of them, and errors.Is(err, ErrX) picks the exact condition.
// Messages are prefixed "matrix: "; public entry points add their operation tag via
// matrixErrorf so logs read "Mul: matrix: dimension mismatch".

package matrix

import (
	"fmt"

	"github.com/katalvlaran/homalg/algebra"
)

// domainSentinel is a fixed message that unwraps to algebra.ErrDomain.
type domainSentinel struct{ msg string }

func (e *domainSentinel) Error() string { return e.msg }

func (e *domainSentinel) Unwrap() error { return algebra.ErrDomain }

var (
	// ErrBadShape is returned for negative row or column counts.
	ErrBadShape error = &domainSentinel{"matrix: invalid shape"}

	// ErrElementCount is returned when the supplied data does not fill rows×cols exactly
	// (flat buffers of the wrong length, ragged row lists).
	ErrElementCount error = &domainSentinel{"matrix: element count does not match shape"}

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange error = &domainSentinel{"matrix: index out of range"}

	// ErrDuplicateEntry is returned when a sparse triple list repeats a (row, col) key.
	ErrDuplicateEntry error = &domainSentinel{"matrix: duplicate sparse entry"}

	// ErrDimensionMismatch indicates incompatible operand shapes
	// (Add/Sub on different shapes, Mul where a.Cols != b.Rows).
	ErrDimensionMismatch error = &domainSentinel{"matrix: dimension mismatch"}

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare error = &domainSentinel{"matrix: matrix is not square"}
)

// matrixErrorf tags err with the public operation that produced it.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
