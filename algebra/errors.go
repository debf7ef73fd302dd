// SPDX-License-Identifier: MIT
// Package algebra: sentinel error set.
//
// Every message is prefixed with "algebra: ". ErrDomain is the root of all caller
// contract violations (dimension mismatch, division by zero, inverse of a non-unit, ...);
// other packages wrap it so a single errors.Is(err, algebra.ErrDomain) identifies the class.
// ErrCapability is deliberately NOT a DomainError: it reports a missing structure on the
// coefficient type, not a bad argument.

package algebra

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is the root sentinel of the DomainError class.
	ErrDomain = errors.New("algebra: domain error")

	// ErrCapability reports that an operation requires structure (e.g. exact
	// Euclidean division) that the coefficient ring does not offer.
	ErrCapability = errors.New("algebra: capability error")

	// ErrDivisionByZero is returned when the additive zero is used as a divisor.
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrDomain)

	// ErrNotUnit is returned when an inverse is requested for a non-unit.
	ErrNotUnit = fmt.Errorf("%w: element is not a unit", ErrDomain)

	// ErrNotMember is returned when a value outside a sub-structure is embedded into it.
	ErrNotMember = fmt.Errorf("%w: element is not a member of the sub-structure", ErrDomain)
)

// DomainError attaches the failing operation to a DomainError sentinel.
// errors.Is(err, ErrDomain) holds for every DomainError.
type DomainError struct {
	Op  string // operation tag, e.g. "Inverse"
	Err error  // underlying sentinel
}

// Error implements error.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap exposes the sentinel for errors.Is / errors.As.
func (e *DomainError) Unwrap() error { return e.Err }

// domainErrorf wraps a sentinel with an operation tag.
func domainErrorf(op string, err error) error {
	return &DomainError{Op: op, Err: err}
}

// CapabilityError builds an ErrCapability error naming the operation and the missing
// capability, e.g. CapabilityError("Eliminate", "EuclideanRing", "numbers.Z4").
func CapabilityError(op, capability string, typ any) error {
	return fmt.Errorf("%s: %T does not implement %s: %w", op, typ, capability, ErrCapability)
}
