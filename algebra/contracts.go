// SPDX-License-Identifier: MIT
// Package algebra: capability contracts.
//
// The contracts are layered by embedding, never by inheritance chains:
//
//	Set ─┬─ Monoid ───────────────┐
//	     └─ AdditiveGroup ─┬──────┴─ Ring ─┬─ Field
//	                       │               └─ EuclideanRing
//	                       └─ Module (scalar action of a Ring)
//
// A type may implement Field and EuclideanRing at the same time (every field is
// Euclidean with a constant size function); the elimination engine relies on that.

package algebra

// Set is the base capability: exact equality and a printable form.
type Set[T any] interface {
	// Equal reports structural (never tolerance-based) equality.
	Equal(other T) bool
	// String renders the canonical representative.
	String() string
}

// Monoid is a set with an associative product and an identity.
type Monoid[T any] interface {
	Set[T]
	// Mul returns the product x·y.
	Mul(y T) T
	// One returns the multiplicative identity.
	One() T
}

// AdditiveGroup is an abelian group written additively.
type AdditiveGroup[T any] interface {
	Set[T]
	// Add returns x+y.
	Add(y T) T
	// Sub returns x-y.
	Sub(y T) T
	// Neg returns -x.
	Neg() T
	// Zero returns the additive identity.
	Zero() T
	// IsZero reports whether x is the additive identity.
	IsZero() bool
}

// Ring is an AdditiveGroup with a compatible Monoid structure.
type Ring[T any] interface {
	AdditiveGroup[T]
	// Mul returns the product x·y.
	Mul(y T) T
	// One returns the multiplicative identity.
	One() T
	// FromInt64 returns the image of n under the canonical map ℤ → R.
	FromInt64(n int64) T
	// IsUnit reports whether x has a multiplicative inverse.
	IsUnit() bool
	// UnitInverse returns x⁻¹ and true for units; (zero, false) otherwise.
	// Callers must check IsUnit (or the flag) first.
	UnitInverse() (T, bool)
}

// Field is a Ring where every nonzero element is a unit.
type Field[T any] interface {
	Ring[T]
	// Inverse returns x⁻¹, or ErrDivisionByZero for the zero element.
	Inverse() (T, error)
}

// EuclideanRing is a Ring with exact division-with-remainder.
//
// Contract for DivMod: x = q·d + r with r == 0 or r.CompareSize(d) < 0.
// The strict size decrease is what makes Smith-form elimination terminate.
type EuclideanRing[T any] interface {
	Ring[T]
	// DivMod returns quotient and remainder of x by d; ErrDivisionByZero when d is zero.
	DivMod(d T) (q, r T, err error)
	// CompareSize compares the Euclidean size of x and y (-1, 0, +1).
	// Integers compare |x|, polynomials compare degree, fields compare equal.
	CompareSize(y T) int
	// NormalizingUnit returns a unit u such that x·u is the canonical associate of x
	// (positive integer, monic polynomial, 1 in a field). Zero maps to One.
	NormalizingUnit() T
}

// Module is an additive group M with a scalar action of the ring R.
type Module[R, M any] interface {
	AdditiveGroup[M]
	// Scale returns r·m.
	Scale(r R) M
}

// Ideal describes a two-sided ideal I of R through the operations a quotient R/I needs.
// Implementations are usually zero-size types used as type parameters.
type Ideal[R any] interface {
	// Reduce maps r to the canonical representative of r + I.
	Reduce(r R) R
	// IsUnitInQuotient reports whether r + I is a unit of R/I.
	IsUnitInQuotient(r R) bool
	// InverseInQuotient returns a representative of (r + I)⁻¹ when it exists.
	InverseInQuotient(r R) (R, bool)
}

// Predicate is a membership test selecting a sub-structure of an ambient structure.
type Predicate[T any] interface {
	Contains(x T) bool
}

// Symbolic is implemented by element types that can name their structure,
// e.g. "Z", "Q", "Z/2", "Q[x]".
type Symbolic interface {
	Symbol() string
}

// SymbolOf names the structure of T: its Symbol when T is Symbolic, else "R".
func SymbolOf[T any]() string {
	var zero T
	if s, ok := any(zero).(Symbolic); ok {
		return s.Symbol()
	}

	return "R"
}
