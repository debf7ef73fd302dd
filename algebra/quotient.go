// SPDX-License-Identifier: MIT
// Package algebra: quotient structures R/I.
//
// Representation: a quotient element stores I.Reduce(r). Equality is congruence
// modulo I (I.Reduce(a-b) == 0), so two elements built from different
// representatives of the same class compare equal even when an Ideal's Reduce is
// not fully canonical.
//
// Complexity: each operation costs one ambient operation plus one Reduce.

package algebra

import "fmt"

// QuotientRing is the ring R/I.
type QuotientRing[R Ring[R], I Ideal[R]] struct {
	value R
}

// NewQuotientRing returns the class r + I.
func NewQuotientRing[R Ring[R], I Ideal[R]](r R) QuotientRing[R, I] {
	var ideal I

	return QuotientRing[R, I]{value: ideal.Reduce(r)}
}

// Representative returns the stored (reduced) representative.
func (q QuotientRing[R, I]) Representative() R { return q.value }

// Equal reports congruence modulo I.
func (q QuotientRing[R, I]) Equal(o QuotientRing[R, I]) bool {
	var ideal I

	return ideal.Reduce(q.value.Sub(o.value)).IsZero()
}

func (q QuotientRing[R, I]) String() string { return fmt.Sprintf("[%s]", q.value) }

// Symbol names R/I after the ideal when it is Symbolic.
func (q QuotientRing[R, I]) Symbol() string { return quotientSymbol[R, I]() }

// Add returns (a+b) + I.
func (q QuotientRing[R, I]) Add(o QuotientRing[R, I]) QuotientRing[R, I] {
	return NewQuotientRing[R, I](q.value.Add(o.value))
}

// Sub returns (a-b) + I.
func (q QuotientRing[R, I]) Sub(o QuotientRing[R, I]) QuotientRing[R, I] {
	return NewQuotientRing[R, I](q.value.Sub(o.value))
}

// Neg returns -a + I.
func (q QuotientRing[R, I]) Neg() QuotientRing[R, I] {
	return NewQuotientRing[R, I](q.value.Neg())
}

// Zero returns 0 + I.
func (q QuotientRing[R, I]) Zero() QuotientRing[R, I] {
	return NewQuotientRing[R, I](q.value.Zero())
}

// IsZero reports whether the class is I itself.
func (q QuotientRing[R, I]) IsZero() bool {
	var ideal I

	return ideal.Reduce(q.value).IsZero()
}

// Mul returns a·b + I.
func (q QuotientRing[R, I]) Mul(o QuotientRing[R, I]) QuotientRing[R, I] {
	return NewQuotientRing[R, I](q.value.Mul(o.value))
}

// One returns 1 + I.
func (q QuotientRing[R, I]) One() QuotientRing[R, I] {
	return NewQuotientRing[R, I](q.value.One())
}

// FromInt64 returns n + I.
func (q QuotientRing[R, I]) FromInt64(n int64) QuotientRing[R, I] {
	return NewQuotientRing[R, I](q.value.FromInt64(n))
}

// IsUnit delegates to the ideal.
func (q QuotientRing[R, I]) IsUnit() bool {
	var ideal I

	return ideal.IsUnitInQuotient(q.value)
}

// UnitInverse delegates to the ideal; absent for non-units.
func (q QuotientRing[R, I]) UnitInverse() (QuotientRing[R, I], bool) {
	var ideal I
	inv, ok := ideal.InverseInQuotient(q.value)
	if !ok {
		return q.Zero(), false
	}

	return NewQuotientRing[R, I](inv), true
}

// QuotientField is R/I for a maximal ideal I. Besides the Field contract it carries
// the (trivial) Euclidean structure of a field so it can drive full diagonalization.
type QuotientField[R Ring[R], I Ideal[R]] struct {
	value R
}

// NewQuotientField returns the class r + I.
func NewQuotientField[R Ring[R], I Ideal[R]](r R) QuotientField[R, I] {
	var ideal I

	return QuotientField[R, I]{value: ideal.Reduce(r)}
}

// Representative returns the stored (reduced) representative.
func (q QuotientField[R, I]) Representative() R { return q.value }

// Equal reports congruence modulo I.
func (q QuotientField[R, I]) Equal(o QuotientField[R, I]) bool {
	var ideal I

	return ideal.Reduce(q.value.Sub(o.value)).IsZero()
}

func (q QuotientField[R, I]) String() string { return fmt.Sprintf("[%s]", q.value) }

// Symbol names R/I after the ideal when it is Symbolic.
func (q QuotientField[R, I]) Symbol() string { return quotientSymbol[R, I]() }

// Add returns (a+b) + I.
func (q QuotientField[R, I]) Add(o QuotientField[R, I]) QuotientField[R, I] {
	return NewQuotientField[R, I](q.value.Add(o.value))
}

// Sub returns (a-b) + I.
func (q QuotientField[R, I]) Sub(o QuotientField[R, I]) QuotientField[R, I] {
	return NewQuotientField[R, I](q.value.Sub(o.value))
}

// Neg returns -a + I.
func (q QuotientField[R, I]) Neg() QuotientField[R, I] {
	return NewQuotientField[R, I](q.value.Neg())
}

// Zero returns 0 + I.
func (q QuotientField[R, I]) Zero() QuotientField[R, I] {
	return NewQuotientField[R, I](q.value.Zero())
}

// IsZero reports whether the class is I itself.
func (q QuotientField[R, I]) IsZero() bool {
	var ideal I

	return ideal.Reduce(q.value).IsZero()
}

// Mul returns a·b + I.
func (q QuotientField[R, I]) Mul(o QuotientField[R, I]) QuotientField[R, I] {
	return NewQuotientField[R, I](q.value.Mul(o.value))
}

// One returns 1 + I.
func (q QuotientField[R, I]) One() QuotientField[R, I] {
	return NewQuotientField[R, I](q.value.One())
}

// FromInt64 returns n + I.
func (q QuotientField[R, I]) FromInt64(n int64) QuotientField[R, I] {
	return NewQuotientField[R, I](q.value.FromInt64(n))
}

// IsUnit delegates to the ideal (every nonzero class when I is maximal).
func (q QuotientField[R, I]) IsUnit() bool {
	var ideal I

	return ideal.IsUnitInQuotient(q.value)
}

// UnitInverse delegates to the ideal; absent for zero.
func (q QuotientField[R, I]) UnitInverse() (QuotientField[R, I], bool) {
	var ideal I
	inv, ok := ideal.InverseInQuotient(q.value)
	if !ok {
		return q.Zero(), false
	}

	return NewQuotientField[R, I](inv), true
}

// Inverse returns the field inverse; ErrDivisionByZero for zero, ErrNotUnit when
// I turns out not to be maximal for this class.
func (q QuotientField[R, I]) Inverse() (QuotientField[R, I], error) {
	if q.IsZero() {
		return q, domainErrorf(opInverse, ErrDivisionByZero)
	}
	inv, ok := q.UnitInverse()
	if !ok {
		return q, domainErrorf(opInverse, ErrNotUnit)
	}

	return inv, nil
}

// DivMod divides exactly: q = x·d⁻¹, r = 0.
func (q QuotientField[R, I]) DivMod(d QuotientField[R, I]) (QuotientField[R, I], QuotientField[R, I], error) {
	inv, err := d.Inverse()
	if err != nil {
		return q, q, err
	}

	return q.Mul(inv), q.Zero(), nil
}

// CompareSize is constant on a field: every nonzero element has the same size.
func (q QuotientField[R, I]) CompareSize(o QuotientField[R, I]) int {
	return compareFieldSize(q.IsZero(), o.IsZero())
}

// NormalizingUnit returns x⁻¹ (so x·u = 1) and 1 for zero.
func (q QuotientField[R, I]) NormalizingUnit() QuotientField[R, I] {
	if inv, ok := q.UnitInverse(); ok {
		return inv
	}

	return q.One()
}

// compareFieldSize implements the Euclidean size of a field: zero < nonzero,
// all nonzero elements equal.
func compareFieldSize(xZero, yZero bool) int {
	switch {
	case xZero == yZero:
		return 0
	case xZero:
		return -1
	default:
		return 1
	}
}

// CompareFieldSize exposes the field size convention to concrete field types.
func CompareFieldSize(xZero, yZero bool) int { return compareFieldSize(xZero, yZero) }

func quotientSymbol[R Ring[R], I Ideal[R]]() string {
	var ideal I
	if s, ok := any(ideal).(Symbolic); ok {
		return s.Symbol()
	}

	return SymbolOf[R]() + "/I"
}
