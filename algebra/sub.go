// SPDX-License-Identifier: MIT
// Package algebra: sub-structures.
//
// A sub-structure is an ambient value plus a zero-size membership predicate P.
// Construction checks membership once (ErrNotMember); every operation is delegated to
// the ambient structure, relying on closure of the sub-structure under that operation.

package algebra

// Submonoid embeds a multiplicatively closed subset of M containing 1.
type Submonoid[M Monoid[M], P Predicate[M]] struct {
	value M
}

// NewSubmonoid embeds m, failing with ErrNotMember when P rejects it.
func NewSubmonoid[M Monoid[M], P Predicate[M]](m M) (Submonoid[M, P], error) {
	var p P
	if !p.Contains(m) {
		return Submonoid[M, P]{}, domainErrorf(opEmbed, ErrNotMember)
	}

	return Submonoid[M, P]{value: m}, nil
}

// Embed returns the ambient value (the injection into M).
func (s Submonoid[M, P]) Embed() M { return s.value }

// Equal compares ambient values.
func (s Submonoid[M, P]) Equal(o Submonoid[M, P]) bool { return s.value.Equal(o.value) }

func (s Submonoid[M, P]) String() string { return s.value.String() }

// Mul delegates to M.
func (s Submonoid[M, P]) Mul(o Submonoid[M, P]) Submonoid[M, P] {
	return Submonoid[M, P]{value: s.value.Mul(o.value)}
}

// One returns the ambient identity.
func (s Submonoid[M, P]) One() Submonoid[M, P] {
	return Submonoid[M, P]{value: s.value.One()}
}

// Subring embeds a subring of R (closed under +, -, · and containing 1).
type Subring[R Ring[R], P Predicate[R]] struct {
	value R
}

// NewSubring embeds r, failing with ErrNotMember when P rejects it.
func NewSubring[R Ring[R], P Predicate[R]](r R) (Subring[R, P], error) {
	var p P
	if !p.Contains(r) {
		return Subring[R, P]{}, domainErrorf(opEmbed, ErrNotMember)
	}

	return Subring[R, P]{value: r}, nil
}

// Embed returns the ambient value.
func (s Subring[R, P]) Embed() R { return s.value }

// Equal compares ambient values.
func (s Subring[R, P]) Equal(o Subring[R, P]) bool { return s.value.Equal(o.value) }

func (s Subring[R, P]) String() string { return s.value.String() }

// Add delegates to R.
func (s Subring[R, P]) Add(o Subring[R, P]) Subring[R, P] {
	return Subring[R, P]{value: s.value.Add(o.value)}
}

// Sub delegates to R.
func (s Subring[R, P]) Sub(o Subring[R, P]) Subring[R, P] {
	return Subring[R, P]{value: s.value.Sub(o.value)}
}

// Neg delegates to R.
func (s Subring[R, P]) Neg() Subring[R, P] { return Subring[R, P]{value: s.value.Neg()} }

// Zero returns the ambient zero.
func (s Subring[R, P]) Zero() Subring[R, P] { return Subring[R, P]{value: s.value.Zero()} }

// IsZero delegates to R.
func (s Subring[R, P]) IsZero() bool { return s.value.IsZero() }

// Mul delegates to R.
func (s Subring[R, P]) Mul(o Subring[R, P]) Subring[R, P] {
	return Subring[R, P]{value: s.value.Mul(o.value)}
}

// One returns the ambient one.
func (s Subring[R, P]) One() Subring[R, P] { return Subring[R, P]{value: s.value.One()} }

// FromInt64 maps n through the ambient ring; the image of ℤ lies in every subring.
func (s Subring[R, P]) FromInt64(n int64) Subring[R, P] {
	return Subring[R, P]{value: s.value.FromInt64(n)}
}

// IsUnit holds when the ambient inverse exists and lies in the subring
// (2 is a unit of ℚ but not of ℤ ⊂ ℚ).
func (s Subring[R, P]) IsUnit() bool {
	_, ok := s.UnitInverse()

	return ok
}

// UnitInverse returns the inverse when it exists inside the subring.
func (s Subring[R, P]) UnitInverse() (Subring[R, P], bool) {
	inv, ok := s.value.UnitInverse()
	if !ok {
		return s.Zero(), false
	}
	var p P
	if !p.Contains(inv) {
		return s.Zero(), false
	}

	return Subring[R, P]{value: inv}, true
}
