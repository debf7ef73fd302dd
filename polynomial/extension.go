// SPDX-License-Identifier: MIT

package polynomial

import "github.com/katalvlaran/homalg/algebra"

// Modulus fixes the generator m(x) of an Extension at the type level.
// Implementations are zero-size types; Polynomial should return the same value
// on every call.
type Modulus[K algebra.Field[K]] interface {
	Polynomial() Polynomial[K]
}

// Extension is the principal ideal (m(x)) of K[x]. When m is irreducible,
// algebra.QuotientField[Polynomial[K], Extension[K, M]] is the field K[x]/(m).
type Extension[K algebra.Field[K], M Modulus[K]] struct{}

func (Extension[K, M]) generator() Polynomial[K] {
	var m M

	return m.Polynomial()
}

// Reduce returns p mod m, the representative of degree < deg m.
func (e Extension[K, M]) Reduce(p Polynomial[K]) Polynomial[K] {
	m := e.generator()
	if m.IsZero() {
		return p
	}
	_, r, _ := p.DivMod(m)

	return r
}

// IsUnitInQuotient holds when gcd(p, m) = 1.
func (e Extension[K, M]) IsUnitInQuotient(p Polynomial[K]) bool {
	_, ok := e.InverseInQuotient(p)

	return ok
}

// InverseInQuotient solves s·p ≡ 1 (mod m) through the Bezout identity.
// Elements sharing a factor with m have no inverse.
func (e Extension[K, M]) InverseInQuotient(p Polynomial[K]) (Polynomial[K], bool) {
	r := e.Reduce(p)
	if r.IsZero() {
		return Polynomial[K]{}, false
	}
	s, _, g := algebra.Bezout(r, e.generator())
	if !g.IsUnit() {
		return Polynomial[K]{}, false
	}

	return e.Reduce(s), true
}
