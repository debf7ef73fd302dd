// SPDX-License-Identifier: MIT
// Package numbers: the ideals nℤ and the residue rings ℤ/n.

package numbers

import (
	"math/big"

	"github.com/katalvlaran/homalg/algebra"
)

// Modulus fixes n for IntIdeal at the type level (implementations are zero-size).
type Modulus interface {
	Modulus() int64
}

// Mod2 selects n = 2.
type Mod2 struct{}

// Modulus implements Modulus.
func (Mod2) Modulus() int64 { return 2 }

// Mod3 selects n = 3.
type Mod3 struct{}

// Modulus implements Modulus.
func (Mod3) Modulus() int64 { return 3 }

// Mod4 selects n = 4.
type Mod4 struct{}

// Modulus implements Modulus.
func (Mod4) Modulus() int64 { return 4 }

// Mod5 selects n = 5.
type Mod5 struct{}

// Modulus implements Modulus.
func (Mod5) Modulus() int64 { return 5 }

// Mod7 selects n = 7.
type Mod7 struct{}

// Modulus implements Modulus.
func (Mod7) Modulus() int64 { return 7 }

// IntIdeal is the principal ideal nℤ with n = M.Modulus().
type IntIdeal[M Modulus] struct{}

func (IntIdeal[M]) modulus() *big.Int {
	var m M
	n := m.Modulus()
	if n < 0 {
		n = -n
	}

	return big.NewInt(n)
}

// Symbol names the quotient ring, e.g. "Z/2".
func (i IntIdeal[M]) Symbol() string { return "Z/" + i.modulus().String() }

// Reduce returns the representative in [0, n). For n = 0 the value is returned unchanged.
func (i IntIdeal[M]) Reduce(r Int) Int {
	n := i.modulus()
	if n.Sign() == 0 {
		return r
	}

	return Int{v: new(big.Int).Mod(r.raw(), n)}
}

// IsUnitInQuotient holds when gcd(r, n) = 1.
func (i IntIdeal[M]) IsUnitInQuotient(r Int) bool {
	_, ok := i.InverseInQuotient(r)

	return ok
}

// InverseInQuotient solves s·r ≡ 1 (mod n) with the Bezout identity.
func (i IntIdeal[M]) InverseInQuotient(r Int) (Int, bool) {
	n := IntFromBig(i.modulus())
	s, _, g := algebra.Bezout(i.Reduce(r), n)
	if !g.IsUnit() {
		return Int{}, false
	}

	return i.Reduce(s), true
}

// Residue rings. Z2, Z3, Z5 and Z7 are fields; Z4 has the zero divisor 2.
type (
	Z2 = algebra.QuotientField[Int, IntIdeal[Mod2]]
	Z3 = algebra.QuotientField[Int, IntIdeal[Mod3]]
	Z4 = algebra.QuotientRing[Int, IntIdeal[Mod4]]
	Z5 = algebra.QuotientField[Int, IntIdeal[Mod5]]
	Z7 = algebra.QuotientField[Int, IntIdeal[Mod7]]
)

// NewZ2 returns n mod 2.
func NewZ2(n int64) Z2 { return algebra.NewQuotientField[Int, IntIdeal[Mod2]](NewInt(n)) }

// NewZ3 returns n mod 3.
func NewZ3(n int64) Z3 { return algebra.NewQuotientField[Int, IntIdeal[Mod3]](NewInt(n)) }

// NewZ4 returns n mod 4.
func NewZ4(n int64) Z4 { return algebra.NewQuotientRing[Int, IntIdeal[Mod4]](NewInt(n)) }

// NewZ5 returns n mod 5.
func NewZ5(n int64) Z5 { return algebra.NewQuotientField[Int, IntIdeal[Mod5]](NewInt(n)) }

// NewZ7 returns n mod 7.
func NewZ7(n int64) Z7 { return algebra.NewQuotientField[Int, IntIdeal[Mod7]](NewInt(n)) }

// Integral selects the integers inside ℚ (denominator 1).
type Integral struct{}

// Contains implements algebra.Predicate.
func (Integral) Contains(q Rational) bool { return q.IsInteger() }

// IntegralRational is ℤ embedded as a subring of ℚ.
type IntegralRational = algebra.Subring[Rational, Integral]
