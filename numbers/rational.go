// SPDX-License-Identifier: MIT
// Package numbers: exact fractions.
//
// Invariant: num/den is in lowest terms and den > 0, so every rational number has
// exactly one representation and Equal is a plain component comparison.

package numbers

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/homalg/algebra"
)

// Rational is an immutable fraction. The zero value is 0/1 (nil num means 0, nil den means 1).
type Rational struct {
	num *big.Int
	den *big.Int
}

// NewRational returns p/q reduced; ErrDivisionByZero when q == 0.
func NewRational(p, q int64) (Rational, error) {
	return RationalFromInts(NewInt(p), NewInt(q))
}

// RationalFromInts returns p/q reduced; ErrDivisionByZero when q == 0.
func RationalFromInts(p, q Int) (Rational, error) {
	if q.IsZero() {
		return Rational{}, fmt.Errorf("numbers: NewRational(%s, 0): %w", p, algebra.ErrDivisionByZero)
	}

	return reduce(p.Big(), q.Big()), nil
}

// RationalFromInt returns n/1.
func RationalFromInt(n int64) Rational {
	return Rational{num: big.NewInt(n), den: big.NewInt(1)}
}

// reduce normalizes p/q in place (q ≠ 0): divide by gcd, make the denominator positive.
func reduce(p, q *big.Int) Rational {
	if p.Sign() == 0 {
		return Rational{}
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(p), new(big.Int).Abs(q))
	if q.Sign() < 0 {
		g.Neg(g)
	}
	p.Quo(p, g)
	q.Quo(q, g)

	return Rational{num: p, den: q}
}

func (x Rational) rawNum() *big.Int {
	if x.num == nil {
		return bigZero
	}

	return x.num
}

func (x Rational) rawDen() *big.Int {
	if x.den == nil {
		return bigOne
	}

	return x.den
}

// Num returns the (reduced) numerator.
func (x Rational) Num() Int { return IntFromBig(x.rawNum()) }

// Den returns the (reduced, positive) denominator.
func (x Rational) Den() Int { return IntFromBig(x.rawDen()) }

// IsInteger reports den == 1.
func (x Rational) IsInteger() bool { return x.rawDen().Cmp(bigOne) == 0 }

// Sign returns the sign of x.
func (x Rational) Sign() int { return x.rawNum().Sign() }

// Cmp orders rationals numerically.
func (x Rational) Cmp(y Rational) int {
	l := new(big.Int).Mul(x.rawNum(), y.rawDen())
	r := new(big.Int).Mul(y.rawNum(), x.rawDen())

	return l.Cmp(r)
}

// Equal compares reduced components.
func (x Rational) Equal(y Rational) bool {
	return x.rawNum().Cmp(y.rawNum()) == 0 && x.rawDen().Cmp(y.rawDen()) == 0
}

// Symbol names the rational field.
func (Rational) Symbol() string { return "Q" }

func (x Rational) String() string {
	if x.IsInteger() {
		return x.rawNum().String()
	}

	return x.rawNum().String() + "/" + x.rawDen().String()
}

// Add returns x+y.
func (x Rational) Add(y Rational) Rational {
	p := new(big.Int).Mul(x.rawNum(), y.rawDen())
	p.Add(p, new(big.Int).Mul(y.rawNum(), x.rawDen()))

	return reduce(p, new(big.Int).Mul(x.rawDen(), y.rawDen()))
}

// Sub returns x-y.
func (x Rational) Sub(y Rational) Rational { return x.Add(y.Neg()) }

// Neg returns -x.
func (x Rational) Neg() Rational {
	if x.IsZero() {
		return x
	}

	return Rational{num: new(big.Int).Neg(x.rawNum()), den: x.rawDen()}
}

// Zero returns 0.
func (x Rational) Zero() Rational { return Rational{} }

// IsZero reports x == 0.
func (x Rational) IsZero() bool { return x.rawNum().Sign() == 0 }

// Mul returns x·y.
func (x Rational) Mul(y Rational) Rational {
	p := new(big.Int).Mul(x.rawNum(), y.rawNum())

	return reduce(p, new(big.Int).Mul(x.rawDen(), y.rawDen()))
}

// One returns 1.
func (x Rational) One() Rational { return RationalFromInt(1) }

// FromInt64 returns n/1.
func (x Rational) FromInt64(n int64) Rational { return RationalFromInt(n) }

// IsUnit holds for every nonzero rational.
func (x Rational) IsUnit() bool { return !x.IsZero() }

// UnitInverse returns 1/x for x ≠ 0.
func (x Rational) UnitInverse() (Rational, bool) {
	if x.IsZero() {
		return Rational{}, false
	}

	return reduce(new(big.Int).Set(x.rawDen()), new(big.Int).Set(x.rawNum())), true
}

// Inverse returns 1/x, or ErrDivisionByZero.
func (x Rational) Inverse() (Rational, error) {
	inv, ok := x.UnitInverse()
	if !ok {
		return x, fmt.Errorf("numbers: Rational.Inverse: %w", algebra.ErrDivisionByZero)
	}

	return inv, nil
}

// DivMod divides exactly (remainder 0).
func (x Rational) DivMod(d Rational) (Rational, Rational, error) {
	inv, err := d.Inverse()
	if err != nil {
		return Rational{}, Rational{}, err
	}

	return x.Mul(inv), Rational{}, nil
}

// CompareSize uses the field convention: all nonzero elements have equal size.
func (x Rational) CompareSize(y Rational) int {
	return algebra.CompareFieldSize(x.IsZero(), y.IsZero())
}

// NormalizingUnit returns 1/x (1 for zero).
func (x Rational) NormalizingUnit() Rational {
	if inv, ok := x.UnitInverse(); ok {
		return inv
	}

	return x.One()
}
