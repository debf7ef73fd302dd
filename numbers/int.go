// SPDX-License-Identifier: MIT
// Package numbers: arbitrary-precision integers.

package numbers

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/homalg/algebra"
)

// Int is an immutable integer. The zero value is 0; a nil backing pointer means 0.
// The backing *big.Int is never mutated after construction.
type Int struct {
	v *big.Int
}

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// NewInt returns n as an Int.
func NewInt(n int64) Int {
	return Int{v: big.NewInt(n)}
}

// IntFrom converts any Go integer type without overflow.
func IntFrom[T constraints.Integer](n T) Int {
	if n < 0 {
		return Int{v: big.NewInt(int64(n))}
	}

	return Int{v: new(big.Int).SetUint64(uint64(n))}
}

// IntFromBig copies b; nil is treated as 0.
func IntFromBig(b *big.Int) Int {
	if b == nil {
		return Int{}
	}

	return Int{v: new(big.Int).Set(b)}
}

// ParseInt parses a base-10 integer.
func ParseInt(s string) (Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int{}, fmt.Errorf("numbers: ParseInt(%q): %w", s, algebra.ErrDomain)
	}

	return Int{v: v}, nil
}

// raw returns the backing value for read-only use.
func (x Int) raw() *big.Int {
	if x.v == nil {
		return bigZero
	}

	return x.v
}

// Big returns a copy of the value as *big.Int.
func (x Int) Big() *big.Int { return new(big.Int).Set(x.raw()) }

// Int64 returns the value and whether it fits in an int64.
func (x Int) Int64() (int64, bool) {
	r := x.raw()

	return r.Int64(), r.IsInt64()
}

// Sign returns -1, 0 or +1.
func (x Int) Sign() int { return x.raw().Sign() }

// Cmp compares x and y numerically.
func (x Int) Cmp(y Int) int { return x.raw().Cmp(y.raw()) }

// Abs returns |x|.
func (x Int) Abs() Int { return Int{v: new(big.Int).Abs(x.raw())} }

// BitLen returns the bit length of |x|; used to monitor coefficient growth.
func (x Int) BitLen() int { return x.raw().BitLen() }

// Equal reports numeric equality.
func (x Int) Equal(y Int) bool { return x.raw().Cmp(y.raw()) == 0 }

func (x Int) String() string { return x.raw().String() }

// Symbol names the ring of integers.
func (Int) Symbol() string { return "Z" }

// Add returns x+y.
func (x Int) Add(y Int) Int { return Int{v: new(big.Int).Add(x.raw(), y.raw())} }

// Sub returns x-y.
func (x Int) Sub(y Int) Int { return Int{v: new(big.Int).Sub(x.raw(), y.raw())} }

// Neg returns -x.
func (x Int) Neg() Int { return Int{v: new(big.Int).Neg(x.raw())} }

// Zero returns 0.
func (x Int) Zero() Int { return Int{} }

// IsZero reports x == 0.
func (x Int) IsZero() bool { return x.raw().Sign() == 0 }

// Mul returns x·y.
func (x Int) Mul(y Int) Int { return Int{v: new(big.Int).Mul(x.raw(), y.raw())} }

// One returns 1.
func (x Int) One() Int { return Int{v: bigOne} }

// FromInt64 returns n.
func (x Int) FromInt64(n int64) Int { return NewInt(n) }

// IsUnit holds for ±1.
func (x Int) IsUnit() bool { return x.raw().CmpAbs(bigOne) == 0 }

// UnitInverse returns x for ±1 (each is its own inverse).
func (x Int) UnitInverse() (Int, bool) {
	if !x.IsUnit() {
		return Int{}, false
	}

	return x, true
}

// DivMod returns the truncated quotient and remainder (x = q·d + r, |r| < |d|,
// sign(r) = sign(x)); ErrDivisionByZero for d == 0.
func (x Int) DivMod(d Int) (Int, Int, error) {
	if d.IsZero() {
		return Int{}, Int{}, fmt.Errorf("numbers: Int.DivMod: %w", algebra.ErrDivisionByZero)
	}
	q, r := new(big.Int).QuoRem(x.raw(), d.raw(), new(big.Int))

	return Int{v: q}, Int{v: r}, nil
}

// CompareSize compares absolute values.
func (x Int) CompareSize(y Int) int { return x.raw().CmpAbs(y.raw()) }

// NormalizingUnit returns the sign of x (1 for zero), so x·u = |x|.
func (x Int) NormalizingUnit() Int {
	if x.Sign() < 0 {
		return NewInt(-1)
	}

	return x.One()
}
