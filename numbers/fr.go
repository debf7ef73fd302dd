// SPDX-License-Identifier: MIT
// Package numbers: prime-field coefficients backed by gnark-crypto.

package numbers

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/katalvlaran/homalg/algebra"
)

// Fr is an element of the BLS12-377 scalar field 𝔽_r (r a 253-bit prime).
// Homology over Fr agrees with rational homology for every complex whose torsion
// orders are coprime to r, while entries never grow beyond one field word.
type Fr struct {
	e fr.Element
}

// NewFr returns n mod r.
func NewFr(n int64) Fr {
	var x Fr
	x.e.SetInt64(n)

	return x
}

// FrModulus returns the field characteristic r.
func FrModulus() *big.Int { return fr.Modulus() }

// Equal compares canonical field elements.
func (x Fr) Equal(y Fr) bool { return x.e.Equal(&y.e) }

func (x Fr) String() string { return x.e.String() }

// Symbol names the BLS12-377 scalar field.
func (Fr) Symbol() string { return "Fr" }

// Add returns x+y.
func (x Fr) Add(y Fr) Fr {
	var z Fr
	z.e.Add(&x.e, &y.e)

	return z
}

// Sub returns x-y.
func (x Fr) Sub(y Fr) Fr {
	var z Fr
	z.e.Sub(&x.e, &y.e)

	return z
}

// Neg returns -x.
func (x Fr) Neg() Fr {
	var z Fr
	z.e.Neg(&x.e)

	return z
}

// Zero returns 0.
func (x Fr) Zero() Fr { return Fr{} }

// IsZero reports x == 0.
func (x Fr) IsZero() bool { return x.e.IsZero() }

// Mul returns x·y.
func (x Fr) Mul(y Fr) Fr {
	var z Fr
	z.e.Mul(&x.e, &y.e)

	return z
}

// One returns 1.
func (x Fr) One() Fr {
	var z Fr
	z.e.SetOne()

	return z
}

// FromInt64 returns n mod r.
func (x Fr) FromInt64(n int64) Fr { return NewFr(n) }

// IsUnit holds for every nonzero element.
func (x Fr) IsUnit() bool { return !x.IsZero() }

// UnitInverse returns x⁻¹ for x ≠ 0.
func (x Fr) UnitInverse() (Fr, bool) {
	if x.IsZero() {
		return Fr{}, false
	}
	var z Fr
	z.e.Inverse(&x.e)

	return z, true
}

// Inverse returns x⁻¹, or ErrDivisionByZero.
func (x Fr) Inverse() (Fr, error) {
	inv, ok := x.UnitInverse()
	if !ok {
		return x, fmt.Errorf("numbers: Fr.Inverse: %w", algebra.ErrDivisionByZero)
	}

	return inv, nil
}

// DivMod divides exactly (remainder 0).
func (x Fr) DivMod(d Fr) (Fr, Fr, error) {
	inv, err := d.Inverse()
	if err != nil {
		return Fr{}, Fr{}, err
	}

	return x.Mul(inv), Fr{}, nil
}

// CompareSize uses the field convention.
func (x Fr) CompareSize(y Fr) int { return algebra.CompareFieldSize(x.IsZero(), y.IsZero()) }

// NormalizingUnit returns x⁻¹ (1 for zero).
func (x Fr) NormalizingUnit() Fr {
	if inv, ok := x.UnitInverse(); ok {
		return inv
	}

	return x.One()
}
