// SPDX-License-Identifier: MIT

package polynomial

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/matrix"
)

// Polynomial is an element of K[x]. The zero value is the zero polynomial.
type Polynomial[K algebra.Field[K]] struct {
	coeffs []K // ascending degree, no trailing zeros
}

// New builds c₀ + c₁x + … + cₙxⁿ. The input slice is copied.
func New[K algebra.Field[K]](coeffs ...K) Polynomial[K] {
	cp := make([]K, len(coeffs))
	copy(cp, coeffs)

	return fromOwned(cp)
}

// Constant returns the degree-0 polynomial c (or zero).
func Constant[K algebra.Field[K]](c K) Polynomial[K] { return New(c) }

// Monomial returns c·xⁿ. n must be ≥ 0.
func Monomial[K algebra.Field[K]](c K, n int) Polynomial[K] {
	if n < 0 {
		panic(fmt.Sprintf("polynomial: Monomial: negative exponent %d", n))
	}
	cs := make([]K, n+1)
	for i := range cs {
		cs[i] = c.Zero()
	}
	cs[n] = c

	return fromOwned(cs)
}

// X returns the indeterminate x.
func X[K algebra.Field[K]]() Polynomial[K] {
	var k K

	return Monomial(k.One(), 1)
}

// fromOwned trims trailing zeros in place and takes ownership of cs.
func fromOwned[K algebra.Field[K]](cs []K) Polynomial[K] {
	n := len(cs)
	for n > 0 && cs[n-1].IsZero() {
		n--
	}
	if n == 0 {
		return Polynomial[K]{}
	}

	return Polynomial[K]{coeffs: cs[:n]}
}

// Degree returns the degree; -1 for the zero polynomial.
func (p Polynomial[K]) Degree() int { return len(p.coeffs) - 1 }

// Coeff returns the coefficient of xⁱ (zero outside the support).
func (p Polynomial[K]) Coeff(i int) K {
	if i < 0 || i >= len(p.coeffs) {
		var k K

		return k.Zero()
	}

	return p.coeffs[i]
}

// Coefficients returns a copy of the ascending coefficient list.
func (p Polynomial[K]) Coefficients() []K {
	out := make([]K, len(p.coeffs))
	copy(out, p.coeffs)

	return out
}

// LeadCoeff returns the leading coefficient (zero for the zero polynomial).
func (p Polynomial[K]) LeadCoeff() K { return p.Coeff(p.Degree()) }

// LowestDegree returns the smallest exponent with a nonzero coefficient; -1 for zero.
// For the monomial c·xᵏ this is k.
func (p Polynomial[K]) LowestDegree() int {
	for i, c := range p.coeffs {
		if !c.IsZero() {
			return i
		}
	}

	return -1
}

// Equal compares coefficient lists.
func (p Polynomial[K]) Equal(q Polynomial[K]) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if !p.coeffs[i].Equal(q.coeffs[i]) {
			return false
		}
	}

	return true
}

// Symbol names the polynomial ring, e.g. "Q[x]".
func (Polynomial[K]) Symbol() string { return algebra.SymbolOf[K]() + "[x]" }

// String renders terms in descending degree, e.g. "x^2 - 3x + 1/2".
func (p Polynomial[K]) String() string {
	if p.IsZero() {
		return "0"
	}
	var k K
	one := k.One()
	minusOne := one.Neg()

	var sb strings.Builder
	first := true
	for i := p.Degree(); i >= 0; i-- {
		c := p.coeffs[i]
		if c.IsZero() {
			continue
		}
		coef := c.String()
		neg := strings.HasPrefix(coef, "-")
		switch {
		case first && neg:
			sb.WriteString("-")
		case !first && neg:
			sb.WriteString(" - ")
		case !first:
			sb.WriteString(" + ")
		}
		if neg {
			coef = coef[1:]
		}
		first = false

		implicit := c.Equal(one) || (neg && c.Equal(minusOne))
		if i == 0 || !implicit {
			sb.WriteString(coef)
		}
		switch {
		case i == 1:
			sb.WriteString("x")
		case i > 1:
			fmt.Fprintf(&sb, "x^%d", i)
		}
	}

	return sb.String()
}

// Add returns p+q.
func (p Polynomial[K]) Add(q Polynomial[K]) Polynomial[K] {
	n := max(len(p.coeffs), len(q.coeffs))
	cs := make([]K, n)
	for i := range cs {
		cs[i] = p.Coeff(i).Add(q.Coeff(i))
	}

	return fromOwned(cs)
}

// Sub returns p-q.
func (p Polynomial[K]) Sub(q Polynomial[K]) Polynomial[K] {
	n := max(len(p.coeffs), len(q.coeffs))
	cs := make([]K, n)
	for i := range cs {
		cs[i] = p.Coeff(i).Sub(q.Coeff(i))
	}

	return fromOwned(cs)
}

// Neg returns -p.
func (p Polynomial[K]) Neg() Polynomial[K] {
	cs := make([]K, len(p.coeffs))
	for i, c := range p.coeffs {
		cs[i] = c.Neg()
	}

	return Polynomial[K]{coeffs: cs}
}

// Zero returns the zero polynomial.
func (p Polynomial[K]) Zero() Polynomial[K] { return Polynomial[K]{} }

// IsZero reports whether p has no nonzero coefficient.
func (p Polynomial[K]) IsZero() bool { return len(p.coeffs) == 0 }

// Mul returns p·q (schoolbook convolution).
func (p Polynomial[K]) Mul(q Polynomial[K]) Polynomial[K] {
	if p.IsZero() || q.IsZero() {
		return Polynomial[K]{}
	}
	cs := make([]K, len(p.coeffs)+len(q.coeffs)-1)
	for i := range cs {
		cs[i] = p.coeffs[0].Zero()
	}
	for i, a := range p.coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range q.coeffs {
			cs[i+j] = cs[i+j].Add(a.Mul(b))
		}
	}

	return fromOwned(cs)
}

// One returns the constant 1.
func (p Polynomial[K]) One() Polynomial[K] {
	var k K

	return Constant(k.One())
}

// FromInt64 returns the constant n·1.
func (p Polynomial[K]) FromInt64(n int64) Polynomial[K] {
	var k K

	return Constant(k.FromInt64(n))
}

// IsUnit holds exactly for nonzero constants.
func (p Polynomial[K]) IsUnit() bool { return p.Degree() == 0 }

// UnitInverse inverts a nonzero constant.
func (p Polynomial[K]) UnitInverse() (Polynomial[K], bool) {
	if !p.IsUnit() {
		return Polynomial[K]{}, false
	}
	inv, err := p.coeffs[0].Inverse()
	if err != nil {
		return Polynomial[K]{}, false
	}

	return Constant(inv), true
}

// Scale returns c·p (K-module action).
func (p Polynomial[K]) Scale(c K) Polynomial[K] {
	cs := make([]K, len(p.coeffs))
	for i, a := range p.coeffs {
		cs[i] = c.Mul(a)
	}

	return fromOwned(cs)
}

// DivMod performs long division: p = q·d + r with deg r < deg d.
// Returns a wrapped algebra.ErrDivisionByZero when d is zero.
func (p Polynomial[K]) DivMod(d Polynomial[K]) (Polynomial[K], Polynomial[K], error) {
	if d.IsZero() {
		return p, p, fmt.Errorf("polynomial: DivMod: %w", algebra.ErrDivisionByZero)
	}
	leadInv, err := d.LeadCoeff().Inverse()
	if err != nil {
		return p, p, fmt.Errorf("polynomial: DivMod: %w", err)
	}

	dd := d.Degree()
	if p.Degree() < dd {
		return Polynomial[K]{}, p, nil
	}

	rem := p.Coefficients()
	quo := make([]K, p.Degree()-dd+1)
	for i := range quo {
		quo[i] = leadInv.Zero()
	}
	for top := len(rem) - 1; top >= dd; top-- {
		c := rem[top]
		if c.IsZero() {
			continue
		}
		f := c.Mul(leadInv)
		shift := top - dd
		quo[shift] = f
		for j, b := range d.coeffs {
			rem[shift+j] = rem[shift+j].Sub(f.Mul(b))
		}
	}

	return fromOwned(quo), fromOwned(rem[:dd]), nil
}

// CompareSize orders by degree (the zero polynomial is smallest).
func (p Polynomial[K]) CompareSize(q Polynomial[K]) int {
	switch a, b := p.Degree(), q.Degree(); {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// NormalizingUnit returns 1/lead(p), making p·u monic; One for zero.
func (p Polynomial[K]) NormalizingUnit() Polynomial[K] {
	if p.IsZero() {
		return p.One()
	}
	inv, err := p.LeadCoeff().Inverse()
	if err != nil {
		return p.One()
	}

	return Constant(inv)
}

// Monic returns p scaled to leading coefficient 1 (zero stays zero).
func (p Polynomial[K]) Monic() Polynomial[K] {
	if p.IsZero() {
		return p
	}

	return p.Mul(p.NormalizingUnit())
}

// Evaluate returns p(at) by Horner's rule.
func (p Polynomial[K]) Evaluate(at K) K {
	acc := at.Zero()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(at).Add(p.coeffs[i])
	}

	return acc
}

// EvaluateMatrix returns p(m) = Σ cᵢ·mⁱ by Horner's scheme, with m⁰ the identity.
// The result keeps m's storage.
//
// Errors: matrix.ErrNonSquare when m is not square.
//
// Complexity: deg p matrix products.
func (p Polynomial[K]) EvaluateMatrix(m *matrix.Matrix[K]) (*matrix.Matrix[K], error) {
	if !m.IsSquare() {
		return nil, fmt.Errorf("EvaluateMatrix: %w", matrix.ErrNonSquare)
	}
	n := m.Rows()
	id, err := matrix.Identity[K](n, matrix.WithStorage(m.Storage()))
	if err != nil {
		return nil, fmt.Errorf("EvaluateMatrix: %w", err)
	}
	acc, err := matrix.Zero[K](n, n, matrix.WithStorage(m.Storage()))
	if err != nil {
		return nil, fmt.Errorf("EvaluateMatrix: %w", err)
	}
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		if acc, err = acc.Mul(m); err != nil {
			return nil, fmt.Errorf("EvaluateMatrix: %w", err)
		}
		if acc, err = acc.Add(id.ScaleLeft(p.coeffs[i])); err != nil {
			return nil, fmt.Errorf("EvaluateMatrix: %w", err)
		}
	}

	return acc, nil
}

// Derivative returns the formal derivative dp/dx.
func (p Polynomial[K]) Derivative() Polynomial[K] {
	if len(p.coeffs) <= 1 {
		return Polynomial[K]{}
	}
	cs := make([]K, len(p.coeffs)-1)
	for i := 1; i < len(p.coeffs); i++ {
		cs[i-1] = p.coeffs[i].FromInt64(int64(i)).Mul(p.coeffs[i])
	}

	return fromOwned(cs)
}

// MapCoeffs applies f to every coefficient, changing the coefficient field.
func MapCoeffs[K algebra.Field[K], L algebra.Field[L]](p Polynomial[K], f func(K) L) Polynomial[L] {
	cs := make([]L, len(p.coeffs))
	for i, c := range p.coeffs {
		cs[i] = f(c)
	}

	return fromOwned(cs)
}
