// SPDX-License-Identifier: MIT
// Package algebra: product structures. All operations act componentwise.

package algebra

import "fmt"

// ProductMonoid is the direct product M1 × M2 of two monoids.
type ProductMonoid[A Monoid[A], B Monoid[B]] struct {
	First  A
	Second B
}

// NewProductMonoid pairs a and b.
func NewProductMonoid[A Monoid[A], B Monoid[B]](a A, b B) ProductMonoid[A, B] {
	return ProductMonoid[A, B]{First: a, Second: b}
}

// Equal reports componentwise equality.
func (p ProductMonoid[A, B]) Equal(o ProductMonoid[A, B]) bool {
	return p.First.Equal(o.First) && p.Second.Equal(o.Second)
}

func (p ProductMonoid[A, B]) String() string {
	return fmt.Sprintf("(%s, %s)", p.First, p.Second)
}

// Mul multiplies componentwise.
func (p ProductMonoid[A, B]) Mul(o ProductMonoid[A, B]) ProductMonoid[A, B] {
	return ProductMonoid[A, B]{First: p.First.Mul(o.First), Second: p.Second.Mul(o.Second)}
}

// One returns (1, 1).
func (p ProductMonoid[A, B]) One() ProductMonoid[A, B] {
	return ProductMonoid[A, B]{First: p.First.One(), Second: p.Second.One()}
}

// ProductGroup is the direct sum G1 ⊕ G2 of two additive groups.
type ProductGroup[A AdditiveGroup[A], B AdditiveGroup[B]] struct {
	First  A
	Second B
}

// NewProductGroup pairs a and b.
func NewProductGroup[A AdditiveGroup[A], B AdditiveGroup[B]](a A, b B) ProductGroup[A, B] {
	return ProductGroup[A, B]{First: a, Second: b}
}

// Equal reports componentwise equality.
func (p ProductGroup[A, B]) Equal(o ProductGroup[A, B]) bool {
	return p.First.Equal(o.First) && p.Second.Equal(o.Second)
}

func (p ProductGroup[A, B]) String() string {
	return fmt.Sprintf("(%s, %s)", p.First, p.Second)
}

// Add adds componentwise.
func (p ProductGroup[A, B]) Add(o ProductGroup[A, B]) ProductGroup[A, B] {
	return ProductGroup[A, B]{First: p.First.Add(o.First), Second: p.Second.Add(o.Second)}
}

// Sub subtracts componentwise.
func (p ProductGroup[A, B]) Sub(o ProductGroup[A, B]) ProductGroup[A, B] {
	return ProductGroup[A, B]{First: p.First.Sub(o.First), Second: p.Second.Sub(o.Second)}
}

// Neg negates both components.
func (p ProductGroup[A, B]) Neg() ProductGroup[A, B] {
	return ProductGroup[A, B]{First: p.First.Neg(), Second: p.Second.Neg()}
}

// Zero returns (0, 0).
func (p ProductGroup[A, B]) Zero() ProductGroup[A, B] {
	return ProductGroup[A, B]{First: p.First.Zero(), Second: p.Second.Zero()}
}

// IsZero reports whether both components vanish.
func (p ProductGroup[A, B]) IsZero() bool {
	return p.First.IsZero() && p.Second.IsZero()
}

// ProductRing is the direct product R1 × R2 of two rings.
// It is never Euclidean (it has zero divisors), which makes it the canonical
// example of a ring that full diagonalization must reject.
type ProductRing[A Ring[A], B Ring[B]] struct {
	First  A
	Second B
}

// NewProductRing pairs a and b.
func NewProductRing[A Ring[A], B Ring[B]](a A, b B) ProductRing[A, B] {
	return ProductRing[A, B]{First: a, Second: b}
}

// Equal reports componentwise equality.
func (p ProductRing[A, B]) Equal(o ProductRing[A, B]) bool {
	return p.First.Equal(o.First) && p.Second.Equal(o.Second)
}

func (p ProductRing[A, B]) String() string {
	return fmt.Sprintf("(%s, %s)", p.First, p.Second)
}

// Add adds componentwise.
func (p ProductRing[A, B]) Add(o ProductRing[A, B]) ProductRing[A, B] {
	return ProductRing[A, B]{First: p.First.Add(o.First), Second: p.Second.Add(o.Second)}
}

// Sub subtracts componentwise.
func (p ProductRing[A, B]) Sub(o ProductRing[A, B]) ProductRing[A, B] {
	return ProductRing[A, B]{First: p.First.Sub(o.First), Second: p.Second.Sub(o.Second)}
}

// Neg negates both components.
func (p ProductRing[A, B]) Neg() ProductRing[A, B] {
	return ProductRing[A, B]{First: p.First.Neg(), Second: p.Second.Neg()}
}

// Zero returns (0, 0).
func (p ProductRing[A, B]) Zero() ProductRing[A, B] {
	return ProductRing[A, B]{First: p.First.Zero(), Second: p.Second.Zero()}
}

// IsZero reports whether both components vanish.
func (p ProductRing[A, B]) IsZero() bool {
	return p.First.IsZero() && p.Second.IsZero()
}

// Mul multiplies componentwise.
func (p ProductRing[A, B]) Mul(o ProductRing[A, B]) ProductRing[A, B] {
	return ProductRing[A, B]{First: p.First.Mul(o.First), Second: p.Second.Mul(o.Second)}
}

// One returns (1, 1).
func (p ProductRing[A, B]) One() ProductRing[A, B] {
	return ProductRing[A, B]{First: p.First.One(), Second: p.Second.One()}
}

// FromInt64 embeds n diagonally: (n, n).
func (p ProductRing[A, B]) FromInt64(n int64) ProductRing[A, B] {
	return ProductRing[A, B]{First: p.First.FromInt64(n), Second: p.Second.FromInt64(n)}
}

// IsUnit holds iff both components are units.
func (p ProductRing[A, B]) IsUnit() bool {
	return p.First.IsUnit() && p.Second.IsUnit()
}

// UnitInverse inverts both components; absent unless both are units.
func (p ProductRing[A, B]) UnitInverse() (ProductRing[A, B], bool) {
	a, okA := p.First.UnitInverse()
	b, okB := p.Second.UnitInverse()
	if !okA || !okB {
		return p.Zero(), false
	}

	return ProductRing[A, B]{First: a, Second: b}, true
}
