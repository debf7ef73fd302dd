// SPDX-License-Identifier: MIT
// Package algebra: generic free functions ("default method bodies") shared by all
// implementations of the contracts.
//
// Determinism:
//   - Every function is pure; results are canonical (normalized by NormalizingUnit)
//     wherever a Euclidean structure gives a canonical associate.

package algebra

// Operation tags for DomainError wrapping.
const (
	opInverse = "Inverse"
	opDiv     = "Div"
	opEmbed   = "Embed"
)

// IsEuclidean reports whether R implements EuclideanRing[R].
// Complexity: O(1).
func IsEuclidean[R Ring[R]]() bool {
	var zero R
	_, ok := any(zero).(EuclideanRing[R])

	return ok
}

// IsField reports whether R implements Field[R].
func IsField[R Ring[R]]() bool {
	var zero R
	_, ok := any(zero).(Field[R])

	return ok
}

// AsEuclidean returns x viewed through its EuclideanRing capability.
// The boolean is false when R lacks that capability.
func AsEuclidean[R Ring[R]](x R) (EuclideanRing[R], bool) {
	e, ok := any(x).(EuclideanRing[R])

	return e, ok
}

// Pow returns aⁿ by square-and-multiply (a⁰ = 1).
// Complexity: O(log n) multiplications.
func Pow[T Monoid[T]](a T, n uint) T {
	result := a.One()
	base := a
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}

	return result
}

// Inverse returns the multiplicative inverse of a unit, or a DomainError
// wrapping ErrNotUnit (ErrDivisionByZero for zero).
func Inverse[R Ring[R]](x R) (R, error) {
	if x.IsZero() {
		return x, domainErrorf(opInverse, ErrDivisionByZero)
	}
	inv, ok := x.UnitInverse()
	if !ok {
		return x, domainErrorf(opInverse, ErrNotUnit)
	}

	return inv, nil
}

// Div returns x·d⁻¹ for a unit d.
func Div[R Ring[R]](x, d R) (R, error) {
	inv, err := Inverse(d)
	if err != nil {
		return x, domainErrorf(opDiv, err)
	}

	return x.Mul(inv), nil
}

// Normalize returns the canonical associate x·u of x.
func Normalize[R EuclideanRing[R]](x R) R {
	return x.Mul(x.NormalizingUnit())
}

// Divides reports whether a | b. Zero divides only zero.
func Divides[R EuclideanRing[R]](a, b R) bool {
	if a.IsZero() {
		return b.IsZero()
	}
	_, r, err := b.DivMod(a)

	return err == nil && r.IsZero()
}

// ExactQuo returns b / a when a | b; ok is false otherwise.
func ExactQuo[R EuclideanRing[R]](b, a R) (q R, ok bool) {
	if a.IsZero() {
		return b, false
	}
	q, r, err := b.DivMod(a)
	if err != nil || !r.IsZero() {
		return b, false
	}

	return q, true
}

// Gcd returns the normalized greatest common divisor of a and b (Euclid's algorithm).
// gcd(0, 0) = 0.
// Complexity: O(number of Euclidean steps), each one DivMod.
func Gcd[R EuclideanRing[R]](a, b R) R {
	for !b.IsZero() {
		_, r, _ := a.DivMod(b) // b ≠ 0, so DivMod cannot fail
		a, b = b, r
	}

	return Normalize(a)
}

// Lcm returns the normalized least common multiple; lcm(x, 0) = 0.
func Lcm[R EuclideanRing[R]](a, b R) R {
	if a.IsZero() || b.IsZero() {
		return a.Zero()
	}
	g := Gcd(a, b)
	q, _ := ExactQuo(a, g)

	return Normalize(q.Mul(b))
}

// Bezout runs the extended Euclidean algorithm and returns s, t, g with
// s·a + t·b = g = Gcd(a, b) (g normalized).
//
// Implementation:
//   - Stage 1: classic (r, s, t) triple recurrence until the remainder vanishes.
//   - Stage 2: scale the final triple by NormalizingUnit(g) so g is canonical.
func Bezout[R EuclideanRing[R]](a, b R) (s, t, g R) {
	oldR, r := a, b
	oldS, sCur := a.One(), a.Zero()
	oldT, tCur := a.Zero(), a.One()
	for !r.IsZero() {
		q, rem, _ := oldR.DivMod(r)
		oldR, r = r, rem
		oldS, sCur = sCur, oldS.Sub(q.Mul(sCur))
		oldT, tCur = tCur, oldT.Sub(q.Mul(tCur))
	}
	u := oldR.NormalizingUnit()

	return oldS.Mul(u), oldT.Mul(u), oldR.Mul(u)
}

// Sum folds Add over xs starting from zero.
func Sum[T AdditiveGroup[T]](xs ...T) T {
	var acc T
	acc = acc.Zero()
	for _, x := range xs {
		acc = acc.Add(x)
	}

	return acc
}

// Product folds Mul over xs starting from one.
func Product[T Monoid[T]](xs ...T) T {
	var acc T
	acc = acc.One()
	for _, x := range xs {
		acc = acc.Mul(x)
	}

	return acc
}
