// SPDX-License-Identifier: MIT
// Package elimination: Euclidean operations on a ring known only as algebra.Ring.
//
// Eliminate is generic over algebra.Ring so that RowEchelon mode accepts any ring.
// The Euclidean structure is probed once up front (algebra.IsEuclidean); after
// that the assertions below cannot fail.

package elimination

import "github.com/katalvlaran/homalg/algebra"

type euclid[R algebra.Ring[R]] struct{}

func (euclid[R]) as(x R) algebra.EuclideanRing[R] {
	return any(x).(algebra.EuclideanRing[R])
}

// divMod divides by a nonzero d.
func (e euclid[R]) divMod(x, d R) (q, r R) {
	q, r, _ = e.as(x).DivMod(d)

	return q, r
}

// smaller reports size(x) < size(y).
func (e euclid[R]) smaller(x, y R) bool { return e.as(x).CompareSize(y) < 0 }

func (e euclid[R]) normalizingUnit(x R) R { return e.as(x).NormalizingUnit() }

// divides reports a | b for a ≠ 0.
func (e euclid[R]) divides(a, b R) bool {
	_, r := e.divMod(b, a)

	return r.IsZero()
}

// exactQuo returns b/a assuming a | b.
func (e euclid[R]) exactQuo(b, a R) R {
	q, _ := e.divMod(b, a)

	return q
}

// bezout returns s, t, g with s·a + t·b = g = gcd(a, b) (not normalized).
func (e euclid[R]) bezout(a, b R) (s, t, g R) {
	oldR, r := a, b
	oldS, sCur := a.One(), a.Zero()
	oldT, tCur := a.Zero(), a.One()
	for !r.IsZero() {
		q, rem := e.divMod(oldR, r)
		oldR, r = r, rem
		oldS, sCur = sCur, oldS.Sub(q.Mul(sCur))
		oldT, tCur = tCur, oldT.Sub(q.Mul(tCur))
	}

	return oldS, oldT, oldR
}
