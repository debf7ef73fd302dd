// SPDX-License-Identifier: MIT

package chain

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/simplicial"
)

// Term is one summand c·σ of a chain.
type Term[R algebra.Ring[R]] struct {
	Simplex simplicial.Simplex
	Coeff   R
}

// Chain is an immutable formal R-linear combination of simplices, kept sorted by
// simplex order with zero coefficients removed. The zero value is the zero chain.
// Chain[R] is an R-module: it implements algebra.Module[R, Chain[R]].
type Chain[R algebra.Ring[R]] struct {
	terms []Term[R]
}

// NewChain combines like terms and drops zero coefficients.
func NewChain[R algebra.Ring[R]](terms ...Term[R]) Chain[R] {
	acc := make(map[string]Term[R], len(terms))
	for _, t := range terms {
		key := t.Simplex.Key()
		if prev, ok := acc[key]; ok {
			t.Coeff = prev.Coeff.Add(t.Coeff)
		}
		acc[key] = t
	}
	out := make([]Term[R], 0, len(acc))
	for _, t := range acc {
		if !t.Coeff.IsZero() {
			out = append(out, t)
		}
	}
	slices.SortFunc(out, func(a, b Term[R]) int { return a.Simplex.Compare(b.Simplex) })

	return Chain[R]{terms: out}
}

// Elementary returns the chain 1·s.
func Elementary[R algebra.Ring[R]](s simplicial.Simplex) Chain[R] {
	var one R

	return Chain[R]{terms: []Term[R]{{Simplex: s, Coeff: one.One()}}}
}

// Terms returns a copy of the nonzero terms in simplex order.
func (ch Chain[R]) Terms() []Term[R] { return append([]Term[R](nil), ch.terms...) }

// Len returns the number of nonzero terms.
func (ch Chain[R]) Len() int { return len(ch.terms) }

// Coeff returns the coefficient of s (zero when absent).
func (ch Chain[R]) Coeff(s simplicial.Simplex) R {
	k, ok := slices.BinarySearchFunc(ch.terms, s, func(t Term[R], s simplicial.Simplex) int { return t.Simplex.Compare(s) })
	if ok {
		return ch.terms[k].Coeff
	}
	var zero R

	return zero.Zero()
}

// Degree returns the common dimension of the terms; -1 for the zero chain.
// Errors: ErrMixedDegree.
func (ch Chain[R]) Degree() (int, error) {
	if len(ch.terms) == 0 {
		return -1, nil
	}
	d := ch.terms[0].Simplex.Dim()
	for _, t := range ch.terms[1:] {
		if t.Simplex.Dim() != d {
			return -1, ErrMixedDegree
		}
	}

	return d, nil
}

// Equal compares term lists.
func (ch Chain[R]) Equal(o Chain[R]) bool {
	if len(ch.terms) != len(o.terms) {
		return false
	}
	for i := range ch.terms {
		if !ch.terms[i].Simplex.Equal(o.terms[i].Simplex) || !ch.terms[i].Coeff.Equal(o.terms[i].Coeff) {
			return false
		}
	}

	return true
}

// Add returns ch + o.
func (ch Chain[R]) Add(o Chain[R]) Chain[R] {
	return NewChain(append(ch.Terms(), o.terms...)...)
}

// Sub returns ch - o.
func (ch Chain[R]) Sub(o Chain[R]) Chain[R] { return ch.Add(o.Neg()) }

// Neg negates every coefficient.
func (ch Chain[R]) Neg() Chain[R] {
	out := make([]Term[R], len(ch.terms))
	for i, t := range ch.terms {
		out[i] = Term[R]{Simplex: t.Simplex, Coeff: t.Coeff.Neg()}
	}

	return Chain[R]{terms: out}
}

// Zero returns the zero chain.
func (ch Chain[R]) Zero() Chain[R] { return Chain[R]{} }

// IsZero reports whether ch has no terms.
func (ch Chain[R]) IsZero() bool { return len(ch.terms) == 0 }

// Scale multiplies every coefficient by r (left action).
func (ch Chain[R]) Scale(r R) Chain[R] {
	out := make([]Term[R], 0, len(ch.terms))
	for _, t := range ch.terms {
		if c := r.Mul(t.Coeff); !c.IsZero() {
			out = append(out, Term[R]{Simplex: t.Simplex, Coeff: c})
		}
	}

	return Chain[R]{terms: out}
}

// String renders e.g. "[0,1] - [0,2] + 2[1,2]"; the zero chain is "0".
// Coefficients that print with inner spaces are parenthesized.
func (ch Chain[R]) String() string {
	if len(ch.terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range ch.terms {
		coeff := t.Coeff
		neg := strings.HasPrefix(coeff.String(), "-")
		if neg {
			coeff = coeff.Neg()
		}
		switch {
		case i == 0 && neg:
			sb.WriteByte('-')
		case i > 0 && neg:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		if !coeff.Equal(coeff.One()) {
			s := coeff.String()
			if strings.ContainsRune(s, ' ') {
				s = "(" + s + ")"
			}
			sb.WriteString(s)
		}
		sb.WriteString(t.Simplex.String())
	}

	return sb.String()
}

// Boundary applies the simplicial boundary ∂σ = Σ (-1)^k σ_k termwise.
// Vertices have zero boundary.
func Boundary[R algebra.Ring[R]](ch Chain[R]) Chain[R] {
	var terms []Term[R]
	for _, t := range ch.terms {
		for k, f := range t.Simplex.Faces() {
			sign := t.Coeff.FromInt64(simplicial.FaceSign(k))
			terms = append(terms, Term[R]{Simplex: f, Coeff: sign.Mul(t.Coeff)})
		}
	}

	return NewChain(terms...)
}
