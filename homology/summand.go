// SPDX-License-Identifier: MIT

package homology

import (
	"fmt"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/chain"
)

// Kind distinguishes free from torsion summands.
type Kind uint8

const (
	// Free is a copy of the coefficient ring.
	Free Kind = iota
	// Torsion is a copy of R/(d) for a non-unit d.
	Torsion
)

func (k Kind) String() string {
	switch k {
	case Free:
		return "free"
	case Torsion:
		return "torsion"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Summand is one cyclic direct summand of a homology group with its generating cycle.
type Summand[R algebra.Ring[R]] struct {
	kind      Kind
	divisor   R
	generator chain.Chain[R]
}

// NewFree returns the free summand generated by z.
func NewFree[R algebra.Ring[R]](z chain.Chain[R]) Summand[R] {
	return Summand[R]{kind: Free, generator: z}
}

// NewTorsion returns the summand R/(d) generated by z.
func NewTorsion[R algebra.Ring[R]](d R, z chain.Chain[R]) Summand[R] {
	return Summand[R]{kind: Torsion, divisor: d, generator: z}
}

// Kind reports Free or Torsion.
func (s Summand[R]) Kind() Kind { return s.kind }

// IsFree reports Kind() == Free.
func (s Summand[R]) IsFree() bool { return s.kind == Free }

// Divisor returns the torsion coefficient d (zero for free summands).
func (s Summand[R]) Divisor() R { return s.divisor }

// Generator returns the representing cycle.
func (s Summand[R]) Generator() chain.Chain[R] { return s.generator }

// Format renders "Z" or "Z/2" (divisors that are not plain words are parenthesized).
func (s Summand[R]) Format() string {
	sym := algebra.SymbolOf[R]()
	if s.kind == Free {
		return sym
	}
	d := s.divisor.String()
	if !isWord(d) {
		d = "(" + d + ")"
	}

	return sym + "/" + d
}

func (s Summand[R]) String() string {
	return fmt.Sprintf("%s: %s", s.Format(), s.generator)
}

func isWord(s string) bool {
	for _, r := range s {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}

	return s != ""
}
