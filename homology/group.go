// SPDX-License-Identifier: MIT

package homology

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/chain"
)

// Style selects the rendering alphabet.
type Style uint8

const (
	// Unicode joins summands with "⊕" and writes ∞.
	Unicode Style = iota
	// ASCII joins summands with "+" and writes "inf"; for terminals without UTF-8.
	ASCII
)

// Separator returns the direct-sum symbol of the style.
func (s Style) Separator() string {
	if s == ASCII {
		return " + "
	}

	return " ⊕ "
}

// Infinity returns the infinity symbol of the style.
func (s Style) Infinity() string {
	if s == ASCII {
		return "inf"
	}

	return "∞"
}

// Group is the homology group of one degree: free summands first, then torsion
// summands in elimination order (each divisor divides the next).
type Group[R algebra.Ring[R]] struct {
	degree   int
	summands []Summand[R]
}

// Degree returns i for H_i.
func (g *Group[R]) Degree() int { return g.degree }

// Summands returns a copy of the summand list.
func (g *Group[R]) Summands() []Summand[R] { return append([]Summand[R](nil), g.summands...) }

// Rank returns the number of free summands (the Betti number over a PID).
func (g *Group[R]) Rank() int {
	n := 0
	for _, s := range g.summands {
		if s.IsFree() {
			n++
		}
	}

	return n
}

// TorsionDivisors lists the torsion coefficients in order.
func (g *Group[R]) TorsionDivisors() []R {
	var out []R
	for _, s := range g.summands {
		if !s.IsFree() {
			out = append(out, s.divisor)
		}
	}

	return out
}

// Generators lists the generating cycles in summand order.
func (g *Group[R]) Generators() []chain.Chain[R] {
	out := make([]chain.Chain[R], len(g.summands))
	for i, s := range g.summands {
		out[i] = s.generator
	}

	return out
}

// IsTrivial reports the zero group.
func (g *Group[R]) IsTrivial() bool { return len(g.summands) == 0 }

// Format renders the group, e.g. "Z ⊕ Z/2"; the zero group is "0".
func (g *Group[R]) Format(style Style) string {
	if g.IsTrivial() {
		return "0"
	}
	parts := make([]string, len(g.summands))
	for i, s := range g.summands {
		parts[i] = s.Format()
	}

	return strings.Join(parts, style.Separator())
}

func (g *Group[R]) String() string { return g.Format(Unicode) }

// Detail lists every summand with its generator, one per line.
func (g *Group[R]) Detail(style Style) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "H_%d = %s", g.degree, g.Format(style))
	for _, s := range g.summands {
		fmt.Fprintf(&sb, "\n\t%s", s)
	}

	return sb.String()
}
