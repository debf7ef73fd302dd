// SPDX-License-Identifier: MIT

package persistence

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/chain"
	"github.com/katalvlaran/homalg/homology"
)

// Interval is one bar [Birth, Death) of degree Degree with a representing cycle.
type Interval[K algebra.Field[K]] struct {
	degree    int
	birth     int
	death     int
	infinite  bool
	generator chain.Chain[K]
}

// Degree returns the homological degree.
func (iv Interval[K]) Degree() int { return iv.degree }

// Birth returns the first stage in which the class exists.
func (iv Interval[K]) Birth() int { return iv.birth }

// Death returns the first stage in which the class is gone; ok is false for ∞.
func (iv Interval[K]) Death() (t int, ok bool) { return iv.death, !iv.infinite }

// Infinite reports a class that survives to the final stage.
func (iv Interval[K]) Infinite() bool { return iv.infinite }

// Persistence returns Death-Birth; ok is false for infinite intervals.
func (iv Interval[K]) Persistence() (int, bool) { return iv.death - iv.birth, !iv.infinite }

// Alive reports birth ≤ t < death.
func (iv Interval[K]) Alive(t int) bool {
	return iv.birth <= t && (iv.infinite || t < iv.death)
}

// Generator returns the representing cycle over K.
func (iv Interval[K]) Generator() chain.Chain[K] { return iv.generator }

// Format renders "[1, 3)" or "[0, ∞)".
func (iv Interval[K]) Format(style homology.Style) string {
	if iv.infinite {
		return fmt.Sprintf("[%d, %s)", iv.birth, style.Infinity())
	}

	return fmt.Sprintf("[%d, %d)", iv.birth, iv.death)
}

func (iv Interval[K]) String() string { return iv.Format(homology.Unicode) }

// compare orders by birth, then death (∞ last), then generator text.
func (iv Interval[K]) compare(o Interval[K]) int {
	switch {
	case iv.birth != o.birth:
		return iv.birth - o.birth
	case iv.infinite != o.infinite:
		if iv.infinite {
			return 1
		}

		return -1
	case iv.death != o.death:
		return iv.death - o.death
	}

	return strings.Compare(iv.generator.String(), o.generator.String())
}
