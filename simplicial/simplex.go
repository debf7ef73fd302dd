// SPDX-License-Identifier: MIT

package simplicial

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Vertex identifies a vertex of a complex.
type Vertex int

// Simplex is an immutable nonempty set of vertices stored in ascending order.
type Simplex struct {
	vs []Vertex
}

// NewSimplex sorts and de-duplicates vs. ErrEmptySimplex for an empty list.
func NewSimplex(vs ...Vertex) (Simplex, error) {
	if len(vs) == 0 {
		return Simplex{}, ErrEmptySimplex
	}
	sorted := slices.Clone(vs)
	slices.Sort(sorted)

	return Simplex{vs: slices.Compact(sorted)}, nil
}

// MustSimplex is NewSimplex for literal vertex lists; it panics on an empty list.
func MustSimplex(vs ...Vertex) Simplex {
	s, err := NewSimplex(vs...)
	if err != nil {
		panic(err)
	}

	return s
}

// Dim returns the dimension (vertex count - 1).
func (s Simplex) Dim() int { return len(s.vs) - 1 }

// Vertices returns a copy of the sorted vertex list.
func (s Simplex) Vertices() []Vertex {
	out := make([]Vertex, len(s.vs))
	copy(out, s.vs)

	return out
}

// Faces returns the codimension-1 faces; the i-th omits the i-th vertex.
// A vertex has no faces.
func (s Simplex) Faces() []Simplex {
	if len(s.vs) <= 1 {
		return nil
	}
	out := make([]Simplex, len(s.vs))
	for i := range s.vs {
		f := make([]Vertex, 0, len(s.vs)-1)
		f = append(f, s.vs[:i]...)
		f = append(f, s.vs[i+1:]...)
		out[i] = Simplex{vs: f}
	}

	return out
}

// FaceSign is the incidence sign (-1)^i of the i-th face.
func FaceSign(i int) int64 {
	if i%2 == 0 {
		return 1
	}

	return -1
}

// Contains reports whether v is a vertex of s.
func (s Simplex) Contains(v Vertex) bool {
	_, ok := slices.BinarySearch(s.vs, v)

	return ok
}

// IsFaceOf reports s ⊆ t (every simplex is a face of itself).
func (s Simplex) IsFaceOf(t Simplex) bool {
	for _, v := range s.vs {
		if !t.Contains(v) {
			return false
		}
	}

	return len(s.vs) > 0
}

// Equal compares vertex sets.
func (s Simplex) Equal(t Simplex) bool { return s.Compare(t) == 0 }

// Compare orders by dimension, then lexicographically.
func (s Simplex) Compare(t Simplex) int {
	if len(s.vs) != len(t.vs) {
		if len(s.vs) < len(t.vs) {
			return -1
		}

		return 1
	}
	for i := range s.vs {
		switch {
		case s.vs[i] < t.vs[i]:
			return -1
		case s.vs[i] > t.vs[i]:
			return 1
		}
	}

	return 0
}

// Key is a canonical string form usable as a map key, e.g. "0,1,2".
func (s Simplex) Key() string {
	parts := make([]string, len(s.vs))
	for i, v := range s.vs {
		parts[i] = strconv.Itoa(int(v))
	}

	return strings.Join(parts, ",")
}

func (s Simplex) String() string { return fmt.Sprintf("[%s]", s.Key()) }

// closure appends every nonempty subset of s to out.
func (s Simplex) closure(out map[string]Simplex) {
	n := len(s.vs)
	for mask := 1; mask < 1<<n; mask++ {
		vs := make([]Vertex, 0, n)
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				vs = append(vs, s.vs[i])
			}
		}
		f := Simplex{vs: vs}
		out[f.Key()] = f
	}
}
