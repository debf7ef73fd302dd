// SPDX-License-Identifier: MIT

package simplicial

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Option configures NewComplex.
type Option func(*Complex)

// WithLabels attaches display names to vertices. The map is copied.
func WithLabels(labels map[Vertex]string) Option {
	cp := make(map[Vertex]string, len(labels))
	for v, l := range labels {
		cp[v] = l
	}

	return func(c *Complex) { c.labels = cp }
}

// Complex is an immutable, downward-closed set of simplices.
type Complex struct {
	cells  [][]Simplex     // cells[d] sorted lexicographically
	index  map[string]int  // key → position inside cells[dim]
	labels map[Vertex]string
}

// NewComplex returns the downward closure of the given simplices.
// Empty input yields the empty complex (Dim() == -1).
func NewComplex(simplices []Simplex, opts ...Option) *Complex {
	all := make(map[string]Simplex)
	for _, s := range simplices {
		s.closure(all)
	}

	c := fromClosed(all)
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}

// fromClosed indexes a set already known to be downward closed.
func fromClosed(all map[string]Simplex) *Complex {
	top := -1
	for _, s := range all {
		top = max(top, s.Dim())
	}
	cells := make([][]Simplex, top+1)
	for _, s := range all {
		cells[s.Dim()] = append(cells[s.Dim()], s)
	}
	index := make(map[string]int, len(all))
	for d := range cells {
		slices.SortFunc(cells[d], Simplex.Compare)
		for i, s := range cells[d] {
			index[s.Key()] = i
		}
	}

	return &Complex{cells: cells, index: index}
}

// Dim returns the top dimension; -1 for the empty complex.
func (c *Complex) Dim() int { return len(c.cells) - 1 }

// Cells returns the d-dimensional cells in basis order (nil outside 0..Dim()).
func (c *Complex) Cells(d int) []Simplex {
	if d < 0 || d >= len(c.cells) {
		return nil
	}
	out := make([]Simplex, len(c.cells[d]))
	copy(out, c.cells[d])

	return out
}

// CellCount returns the number of d-dimensional cells.
func (c *Complex) CellCount(d int) int {
	if d < 0 || d >= len(c.cells) {
		return 0
	}

	return len(c.cells[d])
}

// Size returns the total number of cells.
func (c *Complex) Size() int { return len(c.index) }

// Simplices lists every cell ordered by (dimension, lexicographic).
func (c *Complex) Simplices() []Simplex {
	out := make([]Simplex, 0, len(c.index))
	for _, layer := range c.cells {
		out = append(out, layer...)
	}

	return out
}

// Index returns the basis position of s among the cells of its dimension.
func (c *Complex) Index(s Simplex) (int, bool) {
	i, ok := c.index[s.Key()]

	return i, ok
}

// Contains reports whether s is a cell.
func (c *Complex) Contains(s Simplex) bool {
	_, ok := c.index[s.Key()]

	return ok
}

// Vertices returns the vertex ids in ascending order.
func (c *Complex) Vertices() []Vertex {
	if len(c.cells) == 0 {
		return nil
	}
	out := make([]Vertex, len(c.cells[0]))
	for i, s := range c.cells[0] {
		out[i] = s.vs[0]
	}

	return out
}

// Label returns the display name of v (its decimal id when unlabeled).
func (c *Complex) Label(v Vertex) string {
	if l, ok := c.labels[v]; ok {
		return l
	}

	return strconv.Itoa(int(v))
}

// Skeleton returns the subcomplex of cells of dimension ≤ k.
func (c *Complex) Skeleton(k int) *Complex {
	n := min(max(k+1, 0), len(c.cells))
	out := &Complex{cells: make([][]Simplex, n), index: make(map[string]int), labels: c.labels}
	for d := 0; d < n; d++ {
		out.cells[d] = c.Cells(d)
		for i, s := range out.cells[d] {
			out.index[s.Key()] = i
		}
	}

	return out
}

// Union returns the smallest complex containing both c and o. Labels of c win.
func (c *Complex) Union(o *Complex) *Complex {
	all := make(map[string]Simplex, c.Size()+o.Size())
	for _, s := range c.Simplices() {
		all[s.Key()] = s
	}
	for _, s := range o.Simplices() {
		all[s.Key()] = s
	}
	out := fromClosed(all)
	out.labels = make(map[Vertex]string, len(c.labels)+len(o.labels))
	for v, l := range o.labels {
		out.labels[v] = l
	}
	for v, l := range c.labels {
		out.labels[v] = l
	}

	return out
}

// IsSubcomplexOf reports whether every cell of c is a cell of o.
func (c *Complex) IsSubcomplexOf(o *Complex) bool {
	for key := range c.index {
		if _, ok := o.index[key]; !ok {
			return false
		}
	}

	return true
}

// EulerCharacteristic returns Σ (-1)^d · #cells(d).
func (c *Complex) EulerCharacteristic() int {
	chi := 0
	for d, layer := range c.cells {
		if d%2 == 0 {
			chi += len(layer)
		} else {
			chi -= len(layer)
		}
	}

	return chi
}

// String lists the cells layer by layer, e.g. "{0: [0] [1], 1: [0,1]}".
func (c *Complex) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for d, layer := range c.cells {
		if d > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(d))
		sb.WriteByte(':')
		for _, s := range layer {
			sb.WriteByte(' ')
			sb.WriteString(s.String())
		}
	}
	sb.WriteByte('}')

	return sb.String()
}
