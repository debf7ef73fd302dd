// SPDX-License-Identifier: MIT

package complexfile

import (
	"strconv"

	"github.com/katalvlaran/homalg/simplicial"
)

// FromComplex describes c by its maximal simplices and non-default labels.
func FromComplex(c *simplicial.Complex) *Document {
	return &Document{Labels: labelsOf(c), Simplices: lists(maximal(c, nil))}
}

// FromFiltration describes f by the maximal simplices entering at each stage.
func FromFiltration(f *simplicial.Filtration) *Document {
	d := &Document{Labels: labelsOf(f.Final()), Stages: make([][]VertexList, f.Len())}
	var prev *simplicial.Complex
	for t := 0; t < f.Len(); t++ {
		d.Stages[t] = lists(maximal(f.At(t), prev))
		prev = f.At(t)
	}

	return d
}

// maximal returns the simplices of c that are not in prev and are not faces of another
// simplex of c that is also new.
func maximal(c, prev *simplicial.Complex) []simplicial.Simplex {
	covered := make(map[string]bool)
	var out []simplicial.Simplex
	for d := c.Dim(); d >= 0; d-- {
		for _, s := range c.Cells(d) {
			if prev != nil && prev.Contains(s) {
				continue
			}
			if !covered[s.Key()] {
				out = append(out, s)
			}
			for _, f := range s.Faces() {
				covered[f.Key()] = true
			}
		}
	}

	return out
}

func lists(ss []simplicial.Simplex) []VertexList {
	out := make([]VertexList, len(ss))
	for i, s := range ss {
		vs := s.Vertices()
		out[i] = make(VertexList, len(vs))
		for j, v := range vs {
			out[i][j] = int(v)
		}
	}

	return out
}

func labelsOf(c *simplicial.Complex) map[string]string {
	var out map[string]string
	for _, v := range c.Vertices() {
		key := strconv.Itoa(int(v))
		if l := c.Label(v); l != key {
			if out == nil {
				out = make(map[string]string)
			}
			out[key] = l
		}
	}

	return out
}
