// SPDX-License-Identifier: MIT

package simplicial

import "golang.org/x/exp/slices"

// Components returns the connected components of c's 1-skeleton, each as an ascending
// vertex list, ordered by smallest vertex. len(Components()) equals β₀ over any field.
// Complexity: O(V + E), breadth-first from every unvisited vertex.
func (c *Complex) Components() [][]Vertex {
	adj := make(map[Vertex][]Vertex, c.CellCount(0))
	for _, e := range c.Cells(1) {
		a, b := e.vs[0], e.vs[1]
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}

	visited := make(map[Vertex]bool, c.CellCount(0))
	var out [][]Vertex
	for _, root := range c.Vertices() {
		if visited[root] {
			continue
		}
		visited[root] = true
		queue := []Vertex{root}
		var comp []Vertex
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			comp = append(comp, v)
			for _, w := range adj[v] {
				if !visited[w] {
					visited[w] = true
					queue = append(queue, w)
				}
			}
		}
		slices.Sort(comp)
		out = append(out, comp)
	}

	return out
}
