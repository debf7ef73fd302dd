// SPDX-License-Identifier: MIT
// Package: homalg/builder
//
// impl_surfaces.go: minimal closed-surface triangulations.
//
//   Torus           7 vertices, 21 edges, 14 triangles (Möbius–Császár); H = (ℤ, ℤ², ℤ).
//   ProjectivePlane 6 vertices, 15 edges, 10 triangles (antipodal icosahedron); H = (ℤ, ℤ/2, 0).
//   KleinBottle     9 vertices, 27 edges, 18 triangles (3×3 grid, one flipped side); H = (ℤ, ℤ⊕ℤ/2, 0).

package builder

const (
	torusVertices = 7
	kleinGrid     = 3
)

// projectivePlaneTriangles is the quotient of the icosahedron by the antipodal map.
var projectivePlaneTriangles = [][3]int{
	{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 5}, {0, 1, 5},
	{1, 2, 4}, {2, 3, 5}, {1, 3, 4}, {2, 4, 5}, {1, 3, 5},
}

// Torus adds the 7-vertex torus: triangles {i, i+1, i+3} and {i, i+2, i+3} mod 7.
func Torus() Constructor {
	return func(set *simplexSet, cfg builderConfig) error {
		off := set.offset(cfg)
		for i := 0; i < torusVertices; i++ {
			set.add(off, i, (i+1)%torusVertices, (i+3)%torusVertices)
			set.add(off, i, (i+2)%torusVertices, (i+3)%torusVertices)
		}

		return nil
	}
}

// ProjectivePlane adds the 6-vertex real projective plane.
func ProjectivePlane() Constructor {
	return func(set *simplexSet, cfg builderConfig) error {
		off := set.offset(cfg)
		for _, t := range projectivePlaneTriangles {
			set.add(off, t[0], t[1], t[2])
		}

		return nil
	}
}

// KleinBottle adds a 9-vertex Klein bottle: a 3×3 grid of squares, each split along
// its diagonal, with the columns glued straight and the rows glued with a flip.
func KleinBottle() Constructor {
	return func(set *simplexSet, cfg builderConfig) error {
		off := set.offset(cfg)
		for i := 0; i < kleinGrid; i++ {
			for j := 0; j < kleinGrid; j++ {
				a, b := kleinVertex(i, j), kleinVertex(i+1, j)
				c, d := kleinVertex(i, j+1), kleinVertex(i+1, j+1)
				set.add(off, a, b, d)
				set.add(off, a, c, d)
			}
		}

		return nil
	}
}

// kleinVertex maps grid corner (i, j), 0 ≤ i, j ≤ kleinGrid, to its vertex id.
// (i, kleinGrid) ~ (i, 0) and (kleinGrid, j) ~ (0, -j).
func kleinVertex(i, j int) int {
	j %= kleinGrid
	if i == kleinGrid {
		i, j = 0, (kleinGrid-j)%kleinGrid
	}

	return i*kleinGrid + j
}
