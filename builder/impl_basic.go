// SPDX-License-Identifier: MIT
// Package: homalg/builder
//
// impl_basic.go: Point, Cycle, Simplex, Sphere and Disk.
//
// Contract:
//   • Local vertex ids are 0..n-1 (plus the cone apex n for Disk), shifted by the
//     set offset under WithDisjointUnion.
//   • Generating simplices are emitted in ascending lexicographic order.
//
// Homology (over ℤ): Point ≅ Simplex(n) ≅ Disk(n) ≅ pt; Cycle(n) ≅ S¹; Sphere(n) ≅ Sⁿ.

package builder

// Point adds a single vertex.
func Point() Constructor {
	return func(set *simplexSet, cfg builderConfig) error {
		set.add(set.offset(cfg), 0)

		return nil
	}
}

// Cycle adds the n-gon: edges {i, i+1 mod n}. Requires n ≥ MinCycleVertices.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(set *simplexSet, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleVertices); err != nil {
			return err
		}
		off := set.offset(cfg)
		for i := 0; i < n; i++ {
			set.add(off, i, (i+1)%n)
		}

		return nil
	}
}

// Simplex adds the filled n-simplex on n+1 vertices. Requires n ≥ 0.
// Complexity: O(n) here; the closure adds 2^{n+1}-1 cells.
func Simplex(n int) Constructor {
	return func(set *simplexSet, cfg builderConfig) error {
		if err := validateMin(MethodSimplex, "n", n, 0); err != nil {
			return err
		}
		set.add(set.offset(cfg), span(n+1)...)

		return nil
	}
}

// Sphere adds the boundary of the (n+1)-simplex, a triangulated n-sphere on n+2
// vertices. Requires n ≥ 0; Sphere(0) is two points.
// Complexity: O(n²).
func Sphere(n int) Constructor {
	return func(set *simplexSet, cfg builderConfig) error {
		if err := validateMin(MethodSphere, "n", n, 0); err != nil {
			return err
		}
		off := set.offset(cfg)
		all := span(n + 2)
		for skip := range all {
			face := make([]int, 0, n+1)
			face = append(face, all[:skip]...)
			face = append(face, all[skip+1:]...)
			set.add(off, face...)
		}

		return nil
	}
}

// Disk adds the cone over an n-gon: triangles {i, i+1 mod n, n}, apex n.
// Requires n ≥ MinDiskBoundary.
func Disk(n int) Constructor {
	return func(set *simplexSet, cfg builderConfig) error {
		if err := validateMin(MethodDisk, "n", n, MinDiskBoundary); err != nil {
			return err
		}
		off := set.offset(cfg)
		for i := 0; i < n; i++ {
			set.add(off, i, (i+1)%n, n)
		}

		return nil
	}
}

// span returns 0..n-1.
func span(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
