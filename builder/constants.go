// SPDX-License-Identifier: MIT
// Package: homalg/builder
//
// constants.go: method tags and minimum sizes shared by constructors.

package builder

// Method tags prefix constructor errors.
const (
	MethodPoint           = "Point"
	MethodCycle           = "Cycle"
	MethodSimplex         = "Simplex"
	MethodSphere          = "Sphere"
	MethodDisk            = "Disk"
	MethodTorus           = "Torus"
	MethodProjectivePlane = "ProjectivePlane"
	MethodKleinBottle     = "KleinBottle"
	MethodRandomFlag      = "RandomFlag"
)

// MinCycleVertices is the smallest cycle that is a simplicial complex
// (two vertices would need a double edge).
const MinCycleVertices = 3

// MinDiskBoundary is the smallest boundary polygon of Disk(n).
const MinDiskBoundary = 3

// MinRandomFlagVertices is the smallest vertex count accepted by RandomFlag.
const MinRandomFlagVertices = 1

// MinProbability and MaxProbability bound the edge probability of RandomFlag.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// DefaultFlagMaxDim caps clique enumeration in RandomFlag when WithMaxDim is not set.
const DefaultFlagMaxDim = 2

// unlimitedDim marks "no skeleton truncation".
const unlimitedDim = -1
