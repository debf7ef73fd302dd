// SPDX-License-Identifier: MIT

// Package config loads the homalg command-line configuration from a TOML file.
//
// A missing file is not an error: Load returns Default(). Fields absent from the
// file keep their default values, unknown keys are rejected.
//
//	coefficients = "Z2"
//	storage      = "dense"
//	parallelism  = 4
//	style        = "ascii"
//
//	[sample]
//	shape       = "random-flag"
//	vertices    = 10
//	probability = 0.4
//	seed        = 7
package config
