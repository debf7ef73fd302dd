// SPDX-License-Identifier: MIT

// Package cli implements the homalg command tree:
//
//	homalg homology    FILE   homology groups (optionally with generators)
//	homalg persistence FILE   persistence intervals or a barcode
//	homalg sample     [SHAPE] emit a canonical or random complex as a document
//
// Global flags override the TOML configuration file given by --config.
package cli
