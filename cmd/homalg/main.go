// SPDX-License-Identifier: MIT

// Command homalg computes homology and persistence of simplicial complexes read from
// YAML or TOML files.
package main

import "github.com/katalvlaran/homalg/internal/cli"

func main() {
	cli.Execute()
}
