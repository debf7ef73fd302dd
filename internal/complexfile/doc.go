// SPDX-License-Identifier: MIT

// Package complexfile reads and writes simplicial complexes and filtrations as YAML
// or TOML documents. The format is chosen by file extension.
//
//	labels:
//	  "0": a
//	simplices:
//	  - [0, 1, 2]
//	  - [2, 3]
//
// A filtration lists, per stage, the simplices entering at that stage:
//
//	stages:
//	  - [[0, 1], [1, 2]]
//	  - [[0, 2]]
//	  - []
//	  - [[0, 1, 2]]
//
// Every listed simplex brings its faces along.
package complexfile
