// SPDX-License-Identifier: MIT
// Package matrix: functional configuration.
//
// Rules:
//   - Defaults live in documented constants (single source of truth).
//   - WithX constructors panic on nonsensical values (programmer error); valid
//     values never panic and never depend on global state.

package matrix

import "fmt"

// Storage selects the physical layout of a Matrix.
type Storage uint8

const (
	// Dense stores every element in a row-major buffer.
	Dense Storage = iota
	// Sparse stores only nonzero elements as sorted (row, col, value) triples.
	Sparse
)

func (s Storage) String() string {
	switch s {
	case Dense:
		return "dense"
	case Sparse:
		return "sparse"
	default:
		return fmt.Sprintf("Storage(%d)", uint8(s))
	}
}

// DefaultStorage is the layout used by New, Zero, Identity and FromRows.
const DefaultStorage = Dense

const panicStorageInvalid = "matrix: WithStorage: unknown storage"

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the resolved construction configuration.
type Options struct {
	storage Storage
}

// WithStorage selects the layout of the constructed matrix.
func WithStorage(s Storage) Option {
	if s != Dense && s != Sparse {
		panic(panicStorageInvalid)
	}

	return func(o *Options) { o.storage = s }
}

// gatherOptions applies opts on top of the given default layout.
func gatherOptions(storage Storage, opts ...Option) Options {
	o := Options{storage: storage}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
