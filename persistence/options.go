// SPDX-License-Identifier: MIT
// Package persistence: functional configuration, forwarded to chain and homology.

package persistence

import (
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/homalg/chain"
	"github.com/katalvlaran/homalg/homology"
	"github.com/katalvlaran/homalg/matrix"
)

// Option configures Compute.
type Option func(*options)

type options struct {
	chain    []chain.Option
	homology []homology.Option
}

// WithParallelism bounds concurrently reduced degrees (see homology.WithParallelism).
func WithParallelism(n int) Option {
	opt := homology.WithParallelism(n)

	return func(o *options) { o.homology = append(o.homology, opt) }
}

// WithLogger routes elimination and homology tracing to l.
func WithLogger(l log.FieldLogger) Option {
	h, c := homology.WithLogger(l), chain.WithLogger(l)

	return func(o *options) {
		o.homology = append(o.homology, h)
		o.chain = append(o.chain, c)
	}
}

// WithStorage selects the boundary-matrix layout (see chain.WithStorage).
func WithStorage(s matrix.Storage) Option {
	opt := chain.WithStorage(s)

	return func(o *options) { o.chain = append(o.chain, opt) }
}

// WithMulStrategy selects the multiplication kernel (see homology.WithMulStrategy).
func WithMulStrategy(s matrix.MulStrategy) Option {
	opt := homology.WithMulStrategy(s)

	return func(o *options) { o.homology = append(o.homology, opt) }
}

func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
