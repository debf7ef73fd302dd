// SPDX-License-Identifier: MIT
// Package homology: functional configuration.

package homology

import (
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/homalg/matrix"
)

// DefaultParallelism selects runtime.GOMAXPROCS(0) workers.
const DefaultParallelism = 0

const (
	panicNegativeParallelism = "homology: WithParallelism: negative worker count"
	panicNilLogger           = "homology: WithLogger: nil logger"
	panicNilMulStrategy      = "homology: WithMulStrategy: nil strategy"
)

// Option configures Compute.
type Option func(*options)

type options struct {
	parallelism int
	logger      log.FieldLogger
	mul         matrix.MulStrategy // nil: matrix.Mul picks by storage
}

// WithParallelism bounds the number of degrees computed at once; 0 means GOMAXPROCS.
func WithParallelism(n int) Option {
	if n < 0 {
		panic(panicNegativeParallelism)
	}

	return func(o *options) { o.parallelism = n }
}

// WithLogger routes per-degree tracing to l.
func WithLogger(l log.FieldLogger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

// WithMulStrategy fixes the kernel used for the coordinate changes of every degree
// (e.g. matrix.ParallelMul for large dense complexes). By default the kernel follows
// the operands' storage.
func WithMulStrategy(s matrix.MulStrategy) Option {
	if s == nil {
		panic(panicNilMulStrategy)
	}

	return func(o *options) { o.mul = s }
}

func gatherOptions(opts ...Option) options {
	o := options{parallelism: DefaultParallelism, logger: log.StandardLogger()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
