// SPDX-License-Identifier: MIT
// Package chain: functional configuration.

package chain

import (
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/homalg/matrix"
)

// DefaultStorage is the boundary-matrix layout used when WithStorage is not given.
// Boundary maps have at most d+1 nonzeros per column.
const DefaultStorage = matrix.Sparse

const panicNilLogger = "chain: WithLogger: nil logger"

// Option configures complex construction.
type Option func(*options)

type options struct {
	storage matrix.Storage
	logger  log.FieldLogger
}

// WithStorage selects the layout of the boundary matrices (and of their eliminations).
func WithStorage(s matrix.Storage) Option {
	// matrix.WithStorage panics on unknown layouts; validate eagerly the same way.
	matrix.WithStorage(s)

	return func(o *options) { o.storage = s }
}

// WithLogger routes elimination tracing to l.
func WithLogger(l log.FieldLogger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

func gatherOptions(opts ...Option) options {
	o := options{storage: DefaultStorage, logger: log.StandardLogger()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
