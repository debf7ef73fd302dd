// SPDX-License-Identifier: MIT
// Package elimination: functional configuration with documented defaults.

package elimination

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Mode selects the reduction target.
type Mode uint8

const (
	// Diagonal computes the Smith normal form (EuclideanRing required).
	Diagonal Mode = iota
	// RowEchelon computes a row-echelon form P·A.
	RowEchelon
)

func (m Mode) String() string {
	switch m {
	case Diagonal:
		return "diagonal"
	case RowEchelon:
		return "row-echelon"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// DefaultMode is the reduction performed when WithMode is not given.
const DefaultMode = Diagonal

const (
	panicModeInvalid = "elimination: WithMode: unknown mode"
	panicNilContext  = "elimination: WithContext: nil context"
	panicNilLogger   = "elimination: WithLogger: nil logger"
)

// Option configures Eliminate.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	mode   Mode
	ctx    context.Context
	logger log.FieldLogger
}

// DefaultOptions returns Diagonal mode, a background context and the standard logrus logger.
func DefaultOptions() Options {
	return Options{mode: DefaultMode, ctx: context.Background(), logger: log.StandardLogger()}
}

// WithMode selects Diagonal or RowEchelon.
func WithMode(m Mode) Option {
	if m != Diagonal && m != RowEchelon {
		panic(panicModeInvalid)
	}

	return func(o *Options) { o.mode = m }
}

// WithContext installs a cancellation context checked once per pivot iteration.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic(panicNilContext)
	}

	return func(o *Options) { o.ctx = ctx }
}

// WithLogger routes debug tracing (pivot steps, coefficient growth) to l.
func WithLogger(l log.FieldLogger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// debugEnabled avoids computing trace fields nobody will see.
func debugEnabled(l log.FieldLogger) bool {
	switch v := l.(type) {
	case *log.Logger:
		return v.IsLevelEnabled(log.DebugLevel)
	case *log.Entry:
		return v.Logger.IsLevelEnabled(log.DebugLevel)
	default:
		return true
	}
}
