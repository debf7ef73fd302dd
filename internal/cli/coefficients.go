// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/chain"
	"github.com/katalvlaran/homalg/homology"
	"github.com/katalvlaran/homalg/internal/config"
	"github.com/katalvlaran/homalg/numbers"
	"github.com/katalvlaran/homalg/persistence"
	"github.com/katalvlaran/homalg/simplicial"
)

// homologyReport computes and renders homology over the session's coefficients.
func (s *session) homologyReport(ctx context.Context, sc *simplicial.Complex, generators bool) (string, error) {
	switch s.cfg.Coefficients {
	case config.CoeffZ:
		return homologyOver[numbers.Int](ctx, s, sc, generators)
	case config.CoeffQ:
		return homologyOver[numbers.Rational](ctx, s, sc, generators)
	case config.CoeffZ2:
		return homologyOver[numbers.Z2](ctx, s, sc, generators)
	case config.CoeffZ3:
		return homologyOver[numbers.Z3](ctx, s, sc, generators)
	case config.CoeffZ5:
		return homologyOver[numbers.Z5](ctx, s, sc, generators)
	case config.CoeffZ7:
		return homologyOver[numbers.Z7](ctx, s, sc, generators)
	case config.CoeffFr:
		return homologyOver[numbers.Fr](ctx, s, sc, generators)
	default:
		return "", fmt.Errorf("%w: coefficients = %s", config.ErrInvalid, s.cfg.Coefficients)
	}
}

func homologyOver[R algebra.Ring[R]](ctx context.Context, s *session, sc *simplicial.Complex, generators bool) (string, error) {
	cc, err := chain.FromSimplicial[R](sc, chain.WithStorage(s.cfg.MatrixStorage()), chain.WithLogger(s.logger))
	if err != nil {
		return "", err
	}
	h, err := homology.Compute(ctx, cc, homology.WithParallelism(s.cfg.Parallelism), homology.WithLogger(s.logger))
	if err != nil {
		return "", err
	}
	if !generators {
		return h.Format(s.style), nil
	}
	lines := make([]string, 0, h.Dim()+1)
	for _, g := range h.Groups() {
		lines = append(lines, g.Detail(s.style))
	}

	return strings.Join(lines, "\n"), nil
}

// persistenceReport computes and renders the persistence diagram over the session's field.
func (s *session) persistenceReport(ctx context.Context, f *simplicial.Filtration, barcode bool) (string, error) {
	switch s.cfg.Coefficients {
	case config.CoeffQ:
		return persistenceOver[numbers.Rational](ctx, s, f, barcode)
	case config.CoeffZ2:
		return persistenceOver[numbers.Z2](ctx, s, f, barcode)
	case config.CoeffZ3:
		return persistenceOver[numbers.Z3](ctx, s, f, barcode)
	case config.CoeffZ5:
		return persistenceOver[numbers.Z5](ctx, s, f, barcode)
	case config.CoeffZ7:
		return persistenceOver[numbers.Z7](ctx, s, f, barcode)
	case config.CoeffFr:
		return persistenceOver[numbers.Fr](ctx, s, f, barcode)
	default:
		return "", fmt.Errorf("%w: persistence needs a field, got %s", algebra.ErrCapability, s.cfg.Coefficients)
	}
}

func persistenceOver[K algebra.Field[K]](ctx context.Context, s *session, f *simplicial.Filtration, barcode bool) (string, error) {
	d, err := persistence.Compute[K](ctx, f,
		persistence.WithStorage(s.cfg.MatrixStorage()),
		persistence.WithParallelism(s.cfg.Parallelism),
		persistence.WithLogger(s.logger),
	)
	if err != nil {
		return "", err
	}
	if barcode {
		return d.Barcode(s.style), nil
	}

	return d.Format(s.style), nil
}
