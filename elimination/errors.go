// SPDX-License-Identifier: MIT
// Package elimination: sentinel errors.

package elimination

import (
	"context"
	"errors"
	"fmt"
)

// ErrCancelled reports that the context installed by WithContext was done before
// the reduction finished. It wraps the context's own error.
var ErrCancelled = errors.New("elimination: computation cancelled")

// IsCancelled reports whether err stems from a cancelled or timed-out run.
func IsCancelled(err error) bool { return errors.Is(err, ErrCancelled) }

// checkContext returns a cancellation error once ctx is done.
func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	}

	return nil
}
