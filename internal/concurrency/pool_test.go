// SPDX-License-Identifier: MIT
package concurrency_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homalg/internal/concurrency"
)

func TestPool(t *testing.T) {
	t.Run("NoError", func(t *testing.T) {
		acc := make([]int, 64)
		pool := concurrency.NewPool(concurrency.Workers(4))
		for i := range acc {
			pool.Run(func(int) error {
				acc[i]++

				return nil
			})
		}
		require.NoError(t, pool.Wait())
		for i := range acc {
			require.Equal(t, 1, acc[i])
		}
	})

	t.Run("WithError", func(t *testing.T) {
		boom := errors.New("boom")
		pool := concurrency.NewPool(concurrency.Workers(2))
		for i := 0; i < 16; i++ {
			pool.Run(func(int) error {
				if i == 3 {
					return boom
				}

				return nil
			})
		}
		require.ErrorIs(t, pool.Wait(), boom)
	})

	t.Run("BoundedParallelism", func(t *testing.T) {
		var running, peak atomic.Int32
		pool := concurrency.NewPool(concurrency.Workers(3))
		for i := 0; i < 30; i++ {
			pool.Run(func(int) error {
				n := running.Add(1)
				for {
					old := peak.Load()
					if n <= old || peak.CompareAndSwap(old, n) {
						break
					}
				}
				running.Add(-1)

				return nil
			})
		}
		require.NoError(t, pool.Wait())
		require.LessOrEqual(t, peak.Load(), int32(3))
	})

	t.Run("EmptySlotsPanics", func(t *testing.T) {
		require.Panics(t, func() { concurrency.NewPool([]int{}) })
	})

	t.Run("DefaultWorkers", func(t *testing.T) {
		require.NotEmpty(t, concurrency.Workers(0))
	})
}
