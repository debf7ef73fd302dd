// SPDX-License-Identifier: MIT

// Package concurrency runs independent units of work on a bounded set of reusable
// slots. A slot is whatever a task needs exclusively (a worker id, a scratch buffer);
// at most len(slots) tasks run at the same time.
//
// Errors:
//   - The first error returned by a task is kept and reported by Wait.
//   - Once a task failed, tasks that have not started yet are skipped.
package concurrency

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Task is a unit of work executed with exclusive access to one slot.
type Task[T any] func(slot T) error

// Pool dispatches Tasks over a fixed set of slots.
type Pool[T any] struct {
	wg     sync.WaitGroup
	slots  chan T
	once   sync.Once
	err    error
	failed atomic.Bool
}

// NewPool returns a pool owning the given slots. It panics on an empty slot list,
// which would deadlock every Run.
func NewPool[T any](slots []T) *Pool[T] {
	if len(slots) == 0 {
		panic("concurrency: NewPool: at least one slot is required")
	}
	ch := make(chan T, len(slots))
	for i := range slots {
		ch <- slots[i]
	}

	return &Pool[T]{slots: ch}
}

// Workers returns the slot ids 0..n-1. n ≤ 0 selects runtime.GOMAXPROCS(0).
func Workers(n int) []int {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}

	return ids
}

// Run schedules f. It never blocks the caller.
func (p *Pool[T]) Run(f Task[T]) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		slot := <-p.slots
		defer func() { p.slots <- slot }()
		if p.failed.Load() {
			return
		}
		if err := f(slot); err != nil {
			p.once.Do(func() {
				p.err = err
				p.failed.Store(true)
			})
		}
	}()
}

// Wait blocks until every scheduled task has returned or been skipped, then
// reports the first error.
func (p *Pool[T]) Wait() error {
	p.wg.Wait()

	return p.err
}
