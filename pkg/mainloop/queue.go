// Package mainloop funnels work from background goroutines onto a single
// owning goroutine, typically the Bubble Tea Update loop.
package mainloop

import (
	"context"
)

// Dispatcher schedules fn to run on the owning goroutine.
type Dispatcher interface {
	Dispatch(fn func())
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(fn func())

// Dispatch calls f(fn).
func (f DispatcherFunc) Dispatch(fn func()) { f(fn) }

// Queue is a channel-backed Dispatcher. Producers may call Dispatch from any
// goroutine; queued functions only run when the owner calls Next, RunNext or
// Drain. Dispatch blocks while the buffer is full.
type Queue struct {
	ch chan func()
}

var _ Dispatcher = (*Queue)(nil)

// NewQueue creates a queue with the given buffer size.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = 64
	}
	return &Queue{ch: make(chan func(), size)}
}

// Dispatch enqueues fn. Nil functions are dropped.
func (q *Queue) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	q.ch <- fn
}

// Next blocks until a function is queued or ctx is done. The returned
// function has not been run; callers run it on the owning goroutine.
func (q *Queue) Next(ctx context.Context) (func(), error) {
	select {
	case fn := <-q.ch:
		return fn, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// RunNext waits for one queued function and runs it on the calling goroutine.
func (q *Queue) RunNext(ctx context.Context) error {
	fn, err := q.Next(ctx)
	if err != nil {
		return err
	}
	fn()
	return nil
}

// Drain runs every function queued at the time of the call without blocking
// and returns how many ran.
func (q *Queue) Drain() int {
	n := 0
	for {
		select {
		case fn := <-q.ch:
			fn()
			n++
		default:
			return n
		}
	}
}

// Len returns the number of functions waiting to run.
func (q *Queue) Len() int {
	return len(q.ch)
}
