package csp

import (
	"sync"
	"sync/atomic"
)

// parker suspends one goroutine until another goroutine unparks it.
// A select call shares a single parker between all of its waiters.
type parker struct {
	mu    sync.Mutex
	cond  *sync.Cond
	woken bool
}

func newParker() *parker {
	p := &parker{}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// park blocks until unpark has been called. woken is checked before the first
// wait and after every wakeup, so an unpark that happens before park is not lost.
func (p *parker) park() {
	parkedGauge.Inc()
	p.mu.Lock()
	for !p.woken {
		p.cond.Wait()
	}
	p.mu.Unlock()
	parkedGauge.Dec()
}

func (p *parker) unpark() {
	p.mu.Lock()
	p.woken = true
	p.mu.Unlock()
	p.cond.Signal()
}

// waiter is one blocked send or receive. Every field except gate is guarded by
// the lock of the channel whose queue holds the waiter.
type waiter[T any] struct {
	parker *parker
	value  T

	// gate is shared by all waiters of one select call, nil otherwise.
	gate *atomic.Bool

	done   bool
	closed bool

	queued     bool
	prev, next *waiter[T]
}

func newWaiter[T any](p *parker, gate *atomic.Bool) *waiter[T] {
	return &waiter[T]{parker: p, gate: gate}
}

// claim commits the select call that owns w. It fails when another channel
// already won that call.
func (w *waiter[T]) claim() bool {
	if w.gate == nil {
		return true
	}
	return w.gate.CompareAndSwap(false, true)
}

// release marks w resolved and wakes its goroutine. The caller holds the
// channel lock and has claimed w.
func (w *waiter[T]) release(closed bool) {
	w.done = true
	w.closed = closed
	w.parker.unpark()
}
