package csp

import (
	"fmt"
	"sync/atomic"
)

type Direction int

const (
	DirRead Direction = iota
	DirWrite
	DirFallback
)

func (d Direction) String() string {
	switch d {
	case DirRead:
		return "READ"
	case DirWrite:
		return "WRITE"
	case DirFallback:
		return "FALLBACK"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Key is the case chosen by Select. It is the *Intent the caller registered,
// so it can be compared with the caller's intents directly.
type Key interface {
	Direction() Direction
	// Index is the registration position of the case, -1 for the fallback.
	Index() int
	String() string
}

// Intent is one case of a select: a read from, or a write to, a channel, or
// the fallback taken when nothing else is ready.
//
// An Intent holds the state of the Select call using it. It can be registered
// with several selectors, but only one of them may run Select at a time;
// concurrent selects sharing an Intent race on its value and waiter.
type Intent[T any] struct {
	direction Direction
	channel   *Channel[T]
	value     T
	closed    bool
	index     int

	// w is the waiter queued for the Select call in progress.
	w *waiter[T]
}

func Read[T any]() *Intent[T] {
	return &Intent[T]{direction: DirRead, index: -1}
}

func Write[T any](v T) *Intent[T] {
	return &Intent[T]{direction: DirWrite, value: v, index: -1}
}

func Fallback() *Intent[struct{}] {
	return &Intent[struct{}]{direction: DirFallback, index: -1}
}

func (in *Intent[T]) Direction() Direction {
	return in.direction
}

func (in *Intent[T]) Channel() *Channel[T] {
	return in.channel
}

// Value is the offered value of a write, or the received value of a read
// chosen by the last Select.
func (in *Intent[T]) Value() T {
	return in.value
}

// Closed reports whether a chosen read found its channel closed and drained.
func (in *Intent[T]) Closed() bool {
	return in.closed
}

func (in *Intent[T]) Index() int {
	return in.index
}

func (in *Intent[T]) String() string {
	return fmt.Sprintf("Intent{direction=%s, channel=%v, value=%v, closed=%t}",
		in.direction, in.channel, in.value, in.closed)
}

// selectCase is the type-erased view of an Intent used by Selector.
// try, enqueue, dequeue and resolved run with the channel lock held.
type selectCase interface {
	Key
	target() chanLocker
	try() (bool, error)
	enqueue(gate *atomic.Bool, p *parker)
	dequeue()
	resolved() bool
	complete() error
	setIndex(i int)
}

type chanLocker interface {
	seq() uint64
	lock()
	unlock()
}

func (in *Intent[T]) setIndex(i int) {
	in.index = i
}

func (in *Intent[T]) target() chanLocker {
	return in.channel
}

func (in *Intent[T]) try() (bool, error) {
	in.w = nil
	if in.direction == DirWrite {
		ok, err := in.channel.sendLocked(in.value)
		if err != nil {
			return false, fmt.Errorf("select write on %s: %w", in.channel, err)
		}
		return ok, nil
	}
	v, ok, selected := in.channel.receiveLocked()
	if selected {
		in.value, in.closed = v, !ok
	}
	return selected, nil
}

func (in *Intent[T]) enqueue(gate *atomic.Bool, p *parker) {
	w := newWaiter[T](p, gate)
	if in.direction == DirWrite {
		w.value = in.value
		in.channel.sendq.enqueue(w)
	} else {
		in.channel.recvq.enqueue(w)
	}
	in.w = w
}

// dequeue drops the waiter of a case that lost the select.
func (in *Intent[T]) dequeue() {
	if in.w == nil {
		return
	}
	if in.direction == DirWrite {
		in.channel.sendq.remove(in.w)
	} else {
		in.channel.recvq.remove(in.w)
	}
	in.w = nil
}

func (in *Intent[T]) resolved() bool {
	return in.w != nil && in.w.done
}

// complete copies the outcome of the winning waiter into the intent.
func (in *Intent[T]) complete() error {
	w := in.w
	in.w = nil
	if in.direction == DirWrite {
		if w.closed {
			return fmt.Errorf("select write on %s: %w", in.channel, ErrClosed)
		}
		return nil
	}
	in.closed = w.closed
	if !w.closed {
		in.value = w.value
	} else {
		var zero T
		in.value = zero
	}
	return nil
}
