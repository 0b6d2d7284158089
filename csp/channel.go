package csp

import (
	"fmt"
	"sync"
	"sync/atomic"

	"ownchan/log"
)

// channelSeq hands out channel ids. Selectors lock channels in id order.
var channelSeq atomic.Uint64

// Channel is a FIFO of values of type T shared by any number of senders and
// receivers. An unbuffered channel (capacity 0) completes a send only when a
// receiver takes the value. The zero value is not usable, see NewChannel.
type Channel[T any] struct {
	id     uint64
	name   string
	logger log.Logger

	mu     sync.Mutex
	buf    *ring[T]
	closed bool
	sendq  waitQueue[T]
	recvq  waitQueue[T]
}

// NewChannel returns a channel with the given buffer capacity. It panics if
// capacity is negative.
func NewChannel[T any](capacity int) *Channel[T] {
	return NewChannelWithConfig[T](capacity, nil)
}

func NewChannelWithConfig[T any](capacity int, config *Config) *Channel[T] {
	if capacity < 0 {
		panic("csp: channel capacity out of range")
	}
	if config == nil {
		config = NewConfig()
	}
	c := &Channel[T]{
		id:     channelSeq.Add(1),
		name:   config.Name,
		logger: config.Logger,
		buf:    newRing[T](capacity),
	}
	if c.name == "" {
		c.name = fmt.Sprintf("chan#%d", c.id)
	}
	return c
}

// Send delivers v to a waiting receiver or into the buffer, and otherwise
// blocks until a receiver takes it. It returns ErrClosed if the channel is
// closed before the value is taken.
func (c *Channel[T]) Send(v T) error {
	c.mu.Lock()
	ok, err := c.sendLocked(v)
	if err != nil || ok {
		c.mu.Unlock()
		return err
	}
	w := newWaiter[T](newParker(), nil)
	w.value = v
	c.sendq.enqueue(w)
	c.mu.Unlock()
	observeOp(opSend, outcomeParked)

	w.parker.park()
	if w.closed {
		return ErrClosed
	}
	return nil
}

// Receive blocks until a value is available. ok is false, with the zero
// value, once the channel is closed and every buffered value was received.
func (c *Channel[T]) Receive() (v T, ok bool) {
	c.mu.Lock()
	v, ok, selected := c.receiveLocked()
	if selected {
		c.mu.Unlock()
		return v, ok
	}
	w := newWaiter[T](newParker(), nil)
	c.recvq.enqueue(w)
	c.mu.Unlock()
	observeOp(opReceive, outcomeParked)

	w.parker.park()
	if w.closed {
		return v, false
	}
	return w.value, true
}

// TrySend is the non-blocking form of Send. It reports whether v was taken.
func (c *Channel[T]) TrySend(v T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ok, err := c.sendLocked(v)
	if err == nil && !ok {
		observeOp(opSend, outcomeNoMatch)
	}
	return ok, err
}

// TryReceive is the non-blocking form of Receive. selected is false when
// nothing was ready; ok is false when the channel is closed and drained.
func (c *Channel[T]) TryReceive() (v T, ok bool, selected bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok, selected = c.receiveLocked()
	if !selected {
		observeOp(opReceive, outcomeNoMatch)
	}
	return v, ok, selected
}

// Close marks the channel closed. Blocked senders return ErrClosed, blocked
// receivers observe the closed indicator. Values already buffered can still be
// received. Closing twice returns ErrAlreadyClosed.
func (c *Channel[T]) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrAlreadyClosed
	}
	c.closed = true
	writers := releaseAll(&c.sendq)
	readers := releaseAll(&c.recvq)
	c.mu.Unlock()

	closedCounter.Inc()
	if l := c.log(); l.Enabled(log.LevelDebug) {
		l.Debug("[csp] %s closed, released %d senders and %d receivers", c.name, writers, readers)
	}
	return nil
}

func (c *Channel[T]) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Len returns the number of buffered values.
func (c *Channel[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.count
}

func (c *Channel[T]) Cap() int {
	return len(c.buf.buf)
}

func (c *Channel[T]) String() string {
	return c.name
}

// sendLocked is the matching half of a send. c.mu is held.
func (c *Channel[T]) sendLocked(v T) (bool, error) {
	if c.closed {
		observeOp(opSend, outcomeClosed)
		return false, ErrClosed
	}
	// a queued receiver means the buffer is empty, hand over directly
	if w := c.recvq.dequeue(); w != nil {
		w.value = v
		w.release(false)
		observeOp(opSend, outcomeHandoff)
		return true, nil
	}
	if c.buf.push(v) {
		observeOp(opSend, outcomeBuffered)
		return true, nil
	}
	return false, nil
}

// receiveLocked is the matching half of a receive. c.mu is held.
func (c *Channel[T]) receiveLocked() (v T, ok bool, selected bool) {
	if head, found := c.buf.pop(); found {
		// senders only queue on a full buffer, the first one takes the freed slot
		if w := c.sendq.dequeue(); w != nil {
			c.buf.push(w.value)
			w.release(false)
		}
		observeOp(opReceive, outcomeBuffered)
		return head, true, true
	}
	if w := c.sendq.dequeue(); w != nil {
		v = w.value
		w.release(false)
		observeOp(opReceive, outcomeHandoff)
		return v, true, true
	}
	if c.closed {
		observeOp(opReceive, outcomeClosed)
		return v, false, true
	}
	return v, false, false
}

func (c *Channel[T]) log() log.Logger {
	if c.logger != nil {
		return c.logger
	}
	return logger()
}

func (c *Channel[T]) seq() uint64 {
	return c.id
}

func (c *Channel[T]) lock() {
	c.mu.Lock()
}

func (c *Channel[T]) unlock() {
	c.mu.Unlock()
}

func releaseAll[T any](q *waitQueue[T]) int {
	n := 0
	for w := q.dequeue(); w != nil; w = q.dequeue() {
		w.release(true)
		n++
	}
	return n
}
