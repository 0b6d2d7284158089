package csp

import (
	"cmp"
	"fmt"
	"math/rand"
	"slices"
	"sync/atomic"

	uuid "github.com/satori/go.uuid"

	"ownchan/log"
)

// Selector waits on several channel operations and performs exactly one of
// them. Cases are added with Register and an optional default with Fallback.
// A Selector may run Select repeatedly but is not safe for concurrent use.
type Selector struct {
	id       string
	cases    []selectCase
	fallback *Intent[struct{}]
	err      error

	// order caches the distinct channels sorted by id.
	order []chanLocker
}

func NewSelector() *Selector {
	return &Selector{}
}

// Register adds the case in on ch. Nil channels and nil intents are ignored,
// as is registering the same intent twice. An intent stays bound to the first
// channel it is registered on and may be shared by selectors used one after
// another. A fallback intent, or an intent already bound to another channel,
// is rejected by the next Select with ErrConfiguration.
func Register[T any](s *Selector, ch *Channel[T], in *Intent[T]) *Selector {
	if ch == nil || in == nil {
		return s
	}
	if in.direction == DirFallback {
		s.err = fmt.Errorf("%w: fallback intent registered on %s", ErrConfiguration, ch)
		return s
	}
	if in.channel != nil && in.channel != ch {
		s.err = fmt.Errorf("%w: %v already bound to %s", ErrConfiguration, in, in.channel)
		return s
	}
	if slices.Contains(s.cases, selectCase(in)) {
		return s
	}
	in.channel = ch
	in.index = len(s.cases)
	s.cases = append(s.cases, in)
	s.order = nil
	return s
}

// Fallback sets the case returned when no other case is ready. It can be set
// only once.
func (s *Selector) Fallback(in *Intent[struct{}]) error {
	if s.fallback != nil {
		logger().Warn("[csp] selector %s: %v", s.ID(), ErrDuplicateFallback)
		return ErrDuplicateFallback
	}
	if in != nil {
		s.fallback = in
	}
	return nil
}

// ID identifies the selector in log entries.
func (s *Selector) ID() string {
	if s.id == "" {
		s.id = uuid.NewV4().String()
	}
	return s.id
}

// Select performs one ready case, chosen uniformly at random when several are
// ready. Without a ready case it returns the fallback if there is one, and
// otherwise blocks until some case can proceed. A write case that meets a
// closed channel is returned together with an error wrapping ErrClosed.
func (s *Selector) Select() (Key, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.cases) == 0 {
		if s.fallback != nil {
			selectCounter.WithLabelValues(outcomeFallback).Inc()
			return s.fallback, nil
		}
		logger().Warn("[csp] selector %s: %v", s.ID(), ErrNoCases)
		return nil, ErrNoCases
	}

	// an intent shared with another selector may carry that selector's index
	for i, c := range s.cases {
		c.setIndex(i)
	}
	pollOrder := rand.Perm(len(s.cases))
	lockOrder := s.lockOrder()

	lockAll(lockOrder)
	for _, i := range pollOrder {
		c := s.cases[i]
		ok, err := c.try()
		if err != nil || ok {
			unlockAll(lockOrder)
			selectCounter.WithLabelValues(outcomeImmediate).Inc()
			return c, err
		}
	}
	if s.fallback != nil {
		unlockAll(lockOrder)
		selectCounter.WithLabelValues(outcomeFallback).Inc()
		return s.fallback, nil
	}

	// queue on every channel while still holding all locks, so no match can
	// slip in between registration and parking
	gate := new(atomic.Bool)
	p := newParker()
	for _, c := range s.cases {
		c.enqueue(gate, p)
	}
	unlockAll(lockOrder)
	selectCounter.WithLabelValues(outcomeParked).Inc()
	if logger().Enabled(log.LevelTrace) {
		logger().Trace("[csp] selector %s parked on %d cases", s.ID(), len(s.cases))
	}

	p.park()

	var won selectCase
	lockAll(lockOrder)
	for _, c := range s.cases {
		if won == nil && c.resolved() {
			won = c
			continue
		}
		c.dequeue()
	}
	unlockAll(lockOrder)
	if won == nil {
		panic("csp: select woken but no case committed")
	}
	if logger().Enabled(log.LevelTrace) {
		logger().Trace("[csp] selector %s resumed by %v", s.ID(), won)
	}
	return won, won.complete()
}

func (s *Selector) lockOrder() []chanLocker {
	if s.order != nil {
		return s.order
	}
	chans := make([]chanLocker, 0, len(s.cases))
	for _, c := range s.cases {
		chans = append(chans, c.target())
	}
	slices.SortFunc(chans, func(a, b chanLocker) int {
		return cmp.Compare(a.seq(), b.seq())
	})
	s.order = slices.CompactFunc(chans, func(a, b chanLocker) bool {
		return a.seq() == b.seq()
	})
	return s.order
}

func lockAll(chans []chanLocker) {
	for _, c := range chans {
		c.lock()
	}
}

// unlockAll releases in reverse acquisition order.
func unlockAll(chans []chanLocker) {
	for i := len(chans) - 1; i >= 0; i-- {
		chans[i].unlock()
	}
}
