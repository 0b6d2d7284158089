package csp

// ring is a fixed capacity FIFO. A zero capacity ring is always full and empty.
type ring[T any] struct {
	buf   []T
	sendx int
	recvx int
	count int
}

func newRing[T any](capacity int) *ring[T] {
	return &ring[T]{buf: make([]T, capacity)}
}

func (r *ring[T]) full() bool {
	return r.count == len(r.buf)
}

func (r *ring[T]) empty() bool {
	return r.count == 0
}

func (r *ring[T]) push(v T) bool {
	if r.full() {
		return false
	}
	r.buf[r.sendx] = v
	r.sendx++
	if r.sendx == len(r.buf) {
		r.sendx = 0
	}
	r.count++
	return true
}

func (r *ring[T]) pop() (T, bool) {
	var zero T
	if r.empty() {
		return zero, false
	}
	v := r.buf[r.recvx]
	r.buf[r.recvx] = zero
	r.recvx++
	if r.recvx == len(r.buf) {
		r.recvx = 0
	}
	r.count--
	return v, true
}
