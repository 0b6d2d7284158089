package csp

// waitQueue is a FIFO of blocked waiters. It is not safe for concurrent use,
// the owning channel's lock guards it.
type waitQueue[T any] struct {
	size  int
	first *waiter[T]
	last  *waiter[T]
}

func (q *waitQueue[T]) enqueue(w *waiter[T]) {
	w.queued = true
	w.next = nil
	w.prev = q.last
	if q.last == nil {
		q.first = w
	} else {
		q.last.next = w
	}
	q.last = w
	q.size++
}

// dequeue pops waiters from the head until one can be claimed. Waiters whose
// select already committed on another channel are dropped.
func (q *waitQueue[T]) dequeue() *waiter[T] {
	for q.first != nil {
		w := q.first
		q.unlink(w)
		if w.claim() {
			return w
		}
	}
	return nil
}

// remove unlinks w if it is still queued.
func (q *waitQueue[T]) remove(w *waiter[T]) bool {
	if !w.queued {
		return false
	}
	q.unlink(w)
	return true
}

func (q *waitQueue[T]) unlink(w *waiter[T]) {
	prev, next := w.prev, w.next
	if prev == nil {
		q.first = next
	} else {
		prev.next = next
	}
	if next == nil {
		q.last = prev
	} else {
		next.prev = prev
	}
	w.prev = nil
	w.next = nil
	w.queued = false
	q.size--
}

func (q *waitQueue[T]) len() int {
	return q.size
}

func (q *waitQueue[T]) empty() bool {
	return q.first == nil
}
