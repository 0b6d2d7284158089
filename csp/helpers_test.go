package csp

import (
	"sync"
	"testing"
	"time"
)

const testTimeout = 10 * time.Second

func queued[T any](c *Channel[T]) (senders, receivers int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sendq.len(), c.recvq.len()
}

// waitFor polls cond until it holds or the test times out.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(testTimeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

func waitGroup(t *testing.T, wg *sync.WaitGroup) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(testTimeout):
		t.Fatal("timed out waiting for goroutines, possible deadlock")
	}
}
