package csp

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned by Send on a closed channel, and by Select when the
	// chosen case is a write on a closed channel.
	ErrClosed = errors.New("csp: send on closed channel")

	// ErrAlreadyClosed is returned by Close on a channel that is already closed.
	ErrAlreadyClosed = errors.New("csp: close of closed channel")

	ErrConfiguration = errors.New("csp: invalid selector configuration")

	ErrDuplicateFallback = fmt.Errorf("%w: selector must only have one fallback", ErrConfiguration)
	ErrNoCases           = fmt.Errorf("%w: select with no cases and no fallback", ErrConfiguration)
)
