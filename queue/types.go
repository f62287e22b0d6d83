// Package queue defines options and sentinel errors for the FIFO queue.
package queue

import (
	"errors"
	"fmt"
)

// Sentinel errors for queue operations.
var (
	// ErrEmptyQueue is returned by Dequeue, Front and Back on an empty queue.
	ErrEmptyQueue = errors.New("queue: queue is empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("queue: invalid option supplied")
)

// Option configures a Queue via functional arguments.
type Option func(*Options)

// Options holds construction parameters of a Queue.
type Options struct {
	// MaxLen, if > 0, bounds the queue: enqueuing into a full queue drops the front item.
	// Zero means unbounded.
	MaxLen int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an unbounded configuration.
func DefaultOptions() Options {
	return Options{MaxLen: 0}
}

// WithMaxLen bounds the queue to n items, discarding the oldest on overflow.
//
//	n > 0: bounded
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxLen(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxLen must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxLen = n
	}
}
