// Package heap defines the options and sentinel errors of the binary heap.
package heap

import (
	"errors"
	"fmt"
)

// Sentinel errors for heap operations.
var (
	// ErrEmptyHeap is returned by Pop, Peek and Replace on a heap with no elements.
	ErrEmptyHeap = errors.New("heap: heap is empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("heap: invalid option supplied")
)

// Option configures a heap via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by the constructor.
type Option func(*Options)

// Options holds construction parameters of a heap.
type Options struct {
	// Capacity preallocates the backing slice. Zero means no preallocation.
	Capacity int

	// Max flips the ordering so the greatest element sits at the root.
	Max bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a min-heap configuration with no preallocation.
func DefaultOptions() Options {
	return Options{
		Capacity: 0,
		Max:      false,
		err:      nil,
	}
}

// WithCapacity preallocates room for n elements.
//
//	n > 0: preallocate
//	n == 0: no preallocation
//	n < 0: invalid option → ErrOptionViolation
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Capacity cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Capacity = n
	}
}

// WithMaxHeap turns the heap into a max-heap: the ordering function is reversed.
func WithMaxHeap() Option {
	return func(o *Options) {
		o.Max = true
	}
}
