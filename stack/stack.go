// Package stack provides a LIFO stack over a growable slice.
//
// Pop and Peek on an empty stack return ErrEmptyStack rather than a zero
// value that could be mistaken for data.
package stack

import "errors"

// ErrEmptyStack is returned by Pop and Peek on an empty stack.
var ErrEmptyStack = errors.New("stack: stack is empty")

// Stack is a last-in first-out container. The zero value is an empty stack.
type Stack[T any] struct {
	data []T
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places v on top. Complexity: amortized O(1).
func (s *Stack[T]) Push(v T) {
	s.data = append(s.data, v)
}

// Pop removes and returns the top element.
// Complexity: O(1).
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	n := len(s.data)
	if n == 0 {
		return zero, ErrEmptyStack
	}
	v := s.data[n-1]
	s.data[n-1] = zero
	s.data = s.data[:n-1]

	return v, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.data) == 0 {
		var zero T
		return zero, ErrEmptyStack
	}

	return s.data[len(s.data)-1], nil
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int { return len(s.data) }

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool { return len(s.data) == 0 }

// Values returns a copy of the elements from bottom to top.
func (s *Stack[T]) Values() []T {
	out := make([]T, len(s.data))
	copy(out, s.data)

	return out
}

// Clear removes every element.
func (s *Stack[T]) Clear() {
	clear(s.data)
	s.data = s.data[:0]
}
