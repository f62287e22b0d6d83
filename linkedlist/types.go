package linkedlist

import "errors"

// ErrIndexOutOfRange indicates a position outside the chain was requested.
var ErrIndexOutOfRange = errors.New("linkedlist: index out of range")

// Node is a single link of a singly linked chain.
//
// Value holds the payload; Next is nil on the last node.
type Node[T any] struct {
	Value T
	Next  *Node[T]
}

// DNode is a bidirectional link. Prev and Next are nil when the node is detached.
type DNode[T any] struct {
	Value T
	Prev  *DNode[T]
	Next  *DNode[T]
}

// Unlink removes n from its neighbours and clears its own links.
// Calling Unlink on a detached node is a no-op.
// Complexity: O(1).
func (n *DNode[T]) Unlink() {
	if n.Prev != nil {
		n.Prev.Next = n.Next
	}
	if n.Next != nil {
		n.Next.Prev = n.Prev
	}
	n.Prev, n.Next = nil, nil
}

// InsertAfter links m directly after n. m must be detached.
// Complexity: O(1).
func (n *DNode[T]) InsertAfter(m *DNode[T]) {
	m.Prev = n
	m.Next = n.Next
	if n.Next != nil {
		n.Next.Prev = m
	}
	n.Next = m
}

// InsertBefore links m directly before n. m must be detached.
// Complexity: O(1).
func (n *DNode[T]) InsertBefore(m *DNode[T]) {
	m.Next = n
	m.Prev = n.Prev
	if n.Prev != nil {
		n.Prev.Next = m
	}
	n.Prev = m
}
