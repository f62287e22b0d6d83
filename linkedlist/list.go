package linkedlist

import (
	"fmt"
	"iter"
	"strings"
)

// List is a singly linked list that tracks both ends of its chain.
//
// The zero value is an empty list ready to use.
type List[T comparable] struct {
	head   *Node[T]
	tail   *Node[T]
	length int
}

// New returns an empty list.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// FromSlice builds a list holding vals in order.
// Complexity: O(len(vals)).
func FromSlice[T comparable](vals []T) *List[T] {
	l := New[T]()
	for _, v := range vals {
		l.InsertEnd(v)
	}

	return l
}

// Head returns the first node, or nil for an empty list.
func (l *List[T]) Head() *Node[T] { return l.head }

// Tail returns the last node, or nil for an empty list.
func (l *List[T]) Tail() *Node[T] { return l.tail }

// Len returns the number of nodes in the list.
func (l *List[T]) Len() int { return l.length }

// InsertFront prepends v.
// Complexity: O(1).
func (l *List[T]) InsertFront(v T) {
	node := &Node[T]{Value: v, Next: l.head}
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
	l.length++
}

// InsertEnd appends v using the tail reference.
// Complexity: O(1).
func (l *List[T]) InsertEnd(v T) {
	node := &Node[T]{Value: v}
	if l.tail == nil {
		l.head, l.tail = node, node
	} else {
		l.tail.Next = node
		l.tail = node
	}
	l.length++
}

// DeleteVal removes the first node equal to v and reports whether one was found.
//
// A sentinel predecessor makes head removal the same case as any other removal.
// When the removed node was the tail, the predecessor becomes the new tail
// (nil when the list is left empty).
// Complexity: O(n).
func (l *List[T]) DeleteVal(v T) bool {
	sentinel := &Node[T]{Next: l.head}
	prev, cur := sentinel, l.head
	for cur != nil {
		if cur.Value == v {
			prev.Next = cur.Next
			if cur == l.tail {
				if prev == sentinel {
					l.tail = nil
				} else {
					l.tail = prev
				}
			}
			cur.Next = nil // detach so the removed node cannot reach the chain
			l.head = sentinel.Next
			l.length--

			return true
		}
		prev, cur = cur, cur.Next
	}

	return false
}

// Find reports whether v is present.
// Complexity: O(n).
func (l *List[T]) Find(v T) bool {
	for cur := l.head; cur != nil; cur = cur.Next {
		if cur.Value == v {
			return true
		}
	}

	return false
}

// Reverse reverses the chain in place and returns the new head.
// The former head becomes the tail.
// Complexity: O(n) time, O(1) extra space.
func (l *List[T]) Reverse() *Node[T] {
	l.tail = l.head
	l.head = ReverseNodes(l.head)

	return l.head
}

// Values copies the list contents head to tail.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.length)
	for cur := l.head; cur != nil; cur = cur.Next {
		out = append(out, cur.Value)
	}

	return out
}

// All returns a lazy head-to-tail sequence of the values.
// The list must not be modified while the sequence is being ranged over.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.Next {
			if !yield(cur.Value) {
				return
			}
		}
	}
}

// String renders the list as "1 -> 2 -> 3 -> nil".
func (l *List[T]) String() string {
	var sb strings.Builder
	for cur := l.head; cur != nil; cur = cur.Next {
		fmt.Fprintf(&sb, "%v -> ", cur.Value)
	}
	sb.WriteString("nil")

	return sb.String()
}
