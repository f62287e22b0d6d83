package linkedlist

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// NodesFromSlice builds a bare chain holding vals and returns its head (nil for no values).
func NodesFromSlice[T any](vals []T) *Node[T] {
	sentinel := &Node[T]{}
	cur := sentinel
	for _, v := range vals {
		cur.Next = &Node[T]{Value: v}
		cur = cur.Next
	}

	return sentinel.Next
}

// NodesToSlice collects the values of the chain starting at head.
// The chain must be acyclic.
func NodesToSlice[T any](head *Node[T]) []T {
	var out []T
	for ; head != nil; head = head.Next {
		out = append(out, head.Value)
	}

	return out
}

// ReverseNodes reverses the chain starting at head in place and returns the new head.
// Complexity: O(n) time, O(1) extra space.
func ReverseNodes[T any](head *Node[T]) *Node[T] {
	var prev *Node[T]
	for head != nil {
		next := head.Next
		head.Next = prev
		prev = head
		head = next
	}

	return prev
}

// MiddleNode returns the middle node of the chain using slow/fast pointers.
// For an even number of nodes the second of the two middles is returned.
// Complexity: O(n).
func MiddleNode[T any](head *Node[T]) *Node[T] {
	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
	}

	return slow
}

// RemoveNthFromEnd unlinks the n-th node counted from the end (n = 1 is the last node)
// and returns the possibly new head.
//
// Error Conditions:
//   - ErrIndexOutOfRange: n < 1 or n greater than the chain length. The chain is left untouched.
//
// Complexity: O(n), two passes.
func RemoveNthFromEnd[T any](head *Node[T], n int) (*Node[T], error) {
	// 1. Measure the chain.
	length := 0
	for cur := head; cur != nil; cur = cur.Next {
		length++
	}
	if n < 1 || n > length {
		return head, fmt.Errorf("%w: n=%d, length=%d", ErrIndexOutOfRange, n, length)
	}

	// 2. Walk to the predecessor of the victim; the sentinel covers removal of head.
	sentinel := &Node[T]{Next: head}
	cur := sentinel
	for i := 0; i < length-n; i++ {
		cur = cur.Next
	}
	victim := cur.Next
	cur.Next = victim.Next
	victim.Next = nil

	return sentinel.Next, nil
}

// HasCycle reports whether following Next from head ever revisits a node (Floyd's tortoise and hare).
// Complexity: O(n) time, O(1) space.
func HasCycle[T any](head *Node[T]) bool {
	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
		if slow == fast {
			return true
		}
	}

	return false
}

// MergeSorted splices two ascending chains into one ascending chain and returns its head.
// On equal values the node from a comes first, so the merge is stable.
// No nodes are allocated; a and b are consumed.
// Complexity: O(len(a) + len(b)).
func MergeSorted[T constraints.Ordered](a, b *Node[T]) *Node[T] {
	sentinel := &Node[T]{}
	cur := sentinel
	for a != nil && b != nil {
		if b.Value < a.Value {
			cur.Next, b = b, b.Next
		} else {
			cur.Next, a = a, a.Next
		}
		cur = cur.Next
	}
	if a != nil {
		cur.Next = a
	} else {
		cur.Next = b
	}

	return sentinel.Next
}
