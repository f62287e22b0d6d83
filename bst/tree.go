package bst

import (
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree of ordered values.
// The zero value is an empty tree ready to use.
type Tree[T constraints.Ordered] struct {
	root *Node[T]
	size int
}

// New returns an empty tree.
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// FromSlice inserts vals in order into a new tree.
// Complexity: O(n·h).
func FromSlice[T constraints.Ordered](vals []T) *Tree[T] {
	t := New[T]()
	for _, v := range vals {
		t.Insert(v)
	}

	return t
}

// Root returns the root node, or nil for an empty tree.
// Callers must not relink the returned nodes.
func (t *Tree[T]) Root() *Node[T] { return t.root }

// Len returns the number of stored values, duplicates included.
func (t *Tree[T]) Len() int { return t.size }

// Insert adds v; equal values go to the right subtree.
// Complexity: O(h).
func (t *Tree[T]) Insert(v T) {
	t.root = InsertNode(t.root, v)
	t.size++
}

// Search reports whether v is present.
// Complexity: O(h).
func (t *Tree[T]) Search(v T) bool {
	return SearchNode(t.root, v)
}

// Delete removes one occurrence of v and reports whether it was present.
// Complexity: O(h).
func (t *Tree[T]) Delete(v T) bool {
	root, ok := DeleteNode(t.root, v)
	t.root = root
	if ok {
		t.size--
	}

	return ok
}

// Min returns the smallest value; ok is false for an empty tree.
func (t *Tree[T]) Min() (T, bool) {
	n := minNode(t.root)
	if n == nil {
		var zero T
		return zero, false
	}

	return n.Value, true
}

// Max returns the largest value; ok is false for an empty tree.
func (t *Tree[T]) Max() (T, bool) {
	n := maxNode(t.root)
	if n == nil {
		var zero T
		return zero, false
	}

	return n.Value, true
}

// Height returns the number of nodes on the longest root-to-leaf path (0 for an empty tree).
// Complexity: O(n).
func (t *Tree[T]) Height() int {
	height := 0
	walkLevelOrder(t.root, func(_ *Node[T], depth int) bool {
		if depth+1 > height {
			height = depth + 1
		}
		return true
	})

	return height
}

// Diameter returns the number of edges on the longest path between any two nodes.
// Complexity: O(n) time and memory.
func (t *Tree[T]) Diameter() int {
	diameter := 0
	subtreeHeights(t.root, func(left, right int) {
		if left+right > diameter {
			diameter = left + right
		}
	})

	return diameter
}

// IsBalanced reports whether the heights of the two subtrees of every node differ by at most one.
// Complexity: O(n) time and memory.
func (t *Tree[T]) IsBalanced() bool {
	balanced := true
	subtreeHeights(t.root, func(left, right int) {
		if left-right > 1 || right-left > 1 {
			balanced = false
		}
	})

	return balanced
}

// subtreeHeights walks the tree post-order and calls fn with the left and right
// subtree heights (in nodes) of every node.
func subtreeHeights[T constraints.Ordered](root *Node[T], fn func(left, right int)) {
	heights := make(map[*Node[T]]int)
	walkPostOrder(root, func(n *Node[T]) bool {
		l, r := heights[n.Left], heights[n.Right] // missing (nil) children read as 0
		fn(l, r)
		heights[n] = 1 + max(l, r)
		delete(heights, n.Left)
		delete(heights, n.Right)
		return true
	})
}
