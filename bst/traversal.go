package bst

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// PreOrder yields values Root → Left → Right.
//
// Every traversal returns a lazy, finite and restartable sequence: each range
// loop starts a fresh walk from the current root, and breaking out early stops
// the walk without further work. The tree must not be modified during a walk.
func (t *Tree[T]) PreOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		walkPreOrder(t.root, func(n *Node[T]) bool { return yield(n.Value) })
	}
}

// InOrder yields values Left → Root → Right, i.e. in non-decreasing order.
func (t *Tree[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		walkInOrder(t.root, func(n *Node[T]) bool { return yield(n.Value) })
	}
}

// PostOrder yields values Left → Right → Root.
func (t *Tree[T]) PostOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		walkPostOrder(t.root, func(n *Node[T]) bool { return yield(n.Value) })
	}
}

// LevelOrder yields values top to bottom, left to right (breadth-first).
func (t *Tree[T]) LevelOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		walkLevelOrder(t.root, func(n *Node[T], _ int) bool { return yield(n.Value) })
	}
}

// walkPreOrder visits nodes with an explicit stack; right is pushed before left
// so left is popped first. visit returning false stops the walk.
func walkPreOrder[T constraints.Ordered](root *Node[T], visit func(*Node[T]) bool) {
	if root == nil {
		return
	}
	stack := []*Node[T]{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(n) {
			return
		}
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
	}
}

// walkInOrder descends the left spine, visits, then continues with the right subtree.
func walkInOrder[T constraints.Ordered](root *Node[T], visit func(*Node[T]) bool) {
	var stack []*Node[T]
	cur := root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.Left
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(n) {
			return
		}
		cur = n.Right
	}
}

// walkPostOrder visits a node once both subtrees are done; last tracks the
// previously visited node to tell "coming up from the right" apart.
func walkPostOrder[T constraints.Ordered](root *Node[T], visit func(*Node[T]) bool) {
	var (
		stack []*Node[T]
		last  *Node[T]
	)
	cur := root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.Left
		}
		top := stack[len(stack)-1]
		if top.Right != nil && top.Right != last {
			cur = top.Right
			continue
		}
		stack = stack[:len(stack)-1]
		if !visit(top) {
			return
		}
		last = top
	}
}

// walkLevelOrder visits nodes breadth-first using a FIFO slice with a moving head,
// passing each node's depth (root = 0).
func walkLevelOrder[T constraints.Ordered](root *Node[T], visit func(*Node[T], int) bool) {
	if root == nil {
		return
	}
	type item struct {
		node  *Node[T]
		depth int
	}
	queue := []item{{root, 0}}
	for head := 0; head < len(queue); head++ {
		it := queue[head]
		queue[head] = item{} // drop the reference; the slot is never read again
		if !visit(it.node, it.depth) {
			return
		}
		if it.node.Left != nil {
			queue = append(queue, item{it.node.Left, it.depth + 1})
		}
		if it.node.Right != nil {
			queue = append(queue, item{it.node.Right, it.depth + 1})
		}
	}
}
