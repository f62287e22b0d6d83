package bst

import (
	"golang.org/x/exp/constraints"
)

// Number is the set of element types whose values can be summed along a path.
type Number interface {
	constraints.Integer | constraints.Float
}

// LowestCommonAncestor returns the value of the deepest node whose subtree
// contains both a and b. A value counts as its own ancestor.
//
// Steps:
//  1. Both values must be present; otherwise ok is false.
//  2. Descend from the root while a and b fall on the same side of the node;
//     the first node that splits them (or equals one of them) is the answer.
//
// Complexity: O(h).
func (t *Tree[T]) LowestCommonAncestor(a, b T) (lca T, ok bool) {
	// 1. Presence.
	if !SearchNode(t.root, a) || !SearchNode(t.root, b) {
		return lca, false
	}

	// 2. Ordered descent; equal values live right, so only strict < goes left.
	cur := t.root
	for {
		switch {
		case a < cur.Value && b < cur.Value:
			cur = cur.Left
		case a > cur.Value && b > cur.Value:
			cur = cur.Right
		default:
			return cur.Value, true
		}
	}
}

// HasPathSum reports whether some root-to-leaf path of t sums to target.
// An empty tree has no paths.
// Complexity: O(n) time, O(h) memory.
func HasPathSum[T Number](t *Tree[T], target T) bool {
	if t.root == nil {
		return false
	}
	type frame struct {
		node *Node[T]
		sum  T
	}
	stack := []frame{{t.root, t.root.Value}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := f.node
		if n.Left == nil && n.Right == nil {
			if f.sum == target {
				return true
			}
			continue
		}
		if n.Right != nil {
			stack = append(stack, frame{n.Right, f.sum + n.Right.Value})
		}
		if n.Left != nil {
			stack = append(stack, frame{n.Left, f.sum + n.Left.Value})
		}
	}

	return false
}
