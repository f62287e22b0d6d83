package bst

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrMalformed indicates a serialized tree that cannot be decoded.
var ErrMalformed = errors.New("bst: malformed serialized tree")

// Node is a tree node owning its left and right subtrees.
type Node[T constraints.Ordered] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}

// InsertNode inserts v into the subtree rooted at root and returns the subtree root.
//
// Descends left while v < node.Value and right otherwise, so equal values go right.
// A nil root yields a new single-node subtree.
// Complexity: O(h).
func InsertNode[T constraints.Ordered](root *Node[T], v T) *Node[T] {
	node := &Node[T]{Value: v}
	if root == nil {
		return node
	}
	cur := root
	for {
		if v < cur.Value {
			if cur.Left == nil {
				cur.Left = node
				return root
			}
			cur = cur.Left
		} else {
			if cur.Right == nil {
				cur.Right = node
				return root
			}
			cur = cur.Right
		}
	}
}

// SearchNode reports whether v occurs in the subtree rooted at root.
// Complexity: O(h).
func SearchNode[T constraints.Ordered](root *Node[T], v T) bool {
	for cur := root; cur != nil; {
		switch {
		case v < cur.Value:
			cur = cur.Left
		case v > cur.Value:
			cur = cur.Right
		default:
			return true
		}
	}

	return false
}

// DeleteNode removes one occurrence of v from the subtree rooted at root.
// It returns the possibly new subtree root and whether a node was removed.
//
// Steps:
//  1. Descend to the first node equal to v, remembering the link that points at it.
//  2. Leaf or single child: rebind that link to the (possibly nil) child.
//  3. Two children: copy the in-order successor's value into the node, then
//     remove the successor (the leftmost node of the right subtree, which has
//     no left child) by splicing its right child into its place.
//
// Complexity: O(h).
func DeleteNode[T constraints.Ordered](root *Node[T], v T) (*Node[T], bool) {
	// 1. link is the pointer slot that currently references cur.
	link := &root
	cur := root
	for cur != nil && cur.Value != v {
		if v < cur.Value {
			link = &cur.Left
		} else {
			link = &cur.Right
		}
		cur = *link
	}
	if cur == nil {
		return root, false
	}

	// 2. Zero or one child: splice.
	switch {
	case cur.Left == nil:
		*link = cur.Right
		cur.Right = nil
		return root, true
	case cur.Right == nil:
		*link = cur.Left
		cur.Left = nil
		return root, true
	}

	// 3. Two children: replace with the in-order successor, then remove it from the right subtree.
	succLink := &cur.Right
	succ := cur.Right
	for succ.Left != nil {
		succLink = &succ.Left
		succ = succ.Left
	}
	cur.Value = succ.Value
	*succLink = succ.Right
	succ.Right = nil

	return root, true
}

// minNode returns the leftmost node of the subtree, or nil.
func minNode[T constraints.Ordered](root *Node[T]) *Node[T] {
	if root == nil {
		return nil
	}
	for root.Left != nil {
		root = root.Left
	}

	return root
}

// maxNode returns the rightmost node of the subtree, or nil.
func maxNode[T constraints.Ordered](root *Node[T]) *Node[T] {
	if root == nil {
		return nil
	}
	for root.Right != nil {
		root = root.Right
	}

	return root
}
