package bst

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

const nilToken = "#"

// Serialize encodes the tree in pre-order, writing "#" for every absent child.
// format renders a value and must not produce whitespace or "#"; nil means fmt.Sprint.
// An empty tree encodes as "#".
// Complexity: O(n).
func (t *Tree[T]) Serialize(format func(T) string) string {
	if format == nil {
		format = func(v T) string { return fmt.Sprint(v) }
	}

	var tokens []string
	stack := []*Node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil {
			tokens = append(tokens, nilToken)
			continue
		}
		tokens = append(tokens, format(n.Value))
		stack = append(stack, n.Right, n.Left)
	}

	return strings.Join(tokens, " ")
}

// Deserialize rebuilds a tree produced by Serialize.
//
// Steps:
//  1. Split data into whitespace-separated tokens.
//  2. Keep a stack of empty child slots, starting with the root slot; every
//     token fills the top slot and a value token pushes its right then left slot.
//  3. Verify no tokens remain once every slot is filled, and no slot remains open.
//  4. Verify the decoded shape honours the ordering invariant.
//
// Returns ErrMalformed (wrapping parse errors) on any violation.
// Complexity: O(n).
func Deserialize[T constraints.Ordered](data string, parse func(string) (T, error)) (*Tree[T], error) {
	tokens := strings.Fields(data)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformed)
	}

	t := New[T]()
	slots := []**Node[T]{&t.root}
	for i, tok := range tokens {
		if len(slots) == 0 {
			return nil, fmt.Errorf("%w: %d trailing token(s)", ErrMalformed, len(tokens)-i)
		}
		slot := slots[len(slots)-1]
		slots = slots[:len(slots)-1]
		if tok == nilToken {
			continue
		}
		v, err := parse(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q: %w", ErrMalformed, i, tok, err)
		}
		n := &Node[T]{Value: v}
		*slot = n
		t.size++
		slots = append(slots, &n.Right, &n.Left)
	}
	if len(slots) > 0 {
		return nil, fmt.Errorf("%w: truncated input, %d child slot(s) missing", ErrMalformed, len(slots))
	}
	if !validOrdering(t.root) {
		return nil, fmt.Errorf("%w: ordering invariant violated", ErrMalformed)
	}

	return t, nil
}

// LevelSlice encodes the tree breadth-first, one entry per present node and a
// nil hole for every absent child of a present node. Trailing holes are
// trimmed, so an empty tree encodes as an empty slice.
//
// The entries point at copies; changing them does not touch the tree.
//
//	  2
//	 / \
//	1   3      →  [2 1 3 nil nil nil 4]
//	     \
//	      4
//
// Complexity: O(n).
func (t *Tree[T]) LevelSlice() []*T {
	out := []*T{}
	if t.root == nil {
		return out
	}
	queue := []*Node[T]{t.root}
	for head := 0; head < len(queue); head++ {
		n := queue[head]
		if n == nil {
			out = append(out, nil)
			continue
		}
		v := n.Value
		out = append(out, &v)
		queue = append(queue, n.Left, n.Right)
	}
	for len(out) > 0 && out[len(out)-1] == nil {
		out = out[:len(out)-1]
	}

	return out
}

// FromLevelSlice rebuilds a tree from the LevelSlice layout.
//
// Steps:
//  1. An empty slice, or a nil first entry, yields an empty tree.
//  2. Pop parents from a FIFO in creation order; the next two entries are the
//     parent's left and right child, nil meaning absent.
//  3. Entries left over once no parent remains must all be nil.
//  4. Verify the decoded shape honours the ordering invariant.
//
// Returns ErrMalformed when a value has no parent slot or the ordering is violated.
// Complexity: O(len(vals)).
func FromLevelSlice[T constraints.Ordered](vals []*T) (*Tree[T], error) {
	t := New[T]()
	// 1. Empty input.
	if len(vals) == 0 || vals[0] == nil {
		if i := firstValue(vals); i >= 0 {
			return nil, fmt.Errorf("%w: value at index %d has no parent", ErrMalformed, i)
		}
		return t, nil
	}

	// 2. Attach children level by level.
	t.root = &Node[T]{Value: *vals[0]}
	t.size = 1
	parents := []*Node[T]{t.root}
	i := 1
	for head := 0; head < len(parents) && i < len(vals); head++ {
		p := parents[head]
		for _, slot := range []**Node[T]{&p.Left, &p.Right} {
			if i >= len(vals) {
				break
			}
			if v := vals[i]; v != nil {
				*slot = &Node[T]{Value: *v}
				t.size++
				parents = append(parents, *slot)
			}
			i++
		}
	}

	// 3. Orphans.
	if j := firstValue(vals[i:]); j >= 0 {
		return nil, fmt.Errorf("%w: value at index %d has no parent", ErrMalformed, i+j)
	}

	// 4. Ordering.
	if !validOrdering(t.root) {
		return nil, fmt.Errorf("%w: ordering invariant violated", ErrMalformed)
	}

	return t, nil
}

// firstValue returns the index of the first non-nil entry, or -1.
func firstValue[T any](vals []*T) int {
	for i, v := range vals {
		if v != nil {
			return i
		}
	}

	return -1
}

// validOrdering checks that every left subtree is strictly less than its
// ancestor and every right subtree greater or equal.
func validOrdering[T constraints.Ordered](root *Node[T]) bool {
	type bound struct {
		node         *Node[T]
		lo, hi       T
		hasLo, hasHi bool
	}
	if root == nil {
		return true
	}
	stack := []bound{{node: root}}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		v := b.node.Value
		if (b.hasLo && v < b.lo) || (b.hasHi && !(v < b.hi)) {
			return false
		}
		if b.node.Left != nil {
			stack = append(stack, bound{node: b.node.Left, lo: b.lo, hasLo: b.hasLo, hi: v, hasHi: true})
		}
		if b.node.Right != nil {
			stack = append(stack, bound{node: b.node.Right, lo: v, hasLo: true, hi: b.hi, hasHi: b.hasHi})
		}
	}

	return true
}
