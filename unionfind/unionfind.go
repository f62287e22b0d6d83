package unionfind

import (
	"errors"
	"fmt"
)

// Sentinel errors for union-find operations.
var (
	// ErrInvalidSize indicates New received a negative element count.
	ErrInvalidSize = errors.New("unionfind: size must be non-negative")

	// ErrOutOfRange indicates an element id outside 0..n-1.
	ErrOutOfRange = errors.New("unionfind: element out of range")
)

// UnionFind is a disjoint-set forest over the ids 0..n-1.
//
// parent[i] == i marks a root. rank[r] bounds the height of the tree rooted at r
// and is only meaningful for roots; size[r] counts the members of r's set.
type UnionFind struct {
	parent []int
	rank   []int
	size   []int
	count  int
}

// New returns a forest of n singleton sets {0}, {1}, ..., {n-1}.
// Returns ErrInvalidSize if n < 0.
// Complexity: O(n).
func New(n int) (*UnionFind, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len returns the number of elements in the forest.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Count returns the number of disjoint sets.
func (uf *UnionFind) Count() int { return uf.count }

// Find returns the root of the set containing x.
//
// Steps:
//  1. Walk parent links from x up to the root.
//  2. Walk the same path again, pointing every visited node directly at the root.
//
// Iterative, so deep chains cannot overflow the stack.
// Returns ErrOutOfRange for an invalid id.
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Find(x int) (int, error) {
	if err := uf.check(x); err != nil {
		return 0, err
	}

	return uf.find(x), nil
}

// Union merges the sets containing x and y.
//
// Returns false (and no error) if x and y already share a root.
// Otherwise the lower-rank root is attached under the higher-rank root;
// on equal ranks y's root goes under x's root and x's root gains one rank.
// Returns ErrOutOfRange for an invalid id.
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Union(x, y int) (bool, error) {
	if err := uf.check(x); err != nil {
		return false, err
	}
	if err := uf.check(y); err != nil {
		return false, err
	}

	rootX, rootY := uf.find(x), uf.find(y)
	if rootX == rootY {
		// Already joined.
		return false, nil
	}
	if uf.rank[rootX] < uf.rank[rootY] {
		rootX, rootY = rootY, rootX
	} else if uf.rank[rootX] == uf.rank[rootY] {
		uf.rank[rootX]++
	}
	uf.parent[rootY] = rootX
	uf.size[rootX] += uf.size[rootY]
	uf.count--

	return true, nil
}

// Connected reports whether x and y belong to the same set.
// Returns ErrOutOfRange for an invalid id.
func (uf *UnionFind) Connected(x, y int) (bool, error) {
	if err := uf.check(x); err != nil {
		return false, err
	}
	if err := uf.check(y); err != nil {
		return false, err
	}

	return uf.find(x) == uf.find(y), nil
}

// SetSize returns the number of members in the set containing x.
// Returns ErrOutOfRange for an invalid id.
func (uf *UnionFind) SetSize(x int) (int, error) {
	if err := uf.check(x); err != nil {
		return 0, err
	}

	return uf.size[uf.find(x)], nil
}

// Components returns every set as an ascending slice of ids.
// Components are ordered by their smallest member, so the result is deterministic.
// Complexity: O(n α(n)).
func (uf *UnionFind) Components() [][]int {
	slot := make(map[int]int, uf.count) // root -> index into out
	out := make([][]int, 0, uf.count)
	// Ascending id scan: each component is created by its smallest member
	// and filled in ascending order.
	for i := range uf.parent {
		root := uf.find(i)
		idx, ok := slot[root]
		if !ok {
			idx = len(out)
			slot[root] = idx
			out = append(out, make([]int, 0, uf.size[root]))
		}
		out[idx] = append(out[idx], i)
	}

	return out
}

func (uf *UnionFind) find(x int) int {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[x] != root {
		next := uf.parent[x]
		uf.parent[x] = root
		x = next
	}

	return root
}

func (uf *UnionFind) check(x int) error {
	if x < 0 || x >= len(uf.parent) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, x, len(uf.parent))
	}

	return nil
}
