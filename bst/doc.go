// Package bst provides an unbalanced generic binary search tree.
//
// Ordering invariant: for every node, all values in its left subtree are
// strictly less than the node's value and all values in its right subtree
// are greater or equal. Equal values therefore always go right on insert;
// duplicates are kept, not merged.
//
// Operations
//
//	Insert / Search / Delete   O(h), h = current height
//	Min / Max                  O(h)
//	Height / Diameter          O(n)
//	PreOrder / InOrder /
//	PostOrder / LevelOrder     O(n) per full walk, lazy iter.Seq
//	LowestCommonAncestor       O(h), ordered descent
//	HasPathSum                 O(n), numeric element types only
//
// Delete follows the textbook three-case rule: a leaf is removed, a node
// with one child is spliced out, and a node with two children takes the
// value of its in-order successor (the minimum of its right subtree), which
// is then removed from that right subtree.
//
// No self-balancing is performed. Inserting already sorted input degrades
// the tree to a chain and every operation to O(n); all walks are iterative,
// so such chains cost time but never overflow the goroutine stack.
//
// The free functions InsertNode and DeleteNode operate on bare subtrees and
// return the possibly new subtree root for the caller to rebind. Tree wraps
// them and keeps the element count.
//
// Serialize / Deserialize use a whitespace-separated pre-order encoding with
// "#" standing for an absent child:
//
//	  2
//	 / \      → "2 1 # # 3 # #"
//	1   3
//
// LevelSlice / FromLevelSlice use the breadth-first array layout instead:
// one entry per node, a nil hole for each absent child of a present node,
// trailing holes trimmed. The tree above is [2 1 3].
//
// Errors:
//
//	ErrMalformed - Deserialize input is truncated, has trailing tokens,
//	               fails to parse, or violates the ordering invariant;
//	               FromLevelSlice input has an orphan value or violates it.
package bst
