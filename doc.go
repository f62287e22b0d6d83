// Package lvlds is a small toolbox of generic in-memory containers: the
// structures that carry real invariants, implemented from scratch and kept
// dependency-light.
//
// 🚀 What is inside?
//
//	linkedlist/ : singly linked List with head/tail tracking, node algorithms
//	              (reverse, middle, remove-nth-from-end, cycle check, merge)
//	              and the doubly linked DNode primitive
//	bst/        : unbalanced binary search tree, ties go right, lazy
//	              pre/in/post/level-order iterators, pre-order codec
//	heap/       : array-backed binary heap (min by default, max or custom
//	              ordering via options), O(n) Heapify, NSmallest/NLargest
//	unionfind/  : disjoint-set forest with full path compression and union by rank
//	lru/        : bounded LRU cache: map + DNode chain kept in lockstep
//	stack/      : LIFO over a slice
//	queue/      : FIFO over a ring buffer, optional bounded (drop-oldest) mode
//
// ✨ Conventions shared by every package
//
//   - Generic over the element type; ordered structures use constraints.Ordered.
//   - Empty-structure reads (Pop, Peek, Dequeue, ...) return a sentinel error,
//     never a zero value that could pass for data.
//   - Absent values are reported as a boolean result, not an error.
//   - Sentinel errors are prefixed with the package name and matched with errors.Is.
//   - Configuration uses functional options (WithX) with DefaultOptions().
//   - Nothing is safe for concurrent use; callers serialise access per instance.
//
// Quick ASCII example of a min-heap after Heapify([5, 3, 8, 1]):
//
//	    1
//	   / \
//	  3   8        backing slice: [1 3 8 5]
//	 /
//	5
//
// See examples/ for end-to-end scenarios (Dijkstra on heap, Kruskal on
// heap + unionfind, BFS on queue, a page cache on lru).
//
//	go get github.com/katalvlaran/lvlds
package lvlds
