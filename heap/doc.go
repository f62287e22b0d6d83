// Package heap provides a generic array-backed binary heap.
//
// The heap is a complete binary tree stored in a slice: the children of
// index i sit at 2i+1 and 2i+2, its parent at (i-1)/2. Every parent compares
// ≤ its children (min-heap, the default) or ≥ them (WithMaxHeap). Only the
// root is guaranteed to be the extreme element; sibling subtrees are
// otherwise unordered, so the backing slice is not a sorted sequence.
//
// Operations
//
//	Push(v)       append, then sift-up                 O(log n)
//	Pop()         move last to root, then sift-down    O(log n)
//	Peek()        read index 0                         O(1)
//	Heapify(vals) bottom-up sift-down                  O(n)
//	PushPop(v)    push then pop in one sift            O(log n)
//	Replace(v)    pop then push in one sift            O(log n)
//
// Helpers NSmallest, NLargest and Sort build on the same primitives.
//
// Errors:
//
//	ErrEmptyHeap       - Pop/Peek/Replace on an empty heap.
//	ErrOptionViolation - an invalid Option was passed to a constructor.
//
// Values stored in the heap must not be mutated in a way that changes their
// ordering; doing so silently breaks the heap invariant.
package heap
