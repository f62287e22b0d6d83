package heap

import (
	"golang.org/x/exp/constraints"
)

// NSmallest returns the k smallest values of vals in ascending order.
//
// A max-heap of size k keeps the current candidates; every further value
// smaller than the candidate maximum replaces it.
// k <= 0 yields an empty slice, k >= len(vals) yields all values sorted.
// Complexity: O(n log k) time, O(k) memory.
func NSmallest[T constraints.Ordered](k int, vals []T) []T {
	return selectK(k, vals, ordered[T])
}

// NLargest returns the k largest values of vals in descending order.
// Complexity: O(n log k) time, O(k) memory.
func NLargest[T constraints.Ordered](k int, vals []T) []T {
	return selectK(k, vals, reversed(ordered[T]))
}

// Sort returns a new slice holding vals in ascending order, built by
// heapifying a copy and popping it empty.
// Complexity: O(n log n).
func Sort[T constraints.Ordered](vals []T) []T {
	h, _ := Heapify(vals) // no options, cannot fail
	out := make([]T, 0, len(vals))
	for h.Len() > 0 {
		v, _ := h.Pop()
		out = append(out, v)
	}

	return out
}

// selectK returns the k values ranking first under less, best first.
func selectK[T any](k int, vals []T, less func(a, b T) bool) []T {
	if k <= 0 {
		return []T{}
	}
	if k > len(vals) {
		k = len(vals)
	}

	// 1. Seed the candidate heap with the first k values; its root is the worst candidate.
	worstFirst := reversed(less)
	h, _ := HeapifyFunc(vals[:k], worstFirst)

	// 2. Every remaining value that beats the worst candidate replaces it.
	for _, v := range vals[k:] {
		if less(v, h.data[0]) {
			_, _ = h.Replace(v)
		}
	}

	// 3. Drain worst-first into the tail of the result.
	out := make([]T, k)
	for i := k - 1; i >= 0; i-- {
		out[i], _ = h.Pop()
	}

	return out
}
