package heap

import (
	"golang.org/x/exp/constraints"
)

// Heap is a binary heap ordered by a less function.
// With the default options the smallest element is at the root.
type Heap[T any] struct {
	data []T
	less func(a, b T) bool
}

// New returns an empty heap of ordered values.
// Returns ErrOptionViolation for invalid options.
func New[T constraints.Ordered](opts ...Option) (*Heap[T], error) {
	return NewFunc(ordered[T], opts...)
}

// NewFunc returns an empty heap ordered by less.
// less(a, b) must report whether a belongs closer to the root than b.
func NewFunc[T any](less func(a, b T) bool, opts ...Option) (*Heap[T], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Max {
		less = reversed(less)
	}

	return &Heap[T]{
		data: make([]T, 0, o.Capacity),
		less: less,
	}, nil
}

// Heapify builds a heap from an arbitrary sequence of ordered values.
// vals is copied; the caller keeps ownership of its slice.
func Heapify[T constraints.Ordered](vals []T, opts ...Option) (*Heap[T], error) {
	return HeapifyFunc(vals, ordered[T], opts...)
}

// HeapifyFunc builds a heap ordered by less from an arbitrary sequence.
//
// Steps:
//  1. Copy vals into the backing slice.
//  2. Sift down every internal node, from the last parent (n/2 - 1) back to the root.
//
// Leaves are trivially valid heaps, so each sift-down merges two valid
// subheaps under their parent.
// Complexity: O(n), not O(n log n) as repeated pushes would be.
func HeapifyFunc[T any](vals []T, less func(a, b T) bool, opts ...Option) (*Heap[T], error) {
	h, err := NewFunc(less, opts...)
	if err != nil {
		return nil, err
	}
	if cap(h.data) < len(vals) {
		h.data = make([]T, 0, len(vals))
	}
	h.data = append(h.data, vals...)
	for i := len(h.data)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}

	return h, nil
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int { return len(h.data) }

// Push inserts v: append at the end, then sift-up.
// Complexity: O(log n).
func (h *Heap[T]) Push(v T) {
	h.data = append(h.data, v)
	h.siftUp(len(h.data) - 1)
}

// Pop removes and returns the root element.
//
// Steps:
//  1. Save the root.
//  2. Move the last element into the root slot and shrink the slice.
//  3. Sift the new root down.
//
// Returns ErrEmptyHeap if the heap has no elements.
// Complexity: O(log n).
func (h *Heap[T]) Pop() (T, error) {
	var zero T
	n := len(h.data)
	if n == 0 {
		return zero, ErrEmptyHeap
	}
	root := h.data[0]
	last := n - 1
	h.data[0] = h.data[last]
	h.data[last] = zero // release the reference held by the vacated slot
	h.data = h.data[:last]
	if last > 0 {
		h.siftDown(0)
	}

	return root, nil
}

// Peek returns the root element without removing it.
// Returns ErrEmptyHeap if the heap has no elements.
// Complexity: O(1).
func (h *Heap[T]) Peek() (T, error) {
	if len(h.data) == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}

	return h.data[0], nil
}

// PushPop pushes v and then pops the root, in a single sift.
// If v would itself be the new root it is returned immediately and the heap is unchanged.
// Complexity: O(log n).
func (h *Heap[T]) PushPop(v T) T {
	if len(h.data) > 0 && h.less(h.data[0], v) {
		v, h.data[0] = h.data[0], v
		h.siftDown(0)
	}

	return v
}

// Replace pops the root and then pushes v, in a single sift.
// Unlike PushPop the returned value may rank after v.
// Returns ErrEmptyHeap if the heap has no elements; v is not inserted in that case.
// Complexity: O(log n).
func (h *Heap[T]) Replace(v T) (T, error) {
	if len(h.data) == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}
	root := h.data[0]
	h.data[0] = v
	h.siftDown(0)

	return root, nil
}

// Values returns a copy of the backing slice in heap (not sorted) order.
func (h *Heap[T]) Values() []T {
	out := make([]T, len(h.data))
	copy(out, h.data)

	return out
}

// siftUp moves the element at i towards the root while it ranks before its parent.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.data[i], h.data[parent]) {
			break
		}
		h.data[i], h.data[parent] = h.data[parent], h.data[i]
		i = parent
	}
}

// siftDown moves the element at i towards the leaves, swapping with the
// smaller child while that child ranks before it.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.data)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		smallest := i
		if h.less(h.data[left], h.data[smallest]) {
			smallest = left
		}
		if right := left + 1; right < n && h.less(h.data[right], h.data[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.data[i], h.data[smallest] = h.data[smallest], h.data[i]
		i = smallest
	}
}

func ordered[T constraints.Ordered](a, b T) bool { return a < b }

func reversed[T any](less func(a, b T) bool) func(a, b T) bool {
	return func(a, b T) bool { return less(b, a) }
}
