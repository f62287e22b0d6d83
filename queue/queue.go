// Package queue provides a FIFO queue over a growable ring buffer.
//
// The ring buffer makes both ends O(1) without shifting elements, the same
// role a double-ended buffer plays in other languages. A queue built with
// WithMaxLen behaves like a bounded deque: once full, every Enqueue drops the
// oldest item.
//
//	Enqueue / Dequeue / Front / Back : O(1) (Enqueue amortized)
//	EnqueueAll                       : O(len(vals))
//	Rotate                           : O(1) on a full ring, O(n) otherwise
package queue

// minCapacity is the first allocation size of the ring buffer.
const minCapacity = 4

// Queue is a first-in first-out container.
type Queue[T any] struct {
	buf    []T
	head   int // index of the front element
	size   int
	maxLen int // 0 = unbounded
}

// New returns an empty queue. Returns ErrOptionViolation for invalid options.
func New[T any](opts ...Option) (*Queue[T], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Queue[T]{maxLen: o.MaxLen}, nil
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.size }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.size == 0 }

// Enqueue appends v at the back. In a bounded queue that is already full the
// front element is discarded first.
func (q *Queue[T]) Enqueue(v T) {
	if q.maxLen > 0 && q.size == q.maxLen {
		q.dropFront()
	}
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = v
	q.size++
}

// EnqueueAll appends vals in order, as repeated Enqueue calls would.
// A bounded queue keeps only the newest MaxLen items.
func (q *Queue[T]) EnqueueAll(vals ...T) {
	for _, v := range vals {
		q.Enqueue(v)
	}
}

// Rotate shifts the elements n steps towards the back, wrapping the last
// element round to the front; a negative n rotates towards the front.
// Rotate(1) turns [1 2 3] into [3 1 2]; Rotate(-1) turns it into [2 3 1].
// Complexity: O(1) when the ring is full, O(n) otherwise.
func (q *Queue[T]) Rotate(n int) {
	if q.size <= 1 {
		return
	}
	k := (n%q.size + q.size) % q.size
	if k == 0 {
		return
	}
	if q.size == len(q.buf) {
		q.head = (q.head - k + len(q.buf)) % len(q.buf)
		return
	}
	vals := q.Values()
	clear(q.buf)
	for i, v := range vals {
		q.buf[(i+k)%q.size] = v
	}
	q.head = 0
}

// Dequeue removes and returns the front element.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	v := q.buf[q.head]
	q.dropFront()

	return v, nil
}

// Front returns the front element without removing it.
func (q *Queue[T]) Front() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	return q.buf[q.head], nil
}

// Back returns the most recently enqueued element without removing it.
func (q *Queue[T]) Back() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	return q.buf[(q.head+q.size-1)%len(q.buf)], nil
}

// Values returns a copy of the elements from front to back.
func (q *Queue[T]) Values() []T {
	out := make([]T, q.size)
	for i := range out {
		out[i] = q.buf[(q.head+i)%len(q.buf)]
	}

	return out
}

// Clear removes every element, keeping the allocated buffer.
func (q *Queue[T]) Clear() {
	clear(q.buf)
	q.head, q.size = 0, 0
}

// dropFront releases the front slot and advances head. The queue must be non-empty.
func (q *Queue[T]) dropFront() {
	var zero T
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.size--
}

// grow doubles the buffer (capped at maxLen for bounded queues) and unwraps
// the elements so the front sits at index 0.
func (q *Queue[T]) grow() {
	newCap := 2 * len(q.buf)
	if newCap < minCapacity {
		newCap = minCapacity
	}
	if q.maxLen > 0 && newCap > q.maxLen {
		newCap = q.maxLen
	}
	buf := make([]T, newCap)
	for i := 0; i < q.size; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}
