package heap_test

import (
	"fmt"

	"github.com/katalvlaran/lvlds/heap"
)

// ExampleHeapify builds a min-heap in O(n) and drains it.
func ExampleHeapify() {
	h, err := heap.Heapify([]int{5, 3, 8, 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	var out []int
	for h.Len() > 0 {
		v, _ := h.Pop()
		out = append(out, v)
	}
	fmt.Println(out)

	_, err = h.Pop()
	fmt.Println(err)
	// Output:
	// [1 3 5 8]
	// heap: heap is empty
}

// ExampleNLargest picks the top three scores.
func ExampleNLargest() {
	fmt.Println(heap.NLargest(3, []int{9, 4, 1, 7, 3, 6}))
	// Output: [9 7 6]
}
