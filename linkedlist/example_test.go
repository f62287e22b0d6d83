package linkedlist_test

import (
	"fmt"

	"github.com/katalvlaran/lvlds/linkedlist"
)

// ExampleList demonstrates building, editing and reversing a list.
func ExampleList() {
	l := linkedlist.New[int]()
	l.InsertEnd(2)
	l.InsertEnd(3)
	l.InsertFront(1)
	fmt.Println(l)

	l.DeleteVal(2)
	l.Reverse()
	fmt.Println(l, l.Len())
	// Output:
	// 1 -> 2 -> 3 -> nil
	// 3 -> 1 -> nil 2
}

// ExampleMergeSorted merges two ascending chains without allocating nodes.
func ExampleMergeSorted() {
	a := linkedlist.NodesFromSlice([]int{1, 4, 9})
	b := linkedlist.NodesFromSlice([]int{2, 3, 10})
	fmt.Println(linkedlist.NodesToSlice(linkedlist.MergeSorted(a, b)))
	// Output: [1 2 3 4 9 10]
}
