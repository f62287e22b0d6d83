package stack_test

import (
	"fmt"

	"github.com/katalvlaran/lvlds/stack"
)

// ExampleStack reports an empty pop as an error, not a zero value.
func ExampleStack() {
	s := stack.New[int]()
	s.Push(10)
	s.Push(20)
	v, _ := s.Pop()
	fmt.Println(v, s.Len())

	_, _ = s.Pop()
	_, err := s.Pop()
	fmt.Println(err)
	// Output:
	// 20 1
	// stack: stack is empty
}
