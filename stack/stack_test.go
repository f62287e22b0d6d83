package stack_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlds/stack"
)

func TestStack_LIFO(t *testing.T) {
	s := stack.New[int]()
	assert.True(t, s.IsEmpty())
	s.Push(10)
	s.Push(20)
	s.Push(30)
	assert.Equal(t, []int{10, 20, 30}, s.Values())

	top, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, 30, top)
	assert.Equal(t, 3, s.Len())

	for _, want := range []int{30, 20, 10} {
		v, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	assert.True(t, s.IsEmpty())
}

func TestStack_EmptyErrors(t *testing.T) {
	var s stack.Stack[string] // zero value is usable
	_, err := s.Pop()
	assert.ErrorIs(t, err, stack.ErrEmptyStack)
	_, err = s.Peek()
	assert.ErrorIs(t, err, stack.ErrEmptyStack)
}

func TestStack_Clear(t *testing.T) {
	s := stack.New[int]()
	s.Push(1)
	s.Push(2)
	s.Clear()
	assert.Zero(t, s.Len())
	s.Push(3)
	assert.Equal(t, []int{3}, s.Values())
}

// TestStack_BalancedBrackets exercises the stack on the classic matching problem.
func TestStack_BalancedBrackets(t *testing.T) {
	balanced := func(in string) bool {
		match := map[rune]rune{')': '(', ']': '[', '}': '{'}
		s := stack.New[rune]()
		for _, c := range in {
			switch c {
			case '(', '[', '{':
				s.Push(c)
			case ')', ']', '}':
				top, err := s.Pop()
				if err != nil || top != match[c] {
					return false
				}
			}
		}
		return s.IsEmpty()
	}
	cases := map[string]bool{
		"":       true,
		"()[]{}": true,
		"{[()]}": true,
		"(]":     false,
		"((":     false,
		"))":     false,
	}
	for in, want := range cases {
		t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
			assert.Equal(t, want, balanced(in))
		})
	}
}
