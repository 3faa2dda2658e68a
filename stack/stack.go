// Package stack implements a generic LIFO stack.
package stack

import (
	"fmt"
	"slices"
	"strings"
)

// Stack is a generic LIFO stack.
type Stack[E any] []E

// New creates a new stack.
func New[E any]() *Stack[E] {
	return &Stack[E]{}
}

// Push pushes the given values onto the stack, in the order given.
func (s *Stack[E]) Push(vs ...E) {
	*s = append(*s, vs...)
}

// Pop pops a value from the stack and returns it.
// If the stack is empty, it panics.
func (s *Stack[E]) Pop() E {
	if len(*s) == 0 {
		panic("pop from empty stack")
	}
	v := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return v
}

// PopN removes the last n values from the stack and returns them in their original order.
// If n exceeds the stack's length then all of its values are removed and returned.
func (s *Stack[E]) PopN(n int) []E {
	n = min(n, len(*s))
	if n <= 0 {
		return nil
	}
	// The tail is cloned so that later pushes can't overwrite the returned values.
	vs := slices.Clone((*s)[len(*s)-n:])
	*s = (*s)[:len(*s)-n]
	return vs
}

// Peek returns the top value of the stack without removing it.
// If the stack is empty, it panics.
func (s *Stack[E]) Peek() E {
	if len(*s) == 0 {
		panic("peek of empty stack")
	}
	return (*s)[len(*s)-1]
}

// Len returns the number of elements in the stack.
func (s *Stack[E]) Len() int {
	return len(*s)
}

// Clear removes all elements from the stack.
func (s *Stack[E]) Clear() {
	*s = (*s)[:0]
}

// Values returns a copy of the stack's values, bottom first.
func (s *Stack[E]) Values() []E {
	return slices.Clone(*s)
}

func (s *Stack[E]) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "stack([")
	for i, v := range *s {
		fmt.Fprintf(&b, "%v", v)
		if i < len(*s)-1 {
			fmt.Fprint(&b, ", ")
		}
	}
	fmt.Fprint(&b, "])")
	return b.String()
}
