// Package calc implements a calculator which operates on a collection of named stacks of numbers.
//
// A [Calculator] owns one stack per name and tracks a current stack which unqualified operations
// target implicitly. Stacks are created lazily on first selection or qualified push and are never
// removed. All arithmetic is built on a single generic reducer, [Calculator.ApplyN], which pops a
// fixed count of values, applies a function, and pushes the function's results.
//
// A Calculator is not safe for concurrent use; callers sharing one across goroutines must supply
// their own synchronization.
package calc

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/marcuscaisey/stackcalc/stack"
)

// DefaultStack is the name of the stack which every Calculator starts with.
const DefaultStack = "default"

var validName = regexp.MustCompile(`^\w+$`)

// ReduceFunc combines the values popped by [Calculator.ApplyN] and returns the values to push in
// their place.
type ReduceFunc func(args ...float64) ([]float64, error)

// BinaryFunc combines the two values popped by [Calculator.ApplyTwo]. x is the deeper of the two
// and y the topmost, matching the order [Calculator.Pop] returns them in.
type BinaryFunc func(x, y float64) (float64, error)

// Calculator is a collection of named stacks of numbers and the operations which manipulate them.
type Calculator struct {
	stacks  map[string]*stack.Stack[float64]
	current string
}

// New creates a Calculator holding a single empty stack named [DefaultStack], selected as current.
func New() *Calculator {
	return &Calculator{
		stacks: map[string]*stack.Stack[float64]{
			DefaultStack: stack.New[float64](),
		},
		current: DefaultStack,
	}
}

// Select makes the named stack current, creating it if it has not been seen before, and returns
// its name. An empty or invalid name (one not made up solely of word characters) leaves the
// selection unchanged and returns the unchanged current name. Invalid selection is deliberately a
// silent no-op, not an error.
func (c *Calculator) Select(name string) string {
	if !validName.MatchString(name) {
		return c.current
	}
	if _, ok := c.stacks[name]; !ok {
		c.stacks[name] = stack.New[float64]()
	}
	c.current = name
	return c.current
}

// Current returns the name of the current stack.
func (c *Calculator) Current() string {
	return c.current
}

// StackRef returns the stack bound to the given name, or the current stack if the name is empty.
// Referencing a name which has never been created returns an [*UnknownStackError]; unlike the
// write paths ([Calculator.Select], [Calculator.PushTo]), lookups do not auto-create.
func (c *Calculator) StackRef(name string) (*stack.Stack[float64], error) {
	if name == "" {
		return c.stacks[c.current], nil
	}
	s, ok := c.stacks[name]
	if !ok {
		return nil, &UnknownStackError{Name: name}
	}
	return s, nil
}

// Top returns the last value of the current stack without removing it.
// It returns an [*EmptyStackError] if the stack is empty.
func (c *Calculator) Top() (float64, error) {
	s := c.stacks[c.current]
	if s.Len() == 0 {
		return 0, &EmptyStackError{Stack: c.current, Need: 1}
	}
	return s.Peek(), nil
}

// Clear empties the current stack in place. It always succeeds, even if the stack is already
// empty.
func (c *Calculator) Clear() {
	c.stacks[c.current].Clear()
}

// Push appends the given values, in the order given, to the end of the current stack.
func (c *Calculator) Push(values ...float64) {
	c.stacks[c.current].Push(values...)
}

// PushTo appends the given values to the named stack, creating it if it has not been seen before.
// It returns an [*InvalidNameError] if the name is not made up solely of word characters.
func (c *Calculator) PushTo(name string, values ...float64) error {
	s, err := c.createStack(name)
	if err != nil {
		return err
	}
	s.Push(values...)
	return nil
}

func (c *Calculator) createStack(name string) (*stack.Stack[float64], error) {
	if !validName.MatchString(name) {
		return nil, &InvalidNameError{Name: name}
	}
	s, ok := c.stacks[name]
	if !ok {
		s = stack.New[float64]()
		c.stacks[name] = s
	}
	return s, nil
}

// Pop removes and returns the last n values of the current stack, preserving their original
// relative order. If n exceeds the stack's depth then all of its values are removed and returned.
func (c *Calculator) Pop(n int) []float64 {
	return c.stacks[c.current].PopN(n)
}

// PopFrom removes and returns the last n values of the named stack, or of the current stack if
// the name is empty. Referencing a name which has never been created returns an
// [*UnknownStackError].
func (c *Calculator) PopFrom(name string, n int) ([]float64, error) {
	s, err := c.StackRef(name)
	if err != nil {
		return nil, err
	}
	return s.PopN(n), nil
}

// Move pops n values from one stack and pushes them, in the same relative order, onto another,
// creating the destination if it has not been seen before. If the destination name is invalid the
// popped values are restored to the source and the error returned.
func (c *Calculator) Move(from, to string, n int) error {
	values, err := c.PopFrom(from, n)
	if err != nil {
		return err
	}
	if err := c.PushTo(to, values...); err != nil {
		src, _ := c.StackRef(from)
		src.Push(values...)
		return err
	}
	return nil
}

// DuplicateTop reads the current top value and pushes it again, growing the stack by one.
// It returns an [*EmptyStackError] if the stack is empty.
func (c *Calculator) DuplicateTop() error {
	v, err := c.Top()
	if err != nil {
		return err
	}
	c.Push(v)
	return nil
}

// ApplyN pops exactly n values from the current stack, invokes fn with them in their original
// stack order (deepest first), and pushes every value fn returns back onto the stack in order. It
// returns the full sequence of pushed values.
//
// If the stack holds fewer than n values an [*EmptyStackError] is returned and the stack is left
// unchanged. If fn returns an error the popped values are restored, so a failed operation also
// leaves the stack unchanged.
func (c *Calculator) ApplyN(n int, fn ReduceFunc) ([]float64, error) {
	s := c.stacks[c.current]
	if s.Len() < n {
		return nil, &EmptyStackError{Stack: c.current, Need: n, Have: s.Len()}
	}
	args := s.PopN(n)
	results, err := fn(args...)
	if err != nil {
		s.Push(args...)
		return nil, err
	}
	s.Push(results...)
	return results, nil
}

// ApplyTwo pops two values from the current stack, invokes fn with them (deeper value first),
// pushes the single result, and returns it.
func (c *Calculator) ApplyTwo(fn BinaryFunc) (float64, error) {
	results, err := c.ApplyN(2, func(args ...float64) ([]float64, error) {
		v, err := fn(args[0], args[1])
		if err != nil {
			return nil, err
		}
		return []float64{v}, nil
	})
	if err != nil {
		return 0, err
	}
	return results[len(results)-1], nil
}

// String returns a listing of the calculator's stacks, one per line, sorted by name, with the
// current stack marked by a *.
func (c *Calculator) String() string {
	var b strings.Builder
	names := make([]string, 0, len(c.stacks))
	for name := range c.stacks {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		marker := " "
		if name == c.current {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %s %s\n", marker, name, c.stacks[name])
	}
	return strings.TrimSuffix(b.String(), "\n")
}
