// Package stack provides a generic Last-In-First-Out container with non-destructive query operations.
//
// Query operations (Reverse, Where, Select, First, Contains, Count, Max) traverse the stack by
// draining it into an auxiliary stack and restoring it afterwards, so the receiver keeps its
// contents and order once the call returns. Restoration is deferred: if a caller-supplied
// callback panics, the receiver is restored before the panic reaches the caller.
//
// A Stack is not safe for concurrent use.
package stack

import "github.com/samber/mo"

// Stack implements a parameterized Last-In-First-Out (LIFO) data structure.
// The zero value is an empty stack ready for use.
type Stack[T any] struct {
	items []T
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Of returns a stack with values pushed in argument order, so the last value is the top.
func Of[T any](values ...T) *Stack[T] {
	s := &Stack[T]{items: make([]T, 0, len(values))}
	for _, v := range values {
		s.Push(v)
	}
	return s
}

// Push appends a new element to the top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the topmost element of the stack.
func (s *Stack[T]) Pop() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, opError("pop", ErrEmptyContainer)
	}
	return s.pop(), nil
}

// Peek returns the topmost element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, opError("peek", ErrEmptyContainer)
	}
	return s.items[len(s.items)-1], nil
}

// PopOption is Pop with an optional result instead of an error.
func (s *Stack[T]) PopOption() mo.Option[T] {
	if s.IsEmpty() {
		return mo.None[T]()
	}
	return mo.Some(s.pop())
}

// PeekOption is Peek with an optional result instead of an error.
func (s *Stack[T]) PeekOption() mo.Option[T] {
	if s.IsEmpty() {
		return mo.None[T]()
	}
	return mo.Some(s.items[len(s.items)-1])
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Len returns the total number of elements currently stored in the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Clear removes all elements from the stack, resetting it to an empty state.
func (s *Stack[T]) Clear() {
	s.items = nil
}

// Items returns a copy of the contents in pop order, top first.
func (s *Stack[T]) Items() []T {
	out := make([]T, 0, len(s.items))
	s.drain(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// pop assumes a non-empty stack. The vacated slot is zeroed so the backing
// array does not keep the element reachable.
func (s *Stack[T]) pop() T {
	idx := len(s.items) - 1
	item := s.items[idx]
	var zero T
	s.items[idx] = zero
	s.items = s.items[:idx]
	return item
}
