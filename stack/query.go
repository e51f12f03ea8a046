package stack

import (
	"fmt"

	"github.com/samber/mo"
)

// drain pops every element top to bottom into an auxiliary stack, handing each one to visit
// until visit returns false. The receiver is refilled from the auxiliary stack on the way out,
// including when visit panics.
func (s *Stack[T]) drain(visit func(T) bool) {
	var aux Stack[T]
	defer func() {
		for !aux.IsEmpty() {
			s.Push(aux.pop())
		}
	}()

	for !s.IsEmpty() {
		v := s.pop()
		aux.Push(v)
		if !visit(v) {
			return
		}
	}
}

// invert moves every element of s onto a new stack, leaving s empty.
func (s *Stack[T]) invert() *Stack[T] {
	out := &Stack[T]{items: make([]T, 0, s.Len())}
	for !s.IsEmpty() {
		out.Push(s.pop())
	}
	return out
}

// Reverse returns a new stack whose pop order is the mirror image of the receiver's.
// The receiver is unchanged.
func (s *Stack[T]) Reverse() *Stack[T] {
	out := &Stack[T]{items: make([]T, 0, s.Len())}
	s.drain(func(v T) bool {
		out.Push(v)
		return true
	})
	return out
}

// Clone returns an independent stack with the same pop order as the receiver.
func (s *Stack[T]) Clone() *Stack[T] {
	return s.Reverse().invert()
}

// Where returns a new stack holding the elements that satisfy predicate, in the receiver's relative order.
func (s *Stack[T]) Where(predicate func(T) bool) *Stack[T] {
	var matches Stack[T]
	s.drain(func(v T) bool {
		if predicate(v) {
			matches.Push(v)
		}
		return true
	})
	return matches.invert()
}

// Select returns a new stack holding selector applied to every element of s, in the same order.
func Select[T, R any](s *Stack[T], selector func(T) R) *Stack[R] {
	mapped := &Stack[R]{items: make([]R, 0, s.Len())}
	s.drain(func(v T) bool {
		mapped.Push(selector(v))
		return true
	})
	return mapped.invert()
}

// FirstOption returns the topmost element satisfying predicate, if any.
func (s *Stack[T]) FirstOption(predicate func(T) bool) mo.Option[T] {
	found := mo.None[T]()
	s.drain(func(v T) bool {
		if predicate(v) {
			found = mo.Some(v)
			return false
		}
		return true
	})
	return found
}

// First returns the topmost element satisfying predicate.
// It fails with ErrNotFound when nothing matches, including on an empty stack.
func (s *Stack[T]) First(predicate func(T) bool) (T, error) {
	v, ok := s.FirstOption(predicate).Get()
	if !ok {
		return v, opError("first", ErrNotFound)
	}
	return v, nil
}

// Contains reports whether any element satisfies predicate.
func (s *Stack[T]) Contains(predicate func(T) bool) bool {
	return s.FirstOption(predicate).IsPresent()
}

// Count returns the number of elements satisfying predicate.
func (s *Stack[T]) Count(predicate func(T) bool) int {
	var n int
	s.drain(func(v T) bool {
		if predicate(v) {
			n++
		}
		return true
	})
	return n
}

// Max returns the element ranked highest by the three-way comparator cmp, which must
// return -1 when its first argument is lesser, 0 when equal and 1 when greater.
//
// The scan starts at the top and the running maximum is replaced only when
// cmp(running, candidate) == -1, so among equal maxima the topmost one wins.
// Max fails with ErrEmptyContainer on an empty stack and with ErrInvalidComparison
// as soon as cmp returns anything else.
func (s *Stack[T]) Max(cmp func(a, b T) int) (T, error) {
	var (
		best  T
		err   error
		first = true
	)

	if s.IsEmpty() {
		return best, opError("max", ErrEmptyContainer)
	}

	s.drain(func(v T) bool {
		if first {
			best, first = v, false
			return true
		}

		r := cmp(best, v)
		if !ValidComparison(r) {
			err = opError("max", fmt.Errorf("%w: got %d", ErrInvalidComparison, r))
			return false
		}
		if r == -1 {
			best = v
		}
		return true
	})

	if err != nil {
		var zero T
		return zero, err
	}
	return best, nil
}
