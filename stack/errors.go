package stack

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyContainer is reported by Pop, Peek and Max on an empty stack.
	ErrEmptyContainer = errors.New("empty container")

	// ErrNotFound is reported by First when no element satisfies the predicate.
	ErrNotFound = errors.New("not found")

	// ErrInvalidComparison is reported by Max when the comparator returns anything other than -1, 0 or 1.
	ErrInvalidComparison = errors.New("comparator result outside {-1, 0, 1}")
)

// OpError records the stack operation that failed and the reason.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func opError(op string, err error) error {
	return &OpError{Op: op, Err: err}
}
