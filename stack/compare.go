package stack

import "golang.org/x/exp/constraints"

// Ascending is a three-way comparator for ordered types: Max with it returns the largest element.
func Ascending[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Descending inverts Ascending: Max with it returns the smallest element.
func Descending[T constraints.Ordered](a, b T) int {
	return Ascending(b, a)
}

// ValidComparison reports whether r honours the comparator contract.
func ValidComparison(r int) bool {
	return r >= -1 && r <= 1
}
