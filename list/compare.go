// Package list: value-based equality and lexicographic ordering between
// two lists of the same element type.
//
// These are free functions, not methods, because each narrows T beyond the
// List's own `any` bound: Equal needs comparable, the ordering functions
// need constraints.Ordered. EqualFunc/LessFunc lift those bounds for
// element types that carry their own comparison.
package list

import "golang.org/x/exp/constraints"

// Equal reports whether lhs and rhs hold elementwise-equal values in the
// same order. The same list compared with itself short-circuits to true
// without walking; differing lengths short-circuit to false.
// Complexity: O(min(n, m)).
func Equal[T comparable](lhs, rhs *List[T]) bool {
	if lhs == rhs {
		return true
	}
	if lhs.size != rhs.size {
		return false
	}
	a, b := lhs.head.next, rhs.head.next
	for a != nil {
		if a.value != b.value {
			return false
		}
		a, b = a.next, b.next
	}

	return true
}

// NotEqual is the negation of Equal, completing the six-operator surface.
func NotEqual[T comparable](lhs, rhs *List[T]) bool {
	return !Equal(lhs, rhs)
}

// Less reports whether lhs precedes rhs in lexicographic order over the
// iteration sequences: the first unequal element pair decides; a prefix is
// less than any longer sequence it prefixes.
// Complexity: O(min(n, m)).
func Less[T constraints.Ordered](lhs, rhs *List[T]) bool {
	a, b := lhs.head.next, rhs.head.next
	for a != nil && b != nil {
		if a.value < b.value {
			return true
		}
		if b.value < a.value {
			return false
		}
		a, b = a.next, b.next
	}

	// Equal prefix: the shorter sequence is the lesser one.
	return a == nil && b != nil
}

// Greater reports whether lhs follows rhs in lexicographic order.
func Greater[T constraints.Ordered](lhs, rhs *List[T]) bool {
	return Less(rhs, lhs)
}

// LessOrEqual reports "equal or strictly less". It is deliberately two
// independent passes (Equal then Less), matching the documented contract,
// not a single combined comparison.
func LessOrEqual[T constraints.Ordered](lhs, rhs *List[T]) bool {
	return Equal(lhs, rhs) || Less(lhs, rhs)
}

// GreaterOrEqual reports "equal or strictly greater", likewise as two
// independent passes.
func GreaterOrEqual[T constraints.Ordered](lhs, rhs *List[T]) bool {
	return Equal(lhs, rhs) || Greater(lhs, rhs)
}

// EqualFunc is Equal for element types without ==: eq decides elementwise
// equality. Identity and length short-circuits apply as in Equal.
// Complexity: O(min(n, m)).
func EqualFunc[T any](lhs, rhs *List[T], eq func(a, b T) bool) bool {
	if lhs == rhs {
		return true
	}
	if lhs.size != rhs.size {
		return false
	}
	a, b := lhs.head.next, rhs.head.next
	for a != nil {
		if !eq(a.value, b.value) {
			return false
		}
		a, b = a.next, b.next
	}

	return true
}

// LessFunc is Less for element types without an ordering: less must be a
// strict weak ordering over T.
// Complexity: O(min(n, m)).
func LessFunc[T any](lhs, rhs *List[T], less func(a, b T) bool) bool {
	a, b := lhs.head.next, rhs.head.next
	for a != nil && b != nil {
		if less(a.value, b.value) {
			return true
		}
		if less(b.value, a.value) {
			return false
		}
		a, b = a.next, b.next
	}

	return a == nil && b != nil
}
