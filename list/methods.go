// Package list: List method implementations for size queries, front
// operations, clearing, swapping and rendering.
//
// Every mutation here touches only the sentinel's next link and the size
// counter, which is what keeps the front paths branch-free and O(1).
package list

import (
	"fmt"
	"strings"
)

// Len returns the number of elements. O(1).
func (l *List[T]) Len() int {
	return l.size
}

// Empty reports whether the list holds no elements. O(1).
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// Front returns the first element.
// Panics on an empty list.
// Complexity: O(1).
func (l *List[T]) Front() T {
	if l.head.next == nil {
		panic(panicFrontEmpty)
	}

	return l.head.next.value
}

// PushFront inserts value as the new first element.
// The node is fully built before any link changes, so a failed allocation
// leaves the list untouched.
// Complexity: O(1).
func (l *List[T]) PushFront(value T) {
	l.head.next = &node[T]{value: value, next: l.head.next}
	l.size++
}

// PopFront removes the first element.
// Panics on an empty list.
// Complexity: O(1).
func (l *List[T]) PopFront() {
	if l.head.next == nil {
		panic(panicPopFrontEmpty)
	}
	gone := l.head.next
	l.head.next = gone.next
	gone.next = nil // sever so stale iterators cannot re-enter the chain
	l.size--
}

// Clear removes every element, leaving the list empty.
// Links are severed node by node while walking, so iterators into the old
// chain cannot traverse it afterwards; size is reset once, after the walk.
// Complexity: O(n).
func (l *List[T]) Clear() {
	n := l.head.next
	for n != nil {
		next := n.next
		n.next = nil
		n = next
	}
	l.head.next = nil
	l.size = 0
}

// Swap exchanges the contents of l and other in O(1) by trading chain heads
// and sizes; no element is copied or moved. Swapping a list with itself is
// a no-op.
func (l *List[T]) Swap(other *List[T]) {
	if l == other {
		return
	}
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

// Swap exchanges the contents of two lists in O(1).
// It is the free-function spelling of (*List).Swap.
func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}

// String renders the list as "[e1 e2 … en]" in iteration order.
// Complexity: O(n).
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.head.next; n != nil; n = n.next {
		if n != l.head.next {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", n.value)
	}
	sb.WriteByte(']')

	return sb.String()
}
