// Package list: type declarations and constructors for the forward list.
//
// This file declares the node, List, and Iterator types, the panic texts
// for contract violations, and the New/Of/FromSeq constructors.
package list

import "iter"

// Panic texts for contract violations. These are programming errors on the
// caller's side, so they surface as panics rather than error values.
const (
	panicPopFrontEmpty   = "list: PopFront on empty list"
	panicFrontEmpty      = "list: Front on empty list"
	panicInsertAfterEnd  = "list: InsertAfter position is the end iterator"
	panicEraseAfterEnd   = "list: EraseAfter position is the end iterator"
	panicEraseAfterLast  = "list: EraseAfter position has no successor"
	panicIteratorAtEnd   = "list: iterator is at end of sequence"
	panicIteratorAdvance = "list: Next on end iterator"
)

// node is a single element of the chain. Nodes are exclusively owned by the
// list that allocated them; iterators only observe them.
type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly linked sequence with O(1) front operations.
//
// The embedded sentinel head node represents the position "before the first
// element": head.next is the true head of the chain, and head.value is
// never read. size always equals the number of non-sentinel nodes reachable
// from the sentinel.
//
// The zero List is an empty list ready for use, though New reads better at
// call sites.
type List[T any] struct {
	head node[T] // sentinel; head.next is the first real node
	size int     // count of real elements
}

// New returns an empty list.
// Complexity: O(1).
func New[T any]() *List[T] {
	return &List[T]{}
}

// Of builds a list holding values in the given order, so
// Of(10, 20, 30) iterates as 10, 20, 30.
// Complexity: O(len(values)).
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	// Append after the previously appended node to preserve input order.
	tail := &l.head
	for _, v := range values {
		tail.next = &node[T]{value: v}
		tail = tail.next
	}
	l.size = len(values)

	return l
}

// FromSeq builds a list from an iter.Seq, preserving the sequence order.
// Complexity: O(n) in the sequence length.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	tail := &l.head
	for v := range seq {
		tail.next = &node[T]{value: v}
		tail = tail.next
		l.size++
	}

	return l
}
