// Package list: the Iterator cursor type and traversal entry points.
//
// Iterator is a non-owning observer of a node. A single cursor type serves
// both the read-only and mutating roles (Go has no const qualification), so
// any two iterators over the same list are directly comparable.
package list

import "iter"

// Iterator is a forward cursor over a list.
//
// It wraps a possibly-nil node reference. Two iterators are equal (==) iff
// they reference the same node; the zero Iterator references no node and is
// the canonical end-of-sequence value. Traversal is single-pass but
// restartable: a fresh Begin() always re-walks the current chain.
//
// An Iterator obtained from BeforeBegin references the sentinel; it is a
// valid anchor for InsertAfter/EraseAfter but holds no element.
type Iterator[T any] struct {
	n *node[T]
}

// BeforeBegin returns the iterator referencing the sentinel position before
// the first element. It exists solely as an anchor for InsertAfter and
// EraseAfter at the front; calling Value, Ptr or Set on it reads the
// sentinel, which holds no element.
// Complexity: O(1).
func (l *List[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{n: &l.head}
}

// Begin returns an iterator to the first element, or End() if the list is
// empty.
// Complexity: O(1).
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{n: l.head.next}
}

// End returns the end-of-sequence iterator. It references no node, so no
// structural mutation ever invalidates it, and any two End iterators
// compare equal.
// Complexity: O(1).
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// Ok reports whether the iterator references a node, i.e. it is not the
// end-of-sequence value. The usual traversal loop is:
//
//	for it := l.Begin(); it.Ok(); it = it.Next() {
//		_ = it.Value()
//	}
func (it Iterator[T]) Ok() bool {
	return it.n != nil
}

// Next returns the iterator advanced by one position.
// Panics when called on the end iterator.
// Complexity: O(1).
func (it Iterator[T]) Next() Iterator[T] {
	if it.n == nil {
		panic(panicIteratorAdvance)
	}

	return Iterator[T]{n: it.n.next}
}

// Value returns the element the iterator references.
// Panics on the end iterator; reading through BeforeBegin is a caller
// error and yields the sentinel's zero value.
// Complexity: O(1).
func (it Iterator[T]) Value() T {
	if it.n == nil {
		panic(panicIteratorAtEnd)
	}

	return it.n.value
}

// Ptr returns a pointer to the referenced element, allowing in-place
// mutation. Panics on the end iterator.
// Complexity: O(1).
func (it Iterator[T]) Ptr() *T {
	if it.n == nil {
		panic(panicIteratorAtEnd)
	}

	return &it.n.value
}

// Set replaces the referenced element's value. Panics on the end iterator.
// Complexity: O(1).
func (it Iterator[T]) Set(v T) {
	if it.n == nil {
		panic(panicIteratorAtEnd)
	}
	it.n.value = v
}

// All returns an iter.Seq walking the list front to back, for use with
// range-over-func. The sequence is restartable: each range re-reads the
// chain from the current head. Mutating the list during a walk is the
// caller's responsibility, as with the cursor API.
// Complexity: O(n) per full walk.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}
