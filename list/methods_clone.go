// Package list: cloning.
//
// Clone is the Go spelling of both copy construction and copy assignment:
// assign the result where a copy is needed. The copy shares no nodes with
// the source, so mutating one never disturbs the other.
package list

// Clone returns a deep copy of the list: every element value is copied into
// a freshly allocated node, in the same order, so the clone is fully
// independent of the source.
//
// Element values are copied by assignment; if T itself holds pointers, the
// pointed-to data is shared, exactly as with any Go value copy.
// Complexity: O(n).
func (l *List[T]) Clone() *List[T] {
	clone := New[T]()
	// Tail-append to preserve iteration order.
	tail := &clone.head
	for n := l.head.next; n != nil; n = n.next {
		tail.next = &node[T]{value: n.value}
		tail = tail.next
	}
	clone.size = l.size

	return clone
}
