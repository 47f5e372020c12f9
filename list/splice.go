// Package list: splice operations around an arbitrary position.
//
// InsertAfter and EraseAfter relink successor pointers without touching the
// rest of the chain, which is the whole point of a forward list: O(1)
// structural edits anywhere a cursor can point, including the BeforeBegin
// anchor.
package list

// InsertAfter splices a new element holding value immediately after pos and
// returns an iterator referencing it.
//
// pos must reference a node of this list — an ordinary position or the
// BeforeBegin anchor. Passing the end iterator panics; passing an iterator
// into another list corrupts both and is unchecked (caller error).
//
// No existing iterator is invalidated: the new node is fully built before
// pos's successor link is redirected, so a failed allocation leaves the
// list in its prior state.
// Complexity: O(1).
func (l *List[T]) InsertAfter(pos Iterator[T], value T) Iterator[T] {
	// 1) Reject the end iterator: it references no node to splice after.
	if pos.n == nil {
		panic(panicInsertAfterEnd)
	}
	// 2) Build the node first: new node adopts pos's old successor.
	fresh := &node[T]{value: value, next: pos.n.next}
	// 3) Redirect exactly one link.
	pos.n.next = fresh
	l.size++

	return Iterator[T]{n: fresh}
}

// EraseAfter unlinks and discards the element immediately after pos and
// returns an iterator to the node now following pos, or End() if none.
//
// pos must reference a node with a successor: not the end iterator and not
// the last element. Both violations panic.
//
// Exactly the iterators referencing the erased node are invalidated; pos
// and every other cursor remain valid.
// Complexity: O(1).
func (l *List[T]) EraseAfter(pos Iterator[T]) Iterator[T] {
	// 1) Reject the end iterator.
	if pos.n == nil {
		panic(panicEraseAfterEnd)
	}
	// 2) Reject positions with nothing to erase.
	gone := pos.n.next
	if gone == nil {
		panic(panicEraseAfterLast)
	}
	// 3) Unlink and sever so stale iterators cannot re-enter the chain.
	pos.n.next = gone.next
	gone.next = nil
	l.size--

	return Iterator[T]{n: pos.n.next}
}
