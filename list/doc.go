// Package list provides a generic singly linked ("forward") list with a
// sentinel head node, cursor-style forward iterators, and value-based
// comparison helpers.
//
// What:
//
//   - List[T] owns a chain of heap-allocated nodes behind a sentinel
//     "before-first" node, so front insertion and removal never branch on
//     the empty/head case.
//   - Iterator[T] is a non-owning cursor over nodes; two iterators are
//     equal iff they reference the same node. The zero Iterator is the
//     end-of-sequence marker and is never invalidated by mutation.
//   - InsertAfter/EraseAfter splice nodes in O(1) around any position,
//     including the BeforeBegin anchor.
//   - Equal/Less and friends compare two lists by value, elementwise in
//     iteration order.
//
// Why:
//
//   - Queues of unknown length where front churn dominates.
//   - Teaching material: the full forward-list contract (sentinel, splice,
//     iterator invalidation) in a few hundred lines of plain Go.
//   - A building block for adaptors that need stable node positions.
//
// Complexity:
//
//   - Len, Empty, Front, PushFront, PopFront:        O(1)
//   - InsertAfter, EraseAfter, Swap:                 O(1)
//   - Clear, Clone, Equal, Less, String:             O(n)
//
// Iterator invalidation:
//
//   - InsertAfter invalidates nothing.
//   - EraseAfter invalidates exactly the iterators referencing the erased
//     node.
//   - Clear and PopFront invalidate iterators into the removed chain;
//     End() and BeforeBegin() remain usable anchors.
//
// Contract violations:
//
// Structural preconditions (PopFront on an empty list, EraseAfter with no
// successor, advancing or dereferencing the end iterator) are programming
// errors, not recoverable conditions; they panic with a "list:"-prefixed
// message. Reading a value through the BeforeBegin anchor is likewise a
// caller error: the sentinel holds no element.
//
// Concurrency:
//
// List is not synchronized. One goroutine may mutate a list at a time, and
// no goroutine may iterate concurrently with mutation; callers own the
// locking discipline, as with every container in the standard library.
package list
