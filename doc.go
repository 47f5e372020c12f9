// Package lvlist is a small, focused library of sequence containers —
// starting with a generic singly linked list built around splice-style
// O(1) insertion and removal.
//
// 🚀 What is lvlist?
//
//	A modern, generics-first container library that gives you:
//		• list.List[T] — a forward list with a sentinel head node
//		• Cursor-style forward iterators (restartable, multi-pass)
//		• O(1) PushFront / PopFront / InsertAfter / EraseAfter / Swap
//		• Deep Clone, value-based Equal and lexicographic ordering
//		• Range-over-func traversal via All() (iter.Seq)
//
// ✨ Why choose lvlist?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable costs – every operation documents its complexity
//   - Pure Go – no cgo, generics all the way down
//   - Honest contracts – caller errors panic loudly instead of corrupting state
//
// Everything lives under one subpackage:
//
//	list/ — List[T], Iterator[T], comparison helpers
//
// Quick ASCII example:
//
//	BeforeBegin ──▶ 10 ──▶ 20 ──▶ 30 ──▶ ∅
//	                 └─ InsertAfter(Begin(), 15) splices here
//
// Dive into list/doc.go for the full contract, the complexity table and the
// iterator invalidation rules.
//
//	go get github.com/katalvlaran/lvlist/list
package lvlist
