package list_test

import (
	"fmt"

	"github.com/katalvlaran/lvlist/list"
)

// ExampleList demonstrates basic construction, mutation, and traversal.
func ExampleList() {
	// 1) Build a list from a sequence of values:
	l := list.Of(10, 20, 30)

	// 2) Splice a value after the first element:
	l.InsertAfter(l.Begin(), 15)
	fmt.Println("after insert:", l, "len:", l.Len())

	// 3) Erase what we just inserted:
	l.EraseAfter(l.Begin())
	fmt.Println("after erase:", l, "len:", l.Len())

	// 4) Walk with the cursor API:
	for it := l.Begin(); it.Ok(); it = it.Next() {
		fmt.Print(it.Value(), " ")
	}
	fmt.Println()

	// Output:
	// after insert: [10 15 20 30] len: 4
	// after erase: [10 20 30] len: 3
	// 10 20 30
}

// ExampleList_BeforeBegin shows front insertion through the sentinel anchor.
func ExampleList_BeforeBegin() {
	l := list.New[string]()
	l.InsertAfter(l.BeforeBegin(), "world")
	l.InsertAfter(l.BeforeBegin(), "hello")

	fmt.Println(l)

	// Output:
	// [hello world]
}

// ExampleList_All ranges over a list with the iter.Seq traversal.
func ExampleList_All() {
	l := list.Of(1, 2, 3)

	sum := 0
	for v := range l.All() {
		sum += v
	}
	fmt.Println("sum:", sum)

	// Output:
	// sum: 6
}

// ExampleEqual compares two lists by value.
func ExampleEqual() {
	a := list.Of(1, 2, 3)
	b := a.Clone()
	c := list.Of(1, 2, 4)

	fmt.Println(list.Equal(a, b))
	fmt.Println(list.Equal(a, c))
	fmt.Println(list.Less(a, c))

	// Output:
	// true
	// false
	// true
}

// ExampleSwap exchanges two lists in constant time.
func ExampleSwap() {
	a := list.Of(1, 2)
	b := list.Of(9)

	list.Swap(a, b)
	fmt.Println(a, b)

	// Output:
	// [9] [1 2]
}
