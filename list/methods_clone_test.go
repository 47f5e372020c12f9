package list_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlist/list"
)

// TestClone_DeepCopy verifies the clone matches the source in length and
// sequence but shares no structure with it.
func TestClone_DeepCopy(t *testing.T) {
	src := list.Of(1, 2, 3)
	dst := src.Clone()

	assert.Equal(t, src.Len(), dst.Len())
	assert.Equal(t, drain(src), drain(dst))
	assert.True(t, list.Equal(src, dst))

	// Mutating the source leaves the clone untouched.
	src.PushFront(0)
	src.EraseAfter(src.Begin())
	assert.Equal(t, []int{0, 2, 3}, drain(src))
	assert.Equal(t, []int{1, 2, 3}, drain(dst))
	assert.Equal(t, 3, dst.Len())

	// And vice versa.
	dst.Clear()
	assert.Equal(t, []int{0, 2, 3}, drain(src))
}

// TestClone_Empty verifies cloning an empty list yields an independent
// empty list.
func TestClone_Empty(t *testing.T) {
	src := list.New[string]()
	dst := src.Clone()

	assert.True(t, dst.Empty())
	dst.PushFront("x")
	assert.True(t, src.Empty())
}

// TestClone_InPlaceEdits verifies element edits through a cursor on one
// list never show up in the other.
func TestClone_InPlaceEdits(t *testing.T) {
	src := list.Of(1, 2)
	dst := src.Clone()

	src.Begin().Set(99)
	assert.Equal(t, []int{99, 2}, drain(src))
	assert.Equal(t, []int{1, 2}, drain(dst))
}
