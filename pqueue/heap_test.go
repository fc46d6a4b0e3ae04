// Package pqueue_test verifies the indexed heap contracts: level-order shape
// after each mutation, sentinel errors, and the location index.
package pqueue_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/pqueue"
)

// newSample builds the max-first queue used across these tests:
// elements 4,5,1,2 with priorities 2,3,4,5, inserted in that order.
func newSample(t *testing.T) *pqueue.Heap[int, int] {
	t.Helper()
	h := pqueue.New[int, int](pqueue.Natural[int]())
	require.NoError(t, h.Insert(4, 2))
	require.NoError(t, h.Insert(5, 3))
	require.NoError(t, h.Insert(1, 4))
	require.NoError(t, h.Insert(2, 5))

	return h
}

// requireIndexed checks that every element in the array is indexed and that
// the array reports the expected priorities.
func requireIndexed(t *testing.T, h *pqueue.Heap[int, int], want map[int]int) {
	t.Helper()
	elems := h.Elements()
	require.Len(t, elems, len(want))
	require.Equal(t, len(want), h.Len())
	for _, e := range elems {
		p, ok := h.Priority(e)
		require.True(t, ok, "element %d missing from index", e)
		require.Equal(t, want[e], p, "priority of %d", e)
	}
}

func TestHeap_InsertShape(t *testing.T) {
	h := pqueue.New[int, int](pqueue.Natural[int]())

	require.NoError(t, h.Insert(4, 2))
	assert.Equal(t, []int{4}, h.Elements())

	require.NoError(t, h.Insert(5, 3))
	assert.Equal(t, []int{5, 4}, h.Elements())

	require.NoError(t, h.Insert(1, 4))
	assert.Equal(t, []int{1, 4, 5}, h.Elements())

	require.NoError(t, h.Insert(2, 5))
	assert.Equal(t, []int{2, 1, 5, 4}, h.Elements())

	requireIndexed(t, h, map[int]int{4: 2, 5: 3, 1: 4, 2: 5})
	assert.True(t, h.Valid())

	top, err := h.Peek()
	require.NoError(t, err)
	assert.Equal(t, 2, top)
}

func TestHeap_InsertDuplicate(t *testing.T) {
	h := newSample(t)
	before := h.Elements()

	err := h.Insert(2, 5)
	assert.ErrorIs(t, err, pqueue.ErrDuplicateElement)

	err = h.Insert(4, 100)
	assert.ErrorIs(t, err, pqueue.ErrDuplicateElement)

	assert.Equal(t, 4, h.Len())
	assert.Equal(t, before, h.Elements(), "rejected insert must not change the array")
	p, _ := h.Priority(4)
	assert.Equal(t, 2, p, "rejected insert must not change the priority")
}

func TestHeap_Extract(t *testing.T) {
	h := newSample(t)

	top, err := h.Extract()
	require.NoError(t, err)
	assert.Equal(t, 2, top)
	assert.Equal(t, []int{1, 4, 5}, h.Elements())
	assert.False(t, h.Contains(2))
	assert.True(t, h.Valid())
	requireIndexed(t, h, map[int]int{1: 4, 4: 2, 5: 3})
}

func TestHeap_ExtractUntilEmpty(t *testing.T) {
	h := newSample(t)

	var got []int
	for h.Len() > 0 {
		e, p, err := h.ExtractWithPriority()
		require.NoError(t, err)
		got = append(got, p)
		assert.False(t, h.Contains(e))
		assert.True(t, h.Valid())
	}
	assert.Equal(t, []int{5, 4, 3, 2}, got)

	_, err := h.Extract()
	assert.ErrorIs(t, err, pqueue.ErrEmptyQueue)
}

func TestHeap_Empty(t *testing.T) {
	h := pqueue.New[string, float64](pqueue.Natural[float64]())

	_, err := h.Peek()
	assert.ErrorIs(t, err, pqueue.ErrEmptyQueue)
	_, _, err = h.PeekPriority()
	assert.ErrorIs(t, err, pqueue.ErrEmptyQueue)
	_, err = h.Extract()
	assert.ErrorIs(t, err, pqueue.ErrEmptyQueue)

	assert.Equal(t, 0, h.Len())
	assert.True(t, h.Valid())
	assert.Empty(t, h.Elements())
}

func TestHeap_SingleElementRoundTrip(t *testing.T) {
	h := pqueue.New[string, int](pqueue.Natural[int](), pqueue.WithCapacity(1))
	require.NoError(t, h.Insert("only", 7))

	e, p, err := h.PeekPriority()
	require.NoError(t, err)
	assert.Equal(t, "only", e)
	assert.Equal(t, 7, p)

	e, err = h.Extract()
	require.NoError(t, err)
	assert.Equal(t, "only", e)
	assert.Equal(t, 0, h.Len())

	// The identity may be reused once extracted.
	require.NoError(t, h.Insert("only", 1))
	assert.Equal(t, 1, h.Len())
}

func TestHeap_ChangePriority(t *testing.T) {
	h := newSample(t)

	// Lower the root below everything: it sinks to a leaf.
	require.NoError(t, h.ChangePriority(2, 0))
	assert.Equal(t, []int{1, 4, 5, 2}, h.Elements())
	assert.True(t, h.Valid())
	requireIndexed(t, h, map[int]int{1: 4, 4: 2, 5: 3, 2: 0})

	// Lower an inner node below its only child.
	require.NoError(t, h.ChangePriority(4, -1))
	assert.Equal(t, []int{1, 2, 5, 4}, h.Elements())
	assert.True(t, h.Valid())
	requireIndexed(t, h, map[int]int{1: 4, 2: 0, 5: 3, 4: -1})

	// Raise a leaf above the root: it climbs to slot 0.
	require.NoError(t, h.ChangePriority(4, 10))
	top, err := h.Peek()
	require.NoError(t, err)
	assert.Equal(t, 4, top)
	assert.True(t, h.Valid())
}

func TestHeap_ChangePriorityUnknown(t *testing.T) {
	h := pqueue.New[int, int](pqueue.Natural[int]())
	err := h.ChangePriority(4, 3)
	assert.ErrorIs(t, err, pqueue.ErrUnknownElement)

	h = newSample(t)
	before := h.Elements()
	err = h.ChangePriority(42, 1)
	assert.True(t, errors.Is(err, pqueue.ErrUnknownElement))
	assert.Contains(t, err.Error(), "42")
	assert.Equal(t, before, h.Elements())
}

func TestHeap_ChangePrioritySameValue(t *testing.T) {
	h := newSample(t)
	before := h.Elements()
	require.NoError(t, h.ChangePriority(1, 4))
	assert.Equal(t, before, h.Elements(), "unchanged priority must not move elements")
}

func TestHeap_EqualChildrenPreferLeft(t *testing.T) {
	// Root 'a' with two equal children; after lowering the root it must swap
	// with the left child.
	h := pqueue.New[string, int](pqueue.Natural[int]())
	require.NoError(t, h.Insert("a", 9))
	require.NoError(t, h.Insert("b", 5))
	require.NoError(t, h.Insert("c", 5))
	require.Equal(t, []string{"a", "b", "c"}, h.Elements())

	require.NoError(t, h.ChangePriority("a", 1))
	assert.Equal(t, []string{"b", "a", "c"}, h.Elements())
	assert.True(t, h.Valid())
}

func TestHeap_EqualPrioritiesDoNotMove(t *testing.T) {
	h := pqueue.New[string, int](pqueue.Natural[int]())
	for _, e := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, h.Insert(e, 0))
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, h.Elements())
	assert.True(t, h.Valid())

	e, err := h.Extract()
	require.NoError(t, err)
	assert.Equal(t, "a", e)
	assert.Equal(t, []string{"e", "b", "c", "d"}, h.Elements())
}

func TestHeap_ReverseIsMinFirst(t *testing.T) {
	h := pqueue.New[string, int](pqueue.Reverse(pqueue.Natural[int]()))
	require.NoError(t, h.Insert("far", 10))
	require.NoError(t, h.Insert("near", 1))
	require.NoError(t, h.Insert("mid", 5))

	var got []string
	for h.Len() > 0 {
		e, err := h.Extract()
		require.NoError(t, err)
		got = append(got, e)
	}
	assert.Equal(t, []string{"near", "mid", "far"}, got)
}

func TestHeap_ComparatorExposed(t *testing.T) {
	h := pqueue.New[int, int](pqueue.Reverse(pqueue.Natural[int]()))
	c := h.Comparator()
	assert.Positive(t, c(1, 2), "min-first comparator ranks 1 before 2")
	assert.Negative(t, c(2, 1))
	assert.Zero(t, c(3, 3))
}

func TestHeap_ValidFromDetectsViolation(t *testing.T) {
	// A comparator whose answer can be flipped after insertion lets the test
	// observe a broken heap without reaching into unexported state.
	flipped := false
	c := func(a, b int) int {
		if flipped {
			return b - a
		}

		return a - b
	}
	h := pqueue.New[string, int](c)
	require.NoError(t, h.Insert("x", 3))
	require.NoError(t, h.Insert("y", 2))
	require.NoError(t, h.Insert("z", 1))
	require.True(t, h.Valid())

	flipped = true
	assert.False(t, h.Valid())
	assert.True(t, h.ValidFrom(1), "leaf subtree is trivially valid")
	assert.True(t, h.ValidFrom(10), "slot past the end is trivially valid")
}
