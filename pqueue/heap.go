package pqueue

import (
	"fmt"

	"github.com/negrel/assert"
)

// Heap is an indexed binary heap of unique elements of type E ordered by
// priorities of type P.
type Heap[E comparable, P any] struct {
	cmp   Comparator[P]
	slots []*element[E, P]     // level-order heap shape
	index map[E]*element[E, P] // identity → record; bijective with slots
}

// New returns an empty Heap ordered by c.
// c must not be nil.
func New[E comparable, P any](c Comparator[P], opts ...Option) *Heap[E, P] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Heap[E, P]{
		cmp:   c,
		slots: make([]*element[E, P], 0, cfg.Capacity),
		index: make(map[E]*element[E, P], cfg.Capacity),
	}
}

// Comparator returns the ordering the heap was built with.
func (h *Heap[E, P]) Comparator() Comparator[P] {
	return h.cmp
}

// Len returns the number of elements in the queue.
func (h *Heap[E, P]) Len() int {
	return len(h.slots)
}

// Contains reports whether e is in the queue.
func (h *Heap[E, P]) Contains(e E) bool {
	_, ok := h.index[e]

	return ok
}

// Priority returns the current priority of e and whether e is present.
func (h *Heap[E, P]) Priority(e E) (P, bool) {
	el, ok := h.index[e]
	if !ok {
		var zero P

		return zero, false
	}

	return el.priority, true
}

// Peek returns the extremal element without removing it.
func (h *Heap[E, P]) Peek() (E, error) {
	e, _, err := h.PeekPriority()

	return e, err
}

// PeekPriority returns the extremal element and its priority without removing it.
func (h *Heap[E, P]) PeekPriority() (E, P, error) {
	if len(h.slots) == 0 {
		var (
			e E
			p P
		)

		return e, p, ErrEmptyQueue
	}
	top := h.slots[0]

	return top.item, top.priority, nil
}

// Insert adds e with priority p.
// It returns ErrDuplicateElement, leaving the queue unchanged, if e is already present.
//
// Complexity: O(log n) amortized.
func (h *Heap[E, P]) Insert(e E, p P) error {
	if _, ok := h.index[e]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateElement, e)
	}

	el := &element[E, P]{item: e, priority: p, slot: len(h.slots)}
	h.slots = append(h.slots, el)
	h.index[e] = el
	h.up(el.slot)
	h.checkBijection()

	return nil
}

// Extract removes and returns the extremal element.
//
// Complexity: O(log n).
func (h *Heap[E, P]) Extract() (E, error) {
	e, _, err := h.ExtractWithPriority()

	return e, err
}

// ExtractWithPriority removes and returns the extremal element and the
// priority it held.
//
// The last slot is moved into the root, the extracted element is dropped from
// the location map, and the new root is sifted down.
func (h *Heap[E, P]) ExtractWithPriority() (E, P, error) {
	if len(h.slots) == 0 {
		var (
			e E
			p P
		)

		return e, p, ErrEmptyQueue
	}

	top := h.slots[0]
	last := len(h.slots) - 1
	if last > 0 {
		h.slots[0] = h.slots[last]
		h.slots[0].slot = 0
	}
	h.slots[last] = nil // release the record for GC
	h.slots = h.slots[:last]
	delete(h.index, top.item)
	if len(h.slots) > 1 {
		h.down(0)
	}
	top.slot = -1
	h.checkBijection()

	return top.item, top.priority, nil
}

// ChangePriority sets the priority of e to p and restores the heap invariant.
// It returns ErrUnknownElement, leaving the queue unchanged, if e is absent.
//
// The element is sifted down and then up from its slot: a change can move it
// either way relative to its subtree and its ancestors.
//
// Complexity: O(log n).
func (h *Heap[E, P]) ChangePriority(e E, p P) error {
	el, ok := h.index[e]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownElement, e)
	}

	el.priority = p
	h.down(el.slot)
	h.up(el.slot)
	h.checkBijection()

	return nil
}

// Elements returns the queued elements in backing-array (level) order.
// The slice is a copy; index 0 is the extremal element.
func (h *Heap[E, P]) Elements() []E {
	out := make([]E, len(h.slots))
	for i, el := range h.slots {
		out[i] = el.item
	}

	return out
}

// Valid reports whether the heap invariant holds for the whole queue.
func (h *Heap[E, P]) Valid() bool {
	return h.ValidFrom(0)
}

// ValidFrom reports whether the subtree rooted at slot i satisfies the heap
// invariant: every non-leaf slot ranks no worse than each present child.
// Slots outside the array are trivially valid.
//
// Complexity: O(size of subtree).
func (h *Heap[E, P]) ValidFrom(i int) bool {
	if i < 0 || i >= len(h.slots) {
		return true
	}
	for _, c := range [2]int{left(i), right(i)} {
		if c >= len(h.slots) {
			continue
		}
		if h.better(c, i) || !h.ValidFrom(c) {
			return false
		}
	}

	return true
}

func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }
func parent(i int) int { return (i - 1) / 2 }

// better reports whether slot i ranks strictly before slot j.
func (h *Heap[E, P]) better(i, j int) bool {
	return h.cmp(h.slots[i].priority, h.slots[j].priority) > 0
}

// swap exchanges slots i and j and their recorded positions.
func (h *Heap[E, P]) swap(i, j int) {
	h.slots[i], h.slots[j] = h.slots[j], h.slots[i]
	h.slots[i].slot = i
	h.slots[j].slot = j
}

// up moves slot i toward the root while it ranks strictly before its parent.
func (h *Heap[E, P]) up(i int) {
	for i > 0 {
		p := parent(i)
		if !h.better(i, p) {
			return
		}
		h.swap(i, p)
		i = p
	}
}

// down moves slot i toward the leaves. Left child wins ties between children.
func (h *Heap[E, P]) down(i int) {
	n := len(h.slots)
	for {
		c := left(i)
		if c >= n {
			return
		}
		if r := right(i); r < n && h.better(r, c) {
			c = r
		}
		if !h.better(c, i) {
			return
		}
		h.swap(i, c)
		i = c
	}
}

// checkBijection is compiled to a no-op unless built with -tags assert.
func (h *Heap[E, P]) checkBijection() {
	assert.Equal(len(h.slots), len(h.index))
}
