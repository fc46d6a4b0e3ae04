package pqueue

import (
	"cmp"
	"errors"
)

// Sentinel errors returned by Heap operations.
var (
	// ErrEmptyQueue indicates Peek or Extract was called on an empty queue.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")

	// ErrDuplicateElement indicates Insert was called with an element already present.
	ErrDuplicateElement = errors.New("pqueue: element already present")

	// ErrUnknownElement indicates ChangePriority was called with an element not in the queue.
	ErrUnknownElement = errors.New("pqueue: element not present")
)

// Comparator orders priorities. It returns a positive value when a ranks
// before b, zero when they are equal, and a negative value otherwise.
// It must be a total order; the queue extracts the element it ranks highest.
type Comparator[P any] func(a, b P) int

// Natural returns the natural ordering of P: larger priorities rank first.
func Natural[P cmp.Ordered]() Comparator[P] {
	return cmp.Compare[P]
}

// Reverse returns c with its arguments swapped, turning a max-first
// comparator into a min-first one and vice versa.
func Reverse[P any](c Comparator[P]) Comparator[P] {
	return func(a, b P) int { return c(b, a) }
}

// Options configures a Heap at construction.
type Options struct {
	// Capacity pre-sizes the backing array and location map.
	Capacity int
}

// Option is a functional option for New.
type Option func(*Options)

// WithCapacity pre-allocates room for n elements. Negative values are ignored.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Capacity = n
		}
	}
}

// DefaultOptions returns Options with no pre-allocation.
func DefaultOptions() Options {
	return Options{Capacity: 0}
}

// element is the queue's record for one stored item. slot always equals the
// element's position in Heap.slots.
type element[E comparable, P any] struct {
	item     E
	priority P
	slot     int
}
