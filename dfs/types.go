package dfs

import (
	"errors"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to Walk.
	ErrGraphNil = errors.New("dfs: graph is nil")
)

// Option configures optional behavior of Walk.
type Option[N comparable] func(*Options[N])

// Options holds configurable parameters for Walk.
type Options[N comparable] struct {
	// OnVisit, if non-nil, is invoked when a node is marked visited, in
	// visiting order. Returning an error aborts the walk with that error.
	OnVisit func(n N) error

	// FilterNeighbor, if non-nil, is called for each successor before it is
	// pushed. Return false to skip it. Skipped successors are counted in
	// Result.SkippedNeighbors.
	FilterNeighbor func(from, to N) bool
}

// DefaultOptions returns Options with no hooks and no filtering.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		OnVisit:        nil,
		FilterNeighbor: nil,
	}
}

// WithOnVisit installs fn as a visit hook.
func WithOnVisit[N comparable](fn func(n N) error) Option[N] {
	return func(o *Options[N]) {
		o.OnVisit = fn
	}
}

// WithFilterNeighbor installs fn as a successor filter.
func WithFilterNeighbor[N comparable](fn func(from, to N) bool) Option[N] {
	return func(o *Options[N]) {
		o.FilterNeighbor = fn
	}
}

// Result captures the outcome of a walk.
type Result[N comparable] struct {
	// Order lists reachable nodes in visiting order, start first.
	Order []N

	// Visited is the reachable set.
	Visited Reachability[N]

	// SkippedNeighbors counts successors rejected by FilterNeighbor.
	SkippedNeighbors int
}

// Reachability is a set of nodes reachable from a start node.
type Reachability[N comparable] map[N]struct{}

// Contains reports whether n is in the set.
func (r Reachability[N]) Contains(n N) bool {
	_, ok := r[n]

	return ok
}

// Len returns the number of nodes in the set.
func (r Reachability[N]) Len() int {
	return len(r)
}
