package graph

import (
	"iter"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// Weight is the set of numeric types usable as edge labels.
// Algorithms assume weights are non-negative; see dijkstra.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Weighted is the capability algorithms require from a graph: enumerate the
// outgoing arcs of n as (neighbor, weight) pairs.
// A node with no outgoing arcs, or a node unknown to the graph, yields nothing.
type Weighted[N comparable, W Weight] interface {
	Successors(n N) iter.Seq2[N, W]
}

// Arc is one outgoing edge stored in Edges.
type Arc[N comparable, W Weight] struct {
	To     N
	Weight W
}

// Edges is a map-backed directed adjacency list.
// Successors yields arcs in insertion order, which keeps traversals reproducible.
//
// Edges is not safe for concurrent mutation; concurrent Successors calls on an
// Edges value that is no longer being modified are safe.
type Edges[N comparable, W Weight] map[N][]Arc[N, W]

// AddArc appends the directed arc from→to with weight w.
// The destination is registered as a node with no outgoing arcs if it was
// not already known, so Nodes reports it.
func (e Edges[N, W]) AddArc(from, to N, w W) {
	e[from] = append(e[from], Arc[N, W]{To: to, Weight: w})
	if _, ok := e[to]; !ok {
		e[to] = nil
	}
}

// AddNode registers n without arcs. It is a no-op if n is already present.
func (e Edges[N, W]) AddNode(n N) {
	if _, ok := e[n]; !ok {
		e[n] = nil
	}
}

// Successors implements Weighted.
func (e Edges[N, W]) Successors(n N) iter.Seq2[N, W] {
	arcs := e[n]

	return func(yield func(N, W) bool) {
		for _, a := range arcs {
			if !yield(a.To, a.Weight) {
				return
			}
		}
	}
}

// Nodes returns every node known to e, in unspecified order.
func (e Edges[N, W]) Nodes() []N {
	return lo.Keys(e)
}

// Weight returns the weight of the first arc from→to and whether one exists.
func (e Edges[N, W]) Weight(from, to N) (W, bool) {
	a, ok := lo.Find(e[from], func(a Arc[N, W]) bool { return a.To == to })

	return a.Weight, ok
}

var _ Weighted[string, int] = Edges[string, int]{}
