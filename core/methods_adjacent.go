// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, Successors).
// Determinism:
//   - Neighbors() sorts by edge ID.
//   - NeighborIDs() and Successors() are sorted by neighbor ID.

package core

import (
	"iter"
	"sort"

	"github.com/katalvlaran/lvpath/graph"
)

var _ graph.Weighted[string, int64] = (*Graph)(nil)

// Neighbors returns every edge that can be traversed out of id.
//
// Neighborhood policy:
//   - Directed edges: only edges with e.From == id.
//   - Undirected edges: every incident edge; a self-loop appears once.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d) where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.mu.RUnlock()

		return nil, ErrVertexNotFound
	}
	var out []*Edge
	for _, set := range g.adjacency[id] {
		for eid := range set {
			out = append(out, g.edges[eid])
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out, nil
}

// NeighborIDs returns the unique IDs reachable from id over one edge,
// sorted lexicographically ascending.
//
// Errors: as Neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(g.adjacency[id]))
	for to := range g.adjacency[id] {
		out = append(out, to)
	}
	sort.Strings(out)

	return out, nil
}

// Successors enumerates the outgoing (neighbor, weight) pairs of id, sorted
// by neighbor ID. When parallel edges connect the same pair only the
// cheapest is reported, since no shortest path uses the others.
// Unknown or empty ids yield nothing.
//
// The neighbor list is copied under the read lock; yielding happens after
// the lock is released, so the loop body may call back into the graph.
//
// Complexity: O(d log d) to build the snapshot.
func (g *Graph) Successors(id string) iter.Seq2[string, int64] {
	return func(yield func(string, int64) bool) {
		for _, a := range g.successors(id) {
			if !yield(a.To, a.Weight) {
				return
			}
		}
	}
}

// successors builds the sorted, de-duplicated arc snapshot for id.
func (g *Graph) successors(id string) []graph.Arc[string, int64] {
	g.mu.RLock()
	buckets := g.adjacency[id]
	arcs := make([]graph.Arc[string, int64], 0, len(buckets))
	for to, set := range buckets {
		first := true
		var best int64
		for eid := range set {
			if w := g.edges[eid].Weight; first || w < best {
				best, first = w, false
			}
		}
		if !first {
			arcs = append(arcs, graph.Arc[string, int64]{To: to, Weight: best})
		}
	}
	g.mu.RUnlock()

	sort.Slice(arcs, func(i, j int) bool { return arcs[i].To < arcs[j].To })

	return arcs
}
