// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by creation order of their IDs.
//   - Edge IDs are monotonic ("e" + decimal) and never reused.

package core

import (
	"sort"
	"strconv"
	"strings"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to with the given weight, registering
// missing endpoints. Undirected graphs mirror the edge in adjacency[to][from].
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Lock, ensure endpoints exist.
//  3. Check the multi-edge constraint.
//  4. Generate the edge ID, store the edge, link adjacency (and its mirror).
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Negative weights are accepted here. Shortest-path search assumes
// non-negative weights; keeping them out is the caller's responsibility.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	// 3) Multi-edge existence check
	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	// 4) Store and link
	g.nextEdgeID++
	eid := formatEdgeID(g.nextEdgeID)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	g.edges[eid] = e
	g.link(from, to, eid)
	if !e.Directed && from != to {
		g.link(to, from, eid)
	}

	return eid, nil
}

// RemoveEdge deletes one edge and its mirror.
//
// Errors:
//   - ErrEdgeNotFound: if eid is unknown.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	g.removeEdgeLocked(e)

	return nil
}

// HasEdge reports whether at least one edge can be traversed from→to.
// For undirected graphs HasEdge(a,b) == HasEdge(b,a).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// GetEdge returns the edge with the given ID.
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by ID (creation order).
// Treat the returned *Edge values as read-only.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out
}

// EdgeCount returns the number of edges (an undirected edge counts once).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// link adds eid to adjacency[from][to]. Caller holds mu.
func (g *Graph) link(from, to, eid string) {
	buckets := g.adjacency[from]
	if buckets[to] == nil {
		buckets[to] = make(map[string]struct{})
	}
	buckets[to][eid] = struct{}{}
}

// unlink removes eid from adjacency[from][to], dropping the bucket when empty. Caller holds mu.
func (g *Graph) unlink(from, to, eid string) {
	set := g.adjacency[from][to]
	delete(set, eid)
	if len(set) == 0 {
		delete(g.adjacency[from], to)
	}
}

// removeEdgeLocked drops e from the catalog and adjacency. Caller holds mu.
func (g *Graph) removeEdgeLocked(e *Edge) {
	delete(g.edges, e.ID)
	g.unlink(e.From, e.To, e.ID)
	if !e.Directed && e.From != e.To {
		g.unlink(e.To, e.From, e.ID)
	}
}

func formatEdgeID(n uint64) string {
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)

	return string(strconv.AppendUint(buf, n, 10))
}

// edgeIDLess orders "e2" before "e10".
func edgeIDLess(a, b string) bool {
	na, errA := strconv.ParseUint(strings.TrimPrefix(a, string(edgeIDPrefix)), 10, 64)
	nb, errB := strconv.ParseUint(strings.TrimPrefix(b, string(edgeIDPrefix)), 10, 64)
	if errA != nil || errB != nil {
		return a < b
	}

	return na < nb
}
