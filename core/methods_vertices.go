// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/RemoveVertex/Vertices/VertexCount.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"sort"

	"github.com/samber/lo"
)

// AddVertex registers id. It is a no-op if the vertex already exists.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id and its adjacency bucket. Caller holds mu.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[string]map[string]struct{})
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes id together with every edge incident to it.
//
// Steps:
//  1. Validate id and existence.
//  2. Collect incident edge IDs from outgoing buckets and from every other
//     vertex's bucket pointing at id (incoming directed edges).
//  3. Drop each edge and its adjacency entries.
//  4. Drop the vertex and its bucket.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if id is absent.
//
// Complexity: O(V + deg(v)) because incoming directed edges are found by scanning buckets.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	incident := make(map[string]struct{})
	for _, set := range g.adjacency[id] {
		for eid := range set {
			incident[eid] = struct{}{}
		}
	}
	for from, buckets := range g.adjacency {
		if from == id {
			continue
		}
		for eid := range buckets[id] {
			incident[eid] = struct{}{}
		}
	}

	for eid := range incident {
		if e, ok := g.edges[eid]; ok {
			g.removeEdgeLocked(e)
		}
	}

	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := lo.Keys(g.vertices)
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
