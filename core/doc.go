// Package core provides a thread-safe, in-memory graph with string vertex
// IDs and int64 edge weights. It is the concrete graph used by the lvpath
// command and satisfies graph.Weighted[string, int64], so it can be handed
// directly to dfs and dijkstra.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(defaultDirected bool)
//	    Directed graphs store only from→to adjacency.
//	    Undirected graphs (the default) mirror every edge in adjacency[to][from].
//
//	– WithWeighted()
//	    Permits non-zero weights; otherwise AddEdge(weight≠0) → ErrBadWeight.
//
//	– WithMultiEdges()
//	    Allows parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops; otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error        // O(1), idempotent
//	HasVertex(id string) bool         // O(1)
//	RemoveVertex(id string) error     // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight int64) (edgeID string, err error) // O(1) amortized
//	RemoveEdge(edgeID string) error   // O(1)
//	HasEdge(from, to string) bool     // O(1)
//
//	// Queries (deterministic order)
//	Vertices() []string               // sorted by ID
//	Edges() []*Edge                   // sorted by edge ID
//	Neighbors(id string) ([]*Edge, error)
//	Successors(id string) iter.Seq2[string, int64]
//
// Determinism:
//
//   - Edge IDs are "e1", "e2", … in creation order and never reused.
//   - Vertices, Edges, Neighbors and Successors return sorted results, so
//     traversals over a core.Graph are reproducible run to run.
//
// Concurrency:
//
//	A single sync.RWMutex guards vertices, edges and adjacency. Queries take
//	the read lock and return snapshots; Successors copies the neighbor list
//	under the read lock and yields after releasing it, so callers may run
//	searches concurrently with each other. Mutating the graph while a search
//	is running is allowed but the search sees a mix of old and new arcs.
package core
