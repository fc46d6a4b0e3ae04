// Package graph declares the capability boundary between graph storage and
// the algorithms that walk it.
//
// Algorithms in this module never depend on a concrete graph representation.
// They consume Weighted, a one-method interface that enumerates the outgoing
// (neighbor, weight) pairs of a node:
//
//	type Weighted[N comparable, W Weight] interface {
//		Successors(n N) iter.Seq2[N, W]
//	}
//
// Nodes are used as map keys by the algorithms, so N must be comparable and
// its equality must stay consistent for the duration of a call.
//
// Enumeration order:
//
//   - May be arbitrary, but must be stable for a given node while an
//     algorithm is running. Traversal order (not the result set) of dfs
//     depends on it.
//
// Concurrency:
//
//   - Implementations used with dijkstra.ShortestPaths must tolerate
//     simultaneous read-only enumeration from several goroutines.
//
// Edges is a small map-backed implementation suitable for tests, examples,
// and graphs assembled in memory. core.Graph is the thread-safe string-ID
// implementation.
package graph
