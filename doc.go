// Package lvpath is a small toolkit for shortest-path search over weighted
// directed graphs.
//
// Packages:
//
//	graph/    – the Weighted capability (Successors) and Edges, a map-backed graph
//	pqueue/   – an indexed binary heap with O(log n) ChangePriority
//	dfs/      – iterative reachability: visiting order and reachable set
//	dijkstra/ – single-pair search with early exit, plus concurrent batches
//	core/     – a thread-safe string-keyed graph with edge IDs that satisfies graph.Weighted
//
// Any type with
//
//	Successors(n N) iter.Seq2[N, W]
//
// can be searched. The queue never holds nodes that cannot reach the
// target: the search first computes the reachable set from the start and
// returns an empty path immediately when the target is not in it.
//
// Quick example:
//
//	g := graph.Edges[string, int]{}
//	g.AddArc("A", "B", 1)
//	g.AddArc("B", "C", 2)
//	path, _ := dijkstra.ShortestPath[string, int](g, "A", "C") // [A B C]
//
// Edge weights must be non-negative.
package lvpath
