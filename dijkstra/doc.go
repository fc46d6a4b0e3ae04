// Package dijkstra finds minimum-weight paths between two nodes of any
// graph.Weighted using Dijkstra's algorithm over an indexed priority queue.
//
// Overview:
//
//   - ShortestPath(g, start, end) returns the nodes of a cheapest path,
//     start first and end last. It returns [start] when start == end and an
//     empty, non-nil slice when end cannot be reached: "no path" is a normal
//     answer, not an error.
//   - Search(g, start, end) runs the same algorithm and also reports the
//     path cost and the nodes it finalized, in order.
//   - ShortestPaths(ctx, g, queries) answers many independent queries
//     concurrently, one priority queue per query.
//
// Algorithm:
//
//  1. Run the reachability pass (package dfs) from start. If end is not in
//     the reachable set R, return the empty path without building a queue.
//  2. Seed a min-first pqueue.Heap with every node of R at +∞ and start at 0.
//  3. Repeatedly extract the node u with the smallest tentative distance.
//     If it is +∞ the frontier holds nothing reachable and the loop stops.
//     If u is end, its distance is final and the search stops at once:
//     nothing after that point can change the answer.
//  4. Otherwise relax every successor v still in the queue: when
//     dist(u)+w(u,v) is strictly smaller than v's tentative distance, lower
//     v's priority in place (ChangePriority) and record u as v's predecessor.
//  5. Rebuild the path by following predecessors from end back to start and
//     reversing it. A missing link before start yields the empty path.
//
// Precondition:
//
//	Edge weights must be non-negative. Correctness rests on a finalized node
//	never being improved later, which negative weights break. Weights are not
//	checked; with negative weights the result is unspecified.
//
// Ties:
//
//	Among equal-cost paths the one returned depends on successor enumeration
//	order and on the queue's tie rule (left child first, equal priorities do
//	not move). The cost is optimal either way.
//
// Complexity:
//
//   - Time:  O(V + E) for the reachability pass, plus O((V + E) log V) for
//     the search, where V and E count only the reachable subgraph. Each node
//     is extracted at most once and each relaxation is one ChangePriority.
//   - Space: O(V) for the queue, the location index and the predecessor map.
//
// Errors (sentinel):
//
//   - ErrNilGraph: the graph is nil.
//
// Logging:
//
//	Searches are silent unless a zerolog.Logger is supplied with WithLogger.
//	Debug level reports each search and its outcome; Trace level reports
//	every finalized node and every successful relaxation.
//
// Example usage:
//
//	g := graph.Edges[string, int]{}
//	g.AddArc("A", "B", 1)
//	g.AddArc("B", "C", 1)
//	path, err := dijkstra.ShortestPath[string, int](g, "A", "C")
//	// path == [A B C]
package dijkstra
