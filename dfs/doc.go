// Package dfs provides the reachability pass used to bound shortest-path
// searches: an iterative depth-first traversal over any graph.Weighted.
//
// What:
//
//   - Reachable(g, start): nodes reachable from start, in visiting order.
//   - ReachableSet(g, start): the same nodes as a Reachability set.
//   - Walk(g, start, opts...): checked variant with an OnVisit hook and a
//     successor filter; reports how many successors the filter skipped.
//
// Why:
//
//   - Restrict a search to the subgraph it can actually touch, and answer
//     "is there any path?" before paying for a priority queue.
//
// The traversal keeps an explicit stack instead of recursing, so very deep
// graphs (long chains) do not grow the goroutine stack:
//
//	push start
//	while the stack is not empty:
//	    pop n
//	    if n is visited: continue
//	    mark n visited, append n to the order
//	    push every successor of n that is not yet visited
//
// Guarantees:
//
//   - Every node reachable from start is visited exactly once.
//   - No unreachable node is visited.
//   - The visiting order follows last-in-first-out over the graph's
//     successor enumeration order. Only the set is stable across graph
//     implementations; the order is not.
//
// Complexity:
//
//   - Time:   O(V + E) over the reachable subgraph.
//   - Memory: O(V + E) worst case for the stack (a node may be pushed once
//     per incoming arc before it is first popped) plus O(V) for the visited set.
//
// Errors:
//
//   - ErrGraphNil   if g is nil (Walk only).
//   - any error returned by OnVisit, wrapped with the node.
package dfs
