package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvpath/graph"
)

// Reachable returns the nodes reachable from start in depth-first visiting
// order, start first. start itself is always included, whether or not g
// knows it. g must not be nil; use Walk for a checked call.
func Reachable[N comparable, W graph.Weight](g graph.Weighted[N, W], start N) []N {
	res, _ := walk(g, start, DefaultOptions[N]())

	return res.Order
}

// ReachableSet returns the set of nodes reachable from start.
func ReachableSet[N comparable, W graph.Weight](g graph.Weighted[N, W], start N) Reachability[N] {
	res, _ := walk(g, start, DefaultOptions[N]())

	return res.Visited
}

// Walk performs the traversal with hooks and filters.
// It returns ErrGraphNil for a nil graph. An error from OnVisit aborts the
// walk; the partial result up to the failing node is returned with it.
func Walk[N comparable, W graph.Weight](g graph.Weighted[N, W], start N, opts ...Option[N]) (*Result[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions[N]()
	for _, fn := range opts {
		fn(&o)
	}

	return walk(g, start, o)
}

// walk is the shared traversal loop. g must be non-nil.
func walk[N comparable, W graph.Weight](g graph.Weighted[N, W], start N, o Options[N]) (*Result[N], error) {
	res := &Result[N]{Visited: make(Reachability[N])}
	stack := []N{start}

	var n N
	for len(stack) > 0 {
		// 1) Pop
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// 2) A node can sit on the stack several times; only the first pop counts.
		if res.Visited.Contains(n) {
			continue
		}

		// 3) Visit
		res.Visited[n] = struct{}{}
		res.Order = append(res.Order, n)
		if o.OnVisit != nil {
			if err := o.OnVisit(n); err != nil {
				return res, fmt.Errorf("dfs: OnVisit hook for %v: %w", n, err)
			}
		}

		// 4) Push unvisited successors in enumeration order
		for m := range g.Successors(n) {
			if res.Visited.Contains(m) {
				continue
			}
			if o.FilterNeighbor != nil && !o.FilterNeighbor(n, m) {
				res.SkippedNeighbors++
				continue
			}
			stack = append(stack, m)
		}
	}

	return res, nil
}
