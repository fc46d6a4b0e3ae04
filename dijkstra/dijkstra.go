package dijkstra

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/katalvlaran/lvpath/dfs"
	"github.com/katalvlaran/lvpath/graph"
	"github.com/katalvlaran/lvpath/pqueue"
)

// ShortestPath returns the nodes of a minimum-weight path from start to end,
// inclusive of both. It returns [start] when start == end and an empty slice
// when end is unreachable.
//
// Edge weights must be non-negative (see the package documentation).
//
// Errors:
//   - ErrNilGraph if g is nil.
func ShortestPath[N comparable, W graph.Weight](g graph.Weighted[N, W], start, end N, opts ...Option) ([]N, error) {
	res, err := Search(g, start, end, opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// Search runs Dijkstra's algorithm from start and stops as soon as end is
// finalized. See Result for what is reported.
//
// Complexity:
//   - Time:  O((V + E) log V) over the subgraph reachable from start.
//   - Space: O(V).
func Search[N comparable, W graph.Weight](g graph.Weighted[N, W], start, end N, opts ...Option) (*Result[N, W], error) {
	// 1) Validate and build options
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner[N, W]{
		g:     g,
		start: start,
		end:   end,
		log:   cfg.Logger,
		res:   &Result[N, W]{Path: []N{}},
	}

	// 2) Reachability short-circuit: no queue work if end is out of reach.
	reach, err := dfs.Walk[N, W](g, start)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: reachability from %v: %w", start, err)
	}
	r.log.Debug().
		Interface("start", start).
		Interface("end", end).
		Int("reachable", len(reach.Order)).
		Msg("dijkstra: search")
	if !reach.Visited.Contains(end) {
		r.log.Debug().Interface("end", end).Msg("dijkstra: end not reachable")

		return r.res, nil
	}

	// 3) Seed, settle, rebuild
	if err = r.seed(reach.Order); err != nil {
		return nil, err
	}
	if err = r.process(); err != nil {
		return nil, err
	}
	r.buildPath()

	r.log.Debug().
		Bool("found", r.res.Found).
		Interface("cost", r.res.Cost).
		Int("settled", len(r.res.Settled)).
		Msg("dijkstra: done")

	return r.res, nil
}

// runner holds the mutable state of a single search.
// All of it is discarded when Search returns.
type runner[N comparable, W graph.Weight] struct {
	g          graph.Weighted[N, W]
	start, end N
	log        zerolog.Logger

	frontier *pqueue.Heap[N, Distance[W]] // unsettled nodes keyed by tentative distance
	prev     map[N]N                      // predecessor on the best known path
	res      *Result[N, W]
}

// seed fills the frontier with every reachable node at +∞, start at 0.
func (r *runner[N, W]) seed(nodes []N) error {
	r.frontier = pqueue.New[N, Distance[W]](
		pqueue.Reverse[Distance[W]](CompareDistance[W]),
		pqueue.WithCapacity(len(nodes)),
	)
	r.prev = make(map[N]N, len(nodes))

	var d Distance[W]
	for _, n := range nodes {
		d = Infinity[W]()
		if n == r.start {
			d = Finite[W](0)
		}
		if err := r.frontier.Insert(n, d); err != nil {
			return fmt.Errorf("dijkstra: seed: %w", err)
		}
	}

	return nil
}

// process is the main loop. It ends when end is extracted, when the
// smallest tentative distance is +∞, or when the frontier is empty.
func (r *runner[N, W]) process() error {
	for r.frontier.Len() > 0 {
		// 1) Finalize the closest node.
		u, du, err := r.frontier.ExtractWithPriority()
		if err != nil {
			return fmt.Errorf("dijkstra: extract: %w", err)
		}

		// 2) Nothing finite is left; the remaining nodes are cut off.
		if du.Infinite {
			r.log.Trace().Interface("node", u).Msg("dijkstra: frontier exhausted")

			return nil
		}
		r.res.Settled = append(r.res.Settled, u)
		r.log.Trace().Interface("node", u).Interface("dist", du.Value).Msg("dijkstra: settle")

		// 3) Early exit: end's distance is final.
		if u == r.end {
			r.res.Found = true
			r.res.Cost = du.Value

			return nil
		}

		// 4) Relax successors still on the frontier.
		if err = r.relax(u, du); err != nil {
			return err
		}
	}

	return nil
}

// relax lowers the tentative distance of every unsettled successor v of u
// for which the path through u is strictly shorter.
func (r *runner[N, W]) relax(u N, du Distance[W]) error {
	for v, w := range r.g.Successors(u) {
		dv, ok := r.frontier.Priority(v)
		if !ok {
			continue // settled (or outside the reachable set)
		}

		cand := du.Add(w)
		if !cand.Less(dv) {
			continue
		}
		if err := r.frontier.ChangePriority(v, cand); err != nil {
			return fmt.Errorf("dijkstra: relax %v→%v: %w", u, v, err)
		}
		r.prev[v] = u
		r.log.Trace().Interface("from", u).Interface("to", v).Interface("dist", cand.Value).Msg("dijkstra: relax")
	}

	return nil
}

// buildPath follows predecessors from end back to start. A broken chain
// leaves the empty path in place.
func (r *runner[N, W]) buildPath() {
	if !r.res.Found {
		return
	}

	path := []N{r.end}
	for cur := r.end; cur != r.start; {
		p, ok := r.prev[cur]
		if !ok {
			r.log.Debug().Interface("node", cur).Msg("dijkstra: predecessor chain broken")
			r.res.Found = false
			r.res.Cost = 0

			return
		}
		path = append(path, p)
		cur = p
	}
	r.res.Path = lo.Reverse(path)
}
