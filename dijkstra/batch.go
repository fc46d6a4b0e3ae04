package dijkstra

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/atomic"

	"github.com/katalvlaran/lvpath/graph"
)

// ShortestPaths answers every query with its own Search, running up to
// Options.Concurrency searches at once. results[i] answers queries[i].
//
// Each search owns its priority queue and tables; only g is shared, so g
// must support concurrent read-only Successors calls and must not be
// mutated until ShortestPaths returns.
//
// Cancelling ctx stops queries that have not started yet; ShortestPaths then
// returns ctx's error. A search that is already running completes.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ctx.Err() if ctx is done before every query ran.
func ShortestPaths[N comparable, W graph.Weight](ctx context.Context, g graph.Weighted[N, W], queries []Query[N], opts ...Option) ([]*Result[N, W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	results := make([]*Result[N, W], len(queries))
	found := atomic.NewInt64(0)
	p := pool.New().
		WithContext(ctx).
		WithFirstError().
		WithCancelOnError().
		WithMaxGoroutines(cfg.Concurrency)

	for i, q := range queries {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Search(g, q.From, q.To, opts...)
			if err != nil {
				return fmt.Errorf("dijkstra: query %d (%v→%v): %w", i, q.From, q.To, err)
			}
			results[i] = res
			if res.Found {
				found.Inc()
			}

			return nil
		})
	}
	err := p.Wait()
	cfg.Logger.Debug().
		Int("queries", len(queries)).
		Int64("found", found.Load()).
		Err(err).
		Msg("dijkstra: batch done")
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
