package dijkstra

import (
	"errors"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvpath/graph"
)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilGraph indicates that a nil graph was passed to a search.
	ErrNilGraph = errors.New("dijkstra: graph is nil")
)

// Distance is a tentative distance: a finite value or +∞.
// The zero value is the finite distance 0.
type Distance[W graph.Weight] struct {
	Value    W
	Infinite bool
}

// Finite returns the finite distance w.
func Finite[W graph.Weight](w W) Distance[W] {
	return Distance[W]{Value: w}
}

// Infinity returns +∞.
func Infinity[W graph.Weight]() Distance[W] {
	return Distance[W]{Infinite: true}
}

// Add returns d extended by an arc of weight w. +∞ stays +∞.
func (d Distance[W]) Add(w W) Distance[W] {
	if d.Infinite {
		return d
	}

	return Distance[W]{Value: d.Value + w}
}

// Less reports whether d is strictly shorter than o.
func (d Distance[W]) Less(o Distance[W]) bool {
	return CompareDistance(d, o) < 0
}

// CompareDistance orders distances naturally: every finite value is smaller
// than +∞, and two +∞ are equal. Wrap it in pqueue.Reverse to extract the
// shortest distance first.
func CompareDistance[W graph.Weight](a, b Distance[W]) int {
	switch {
	case a.Infinite && b.Infinite:
		return 0
	case a.Infinite:
		return 1
	case b.Infinite:
		return -1
	case a.Value < b.Value:
		return -1
	case a.Value > b.Value:
		return 1
	default:
		return 0
	}
}

// Result is the outcome of one Search.
type Result[N comparable, W graph.Weight] struct {
	// Path lists the nodes of a minimum-weight path, start first. It is
	// empty (never nil) when no path exists.
	Path []N

	// Cost is the total weight of Path. Zero when no path exists.
	Cost W

	// Found reports whether end was reached.
	Found bool

	// Settled lists the nodes whose distance was finalized, in extraction
	// order. When Found is true the last entry is end: the search never
	// finalizes anything after it.
	Settled []N
}

// Query is one (From, To) pair for ShortestPaths.
type Query[N comparable] struct {
	From N
	To   N
}

// Options configures searches.
//
// Logger      – receives Debug/Trace events; default zerolog.Nop().
// Concurrency – maximum simultaneous searches in ShortestPaths; default
//
//	runtime.GOMAXPROCS(0). Values below 1 are ignored.
type Options struct {
	Logger      zerolog.Logger
	Concurrency int
}

// Option represents a functional option for configuring searches.
type Option func(*Options)

// WithLogger routes search diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithConcurrency bounds the number of searches ShortestPaths runs at once.
// n < 1 keeps the default.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.Concurrency = n
		}
	}
}

// DefaultOptions returns the defaults: a no-op logger and one concurrent
// search per available CPU.
func DefaultOptions() Options {
	return Options{
		Logger:      zerolog.Nop(),
		Concurrency: runtime.GOMAXPROCS(0),
	}
}
