// Package graphfile loads a weighted graph description from TOML.
//
//	directed = true          # default true
//	vertices = ["Z"]         # optional isolated vertices
//
//	[[edge]]
//	from   = "A"
//	to     = "B"
//	weight = 1
package graphfile

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/trim21/errgo"

	"github.com/katalvlaran/lvpath/core"
)

// ErrNegativeWeight is returned for an edge with a weight below zero.
// Shortest-path search is only defined for non-negative weights.
var ErrNegativeWeight = errors.New("graphfile: negative edge weight")

type Edge struct {
	From   string `toml:"from"`
	To     string `toml:"to"`
	Weight int64  `toml:"weight"`
}

type File struct {
	Directed   *bool    `toml:"directed"`
	Loops      bool     `toml:"loops"`
	MultiEdges bool     `toml:"multi_edges"`
	Vertices   []string `toml:"vertices"`
	Edges      []Edge   `toml:"edge"`
}

// LoadFromFile parses the file at path and builds the graph it describes.
func LoadFromFile(path string) (*core.Graph, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, errgo.Wrap(err, "failed to parse graph file")
	}

	return f.Build()
}

// Decode reads a graph description from r.
func Decode(r io.Reader) (*core.Graph, error) {
	var f File
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, errgo.Wrap(err, "failed to parse graph")
	}

	return f.Build()
}

// Build turns a decoded description into a weighted core.Graph.
func (f File) Build() (*core.Graph, error) {
	directed := true
	if f.Directed != nil {
		directed = *f.Directed
	}

	opts := []core.GraphOption{core.WithDirected(directed), core.WithWeighted()}
	if f.Loops {
		opts = append(opts, core.WithLoops())
	}
	if f.MultiEdges {
		opts = append(opts, core.WithMultiEdges())
	}
	g := core.NewGraph(opts...)

	for _, v := range f.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("graphfile: vertex %q: %w", v, err)
		}
	}
	for i, e := range f.Edges {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d %s→%s (%d)", ErrNegativeWeight, i, e.From, e.To, e.Weight)
		}
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("graphfile: edge %d %s→%s: %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}
