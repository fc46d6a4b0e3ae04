// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/core"
)

// successors drains g.Successors(id) into a map for assertions.
func successors(g *core.Graph, id string) map[string]int64 {
	out := map[string]int64{}
	for to, w := range g.Successors(id) {
		out[to] = w
	}

	return out
}

func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	assert.True(t, g.HasVertex("A"))

	// Duplicate AddVertex is a no-op.
	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, 1, g.VertexCount())

	assert.ErrorIs(t, g.RemoveVertex(""), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.RemoveVertex("X"), core.ErrVertexNotFound)

	require.NoError(t, g.RemoveVertex("A"))
	assert.False(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex(""))
}

func TestGraph_VerticesSorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"D", "B", "A", "C"} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", "B", 0)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge("A", "B", 3)
	assert.ErrorIs(t, err, core.ErrBadWeight, "unweighted graph rejects non-zero weight")

	_, err = g.AddEdge("A", "A", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	// Undirected mirror also counts as an existing A-B edge.
	_, err = g.AddEdge("B", "A", 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestGraph_EdgeIDsMonotonic(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	var ids []string
	for i := 0; i < 12; i++ {
		id, err := g.AddEdge("hub", string(rune('a'+i)), 0)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	assert.Equal(t, "e1", ids[0])
	assert.Equal(t, "e12", ids[11])

	edges := g.Edges()
	require.Len(t, edges, 12)
	for i, e := range edges {
		assert.Equal(t, ids[i], e.ID, "Edges() must be in creation order")
	}

	// Removed IDs are never reused.
	require.NoError(t, g.RemoveEdge("e12"))
	id, err := g.AddEdge("hub", "z", 0)
	require.NoError(t, err)
	assert.Equal(t, "e13", id)
}

func TestGraph_DirectedAdjacency(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err := g.AddEdge("A", "B", 4)
	require.NoError(t, err)

	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.Equal(t, map[string]int64{"B": 4}, successors(g, "A"))
	assert.Empty(t, successors(g, "B"))

	nbs, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Empty(t, nbs)
}

func TestGraph_UndirectedMirror(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 2)
	require.NoError(t, err)

	assert.True(t, g.HasEdge("B", "A"))
	assert.Equal(t, map[string]int64{"A": 2}, successors(g, "B"))
	assert.Equal(t, 1, g.EdgeCount(), "undirected edge is stored once")

	ids, err := g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, ids)
}

func TestGraph_SuccessorsCheapestParallelEdge(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())
	for _, w := range []int64{9, 3, 5} {
		_, err := g.AddEdge("A", "B", w)
		require.NoError(t, err)
	}
	_, err := g.AddEdge("A", "C", 1)
	require.NoError(t, err)

	var order []string
	for to, w := range g.Successors("A") {
		order = append(order, to)
		if to == "B" {
			assert.EqualValues(t, 3, w)
		}
	}
	assert.Equal(t, []string{"B", "C"}, order, "one arc per neighbor, sorted by ID")

	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Len(t, nbs, 4, "Neighbors keeps every parallel edge")
}

func TestGraph_SuccessorsUnknownVertex(t *testing.T) {
	g := core.NewGraph()
	assert.Empty(t, successors(g, "missing"))
	assert.Empty(t, successors(g, ""))
}

func TestGraph_SelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithWeighted())
	_, err := g.AddEdge("A", "A", 1)
	require.NoError(t, err)

	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Len(t, nbs, 1, "self-loop appears once")
	assert.Equal(t, map[string]int64{"A": 1}, successors(g, "A"))
}

func TestGraph_RemoveEdge(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	assert.ErrorIs(t, g.RemoveEdge("e999"), core.ErrEdgeNotFound)
	require.NoError(t, g.RemoveEdge(eid))
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.True(t, g.HasVertex("A"), "vertices survive edge removal")

	_, err = g.GetEdge(eid)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestGraph_RemoveVertexDropsIncidentEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "B"}, {"A", "C"}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	require.NoError(t, g.RemoveVertex("B"))
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge("A", "C"))
	assert.Equal(t, map[string]int64{"C": 0}, successors(g, "A"))
	assert.Empty(t, successors(g, "C"))

	_, err := g.Neighbors("B")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Neighbors("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestGraph_Flags(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())
	assert.True(t, g.Directed())
	assert.True(t, g.Weighted())
	assert.True(t, g.Looped())
	assert.True(t, g.Multigraph())

	d := core.NewGraph()
	assert.False(t, d.Directed())
	assert.False(t, d.Weighted())
	assert.False(t, d.Looped())
	assert.False(t, d.Multigraph())
}
