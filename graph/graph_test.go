package graph_test

import (
	"testing"

	"github.com/newell-romario/r2ds/graph"
	"github.com/stretchr/testify/require"
)

func k(s string) []byte { return []byte(s) }

func TestAddVertexIdempotent(t *testing.T) {
	g := graph.New()
	v1 := g.AddVertex(k("a"))
	v2 := g.AddVertex(k("a"))
	require.Same(t, v1, v2)
	require.Equal(t, 1, g.VertexCount())
}

func TestAddEdgeAutoCreatesEndpoints(t *testing.T) {
	g := graph.New()
	e, ok := g.AddEdge(k("a"), k("b"))
	require.True(t, ok)
	require.NotNil(t, e)
	require.Equal(t, 2, g.VertexCount())
	require.Equal(t, 1, g.EdgeCount())

	e2, ok := g.AddEdge(k("a"), k("b"))
	require.True(t, ok)
	require.Same(t, e, e2)
	require.Equal(t, 1, g.EdgeCount())
}

func TestGetEdge(t *testing.T) {
	g := graph.New()
	g.AddEdge(k("a"), k("b"))
	e, ok := g.GetEdge(k("a"), k("b"))
	require.True(t, ok)
	require.Equal(t, "a", string(e.Src.Key()))
	require.Equal(t, "b", string(e.Dst.Key()))

	_, ok = g.GetEdge(k("b"), k("a"))
	require.False(t, ok)
}

func TestDelEdgeFixesPositionHandles(t *testing.T) {
	g := graph.New()
	g.AddEdge(k("a"), k("b"))
	g.AddEdge(k("a"), k("c"))
	g.AddEdge(k("a"), k("d"))
	require.Equal(t, 3, g.EdgeCount())

	require.True(t, g.DelEdge(k("a"), k("c")))
	require.Equal(t, 2, g.EdgeCount())

	_, ok := g.GetEdge(k("a"), k("c"))
	require.False(t, ok)

	// The remaining two edges must still resolve correctly after the
	// deletion unlinked the removed one from every adjacency sequence.
	eb, ok := g.GetEdge(k("a"), k("b"))
	require.True(t, ok)
	require.Equal(t, "b", string(eb.Dst.Key()))
	ed, ok := g.GetEdge(k("a"), k("d"))
	require.True(t, ok)
	require.Equal(t, "d", string(ed.Dst.Key()))

	av, _ := g.GetVertex(k("a"))
	require.Len(t, av.OutEdges(), 2)
	require.Len(t, av.OutNeighbors(), 2)

	dv, _ := g.GetVertex(k("d"))
	require.Len(t, dv.InNeighbors(), 1)
}

func outNeighborKeys(v *graph.Vertex) []string {
	nbs := v.OutNeighbors()
	out := make([]string, len(nbs))
	for i, n := range nbs {
		out[i] = string(n.Key())
	}
	return out
}

// A deletion in the middle of an adjacency sequence must not reorder the
// elements that remain: insertion order is a guarantee, not an accident
// of the underlying representation.
func TestDelEdgePreservesInsertionOrderOfSurvivors(t *testing.T) {
	g := graph.New()
	g.AddEdge(k("a"), k("b"))
	g.AddEdge(k("a"), k("c"))
	g.AddEdge(k("a"), k("d"))
	g.AddEdge(k("a"), k("e"))

	av, _ := g.GetVertex(k("a"))
	require.Equal(t, []string{"b", "c", "d", "e"}, outNeighborKeys(av))

	require.True(t, g.DelEdge(k("a"), k("b")))
	require.Equal(t, []string{"c", "d", "e"}, outNeighborKeys(av))

	outEdges := av.OutEdges()
	dsts := make([]string, len(outEdges))
	for i, e := range outEdges {
		dsts[i] = string(e.Dst.Key())
	}
	require.Equal(t, []string{"c", "d", "e"}, dsts)
}

func vertexKeys(g *graph.Graph) []string {
	vs := g.Vertices()
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v.Key())
	}
	return out
}

func TestDelVertexPreservesInsertionOrderOfSurvivors(t *testing.T) {
	g := graph.New()
	g.AddVertex(k("a"))
	g.AddVertex(k("b"))
	g.AddVertex(k("c"))
	g.AddVertex(k("d"))
	require.Equal(t, []string{"a", "b", "c", "d"}, vertexKeys(g))

	require.True(t, g.DelVertex(k("b")))
	require.Equal(t, []string{"a", "c", "d"}, vertexKeys(g))
}

func TestEdgesPreservesInsertionOrderAfterDeletion(t *testing.T) {
	g := graph.New()
	g.AddEdge(k("a"), k("b"))
	g.AddEdge(k("b"), k("c"))
	g.AddEdge(k("c"), k("d"))
	g.AddEdge(k("d"), k("a"))

	require.True(t, g.DelEdge(k("b"), k("c")))

	edges := g.Edges()
	pairs := make([]string, len(edges))
	for i, e := range edges {
		pairs[i] = string(e.Src.Key()) + string(e.Dst.Key())
	}
	require.Equal(t, []string{"ab", "cd", "da"}, pairs)
}

func TestDelVertexRemovesIncidentEdges(t *testing.T) {
	g := graph.New()
	g.AddEdge(k("a"), k("b"))
	g.AddEdge(k("b"), k("c"))
	g.AddEdge(k("c"), k("b"))

	require.True(t, g.DelVertex(k("b")))
	require.Equal(t, 2, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())

	_, ok := g.GetVertex(k("b"))
	require.False(t, ok)
}

func TestAttributes(t *testing.T) {
	g := graph.New()
	v := g.AddVertex(k("a"))
	v.PutAttr(k("color"), "red", nil)
	val, ok := v.GetAttr(k("color"))
	require.True(t, ok)
	require.Equal(t, "red", val)

	require.True(t, v.DeleteAttr(k("color"), nil))
	_, ok = v.GetAttr(k("color"))
	require.False(t, ok)
}

func TestVertexDeleteThenRecreate(t *testing.T) {
	g := graph.New()
	g.AddVertex(k("a"))
	g.AddVertex(k("b"))
	g.DelVertex(k("a"))
	require.Equal(t, 1, g.VertexCount())
	bv, ok := g.GetVertex(k("b"))
	require.True(t, ok)
	require.Equal(t, "b", string(bv.Key()))
}
