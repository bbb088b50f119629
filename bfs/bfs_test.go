package bfs_test

import (
	"testing"

	"github.com/newell-romario/r2ds/bfs"
	"github.com/newell-romario/r2ds/graph"
	"github.com/stretchr/testify/require"
)

func k(s string) []byte { return []byte(s) }

func chain(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	g.AddEdge(k("a"), k("b"))
	g.AddEdge(k("b"), k("c"))
	g.AddEdge(k("c"), k("d"))
	return g
}

func TestRunDepthsAndParents(t *testing.T) {
	g := chain(t)
	res, err := bfs.Run(g, k("a"))
	require.NoError(t, err)

	d, ok := res.Depth(k("d"))
	require.True(t, ok)
	require.Equal(t, 3, d)

	require.True(t, res.Reached(k("c")))
	require.False(t, res.Reached(k("z")))

	path, ok := res.PathTo(k("d"))
	require.True(t, ok)
	require.Equal(t, [][]byte{k("a"), k("b"), k("c"), k("d")}, path)
}

func TestRunStartNotFound(t *testing.T) {
	g := chain(t)
	_, err := bfs.Run(g, k("z"))
	require.ErrorIs(t, err, bfs.ErrStartNotFound)
}

func TestHasPath(t *testing.T) {
	g := chain(t)
	require.True(t, bfs.HasPath(g, k("a"), k("d")))
	require.False(t, bfs.HasPath(g, k("d"), k("a")))
	require.False(t, bfs.HasPath(g, k("a"), k("z")))
}

func TestTreeSharesAttrsWithSource(t *testing.T) {
	g := chain(t)
	sv, _ := g.GetVertex(k("b"))
	sv.PutAttr(k("color"), "blue", nil)

	tr, ok := bfs.Tree(g, k("a"))
	require.True(t, ok)
	require.Equal(t, 4, tr.VertexCount())
	require.Equal(t, 3, tr.EdgeCount())

	dv, ok := tr.GetVertex(k("b"))
	require.True(t, ok)
	val, ok := dv.GetAttr(k("color"))
	require.True(t, ok)
	require.Equal(t, "blue", val)

	sv.PutAttr(k("color"), "green", nil)
	val, _ = dv.GetAttr(k("color"))
	require.Equal(t, "green", val, "derived vertex must share, not copy, the source's attribute map")
}

func TestTreeStartNotFound(t *testing.T) {
	g := chain(t)
	_, ok := bfs.Tree(g, k("z"))
	require.False(t, ok)
}

func TestComponents(t *testing.T) {
	g := graph.New()
	g.AddEdge(k("a"), k("b"))
	g.AddEdge(k("c"), k("d"))
	g.AddVertex(k("e"))

	comps := bfs.Components(g)
	require.Len(t, comps, 3)

	sizes := make(map[int]int)
	for _, c := range comps {
		sizes[len(c)]++
	}
	require.Equal(t, 2, sizes[2])
	require.Equal(t, 1, sizes[1])
}

func TestComponentOfTreatsEdgesUndirected(t *testing.T) {
	g := graph.New()
	g.AddEdge(k("a"), k("b"))
	comp, ok := bfs.ComponentOf(g, k("b"))
	require.True(t, ok)
	require.Len(t, comp, 2)
}

func TestBipartiteEvenCycle(t *testing.T) {
	g := graph.New()
	g.AddEdge(k("a"), k("b"))
	g.AddEdge(k("b"), k("c"))
	g.AddEdge(k("c"), k("d"))
	g.AddEdge(k("d"), k("a"))

	bp, ok := bfs.Bipartite(g)
	require.True(t, ok)

	ca, _ := bp.Class(k("a"))
	cb, _ := bp.Class(k("b"))
	cc, _ := bp.Class(k("c"))
	cd, _ := bp.Class(k("d"))
	require.NotEqual(t, ca, cb)
	require.Equal(t, ca, cc)
	require.NotEqual(t, cc, cd)

	set0 := bp.Set(g, ca)
	require.Len(t, set0, 2)
}

func TestBipartiteOddCycleFails(t *testing.T) {
	g := graph.New()
	g.AddEdge(k("a"), k("b"))
	g.AddEdge(k("b"), k("c"))
	g.AddEdge(k("c"), k("a"))

	_, ok := bfs.Bipartite(g)
	require.False(t, ok)
}
