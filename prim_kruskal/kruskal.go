package prim_kruskal

import (
	"github.com/newell-romario/r2ds/graph"
	"github.com/newell-romario/r2ds/ordkey"
	"github.com/newell-romario/r2ds/pqueue"
	"github.com/newell-romario/r2ds/unionfind"
)

// Kruskal computes a minimum spanning tree by pouring every edge into a
// min-heap ordered by weight and draining it: an edge is accepted, and
// its endpoints unioned, only if they currently lie in different
// disjoint sets (package unionfind). Returns a standalone graph holding
// the tree's vertices and edges. Complexity: O(E log E).
func Kruskal(g *graph.Graph, w Weight) *graph.Graph {
	pq := pqueue.New[*graph.Edge](func(a, b *graph.Edge) bool { return w(a) < w(b) })
	for _, e := range g.Edges() {
		pq.Insert(e)
	}

	uf := unionfind.New(ordkey.Bytes)
	for _, v := range g.Vertices() {
		uf.Make(v.Key())
	}

	tree := graph.New()
	for _, v := range g.Vertices() {
		tree.AddVertex(v.Key())
	}

	for !pq.Empty() {
		top := pq.Top()
		e := top.Payload()
		pq.Remove(top)
		if uf.SameSet(e.Src.Key(), e.Dst.Key()) {
			continue
		}
		uf.Union(e.Src.Key(), e.Dst.Key())
		tree.AddEdge(e.Src.Key(), e.Dst.Key())
	}
	return tree
}
