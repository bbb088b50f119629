package dijkstra

import (
	"github.com/newell-romario/r2ds/dfs"
	"github.com/newell-romario/r2ds/graph"
	"github.com/newell-romario/r2ds/ordkey"
	"github.com/newell-romario/r2ds/rhmap"
)

// DAGShortestPath computes single-source shortest paths from start on an
// acyclic graph: a topological order is computed once, then each
// vertex's out-edges are relaxed in that order. Works with arbitrary
// (including negative) edge weights, but requires g to be acyclic;
// returns ErrNotDAG otherwise. Complexity: O(V + E).
func DAGShortestPath(g *graph.Graph, start []byte, w Weight) (*graph.Graph, error) {
	sv, ok := g.GetVertex(start)
	if !ok {
		return nil, ErrStartNotFound
	}
	order, ok := dfs.Topological(g)
	if !ok {
		return nil, ErrNotDAG
	}

	dist := rhmap.New[float64]()
	parent := rhmap.New[[]byte]()
	dist.Put(sv.Key(), 0)

	reached := false
	for _, v := range order {
		if ordkey.Bytes(v.Key(), sv.Key()) == 0 {
			reached = true
		}
		if !reached {
			continue
		}
		ud, ok := dist.Get(v.Key())
		if !ok {
			continue
		}
		for _, e := range v.OutEdges() {
			nd := ud + w(e)
			cur, has := dist.Get(e.Dst.Key())
			if !has || nd < cur {
				dist.Put(e.Dst.Key(), nd)
				parent.Put(e.Dst.Key(), v.Key())
			}
		}
	}

	return buildTree(g, sv, dist, parent), nil
}
