package dijkstra

import (
	"github.com/newell-romario/r2ds/graph"
	"github.com/newell-romario/r2ds/rhmap"
)

// BellmanFord computes single-source shortest paths from start, tolerating
// negative edge weights: it relaxes every edge in up to vertex_count-1
// passes, stopping early after a pass that changes nothing, then runs one
// further relaxation pass purely to detect a negative cycle
// reachable from start, returning ErrNegativeCycle if one exists.
// Complexity: O(V * E).
func BellmanFord(g *graph.Graph, start []byte, w Weight) (*graph.Graph, error) {
	sv, ok := g.GetVertex(start)
	if !ok {
		return nil, ErrStartNotFound
	}

	dist := rhmap.New[float64]()
	parent := rhmap.New[[]byte]()
	dist.Put(sv.Key(), 0)

	edges := g.Edges()
	for i := 0; i < g.VertexCount()-1; i++ {
		changed := false
		for _, e := range edges {
			ud, ok := dist.Get(e.Src.Key())
			if !ok {
				continue
			}
			nd := ud + w(e)
			cur, has := dist.Get(e.Dst.Key())
			if !has || nd < cur {
				dist.Put(e.Dst.Key(), nd)
				parent.Put(e.Dst.Key(), e.Src.Key())
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	for _, e := range edges {
		ud, ok := dist.Get(e.Src.Key())
		if !ok {
			continue
		}
		nd := ud + w(e)
		cur, has := dist.Get(e.Dst.Key())
		if !has || nd < cur {
			return nil, ErrNegativeCycle
		}
	}

	return buildTree(g, sv, dist, parent), nil
}
