package dijkstra

import (
	"github.com/newell-romario/r2ds/graph"
	"github.com/newell-romario/r2ds/pqueue"
	"github.com/newell-romario/r2ds/rhmap"
)

type labeled struct {
	v    *graph.Vertex
	dist float64
}

// Run computes single-source shortest paths from start using Dijkstra's
// algorithm: a min-heap of (dist, vertex) pairs with a per-vertex locator
// so a relaxation calls Adjust instead of reinserting. Correct only when
// w never returns a negative value; callers that violate this get
// undefined routing, not an error. Complexity: O((V + E) log V).
func Run(g *graph.Graph, start []byte, w Weight) (*graph.Graph, error) {
	sv, ok := g.GetVertex(start)
	if !ok {
		return nil, ErrStartNotFound
	}

	dist := rhmap.New[float64]()
	parent := rhmap.New[[]byte]()
	visited := rhmap.New[bool]()
	locs := rhmap.New[*pqueue.Locator[labeled]]()

	pq := pqueue.New[labeled](func(a, b labeled) bool { return a.dist < b.dist })

	dist.Put(sv.Key(), 0)
	locs.Put(sv.Key(), pq.Insert(labeled{v: sv, dist: 0}))

	for !pq.Empty() {
		top := pq.Top()
		u, ud := top.Payload().v, top.Payload().dist
		pq.Remove(top)
		if visited.Has(u.Key()) {
			continue
		}
		visited.Put(u.Key(), true)

		for _, e := range u.OutEdges() {
			nb := e.Dst
			if visited.Has(nb.Key()) {
				continue
			}
			nd := ud + w(e)
			cur, has := dist.Get(nb.Key())
			if has && nd >= cur {
				continue
			}
			dist.Put(nb.Key(), nd)
			parent.Put(nb.Key(), u.Key())
			if l, ok := locs.Get(nb.Key()); ok {
				pq.UpdateAndAdjust(l, labeled{v: nb, dist: nd})
			} else {
				locs.Put(nb.Key(), pq.Insert(labeled{v: nb, dist: nd}))
			}
		}
	}

	return buildTree(g, sv, dist, parent), nil
}
