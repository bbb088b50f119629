package prim_kruskal

import (
	"github.com/newell-romario/r2ds/graph"
	"github.com/newell-romario/r2ds/pqueue"
	"github.com/newell-romario/r2ds/rhmap"
)

// Prim grows a minimum spanning tree from seed using a min-heap keyed by
// the cheapest edge crossing the current cut: relaxing neighbour u
// updates and calls Adjust on u's locator whenever the incident edge is
// strictly cheaper than u's current key. Returns a standalone graph
// holding the tree's vertices and edges. Complexity: O(E log V).
func Prim(g *graph.Graph, seed []byte, w Weight) (*graph.Graph, error) {
	sv, ok := g.GetVertex(seed)
	if !ok {
		return nil, ErrSeedNotFound
	}

	inTree := rhmap.New[bool]()
	key := rhmap.New[float64]()
	via := rhmap.New[*graph.Edge]()
	locs := rhmap.New[*pqueue.Locator[labeled]]()

	pq := pqueue.New[labeled](func(a, b labeled) bool { return a.key < b.key })

	key.Put(sv.Key(), 0)
	locs.Put(sv.Key(), pq.Insert(labeled{v: sv, key: 0}))

	tree := graph.New()

	for !pq.Empty() {
		top := pq.Top()
		u := top.Payload().v
		pq.Remove(top)
		if inTree.Has(u.Key()) {
			continue
		}
		inTree.Put(u.Key(), true)
		tree.AddVertex(u.Key())
		if e, ok := via.Get(u.Key()); ok {
			tree.AddEdge(e.Src.Key(), e.Dst.Key())
		}

		for _, item := range undirectedAdj(g, u) {
			nb := item.v
			if inTree.Has(nb.Key()) {
				continue
			}
			c := w(item.e)
			cur, has := key.Get(nb.Key())
			if has && c >= cur {
				continue
			}
			key.Put(nb.Key(), c)
			via.Put(nb.Key(), item.e)
			if l, ok := locs.Get(nb.Key()); ok {
				pq.UpdateAndAdjust(l, labeled{v: nb, key: c})
			} else {
				locs.Put(nb.Key(), pq.Insert(labeled{v: nb, key: c}))
			}
		}
	}
	return tree, nil
}
