package dfs

import (
	"github.com/newell-romario/r2ds/graph"
	"github.com/newell-romario/r2ds/rhmap"
)

// KosarajuSCC partitions g's vertices into strongly-connected components
// via Kosaraju's algorithm: compute a reverse-post-order on g, transpose
// g, then walk vertices in that order doing a BFS on the transpose from
// each unvisited vertex; every such BFS tree is one component.
// Complexity: O(V + E).
func KosarajuSCC(g *graph.Graph) [][]*graph.Vertex {
	order := Run(g).ReversePostOrder()
	gt := graph.Transpose(g)

	visited := rhmap.New[bool]()
	var sccs [][]*graph.Vertex

	for _, v := range order {
		tv, ok := gt.GetVertex(v.Key())
		if !ok || visited.Has(tv.Key()) {
			continue
		}
		var comp []*graph.Vertex
		visited.Put(tv.Key(), true)
		queue := []*graph.Vertex{tv}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			sv, _ := g.GetVertex(cur.Key())
			comp = append(comp, sv)
			for _, nb := range cur.OutNeighbors() {
				if !visited.Has(nb.Key()) {
					visited.Put(nb.Key(), true)
					queue = append(queue, nb)
				}
			}
		}
		sccs = append(sccs, comp)
	}
	return sccs
}
