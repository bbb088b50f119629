package prim_kruskal

import (
	"github.com/newell-romario/r2ds/graph"
	"github.com/newell-romario/r2ds/ordkey"
	"github.com/newell-romario/r2ds/rhmap"
)

// TransitiveClosure computes the reachability closure of g: for every
// vertex s, a BFS from s adds an edge s->t to the result for every
// vertex t reachable from s with t != s. Complexity: O(V * (V + E)).
func TransitiveClosure(g *graph.Graph) *graph.Graph {
	closure := graph.New()
	for _, v := range g.Vertices() {
		closure.AddVertex(v.Key())
	}

	for _, s := range g.Vertices() {
		visited := rhmap.New[bool]()
		visited.Put(s.Key(), true)
		queue := []*graph.Vertex{s}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nb := range cur.OutNeighbors() {
				if visited.Has(nb.Key()) {
					continue
				}
				visited.Put(nb.Key(), true)
				queue = append(queue, nb)
				if ordkey.Bytes(nb.Key(), s.Key()) != 0 {
					closure.AddEdge(s.Key(), nb.Key())
				}
			}
		}
	}
	return closure
}
