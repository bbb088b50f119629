package bfs

import (
	"github.com/newell-romario/r2ds/graph"
	"github.com/newell-romario/r2ds/rhmap"
)

// Components partitions g into weakly-connected components: two vertices
// share a component if one is reachable from the other ignoring edge
// direction. Complexity: O(V + E).
func Components(g *graph.Graph) [][]*graph.Vertex {
	seen := rhmap.New[bool]()
	var comps [][]*graph.Vertex

	for _, v := range g.Vertices() {
		if seen.Has(v.Key()) {
			continue
		}
		var comp []*graph.Vertex
		seen.Put(v.Key(), true)
		queue := []*graph.Vertex{v}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp = append(comp, cur)
			for _, nb := range cur.OutNeighbors() {
				if !seen.Has(nb.Key()) {
					seen.Put(nb.Key(), true)
					queue = append(queue, nb)
				}
			}
			for _, nb := range cur.InNeighbors() {
				if !seen.Has(nb.Key()) {
					seen.Put(nb.Key(), true)
					queue = append(queue, nb)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// ComponentOf returns every vertex weakly connected to start, or ok=false
// if start is absent. Complexity: O(V + E).
func ComponentOf(g *graph.Graph, start []byte) (comp []*graph.Vertex, ok bool) {
	sv, exists := g.GetVertex(start)
	if !exists {
		return nil, false
	}
	seen := rhmap.New[bool]()
	seen.Put(sv.Key(), true)
	queue := []*graph.Vertex{sv}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		comp = append(comp, cur)
		for _, nb := range cur.OutNeighbors() {
			if !seen.Has(nb.Key()) {
				seen.Put(nb.Key(), true)
				queue = append(queue, nb)
			}
		}
		for _, nb := range cur.InNeighbors() {
			if !seen.Has(nb.Key()) {
				seen.Put(nb.Key(), true)
				queue = append(queue, nb)
			}
		}
	}
	return comp, true
}
