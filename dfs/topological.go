package dfs

import (
	"github.com/newell-romario/r2ds/graph"
	"github.com/newell-romario/r2ds/rhmap"
)

// Topological returns a topological order of g's vertices via Kahn's
// algorithm: vertices of zero in-degree seed a queue; dequeuing a vertex
// decrements its successors' remaining in-degree counters, and any that
// reach zero join the queue. ok is false iff g contains a cycle, in which
// case the emitted sequence is shorter than the vertex count.
// Complexity: O(V + E).
func Topological(g *graph.Graph) (order []*graph.Vertex, ok bool) {
	indeg := rhmap.New[int]()
	var queue []*graph.Vertex
	for _, v := range g.Vertices() {
		indeg.Put(v.Key(), v.InDegree())
		if v.InDegree() == 0 {
			queue = append(queue, v)
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)
		for _, nb := range cur.OutNeighbors() {
			d, _ := indeg.Get(nb.Key())
			d--
			indeg.Put(nb.Key(), d)
			if d == 0 {
				queue = append(queue, nb)
			}
		}
	}
	return order, len(order) == g.VertexCount()
}

// DFSTopological returns an alternative topological order: the
// reverse-post-order of a full DFS forest. ok is false if g has a cycle.
// Complexity: O(V + E).
func DFSTopological(g *graph.Graph) (order []*graph.Vertex, ok bool) {
	if HasCycle(g) {
		return nil, false
	}
	return Run(g).ReversePostOrder(), true
}
