package bfs

import (
	"github.com/newell-romario/r2ds/graph"
	"github.com/newell-romario/r2ds/rhmap"
)

// Bipartition is the outcome of a successful two-colouring: color maps a
// vertex key to its class, 0 or 1.
type Bipartition struct {
	color *rhmap.Map[int]
}

// Class returns the colour class of key, or ok=false if key was not part
// of the two-colouring (absent from the graph component that was tested).
func (b *Bipartition) Class(key []byte) (int, bool) { return b.color.Get(key) }

// Set returns every vertex two-coloured into class (0 or 1).
func (b *Bipartition) Set(g *graph.Graph, class int) []*graph.Vertex {
	var out []*graph.Vertex
	for _, v := range g.Vertices() {
		if c, ok := b.color.Get(v.Key()); ok && c == class {
			out = append(out, v)
		}
	}
	return out
}

// Bipartite performs a BFS two-colouring of every weakly-connected
// component of g, ignoring edge direction. It reports ok=false the moment
// it discovers an edge joining two same-coloured vertices. bipartite_set's
// original set-extraction twin is folded into the returned Bipartition,
// whose Set method recovers the vertices of a given class without a
// second traversal. Complexity: O(V + E).
func Bipartite(g *graph.Graph) (*Bipartition, bool) {
	color := rhmap.New[int]()

	for _, v := range g.Vertices() {
		if color.Has(v.Key()) {
			continue
		}
		color.Put(v.Key(), 0)
		queue := []*graph.Vertex{v}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			cc, _ := color.Get(cur.Key())

			neighbors := make([]*graph.Vertex, 0, len(cur.OutNeighbors())+len(cur.InNeighbors()))
			neighbors = append(neighbors, cur.OutNeighbors()...)
			neighbors = append(neighbors, cur.InNeighbors()...)

			for _, nb := range neighbors {
				nc, seen := color.Get(nb.Key())
				if !seen {
					color.Put(nb.Key(), 1-cc)
					queue = append(queue, nb)
					continue
				}
				if nc == cc {
					return nil, false
				}
			}
		}
	}
	return &Bipartition{color: color}, true
}
