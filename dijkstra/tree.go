package dijkstra

import (
	"github.com/newell-romario/r2ds/graph"
	"github.com/newell-romario/r2ds/rhmap"
)

// buildTree materialises a shortest-path tree: every vertex with a known
// distance gets a vertex carrying a "dist" float64 attribute, and every
// non-source vertex with a parent gets its tree edge. The tree is a
// standalone graph, not attribute-borrowing, since "dist" is new data the
// algorithm computed rather than something inherited from g.
func buildTree(g *graph.Graph, source *graph.Vertex, dist *rhmap.Map[float64], parent *rhmap.Map[[]byte]) *graph.Graph {
	tree := graph.New()
	for _, v := range g.Vertices() {
		d, ok := dist.Get(v.Key())
		if !ok {
			continue
		}
		tv := tree.AddVertex(v.Key())
		tv.PutAttr([]byte(distAttr), d, nil)
	}
	for _, v := range g.Vertices() {
		p, ok := parent.Get(v.Key())
		if !ok {
			continue
		}
		tree.AddEdge(p, v.Key())
	}
	return tree
}
