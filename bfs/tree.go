package bfs

import "github.com/newell-romario/r2ds/graph"

// Tree builds the BFS spanning tree rooted at start as a derived graph: one
// vertex per reached vertex, one edge per tree edge. The derived graph
// borrows its vertices' and edges' attribute maps from g (they are not
// copied) and must not outlive g. ok is false if start is absent.
func Tree(g *graph.Graph, start []byte) (*graph.Graph, bool) {
	res, err := Run(g, start)
	if err != nil {
		return nil, false
	}
	sv, _ := g.GetVertex(start)
	derived := graph.NewDerived(g)
	dv := derived.AddVertex(start)
	graph.BorrowVertexAttrs(dv, sv)
	for _, v := range res.Order {
		ddv := derived.AddVertex(v.Key())
		graph.BorrowVertexAttrs(ddv, v)
	}
	for _, v := range res.Order {
		if parentPath, ok := res.PathTo(v.Key()); ok && len(parentPath) >= 2 {
			parent := parentPath[len(parentPath)-2]
			e, _ := derived.AddEdge(parent, v.Key())
			if srcE, ok := g.GetEdge(parent, v.Key()); ok {
				graph.BorrowEdgeAttrs(e, srcE)
			}
		}
	}
	return derived, true
}
