package graph

// Transpose builds a new graph with every edge of g reversed: an edge
// src->dst in g becomes dst->src in the result. Vertex and edge attribute
// maps are borrowed from g, not copied, so the transpose must not outlive
// g; transposing twice recovers a graph isomorphic to the original,
// including its attributes. Complexity: O(V + E).
func Transpose(g *Graph) *Graph {
	t := NewDerived(g)
	for _, v := range g.Vertices() {
		dv := t.AddVertex(v.Key())
		BorrowVertexAttrs(dv, v)
	}
	for _, e := range g.Edges() {
		te, _ := t.AddEdge(e.Dst.Key(), e.Src.Key())
		BorrowEdgeAttrs(te, e)
	}
	return t
}
