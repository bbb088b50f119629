package graph

// NewDerived constructs an empty Graph marked as attribute-borrowing: it
// shares comparators with source but will never dispose of any vertex or
// edge attribute value, because those values logically belong to source
// and algorithms such as BFS/DFS tree construction only reference them.
// The derived graph must not outlive source.
func NewDerived(source *Graph) *Graph {
	g := New(
		WithVertexComparator(source.vcmp),
		WithAttributeComparator(source.acmp),
	)
	g.borrowed = true
	return g
}

// BorrowVertexAttrs points a derived vertex's attribute map at source's,
// instead of the empty map AddVertex gave it, so reads against the derived
// graph see the source vertex's attributes without copying them.
func BorrowVertexAttrs(derivedVertex, sourceVertex *Vertex) {
	derivedVertex.attrs = sourceVertex.attrs
}

// BorrowEdgeAttrs points a derived edge's attribute map at source's.
func BorrowEdgeAttrs(derivedEdge, sourceEdge *Edge) {
	derivedEdge.attrs = sourceEdge.attrs
}

// Close disposes every owned key and attribute value still held by the
// graph. A borrowed (derived) graph disposes nothing, since its attribute
// values belong to the source graph it was built from.
func (g *Graph) Close() {
	if g.borrowed {
		return
	}
	for n := g.vlist.Front(); n != nil; n = n.Next() {
		v := n.Value
		if g.keyDisposer != nil {
			g.keyDisposer(v.key)
		}
		if g.vertexAttrDis != nil {
			v.attrs.Range(func(_ []byte, val any) bool {
				g.vertexAttrDis(val)
				return true
			})
		}
	}
	if g.edgeAttrDis != nil {
		for n := g.elist.Front(); n != nil; n = n.Next() {
			n.Value.attrs.Range(func(_ []byte, val any) bool {
				g.edgeAttrDis(val)
				return true
			})
		}
	}
	if g.vertexAttrDis != nil {
		g.attrs.Range(func(_ []byte, val any) bool {
			g.vertexAttrDis(val)
			return true
		})
	}
}
