package graph

import "github.com/newell-romario/r2ds/rhmap"

// AddVertex creates a vertex for key if it does not already exist.
// No-op if key is already present. Complexity: O(1) amortised.
func (g *Graph) AddVertex(key []byte) *Vertex {
	if v, ok := g.vertices.Get(key); ok {
		return v
	}
	v := &Vertex{
		key:   key,
		byDst: rhmap.New[*Edge](rhmap.WithComparator[*Edge](g.vcmp)),
		attrs: rhmap.New[any](rhmap.WithComparator[any](g.acmp)),
	}
	g.vertices.Put(key, v)
	v.node = g.vlist.PushBack(v)
	return v
}

// GetVertex returns the vertex stored under key, or ok=false if absent.
// Complexity: O(1).
func (g *Graph) GetVertex(key []byte) (*Vertex, bool) {
	return g.vertices.Get(key)
}

// DelVertex removes the vertex stored under key along with every edge
// incident to it, incoming or outgoing. No-op if key is absent.
// Complexity: O(deg(v)).
func (g *Graph) DelVertex(key []byte) bool {
	v, ok := g.vertices.Get(key)
	if !ok {
		return false
	}

	for v.outEdges.Len() > 0 {
		e := v.outEdges.Back().Value
		g.DelEdge(v.key, e.Dst.key)
	}
	for v.inNeighbors.Len() > 0 {
		src := v.inNeighbors.Back().Value
		g.DelEdge(src.key, v.key)
	}

	if !g.borrowed && g.vertexAttrDis != nil {
		v.attrs.Range(func(_ []byte, val any) bool {
			g.vertexAttrDis(val)
			return true
		})
	}

	g.vertices.Delete(key)
	g.vlist.Remove(v.node)
	v.node = nil

	if g.keyDisposer != nil {
		g.keyDisposer(v.key)
	}
	return true
}
