package graph

// PutAttr stores value under name as a graph-level attribute, replacing any
// existing value (disposing it first if a disposer is configured).
func (g *Graph) PutAttr(name []byte, value any) bool {
	return putAttr(g.attrs, g.vertexAttrDis, name, value)
}

// GetAttr returns the graph-level attribute stored under name.
func (g *Graph) GetAttr(name []byte) (any, bool) { return g.attrs.Get(name) }

// DeleteAttr removes the graph-level attribute stored under name.
func (g *Graph) DeleteAttr(name []byte) bool {
	return deleteAttr(g.attrs, g.vertexAttrDis, name)
}

// PutAttr stores value under name as a vertex attribute.
func (v *Vertex) PutAttr(name []byte, value any, dispose func(any)) bool {
	return putAttr(v.attrs, dispose, name, value)
}

// GetAttr returns the vertex attribute stored under name.
func (v *Vertex) GetAttr(name []byte) (any, bool) { return v.attrs.Get(name) }

// DeleteAttr removes the vertex attribute stored under name.
func (v *Vertex) DeleteAttr(name []byte, dispose func(any)) bool {
	return deleteAttr(v.attrs, dispose, name)
}

// PutAttr stores value under name as an edge attribute.
func (e *Edge) PutAttr(name []byte, value any, dispose func(any)) bool {
	return putAttr(e.attrs, dispose, name, value)
}

// GetAttr returns the edge attribute stored under name.
func (e *Edge) GetAttr(name []byte) (any, bool) { return e.attrs.Get(name) }

// DeleteAttr removes the edge attribute stored under name.
func (e *Edge) DeleteAttr(name []byte, dispose func(any)) bool {
	return deleteAttr(e.attrs, dispose, name)
}

func putAttr(m attrMap, dispose func(any), name []byte, value any) bool {
	if dispose != nil {
		if old, ok := m.Get(name); ok {
			dispose(old)
		}
	}
	return m.Put(name, value)
}

func deleteAttr(m attrMap, dispose func(any), name []byte) bool {
	if dispose != nil {
		if old, ok := m.Get(name); ok {
			dispose(old)
		}
	}
	return m.Delete(name)
}

// attrMap is the minimal rhmap.Map[any] surface the attribute helpers need.
type attrMap interface {
	Get([]byte) (any, bool)
	Put([]byte, any) bool
	Delete([]byte) bool
}
