package graph

import (
	"github.com/newell-romario/r2ds/list"
	"github.com/newell-romario/r2ds/ordkey"
	"github.com/newell-romario/r2ds/rhmap"
)

// Vertex is a single node of a Graph. Its adjacency is split into an
// out-edge list (this vertex's outgoing edges), an out-neighbour list
// (the vertices those edges lead to, kept separate so algorithms that only
// need neighbours never have to dereference an Edge) and an in-neighbour
// list (vertices with an edge into this one), each an intrusive
// doubly-linked list so an edge can be unlinked in O(1) without disturbing
// the order of what's left. byDst answers get_edge in O(1) without
// scanning outEdges.
type Vertex struct {
	key  []byte
	node *list.Node[*Vertex] // this vertex's node in Graph.vlist

	outEdges     list.List[*Edge]
	outNeighbors list.List[*Vertex]
	inNeighbors  list.List[*Vertex]
	byDst        *rhmap.Map[*Edge]

	attrs *rhmap.Map[any]
}

// Key returns the vertex's identifying key. The returned slice must not be
// mutated by the caller.
func (v *Vertex) Key() []byte { return v.key }

// OutDegree returns the number of outgoing edges.
func (v *Vertex) OutDegree() int { return v.outEdges.Len() }

// InDegree returns the number of incoming edges.
func (v *Vertex) InDegree() int { return v.inNeighbors.Len() }

// OutEdges returns the vertex's outgoing edges in insertion order.
// Complexity: O(deg_out(v)).
func (v *Vertex) OutEdges() []*Edge {
	out := make([]*Edge, 0, v.outEdges.Len())
	for n := v.outEdges.Front(); n != nil; n = n.Next() {
		out = append(out, n.Value)
	}
	return out
}

// OutNeighbors returns the destination vertex of every outgoing edge, in
// insertion order. Complexity: O(deg_out(v)).
func (v *Vertex) OutNeighbors() []*Vertex {
	out := make([]*Vertex, 0, v.outNeighbors.Len())
	for n := v.outNeighbors.Front(); n != nil; n = n.Next() {
		out = append(out, n.Value)
	}
	return out
}

// InNeighbors returns the source vertex of every incoming edge, in
// insertion order. Complexity: O(deg_in(v)).
func (v *Vertex) InNeighbors() []*Vertex {
	out := make([]*Vertex, 0, v.inNeighbors.Len())
	for n := v.inNeighbors.Front(); n != nil; n = n.Next() {
		out = append(out, n.Value)
	}
	return out
}

// Edge is a single directed edge of a Graph, running from Src to Dst. The
// four node* fields are its position handles: the node holding this edge
// (or its endpoint) inside src.outEdges, src.outNeighbors, dst.inNeighbors,
// and the graph's global edge list, respectively. They exist purely so
// DelEdge can unlink the edge from all four sequences in O(1) without
// reordering what's left, the way the original's list-node-based pos[]
// handles do.
type Edge struct {
	Src, Dst *Vertex
	attrs    *rhmap.Map[any]

	nodeOut   *list.Node[*Edge]
	nodeOutN  *list.Node[*Vertex]
	nodeInN   *list.Node[*Vertex]
	nodeGraph *list.Node[*Edge]
}

// Graph is a directed property graph keyed by opaque byte-sequence vertex
// keys. The zero value is not usable; construct with New.
type Graph struct {
	vertices *rhmap.Map[*Vertex]
	vlist    list.List[*Vertex]
	elist    list.List[*Edge]

	vcmp ordkey.Comparator // orders/equates vertex keys
	acmp ordkey.Comparator // orders/equates attribute-name keys

	keyDisposer   ordkey.Disposer
	vertexAttrDis func(any)
	edgeAttrDis   func(any)

	attrs *rhmap.Map[any] // graph-level attributes

	// borrowed is true for a derived graph (BFS/DFS tree) whose vertex
	// and edge attribute maps were shared, not copied, from a source
	// graph; such a graph must never dispose of those maps.
	borrowed bool
}

// Option configures a Graph at construction.
type Option func(*Graph)

// WithVertexComparator overrides the default lexicographic byte comparator
// used to order and equate vertex keys.
func WithVertexComparator(cmp ordkey.Comparator) Option {
	return func(g *Graph) {
		if cmp != nil {
			g.vcmp = cmp
		}
	}
}

// WithAttributeComparator overrides the default lexicographic byte
// comparator used to order and equate attribute-name keys.
func WithAttributeComparator(cmp ordkey.Comparator) Option {
	return func(g *Graph) {
		if cmp != nil {
			g.acmp = cmp
		}
	}
}

// WithKeyDisposer installs a disposal callback invoked on a vertex key when
// the vertex that owns it is removed.
func WithKeyDisposer(d ordkey.Disposer) Option {
	return func(g *Graph) { g.keyDisposer = d }
}

// WithVertexAttrDisposer installs a disposal callback invoked on every
// vertex attribute value still held when its vertex is removed or the graph
// is closed, and on every graph-level attribute value that is overwritten,
// deleted, or still held at Close. Vertex.PutAttr and Vertex.DeleteAttr use
// the disposer passed to them instead.
func WithVertexAttrDisposer(d func(any)) Option {
	return func(g *Graph) { g.vertexAttrDis = d }
}

// WithEdgeAttrDisposer installs a disposal callback invoked on every edge
// attribute value still held when its edge is removed or the graph is
// closed. Edge.PutAttr and Edge.DeleteAttr use the disposer passed to them
// instead.
func WithEdgeAttrDisposer(d func(any)) Option {
	return func(g *Graph) { g.edgeAttrDis = d }
}

// New constructs an empty Graph.
func New(opts ...Option) *Graph {
	g := &Graph{
		vcmp: ordkey.Bytes,
		acmp: ordkey.Bytes,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.vertices = rhmap.New[*Vertex](rhmap.WithComparator[*Vertex](g.vcmp))
	g.attrs = rhmap.New[any](rhmap.WithComparator[any](g.acmp))
	return g
}

// VertexCount returns the number of vertices in the graph.
func (g *Graph) VertexCount() int { return g.vlist.Len() }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return g.elist.Len() }

// Vertices returns every vertex in insertion order. Complexity: O(V).
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, 0, g.vlist.Len())
	for n := g.vlist.Front(); n != nil; n = n.Next() {
		out = append(out, n.Value)
	}
	return out
}

// Edges returns every edge in insertion order. Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, g.elist.Len())
	for n := g.elist.Front(); n != nil; n = n.Next() {
		out = append(out, n.Value)
	}
	return out
}
