package dfs

import (
	"github.com/newell-romario/r2ds/graph"
	"github.com/newell-romario/r2ds/rhmap"
)

// frame is one level of the explicit DFS stack: the vertex being
// explored, its out-neighbours snapshotted once on entry (so repeatedly
// stepping through them doesn't re-walk the vertex's adjacency list on
// every step), and the index of the next one to examine.
type frame struct {
	v   *graph.Vertex
	nbs []*graph.Vertex
	i   int
}

func newFrame(v *graph.Vertex) *frame {
	return &frame{v: v, nbs: v.OutNeighbors()}
}

// Result is the outcome of a full-graph DFS forest.
type Result struct {
	// PreOrder lists every vertex in discovery order.
	PreOrder []*graph.Vertex
	// PostOrder lists every vertex in finish order.
	PostOrder []*graph.Vertex
	parent    *rhmap.Map[[]byte]
}

// Parent returns the DFS-tree predecessor of key, or ok=false if key is a
// forest root or was not visited.
func (r *Result) Parent(key []byte) ([]byte, bool) { return r.parent.Get(key) }

// ReversePostOrder returns PostOrder reversed; on a DAG this is a valid
// topological order.
func (r *Result) ReversePostOrder() []*graph.Vertex {
	out := make([]*graph.Vertex, len(r.PostOrder))
	for i, v := range r.PostOrder {
		out[len(out)-1-i] = v
	}
	return out
}

// Run performs an iterative depth-first search of every vertex in g,
// following outgoing edges, restarting at an unvisited vertex whenever
// the current tree is exhausted so the whole vertex set is covered.
// Complexity: O(V + E).
func Run(g *graph.Graph) *Result {
	res := &Result{parent: rhmap.New[[]byte]()}
	visited := rhmap.New[bool]()

	for _, root := range g.Vertices() {
		if visited.Has(root.Key()) {
			continue
		}
		visited.Put(root.Key(), true)
		res.PreOrder = append(res.PreOrder, root)
		stack := []*frame{newFrame(root)}

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.i >= len(top.nbs) {
				res.PostOrder = append(res.PostOrder, top.v)
				stack = stack[:len(stack)-1]
				continue
			}
			nb := top.nbs[top.i]
			top.i++
			if visited.Has(nb.Key()) {
				continue
			}
			visited.Put(nb.Key(), true)
			res.parent.Put(nb.Key(), top.v.Key())
			res.PreOrder = append(res.PreOrder, nb)
			stack = append(stack, newFrame(nb))
		}
	}
	return res
}
