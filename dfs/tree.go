package dfs

import (
	"github.com/newell-romario/r2ds/graph"
	"github.com/newell-romario/r2ds/rhmap"
)

// Tree builds the DFS spanning tree rooted at start as a derived graph:
// one vertex per reached vertex, one edge per tree edge discovered during
// the traversal. The derived graph borrows its vertices' and edges'
// attribute maps from g and must not outlive it. ok is false if start is
// absent.
func Tree(g *graph.Graph, start []byte) (*graph.Graph, bool) {
	sv, exists := g.GetVertex(start)
	if !exists {
		return nil, false
	}

	derived := graph.NewDerived(g)
	dv := derived.AddVertex(start)
	graph.BorrowVertexAttrs(dv, sv)

	visited := rhmap.New[bool]()
	visited.Put(sv.Key(), true)
	stack := []*frame{newFrame(sv)}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.i >= len(top.nbs) {
			stack = stack[:len(stack)-1]
			continue
		}
		nb := top.nbs[top.i]
		top.i++
		if visited.Has(nb.Key()) {
			continue
		}
		visited.Put(nb.Key(), true)

		ddv := derived.AddVertex(nb.Key())
		graph.BorrowVertexAttrs(ddv, nb)
		e, _ := derived.AddEdge(top.v.Key(), nb.Key())
		if srcE, ok := g.GetEdge(top.v.Key(), nb.Key()); ok {
			graph.BorrowEdgeAttrs(e, srcE)
		}
		stack = append(stack, newFrame(nb))
	}
	return derived, true
}
