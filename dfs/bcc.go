package dfs

import (
	"github.com/newell-romario/r2ds/graph"
	"github.com/newell-romario/r2ds/rhmap"
)

// adjItem pairs a neighbour with the edge that reaches it, so biconnectivity
// can walk g's edges as if undirected without losing the edge identity
// needed to skip walking straight back along the edge just arrived on.
type adjItem struct {
	v *graph.Vertex
	e *graph.Edge
}

type bccFrame struct {
	v          *graph.Vertex
	adj        []adjItem
	i          int
	parentEdge *graph.Edge
	children   int
}

func undirectedAdj(g *graph.Graph, v *graph.Vertex) []adjItem {
	items := make([]adjItem, 0, v.OutDegree()+v.InDegree())
	for _, e := range v.OutEdges() {
		items = append(items, adjItem{v: e.Dst, e: e})
	}
	for _, nb := range v.InNeighbors() {
		e, _ := g.GetEdge(nb.Key(), v.Key())
		items = append(items, adjItem{v: nb, e: e})
	}
	return items
}

// BCCResult is the outcome of a biconnectivity analysis.
type BCCResult struct {
	Articulation []*graph.Vertex
	Bridges      []*graph.Edge
	Components   [][]*graph.Edge
}

// BCC computes g's biconnected components, articulation points, and
// bridges on the undirected interpretation of g's edges via iterative
// DFS: disc[v] and low[v] (the lowest disc reachable by a back edge from
// v's subtree) are maintained per vertex, alongside a stack of traversed
// edges. On returning from child w, low[v] is updated to
// min(low[v], low[w]); v is an articulation point if it is the DFS root
// with at least two tree children, or a non-root with some child w where
// low[w] >= disc[v]; the edge (v,w) is a bridge iff low[w] > disc[v].
// When a child w of v closes and v is the DFS root or low[w] >= disc[v],
// the edge stack is popped down through the edge that reached w to emit
// one biconnected component. A back edge is pushed only from its deeper
// endpoint, so every edge lands on the stack once.
// Complexity: O(V + E).
func BCC(g *graph.Graph) *BCCResult {
	disc := rhmap.New[int]()
	low := rhmap.New[int]()
	isArt := rhmap.New[bool]()
	res := &BCCResult{}
	var edgeStack []*graph.Edge
	clock := 0

	flush := func(through *graph.Edge) []*graph.Edge {
		var comp []*graph.Edge
		for len(edgeStack) > 0 {
			e := edgeStack[len(edgeStack)-1]
			edgeStack = edgeStack[:len(edgeStack)-1]
			comp = append(comp, e)
			if e == through {
				break
			}
		}
		return comp
	}

	for _, root := range g.Vertices() {
		if disc.Has(root.Key()) {
			continue
		}
		disc.Put(root.Key(), clock)
		low.Put(root.Key(), clock)
		clock++
		stack := []*bccFrame{{v: root, adj: undirectedAdj(g, root)}}

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.i < len(top.adj) {
				item := top.adj[top.i]
				top.i++
				if top.parentEdge != nil && item.e == top.parentEdge {
					continue
				}
				nb := item.v
				if !disc.Has(nb.Key()) {
					disc.Put(nb.Key(), clock)
					low.Put(nb.Key(), clock)
					clock++
					edgeStack = append(edgeStack, item.e)
					top.children++
					stack = append(stack, &bccFrame{v: nb, adj: undirectedAdj(g, nb), parentEdge: item.e})
				} else {
					nd, _ := disc.Get(nb.Key())
					tl, _ := low.Get(top.v.Key())
					if nd < tl {
						low.Put(top.v.Key(), nd)
					}
					if td, _ := disc.Get(top.v.Key()); nd < td {
						edgeStack = append(edgeStack, item.e)
					}
				}
				continue
			}

			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				continue
			}
			parent := stack[len(stack)-1]
			tl, _ := low.Get(top.v.Key())
			pl, _ := low.Get(parent.v.Key())
			if tl < pl {
				low.Put(parent.v.Key(), tl)
			}
			pd, _ := disc.Get(parent.v.Key())
			isRoot := len(stack) == 1

			if isRoot {
				if parent.children >= 2 {
					isArt.Put(parent.v.Key(), true)
				}
				res.Components = append(res.Components, flush(top.parentEdge))
			} else if tl >= pd {
				isArt.Put(parent.v.Key(), true)
				res.Components = append(res.Components, flush(top.parentEdge))
			}
			if tl > pd {
				res.Bridges = append(res.Bridges, top.parentEdge)
			}
		}
	}

	for _, v := range g.Vertices() {
		if a, _ := isArt.Get(v.Key()); a {
			res.Articulation = append(res.Articulation, v)
		}
	}
	return res
}
