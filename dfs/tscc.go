package dfs

import (
	"github.com/newell-romario/r2ds/graph"
	"github.com/newell-romario/r2ds/rhmap"
)

// TarjanSCC partitions g's vertices into strongly-connected components via
// Tarjan's algorithm: an iterative DFS maintains per-vertex discovery
// time and low-link, and a side stack of "followers" — vertices pushed on
// discovery and not yet assigned to a component. A vertex is a component leader iff its
// low-link equals its own discovery time; on finishing a leader, the
// stack is popped down through every follower still above it to
// materialise the component. Complexity: O(V + E).
func TarjanSCC(g *graph.Graph) [][]*graph.Vertex {
	disc := rhmap.New[int]()
	low := rhmap.New[int]()
	onStack := rhmap.New[bool]()
	var followers []*graph.Vertex
	var sccs [][]*graph.Vertex
	clock := 0

	for _, root := range g.Vertices() {
		if disc.Has(root.Key()) {
			continue
		}
		disc.Put(root.Key(), clock)
		low.Put(root.Key(), clock)
		clock++
		followers = append(followers, root)
		onStack.Put(root.Key(), true)
		stack := []*frame{newFrame(root)}

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.i < len(top.nbs) {
				nb := top.nbs[top.i]
				top.i++
				if !disc.Has(nb.Key()) {
					disc.Put(nb.Key(), clock)
					low.Put(nb.Key(), clock)
					clock++
					followers = append(followers, nb)
					onStack.Put(nb.Key(), true)
					stack = append(stack, newFrame(nb))
				} else if on, _ := onStack.Get(nb.Key()); on {
					nd, _ := disc.Get(nb.Key())
					tl, _ := low.Get(top.v.Key())
					if nd < tl {
						low.Put(top.v.Key(), nd)
					}
				}
				continue
			}

			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				pl, _ := low.Get(parent.v.Key())
				tl, _ := low.Get(top.v.Key())
				if tl < pl {
					low.Put(parent.v.Key(), tl)
				}
			}

			tl, _ := low.Get(top.v.Key())
			td, _ := disc.Get(top.v.Key())
			if tl == td {
				var comp []*graph.Vertex
				for {
					w := followers[len(followers)-1]
					followers = followers[:len(followers)-1]
					onStack.Put(w.Key(), false)
					comp = append(comp, w)
					if w == top.v {
						break
					}
				}
				sccs = append(sccs, comp)
			}
		}
	}
	return sccs
}
