package dfs

import (
	"github.com/newell-romario/r2ds/graph"
	"github.com/newell-romario/r2ds/rhmap"
)

type color int

const (
	white color = iota
	grey
	black
)

// HasCycle reports whether g contains a directed cycle, via iterative DFS:
// a grey target (a vertex on the current DFS stack) is a back edge, which
// exists iff the graph has a cycle. Complexity: O(V + E).
func HasCycle(g *graph.Graph) bool {
	colors := rhmap.New[color]()

	for _, root := range g.Vertices() {
		if c, _ := colors.Get(root.Key()); c != white {
			continue
		}
		colors.Put(root.Key(), grey)
		stack := []*frame{newFrame(root)}

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.i >= len(top.nbs) {
				colors.Put(top.v.Key(), black)
				stack = stack[:len(stack)-1]
				continue
			}
			nb := top.nbs[top.i]
			top.i++
			c, _ := colors.Get(nb.Key())
			switch c {
			case grey:
				return true
			case black:
				continue
			default:
				colors.Put(nb.Key(), grey)
				stack = append(stack, newFrame(nb))
			}
		}
	}
	return false
}
