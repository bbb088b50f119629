package dfs

import (
	"github.com/newell-romario/r2ds/graph"
	"github.com/newell-romario/r2ds/rhmap"
)

// GetPaths enumerates every simple path from s to t via DFS, maintaining
// an on-path set so no vertex repeats within a single path: on reaching
// t the current path is snapshotted, and on backtracking the departing
// vertex's on-path flag is cleared. ok is false if s or t is absent.
// Complexity: O(V! ) worst case, as with any simple-path enumeration.
func GetPaths(g *graph.Graph, s, t []byte) (paths [][][]byte, ok bool) {
	sv, exists := g.GetVertex(s)
	if !exists {
		return nil, false
	}
	if _, exists := g.GetVertex(t); !exists {
		return nil, false
	}

	onPath := rhmap.New[bool]()
	var cur [][]byte

	var walk func(v *graph.Vertex)
	walk = func(v *graph.Vertex) {
		onPath.Put(v.Key(), true)
		cur = append(cur, v.Key())

		if string(v.Key()) == string(t) {
			snap := make([][]byte, len(cur))
			copy(snap, cur)
			paths = append(paths, snap)
		} else {
			for _, nb := range v.OutNeighbors() {
				if !onPath.Has(nb.Key()) {
					walk(nb)
				}
			}
		}

		cur = cur[:len(cur)-1]
		onPath.Delete(v.Key())
	}
	walk(sv)
	return paths, true
}

// PathEdges walks a vertex-key sequence and looks up the edge joining
// each consecutive pair. ok is false if any consecutive pair has no edge.
func PathEdges(g *graph.Graph, path [][]byte) (edges []*graph.Edge, ok bool) {
	for i := 0; i+1 < len(path); i++ {
		e, found := g.GetEdge(path[i], path[i+1])
		if !found {
			return nil, false
		}
		edges = append(edges, e)
	}
	return edges, true
}
