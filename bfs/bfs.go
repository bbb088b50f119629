package bfs

import (
	"errors"

	"github.com/newell-romario/r2ds/graph"
	"github.com/newell-romario/r2ds/ordkey"
	"github.com/newell-romario/r2ds/rhmap"
)

// ErrStartNotFound is returned when the start vertex does not exist.
var ErrStartNotFound = errors.New("bfs: start vertex not found")

// Result is the outcome of a BFS traversal from a single source.
type Result struct {
	// Order lists every reached vertex in visit order.
	Order []*graph.Vertex
	depth *rhmap.Map[int]
	// parent maps a vertex key to its predecessor key in the BFS tree;
	// the source and any unreached vertex has no entry.
	parent *rhmap.Map[[]byte]
}

// Depth returns the edge-count distance from the source to key, or
// ok=false if key was not reached.
func (r *Result) Depth(key []byte) (int, bool) { return r.depth.Get(key) }

// Reached reports whether key was visited by the traversal.
func (r *Result) Reached(key []byte) bool { return r.depth.Has(key) }

// PathTo reconstructs the sequence of vertex keys from the source to dst,
// inclusive, or ok=false if dst was not reached.
func (r *Result) PathTo(dst []byte) (path [][]byte, ok bool) {
	if !r.depth.Has(dst) {
		return nil, false
	}
	cur := dst
	for {
		path = append(path, cur)
		p, has := r.parent.Get(cur)
		if !has {
			break
		}
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// Run performs a breadth-first search of g starting from start, visiting
// every vertex reachable along outgoing edges. Complexity: O(V + E).
func Run(g *graph.Graph, start []byte) (*Result, error) {
	sv, ok := g.GetVertex(start)
	if !ok {
		return nil, ErrStartNotFound
	}

	res := &Result{
		depth:  rhmap.New[int](),
		parent: rhmap.New[[]byte](),
	}
	queue := []*graph.Vertex{sv}
	res.depth.Put(sv.Key(), 0)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, cur)

		d, _ := res.depth.Get(cur.Key())
		for _, nb := range cur.OutNeighbors() {
			if res.depth.Has(nb.Key()) {
				continue
			}
			res.depth.Put(nb.Key(), d+1)
			res.parent.Put(nb.Key(), cur.Key())
			queue = append(queue, nb)
		}
	}
	return res, nil
}

// HasPath reports whether t is reachable from s via outgoing edges.
// Complexity: O(V + E) worst case, early-returns on discovery.
func HasPath(g *graph.Graph, s, t []byte) bool {
	sv, ok := g.GetVertex(s)
	if !ok {
		return false
	}
	if _, ok := g.GetVertex(t); !ok {
		return false
	}
	visited := rhmap.New[bool]()
	visited.Put(sv.Key(), true)
	queue := []*graph.Vertex{sv}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range cur.OutNeighbors() {
			if ordkey.Bytes(nb.Key(), t) == 0 {
				return true
			}
			if visited.Has(nb.Key()) {
				continue
			}
			visited.Put(nb.Key(), true)
			queue = append(queue, nb)
		}
	}
	return false
}
