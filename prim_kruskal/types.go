package prim_kruskal

import (
	"errors"

	"github.com/newell-romario/r2ds/graph"
)

// Weight returns the cost of an edge, interpreted as undirected.
type Weight func(e *graph.Edge) float64

// ErrSeedNotFound is returned when Prim's seed vertex does not exist.
var ErrSeedNotFound = errors.New("prim_kruskal: seed vertex not found")

type labeled struct {
	v   *graph.Vertex
	key float64
}

// adjItem pairs a neighbour with the edge that reaches it, treating g's
// directed edges as undirected for MST purposes.
type adjItem struct {
	v *graph.Vertex
	e *graph.Edge
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
