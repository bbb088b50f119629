package dijkstra

import (
	"errors"
	"math"

	"github.com/newell-romario/r2ds/graph"
)

// Weight returns the cost of traversing e.
type Weight func(e *graph.Edge) float64

// ErrStartNotFound is returned when the source vertex does not exist.
var ErrStartNotFound = errors.New("dijkstra: start vertex not found")

// ErrNegativeCycle is returned by BellmanFord when g contains a cycle
// reachable from the source whose total weight is negative.
var ErrNegativeCycle = errors.New("dijkstra: negative cycle reachable from source")

// ErrNotDAG is returned by DAGShortestPath when g is not acyclic.
var ErrNotDAG = errors.New("dijkstra: graph is not a DAG")

const distAttr = "dist"

// distOf reads the "dist" attribute Go float64 value off v, defaulting to
// +Inf if absent.
func distOf(v *graph.Vertex) float64 {
	if val, ok := v.GetAttr([]byte(distAttr)); ok {
		return val.(float64)
	}
	return math.Inf(1)
}

// Dist reads the distance-from-source attribute a shortest-path tree
// recorded for key, or ok=false if key was not reached.
func Dist(tree *graph.Graph, key []byte) (dist float64, ok bool) {
	v, exists := tree.GetVertex(key)
	if !exists {
		return 0, false
	}
	val, has := v.GetAttr([]byte(distAttr))
	if !has {
		return 0, false
	}
	return val.(float64), true
}
