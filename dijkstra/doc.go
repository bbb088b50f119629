// Package dijkstra computes shortest-path trees over a graph.Graph under
// a caller-supplied edge-weight function: Dijkstra for non-negative
// weights, Bellman-Ford for arbitrary weights (detecting negative
// cycles), and a linear-time pass for DAGs via topological order.
//
// Every algorithm returns a new standalone graph isomorphic in vertex set to a
// shortest-path tree: one incoming edge per reachable non-source vertex,
// plus a "dist" attribute per vertex carrying its distance from the
// source. The input graph is never mutated.
package dijkstra
