// Package prim_kruskal computes minimum spanning trees and transitive
// closures over a graph.Graph under a caller-supplied edge-weight
// function, on the undirected interpretation of the graph's edges.
//
// Prim grows a tree from a seed vertex using a min-heap keyed by
// cheapest crossing edge (package pqueue). Kruskal sorts all edges via
// the same heap and accepts an edge only when its endpoints lie in
// different disjoint sets (package unionfind). Both return a standalone
// graph holding exactly the tree edges. TransitiveClosure runs a BFS
// from every vertex and records every vertex reachable from it.
package prim_kruskal
