// Package bfs implements breadth-first search over a graph.Graph and the
// queries that reduce to it: single-source distance/parent computation,
// has_path, the BFS spanning tree, weakly-connected components, and the
// two-colouring bipartite test together with its class-extraction twin.
//
// Traversal state (visited/depth/parent/colour) lives in side maps keyed
// by vertex key through the Robin-Hood hash table (package rhmap), never
// on the vertex itself, so a traversal never mutates the graph it walks.
package bfs
