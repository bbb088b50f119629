// Package dfs implements iterative depth-first search over a graph.Graph
// and the algorithms that build on it: pre/post/reverse-post order,
// topological sort, cycle detection, path enumeration, the DFS spanning
// tree, Tarjan and Kosaraju strongly-connected components, and
// biconnectivity (articulation points and bridges).
//
// Every depth-first traversal except GetPaths is a loop over a stack of
// adjacency-list cursors rather than recursion: the outer loop advances
// the deepest cursor, pushing a new cursor when it discovers an unvisited
// vertex and popping back to the parent's cursor when the current one is
// exhausted. GetPaths enumerates paths with a recursive walk, so its depth
// is bounded by the Go call stack. Vertex state
// (unvisited/discovered/finished, discovery times, low-link)
// lives in side maps keyed by vertex key through package rhmap, never on
// the vertex itself.
package dfs
