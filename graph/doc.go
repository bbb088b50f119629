// Package graph implements a directed property graph keyed by opaque
// byte-sequence vertex keys. Vertices and edges are individually
// heap-allocated and addressed by pointer, which keeps them stable across
// every mutation; what does need explicit bookkeeping is each edge's
// position inside the four sequences that reference it (the source's
// out-edge list, the source's out-neighbour list, the destination's
// in-neighbour list, and the graph's global edge list). Each sequence is
// backed by an intrusive doubly-linked list (package list), and an edge
// carries a *list.Node handle into each one, so deletion unlinks it from
// all four in O(1) without disturbing the insertion order of what's left.
//
// Vertex and edge attributes are opaque values stored in per-entity
// Robin-Hood maps (package rhmap), keyed by attribute name under a
// caller-supplied comparator distinct from the vertex-key comparator.
// Graph construction takes no locks and the resulting Graph is not safe
// for concurrent use; see the package-level non-goals in the algorithms
// packages built on top of it.
package graph
