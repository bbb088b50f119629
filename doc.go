// Package r2ds is a general-purpose container and graph library.
//
// It is organized as a set of independent subpackages rather than one
// monolith:
//
//	pqueue/       — binary heap priority queue with external locators
//	rhmap/        — Robin-Hood open-addressing hash table
//	avltree/      — AVL-balanced ordered map
//	rbtree/       — red-black-balanced ordered map
//	wavltree/     — weak-AVL (rank-balanced) ordered map
//	btree/        — minimum-degree B-tree ordered map
//	unionfind/    — disjoint-set union-find with path compression
//	graph/        — directed property graph: vertices, edges, attributes
//	bfs/          — breadth-first search, components, bipartite test
//	dfs/          — depth-first search, topological sort, SCC, biconnectivity
//	dijkstra/     — Dijkstra, Bellman-Ford, DAG shortest path
//	prim_kruskal/ — Prim/Kruskal MST, transitive closure
//	trie/         — byte-keyed prefix tree
//	strsearch/    — substring-search routines
//	stack/, queue/, deque/, ring/, list/, arraystack/ — sequence containers
//
// Every container is single-threaded: there is no internal locking, and
// concurrent calls against the same instance are undefined. Keys are
// opaque byte sequences; ordering and equality are caller-supplied via a
// comparator rather than baked into a type.
package r2ds
