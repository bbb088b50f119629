// Package unionfind implements a disjoint-set (union-find) structure over
// opaque byte-sequence elements, backed by a rhmap.Map from element key to
// (parent key, rank).
//
// Make inserts a singleton set if the key is new. Find walks parent pointers
// to the representative and compresses the path by repointing every visited
// node directly at the representative it found. Union links the root with
// the smaller rank under the root with the larger rank, breaking ties by
// bumping the winning root's rank. Together, path compression and
// union-by-rank give amortised inverse-Ackermann time per operation.
package unionfind
