// Package btree implements a classical Cormen-style B-tree ordered map
// keyed by opaque byte-sequence keys, with minimum degree t configurable at
// construction. Every non-root node holds between t-1 and 2t-1 keys and,
// for an internal node, exactly keyCount+1 children; insertion proactively
// splits any full node it descends through so a single top-down pass never
// needs to back up, and deletion predictively rebalances (borrow-from-
// sibling or merge) a child before descending into it so removal is also a
// single top-down pass.
package btree
