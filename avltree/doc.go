// Package avltree implements an AVL-balanced ordered map keyed by opaque
// byte-sequence keys, with order-statistics support.
//
// Every node carries a subtree size (maintained incrementally on every
// structural change) and a height (-1 for an absent child), so
// SelectByRank, Predecessor/Successor, and RangeQuery all run in O(height) =
// O(log n).
//
// Rebalancing: after an insertion or deletion, the walk back to the root
// recomputes height and balance factor at each ancestor. A balance factor of
// +2 means the left subtree is too tall; inspect the left child's own
// balance factor to decide between a single right rotation (LL case) and a
// left-then-right double rotation (LR case). A balance factor of -2 is the
// mirror image. Insertion performs at most two rotations in total; deletion
// may rebalance at every level on the path to the root, so is O(log n)
// rotations in the worst case.
package avltree
