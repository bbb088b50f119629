// Package wavltree implements a weak-AVL (WAVL) balanced ordered map keyed
// by opaque byte-sequence keys, following the rank rules of Haeupler, Sen
// and Tarjan: every node carries an integer rank, the rank of an absent
// child is -1, and rank_diff(parent, child) = rank(parent) - rank(child)
// must lie in {1, 2} for every edge. A tree built by insertions alone is
// exactly an AVL tree (every leaf at rank 0); deletions can transiently
// create a "(2,2)-leaf" (a childless node with rank 1, i.e. rank-diff 2 on
// both absent children), which the deletion rebalancer immediately demotes
// back to rank 0, restoring the leaf-rank-0 invariant this package
// maintains as a closed structural property.
//
// Insertion splices the new node in at rank 0, then walks upward promoting
// ranks while the immediate parent's rank-diff to the new node has dropped
// to 0 (a "0-child"), stopping early with a single or double rotation when
// promoting would itself create a violation against the sibling subtree.
//
// Deletion removes the node with the classical predecessor/successor
// substitution when it has two children, then walks upward from the
// physical removal point absorbing a "3-child" violation: demote-only when
// the sibling is itself rank-diff 2 from the parent (including the
// (2,2)-leaf correction), otherwise a rotation that promotes the sibling
// and demotes the parent -- with one further demotion when the rotation
// leaves the parent a childless leaf, so it does not retain a stale rank.
package wavltree
