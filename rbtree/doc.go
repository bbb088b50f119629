// Package rbtree implements a red-black balanced ordered map keyed by opaque
// byte-sequence keys, with order-statistics support.
//
// Invariants maintained after every insert/delete: the root is black; no red
// node has a red child; every root-to-leaf path passes through the same
// number of black nodes (the tree's black height). A shared sentinel leaf
// (always black, used for every nil child and as the parent of the
// conceptual "above the root" slot) lets the classical fixup case analysis
// run without special-casing nil.
//
// Insertion splices the new node in as red, then walks up while the parent
// is red: a red uncle triggers a recolour-and-recurse at the grandparent; a
// black uncle triggers one or two rotations that straighten the zig-zag and
// recolour the subtree root. Deletion transplants as usual, then if the
// removed colour was black, walks a "double-black" node up through four
// sibling cases (classified by the sibling's colour and its children's
// colours) until the extra black can be absorbed.
package rbtree
