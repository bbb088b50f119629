package avltree

import "github.com/newell-romario/r2ds/ordkey"

// node is one element of the tree. height is -1 for a nil child, 0 for a
// leaf, matching the convention used throughout the component.
type node[V any] struct {
	key                 []byte
	value               V
	parent, left, right *node[V]
	size                int
	height              int
}

func heightOf[V any](n *node[V]) int {
	if n == nil {
		return -1
	}
	return n.height
}

func sizeOf[V any](n *node[V]) int {
	if n == nil {
		return 0
	}
	return n.size
}

func balanceOf[V any](n *node[V]) int {
	return heightOf(n.left) - heightOf(n.right)
}

func (n *node[V]) refresh() {
	n.size = 1 + sizeOf(n.left) + sizeOf(n.right)
	h := heightOf(n.left)
	if r := heightOf(n.right); r > h {
		h = r
	}
	n.height = h + 1
}

// Tree is an AVL-balanced ordered map from opaque byte-sequence keys to
// values of type V. The zero value is not usable; construct with New.
type Tree[V any] struct {
	root *node[V]
	cmp  ordkey.Comparator
	kcpy ordkey.Copier
}

// Option configures a Tree at construction.
type Option[V any] func(*Tree[V])

// WithComparator overrides the default lexicographic byte comparator.
func WithComparator[V any](cmp ordkey.Comparator) Option[V] {
	return func(t *Tree[V]) {
		if cmp != nil {
			t.cmp = cmp
		}
	}
}

// WithKeyCopier installs a deep-copy callback for stored keys; without one,
// the tree aliases the caller's key slices.
func WithKeyCopier[V any](cp ordkey.Copier) Option[V] {
	return func(t *Tree[V]) { t.kcpy = cp }
}

// New constructs an empty Tree.
func New[V any](opts ...Option[V]) *Tree[V] {
	t := &Tree[V]{cmp: ordkey.Bytes}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Len returns the number of keys stored.
func (t *Tree[V]) Len() int { return sizeOf(t.root) }

// Empty reports whether the tree holds no keys.
func (t *Tree[V]) Empty() bool { return t.root == nil }

// Height returns the height of the tree, or -1 if empty.
func (t *Tree[V]) Height() int { return heightOf(t.root) }
