package wavltree

import "github.com/newell-romario/r2ds/ordkey"

type node[V any] struct {
	key                 []byte
	value               V
	parent, left, right *node[V]
	rank                int
	size                int
}

// rankOf returns a node's rank, treating a nil child as rank -1.
func rankOf[V any](n *node[V]) int {
	if n == nil {
		return -1
	}
	return n.rank
}

func sizeOf[V any](n *node[V]) int {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *node[V]) refresh() {
	if n == nil {
		return
	}
	n.size = 1 + sizeOf(n.left) + sizeOf(n.right)
}

// isLeaf reports whether n has no children.
func (n *node[V]) isLeaf() bool { return n.left == nil && n.right == nil }

// Tree is a weak-AVL-balanced ordered map from opaque byte-sequence keys to
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

// WithKeyCopier installs a deep-copy callback for stored keys.
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

// Rank returns the rank of the root, or -1 for an empty tree.
func (t *Tree[V]) Rank() int { return rankOf(t.root) }
