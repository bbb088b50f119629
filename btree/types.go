package btree

import "github.com/newell-romario/r2ds/ordkey"

// node is a single B-tree node. Unlike the fixed NULL-terminated key/child
// arrays of a C implementation, node uses slices whose length already
// carries the count; keyCount and childCount are kept anyway as explicit,
// always-consistent fields so split/merge code reads the same way a
// pointer-and-count C implementation would.
type node[V any] struct {
	keys      [][]byte
	values    []V
	children  []*node[V]
	leaf      bool
	keyCount  int
	childCount int
	size      int // keys in this subtree, including this node's own keys
}

func (n *node[V]) refreshCounts() {
	n.keyCount = len(n.keys)
	n.childCount = len(n.children)
}

func (n *node[V]) refreshSize() {
	s := n.keyCount
	for _, c := range n.children {
		s += c.size
	}
	n.size = s
}

// Tree is a B-tree-balanced ordered map from opaque byte-sequence keys to
// values of type V, with minimum degree t: every non-root node holds
// between t-1 and 2t-1 keys. The zero value is not usable; construct with
// New.
type Tree[V any] struct {
	root *node[V]
	t    int
	cmp  ordkey.Comparator
	kcpy ordkey.Copier
}

// Option configures a Tree at construction.
type Option[V any] func(*Tree[V])

// WithDegree sets the minimum degree t (t >= 2). Values below 2 are
// ignored and the default of 3 is kept.
func WithDegree[V any](t int) Option[V] {
	return func(tr *Tree[V]) {
		if t >= 2 {
			tr.t = t
		}
	}
}

// WithComparator overrides the default lexicographic byte comparator.
func WithComparator[V any](cmp ordkey.Comparator) Option[V] {
	return func(tr *Tree[V]) {
		if cmp != nil {
			tr.cmp = cmp
		}
	}
}

// WithKeyCopier installs a deep-copy callback for stored keys.
func WithKeyCopier[V any](cp ordkey.Copier) Option[V] {
	return func(tr *Tree[V]) { tr.kcpy = cp }
}

// New constructs an empty Tree with minimum degree 3 unless overridden by
// WithDegree.
func New[V any](opts ...Option[V]) *Tree[V] {
	tr := &Tree[V]{t: 3, cmp: ordkey.Bytes}
	for _, opt := range opts {
		opt(tr)
	}
	tr.root = &node[V]{leaf: true}
	return tr
}

// Len returns the number of keys stored.
func (t *Tree[V]) Len() int { return t.root.size }

// Empty reports whether the tree holds no keys.
func (t *Tree[V]) Empty() bool { return t.root.size == 0 }

// Degree returns the tree's minimum degree.
func (t *Tree[V]) Degree() int { return t.t }
