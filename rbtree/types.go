package rbtree

import "github.com/newell-romario/r2ds/ordkey"

type color bool

const (
	red   color = true
	black color = false
)

type node[V any] struct {
	key                 []byte
	value               V
	parent, left, right *node[V]
	color               color
	size                int
}

// Tree is a red-black-balanced ordered map from opaque byte-sequence keys to
// values of type V. The zero value is not usable; construct with New.
type Tree[V any] struct {
	nilNode *node[V] // shared sentinel: always black, stands in for every leaf
	root    *node[V]
	cmp     ordkey.Comparator
	kcpy    ordkey.Copier
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
	nilNode := &node[V]{color: black, size: 0}
	t := &Tree[V]{
		nilNode: nilNode,
		root:    nilNode,
		cmp:     ordkey.Bytes,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tree[V]) isNil(n *node[V]) bool { return n == t.nilNode }

func (t *Tree[V]) refresh(n *node[V]) {
	if t.isNil(n) {
		return
	}
	n.size = 1 + n.left.size + n.right.size
}

// Len returns the number of keys stored.
func (t *Tree[V]) Len() int { return t.root.size }

// Empty reports whether the tree holds no keys.
func (t *Tree[V]) Empty() bool { return t.isNil(t.root) }

// BlackHeight returns the number of black nodes on any root-to-leaf path,
// not counting the sentinel leaf itself. Returns 0 for an empty tree.
func (t *Tree[V]) BlackHeight() int {
	h := 0
	n := t.root
	for !t.isNil(n) {
		if n.color == black {
			h++
		}
		n = n.left
	}
	return h
}
