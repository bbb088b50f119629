package avltree

// Search returns the value stored for key and true, or the zero value and
// false if key is absent. Complexity: O(log n).
func (t *Tree[V]) Search(key []byte) (V, bool) {
	n := t.find(key)
	if n == nil {
		var zero V
		return zero, false
	}
	return n.value, true
}

func (t *Tree[V]) find(key []byte) *node[V] {
	cur := t.root
	for cur != nil {
		c := t.cmp(key, cur.key)
		switch {
		case c == 0:
			return cur
		case c < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return nil
}

// Insert stores value under key, replacing any existing value for key.
// Complexity: O(log n).
func (t *Tree[V]) Insert(key []byte, value V) {
	if t.root == nil {
		storeKey := key
		if t.kcpy != nil {
			if cp, ok := t.kcpy(key); ok {
				storeKey = cp
			}
		}
		t.root = &node[V]{key: storeKey, value: value, height: 0, size: 1}
		return
	}

	cur := t.root
	for {
		c := t.cmp(key, cur.key)
		switch {
		case c == 0:
			cur.value = value
			return
		case c < 0:
			if cur.left == nil {
				storeKey := key
				if t.kcpy != nil {
					if cp, ok := t.kcpy(key); ok {
						storeKey = cp
					}
				}
				cur.left = &node[V]{key: storeKey, value: value, height: 0, size: 1, parent: cur}
				t.rebalanceFrom(cur)
				return
			}
			cur = cur.left
		default:
			if cur.right == nil {
				storeKey := key
				if t.kcpy != nil {
					if cp, ok := t.kcpy(key); ok {
						storeKey = cp
					}
				}
				cur.right = &node[V]{key: storeKey, value: value, height: 0, size: 1, parent: cur}
				t.rebalanceFrom(cur)
				return
			}
			cur = cur.right
		}
	}
}

// rebalanceFrom walks from n up to the root, refreshing size/height and
// rotating at any node whose balance factor has left the [-1, 1] range.
func (t *Tree[V]) rebalanceFrom(n *node[V]) {
	for n != nil {
		n.refresh()
		bf := balanceOf(n)
		switch {
		case bf == 2:
			if balanceOf(n.left) < 0 {
				t.rotateLeft(n.left)
			}
			n = t.rotateRight(n)
		case bf == -2:
			if balanceOf(n.right) > 0 {
				t.rotateRight(n.right)
			}
			n = t.rotateLeft(n)
		}
		n = n.parent
	}
}

// rotateRight performs a right rotation around x, returning the node that
// takes x's former position.
func (t *Tree[V]) rotateRight(x *node[V]) *node[V] {
	p := x.parent
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	y.right = x
	x.parent = y
	t.reattach(p, x, y)
	x.refresh()
	y.refresh()
	return y
}

// rotateLeft is the mirror image of rotateRight.
func (t *Tree[V]) rotateLeft(x *node[V]) *node[V] {
	p := x.parent
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.left = x
	x.parent = y
	t.reattach(p, x, y)
	x.refresh()
	y.refresh()
	return y
}

// reattach links y into the slot formerly held by old under parent p (or
// makes y the tree root if p is nil).
func (t *Tree[V]) reattach(p, old, y *node[V]) {
	y.parent = p
	if p == nil {
		t.root = y
		return
	}
	if p.left == old {
		p.left = y
	} else {
		p.right = y
	}
}

// Delete removes key if present. Returns true if a key was removed.
// Complexity: O(log n).
func (t *Tree[V]) Delete(key []byte) bool {
	n := t.find(key)
	if n == nil {
		return false
	}
	t.deleteNode(n)
	return true
}

func (t *Tree[V]) deleteNode(n *node[V]) {
	if n.left != nil && n.right != nil {
		succ := min(n.right)
		n.key, n.value = succ.key, succ.value
		n = succ
	}
	// n now has at most one child.
	child := n.left
	if child == nil {
		child = n.right
	}
	p := n.parent
	if child != nil {
		child.parent = p
	}
	if p == nil {
		t.root = child
	} else if p.left == n {
		p.left = child
	} else {
		p.right = child
	}
	t.rebalanceFrom(p)
}

func min[V any](n *node[V]) *node[V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func max[V any](n *node[V]) *node[V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Min returns the smallest key and its value, or ok=false if the tree is
// empty.
func (t *Tree[V]) Min() (key []byte, value V, ok bool) {
	if t.root == nil {
		return nil, value, false
	}
	n := min(t.root)
	return n.key, n.value, true
}

// Max returns the largest key and its value, or ok=false if the tree is
// empty.
func (t *Tree[V]) Max() (key []byte, value V, ok bool) {
	if t.root == nil {
		return nil, value, false
	}
	n := max(t.root)
	return n.key, n.value, true
}

// Successor returns the smallest key strictly greater than key, or ok=false
// if key is absent or is the maximum.
func (t *Tree[V]) Successor(key []byte) (nkey []byte, value V, ok bool) {
	n := t.find(key)
	if n == nil {
		return nil, value, false
	}
	s := successor(n)
	if s == nil {
		return nil, value, false
	}
	return s.key, s.value, true
}

func successor[V any](n *node[V]) *node[V] {
	if n.right != nil {
		return min(n.right)
	}
	p := n.parent
	for p != nil && n == p.right {
		n, p = p, p.parent
	}
	return p
}

// Predecessor returns the largest key strictly less than key, or ok=false if
// key is absent or is the minimum.
func (t *Tree[V]) Predecessor(key []byte) (pkey []byte, value V, ok bool) {
	n := t.find(key)
	if n == nil {
		return nil, value, false
	}
	p := predecessor(n)
	if p == nil {
		return nil, value, false
	}
	return p.key, p.value, true
}

func predecessor[V any](n *node[V]) *node[V] {
	if n.left != nil {
		return max(n.left)
	}
	p := n.parent
	for p != nil && n == p.left {
		n, p = p, p.parent
	}
	return p
}

// SelectByRank returns the key/value of the element with the given 0-based
// in-order rank, or ok=false if rank is out of range. Complexity: O(log n).
func (t *Tree[V]) SelectByRank(rank int) (key []byte, value V, ok bool) {
	if rank < 0 || rank >= sizeOf(t.root) {
		return nil, value, false
	}
	n := t.root
	for n != nil {
		l := sizeOf(n.left)
		switch {
		case rank == l:
			return n.key, n.value, true
		case rank < l:
			n = n.left
		default:
			rank -= l + 1
			n = n.right
		}
	}
	return nil, value, false
}

// RangeQuery returns every key in [lo, hi] (inclusive) in ascending order,
// paired with its value. Complexity: O(log n + k) for k results.
func (t *Tree[V]) RangeQuery(lo, hi []byte) []Pair[V] {
	var out []Pair[V]
	if t.root == nil || t.cmp(lo, hi) > 0 {
		return out
	}
	n := t.lowerBound(lo)
	for n != nil && t.cmp(n.key, hi) <= 0 {
		out = append(out, Pair[V]{Key: n.key, Value: n.value})
		n = successor(n)
	}
	return out
}

// lowerBound returns the smallest node with key >= lo, or nil if none.
func (t *Tree[V]) lowerBound(lo []byte) *node[V] {
	var candidate *node[V]
	n := t.root
	for n != nil {
		if t.cmp(n.key, lo) >= 0 {
			candidate = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return candidate
}

// Pair is a key/value result returned by RangeQuery.
type Pair[V any] struct {
	Key   []byte
	Value V
}
