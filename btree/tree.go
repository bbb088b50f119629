package btree

import (
	"sort"

	"github.com/newell-romario/r2ds/ordkey"
)

// Search returns the value stored for key and true, or zero/false if absent.
func (t *Tree[V]) Search(key []byte) (V, bool) {
	n := t.root
	for {
		i, found := n.find(t.cmp, key)
		if found {
			return n.values[i], true
		}
		if n.leaf {
			var zero V
			return zero, false
		}
		n = n.children[i]
	}
}

// find returns the position of key in n.keys (found=true) or the index of
// the child that would contain key (found=false).
func (n *node[V]) find(cmp ordkey.Comparator, key []byte) (int, bool) {
	i := sort.Search(len(n.keys), func(i int) bool { return cmp(n.keys[i], key) >= 0 })
	if i < len(n.keys) && cmp(n.keys[i], key) == 0 {
		return i, true
	}
	return i, false
}

// Insert stores value under key, replacing any existing value for key.
// Complexity: O(t log_t n).
func (t *Tree[V]) Insert(key []byte, value V) {
	storeKey := key
	if t.kcpy != nil {
		if cp, ok := t.kcpy(key); ok {
			storeKey = cp
		}
	}
	r := t.root
	if len(r.keys) == 2*t.t-1 {
		newRoot := &node[V]{leaf: false, children: []*node[V]{r}}
		t.splitChild(newRoot, 0)
		newRoot.refreshSize()
		t.root = newRoot
		r = newRoot
	}
	t.insertNonFull(r, storeKey, value)
}

func (t *Tree[V]) insertNonFull(n *node[V], key []byte, value V) bool {
	i, found := n.find(t.cmp, key)
	if found {
		n.values[i] = value
		return false
	}
	if n.leaf {
		n.keys = append(n.keys, nil)
		copy(n.keys[i+1:], n.keys[i:])
		n.keys[i] = key
		n.values = append(n.values, value)
		copy(n.values[i+1:], n.values[i:])
		n.values[i] = value
		n.refreshCounts()
		n.size++
		return true
	}
	if len(n.children[i].keys) == 2*t.t-1 {
		t.splitChild(n, i)
		switch c := t.cmp(key, n.keys[i]); {
		case c == 0:
			n.values[i] = value
			return false
		case c > 0:
			i++
		}
	}
	inserted := t.insertNonFull(n.children[i], key, value)
	if inserted {
		n.size++
	}
	return inserted
}

// splitChild splits the full child at index i of n (2t-1 keys) into two
// nodes of t-1 keys each, promoting the median key into n.
func (t *Tree[V]) splitChild(n *node[V], i int) {
	mid := t.t - 1
	child := n.children[i]

	sibling := &node[V]{leaf: child.leaf}
	sibling.keys = append(sibling.keys, child.keys[mid+1:]...)
	sibling.values = append(sibling.values, child.values[mid+1:]...)
	if !child.leaf {
		sibling.children = append(sibling.children, child.children[mid+1:]...)
	}

	medianKey, medianValue := child.keys[mid], child.values[mid]

	child.keys = child.keys[:mid]
	child.values = child.values[:mid]
	if !child.leaf {
		child.children = child.children[:mid+1]
	}
	child.refreshCounts()
	child.refreshSize()
	sibling.refreshCounts()
	sibling.refreshSize()

	n.children = append(n.children, nil)
	copy(n.children[i+2:], n.children[i+1:])
	n.children[i+1] = sibling

	n.keys = append(n.keys, nil)
	copy(n.keys[i+1:], n.keys[i:])
	n.keys[i] = medianKey

	n.values = append(n.values, medianValue)
	copy(n.values[i+1:], n.values[i:])
	n.values[i] = medianValue

	n.refreshCounts()
}

func minNode[V any](n *node[V]) *node[V] {
	for !n.leaf {
		n = n.children[0]
	}
	return n
}

func maxNode[V any](n *node[V]) *node[V] {
	for !n.leaf {
		n = n.children[len(n.children)-1]
	}
	return n
}

// Min returns the smallest key and value, or ok=false if empty.
func (t *Tree[V]) Min() (key []byte, value V, ok bool) {
	if t.root.size == 0 {
		return nil, value, false
	}
	n := minNode(t.root)
	return n.keys[0], n.values[0], true
}

// Max returns the largest key and value, or ok=false if empty.
func (t *Tree[V]) Max() (key []byte, value V, ok bool) {
	if t.root.size == 0 {
		return nil, value, false
	}
	n := maxNode(t.root)
	last := len(n.keys) - 1
	return n.keys[last], n.values[last], true
}

// Delete removes key if present. Returns true if a key was removed.
// Complexity: O(t log_t n).
func (t *Tree[V]) Delete(key []byte) bool {
	removed := t.delete(t.root, key)
	if !t.root.leaf && len(t.root.keys) == 0 {
		t.root = t.root.children[0]
	}
	return removed
}

func (t *Tree[V]) delete(n *node[V], key []byte) bool {
	i, found := n.find(t.cmp, key)
	if found {
		if n.leaf {
			n.keys = append(n.keys[:i], n.keys[i+1:]...)
			n.values = append(n.values[:i], n.values[i+1:]...)
			n.refreshCounts()
			n.size--
			return true
		}
		left, right := n.children[i], n.children[i+1]
		switch {
		case len(left.keys) >= t.t:
			pk, pv := maxNode(left).keys[len(maxNode(left).keys)-1], maxNode(left).values[len(maxNode(left).values)-1]
			n.keys[i], n.values[i] = pk, pv
			t.delete(left, pk)
		case len(right.keys) >= t.t:
			mn := minNode(right)
			sk, sv := mn.keys[0], mn.values[0]
			n.keys[i], n.values[i] = sk, sv
			t.delete(right, sk)
		default:
			t.mergeChildren(n, i)
			t.delete(left, key)
		}
		n.refreshCounts()
		n.refreshSize()
		return true
	}

	if n.leaf {
		return false
	}

	childIdx := i
	if len(n.children[childIdx].keys) == t.t-1 {
		childIdx = t.fill(n, childIdx)
	}
	removed := t.delete(n.children[childIdx], key)
	n.refreshCounts()
	n.refreshSize()
	return removed
}

// fill ensures n.children[i] holds at least t keys before the caller
// descends into it, borrowing from a sibling or merging as needed. Returns
// the (possibly shifted) index of the now-sufficient child.
func (t *Tree[V]) fill(n *node[V], i int) int {
	switch {
	case i > 0 && len(n.children[i-1].keys) >= t.t:
		t.borrowFromLeft(n, i)
		return i
	case i < len(n.children)-1 && len(n.children[i+1].keys) >= t.t:
		t.borrowFromRight(n, i)
		return i
	case i < len(n.children)-1:
		t.mergeChildren(n, i)
		return i
	default:
		t.mergeChildren(n, i-1)
		return i - 1
	}
}

func (t *Tree[V]) borrowFromLeft(n *node[V], i int) {
	child := n.children[i]
	left := n.children[i-1]

	child.keys = append([][]byte{n.keys[i-1]}, child.keys...)
	child.values = append([]V{n.values[i-1]}, child.values...)
	if !child.leaf {
		lastChild := left.children[len(left.children)-1]
		child.children = append([]*node[V]{lastChild}, child.children...)
		left.children = left.children[:len(left.children)-1]
	}

	lastKey, lastValue := left.keys[len(left.keys)-1], left.values[len(left.values)-1]
	left.keys = left.keys[:len(left.keys)-1]
	left.values = left.values[:len(left.values)-1]
	n.keys[i-1], n.values[i-1] = lastKey, lastValue

	child.refreshCounts()
	child.refreshSize()
	left.refreshCounts()
	left.refreshSize()
}

func (t *Tree[V]) borrowFromRight(n *node[V], i int) {
	child := n.children[i]
	right := n.children[i+1]

	child.keys = append(child.keys, n.keys[i])
	child.values = append(child.values, n.values[i])
	if !child.leaf {
		firstChild := right.children[0]
		child.children = append(child.children, firstChild)
		right.children = right.children[1:]
	}

	firstKey, firstValue := right.keys[0], right.values[0]
	right.keys = right.keys[1:]
	right.values = right.values[1:]
	n.keys[i], n.values[i] = firstKey, firstValue

	child.refreshCounts()
	child.refreshSize()
	right.refreshCounts()
	right.refreshSize()
}

// mergeChildren merges n.children[i], n.keys[i] and n.children[i+1] into a
// single node placed at n.children[i].
func (t *Tree[V]) mergeChildren(n *node[V], i int) {
	left, right := n.children[i], n.children[i+1]

	left.keys = append(left.keys, n.keys[i])
	left.values = append(left.values, n.values[i])
	left.keys = append(left.keys, right.keys...)
	left.values = append(left.values, right.values...)
	if !left.leaf {
		left.children = append(left.children, right.children...)
	}
	left.refreshCounts()
	left.refreshSize()

	n.keys = append(n.keys[:i], n.keys[i+1:]...)
	n.values = append(n.values[:i], n.values[i+1:]...)
	n.children = append(n.children[:i+1], n.children[i+2:]...)
	n.refreshCounts()
}

// Pair is a key/value result returned by RangeQuery.
type Pair[V any] struct {
	Key   []byte
	Value V
}

// inOrder appends every key/value of the subtree rooted at n, in ascending
// order, to out.
func inOrder[V any](n *node[V], out *[]Pair[V]) {
	if n.leaf {
		for i := range n.keys {
			*out = append(*out, Pair[V]{Key: n.keys[i], Value: n.values[i]})
		}
		return
	}
	for i := range n.keys {
		inOrder(n.children[i], out)
		*out = append(*out, Pair[V]{Key: n.keys[i], Value: n.values[i]})
	}
	inOrder(n.children[len(n.children)-1], out)
}

// RangeQuery returns every key in [lo, hi] in ascending order. B-trees do
// not support O(log n + k) range queries without parent pointers or a
// cursor stack; this walks the whole tree, which is adequate for the
// moderate fan-out this package targets.
func (t *Tree[V]) RangeQuery(lo, hi []byte) []Pair[V] {
	var all []Pair[V]
	inOrder(t.root, &all)
	var out []Pair[V]
	for _, p := range all {
		if t.cmp(p.Key, lo) >= 0 && t.cmp(p.Key, hi) <= 0 {
			out = append(out, p)
		}
	}
	return out
}

// SelectByRank returns the key/value at the given 0-based in-order position.
func (t *Tree[V]) SelectByRank(rank int) (key []byte, value V, ok bool) {
	if rank < 0 || rank >= t.root.size {
		return nil, value, false
	}
	return selectByRank(t.root, rank)
}

func selectByRank[V any](n *node[V], rank int) (key []byte, value V, ok bool) {
	if n.leaf {
		return n.keys[rank], n.values[rank], true
	}
	for i, c := range n.children {
		if rank < c.size {
			return selectByRank(c, rank)
		}
		rank -= c.size
		if i < len(n.keys) {
			if rank == 0 {
				return n.keys[i], n.values[i], true
			}
			rank--
		}
	}
	var zero V
	return nil, zero, false
}
