package unionfind

import (
	"github.com/newell-romario/r2ds/ordkey"
	"github.com/newell-romario/r2ds/rhmap"
)

// node is the record stored per element: its current parent key and, for
// roots, the rank used to keep union trees shallow.
type node struct {
	parent []byte
	rank   int
}

// Set is a disjoint-set structure over opaque byte-sequence elements.
type Set struct {
	nodes *rhmap.Map[*node]
	cmp   ordkey.Comparator
}

// New constructs an empty Set. cmp defaults to lexicographic byte comparison
// when nil.
func New(cmp ordkey.Comparator) *Set {
	if cmp == nil {
		cmp = ordkey.Bytes
	}
	return &Set{
		nodes: rhmap.New[*node](rhmap.WithComparator[*node](cmp), rhmap.WithKeyCopier[*node](ordkey.CopyBytes)),
		cmp:   cmp,
	}
}

// Make inserts key as a singleton set if it is not already known. It is a
// no-op if key already belongs to the structure.
func (s *Set) Make(key []byte) {
	if s.nodes.Has(key) {
		return
	}
	// A root's parent key equals its own key; set comparisons are by byte
	// content (via cmp), so aliasing the caller's slice here is safe even
	// though rhmap stores its own copy of the map key internally.
	s.nodes.Put(key, &node{parent: key, rank: 0})
}

// Find returns the representative key of the set containing key, and false
// if key is unknown. Every node visited along the way is repointed directly
// at the representative (full path compression), so a subsequent Find on any
// of them resolves in one step.
func (s *Set) Find(key []byte) ([]byte, bool) {
	n, ok := s.nodes.Get(key)
	if !ok {
		return nil, false
	}
	// Walk to the root, collecting the path.
	var path [][]byte
	cur, curNode := key, n
	for s.cmp(curNode.parent, cur) != 0 {
		path = append(path, cur)
		cur = curNode.parent
		curNode, ok = s.nodes.Get(cur)
		if !ok {
			return nil, false
		}
	}
	root := cur
	for _, p := range path {
		pn, _ := s.nodes.Get(p)
		pn.parent = root
	}
	return root, true
}

// Union merges the sets containing a and b. Returns false if either key is
// unknown. The root with smaller rank is linked under the root with larger
// rank; on a tie, the winning root's rank increases by one.
func (s *Set) Union(a, b []byte) bool {
	ra, ok := s.Find(a)
	if !ok {
		return false
	}
	rb, ok := s.Find(b)
	if !ok {
		return false
	}
	if s.cmp(ra, rb) == 0 {
		return true
	}
	na, _ := s.nodes.Get(ra)
	nb, _ := s.nodes.Get(rb)
	switch {
	case na.rank < nb.rank:
		na.parent = rb
	case na.rank > nb.rank:
		nb.parent = ra
	default:
		nb.parent = ra
		na.rank++
	}
	return true
}

// SameSet reports whether a and b belong to the same set. Returns false if
// either key is unknown.
func (s *Set) SameSet(a, b []byte) bool {
	ra, ok := s.Find(a)
	if !ok {
		return false
	}
	rb, ok := s.Find(b)
	if !ok {
		return false
	}
	return s.cmp(ra, rb) == 0
}

// Len reports the number of distinct elements that have been Made.
func (s *Set) Len() int { return s.nodes.Len() }
