package avltree_test

import (
	"encoding/binary"
	"testing"

	"github.com/newell-romario/r2ds/avltree"
	"github.com/stretchr/testify/require"
)

func key(i int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(i))
	return b
}

func intOf(k []byte) int { return int(binary.BigEndian.Uint64(k)) }

func TestOrderStatisticsSequentialInsert(t *testing.T) {
	tr := avltree.New[int]()
	for i := 1; i <= 10; i++ {
		tr.Insert(key(i), i)
	}
	require.Equal(t, 10, tr.Len())

	k, v, ok := tr.SelectByRank(4) // 0-indexed rank 4 -> 5th smallest
	require.True(t, ok)
	require.Equal(t, 5, v)
	require.Equal(t, 5, intOf(k))

	_, maxVal, ok := tr.Max()
	require.True(t, ok)
	require.Equal(t, 10, maxVal)
	_, _, ok = tr.Successor(key(10))
	require.False(t, ok)

	var order []int
	c := tr.InOrderFirst()
	for c.Valid() {
		order = append(order, intOf(c.Key()))
		c.InOrderNext()
	}
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, order)
}

func checkAVLInvariant(t *testing.T, tr *avltree.Tree[int]) {
	// Node heights are not exposed, so balance is not checked here: this
	// only checks that successive SelectByRank keys over 0..Len()-1 are
	// strictly increasing (BST ordering).
	n := tr.Len()
	prev := -1 << 62
	for i := 0; i < n; i++ {
		k, _, ok := tr.SelectByRank(i)
		require.True(t, ok)
		v := intOf(k)
		require.Greater(t, v, prev)
		prev = v
	}
}

func TestInsertDeleteRoundTrip(t *testing.T) {
	tr := avltree.New[int]()
	vals := []int{50, 30, 70, 20, 40, 60, 80, 10, 25, 35, 45}
	for _, v := range vals {
		tr.Insert(key(v), v)
	}
	checkAVLInvariant(t, tr)
	require.Equal(t, len(vals), tr.Len())

	for _, v := range []int{20, 80, 50} {
		require.True(t, tr.Delete(key(v)))
		checkAVLInvariant(t, tr)
	}
	require.Equal(t, len(vals)-3, tr.Len())

	require.False(t, tr.Delete(key(999)))
}

func TestRangeQuery(t *testing.T) {
	tr := avltree.New[int]()
	for i := 1; i <= 20; i++ {
		tr.Insert(key(i), i*i)
	}
	res := tr.RangeQuery(key(5), key(9))
	require.Len(t, res, 5)
	for i, p := range res {
		want := 5 + i
		require.Equal(t, want, intOf(p.Key))
		require.Equal(t, want*want, p.Value)
	}
}

func TestPreOrderAndPostOrderVisitEveryNode(t *testing.T) {
	tr := avltree.New[int]()
	for i := 1; i <= 15; i++ {
		tr.Insert(key(i), i)
	}
	seen := map[int]bool{}
	c := tr.PreOrderFirst()
	for c.Valid() {
		seen[intOf(c.Key())] = true
		c.PreOrderNext()
	}
	require.Len(t, seen, 15)

	seen = map[int]bool{}
	pc := tr.PostOrderFirst()
	for pc.Valid() {
		seen[intOf(pc.Key())] = true
		pc.PostOrderNext()
	}
	require.Len(t, seen, 15)
}

func TestReinsertReplacesValue(t *testing.T) {
	tr := avltree.New[int]()
	tr.Insert(key(1), 100)
	tr.Insert(key(1), 200)
	require.Equal(t, 1, tr.Len())
	v, ok := tr.Search(key(1))
	require.True(t, ok)
	require.Equal(t, 200, v)
}
