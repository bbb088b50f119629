package trie_test

import (
	"testing"

	"github.com/newell-romario/r2ds/trie"
	"github.com/stretchr/testify/require"
)

func TestInsertSearch(t *testing.T) {
	tr := trie.New[int]()
	tr.Insert([]byte("cat"), 1)
	tr.Insert([]byte("car"), 2)
	tr.Insert([]byte("cart"), 3)
	require.Equal(t, 3, tr.Len())

	v, ok := tr.Search([]byte("car"))
	require.True(t, ok)
	require.Equal(t, 2, v)

	_, ok = tr.Search([]byte("ca"))
	require.False(t, ok)
	require.True(t, tr.HasPrefix([]byte("ca")))
	require.False(t, tr.HasPrefix([]byte("dog")))
}

func TestDeletePrunesDeadBranches(t *testing.T) {
	tr := trie.New[int]()
	tr.Insert([]byte("cat"), 1)
	tr.Insert([]byte("cart"), 2)

	require.True(t, tr.Delete([]byte("cat")))
	require.Equal(t, 1, tr.Len())
	_, ok := tr.Search([]byte("cat"))
	require.False(t, ok)
	require.False(t, tr.HasPrefix([]byte("cat")))
	require.True(t, tr.HasPrefix([]byte("car")))

	v, ok := tr.Search([]byte("cart"))
	require.True(t, ok)
	require.Equal(t, 2, v)

	require.False(t, tr.Delete([]byte("dog")))
}
