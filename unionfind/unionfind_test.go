package unionfind_test

import (
	"fmt"
	"testing"

	"github.com/newell-romario/r2ds/unionfind"
	"github.com/stretchr/testify/require"
)

func b(s string) []byte { return []byte(s) }

func TestMakeFindSingleton(t *testing.T) {
	s := unionfind.New(nil)
	s.Make(b("a"))
	root, ok := s.Find(b("a"))
	require.True(t, ok)
	require.Equal(t, b("a"), root)
}

func TestUnionSameSet(t *testing.T) {
	s := unionfind.New(nil)
	for _, k := range []string{"a", "b", "c", "d"} {
		s.Make(b(k))
	}
	require.True(t, s.Union(b("a"), b("b")))
	require.True(t, s.Union(b("c"), b("d")))
	require.True(t, s.SameSet(b("a"), b("b")))
	require.False(t, s.SameSet(b("a"), b("c")))

	require.True(t, s.Union(b("b"), b("c")))
	require.True(t, s.SameSet(b("a"), b("d")))
}

func TestFindUnknownKey(t *testing.T) {
	s := unionfind.New(nil)
	_, ok := s.Find(b("ghost"))
	require.False(t, ok)
	require.False(t, s.Union(b("ghost"), b("also-ghost")))
}

func TestFindIdempotentAfterCompression(t *testing.T) {
	s := unionfind.New(nil)
	const n = 200
	for i := 0; i < n; i++ {
		s.Make(b(fmt.Sprintf("v%d", i)))
	}
	for i := 1; i < n; i++ {
		s.Union(b(fmt.Sprintf("v%d", i-1)), b(fmt.Sprintf("v%d", i)))
	}
	root, ok := s.Find(b("v0"))
	require.True(t, ok)
	for i := 0; i < n; i++ {
		r, ok := s.Find(b(fmt.Sprintf("v%d", i)))
		require.True(t, ok)
		require.Equal(t, root, r)
	}
}
