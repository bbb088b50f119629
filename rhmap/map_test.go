package rhmap_test

import (
	"fmt"
	"testing"

	"github.com/newell-romario/r2ds/rhmap"
	"github.com/stretchr/testify/require"
)

func TestPutGetDelete(t *testing.T) {
	m := rhmap.New[int]()
	require.True(t, m.Put([]byte("a"), 1))
	require.True(t, m.Put([]byte("b"), 2))
	v, ok := m.Get([]byte("a"))
	require.True(t, ok)
	require.Equal(t, 1, v)

	require.True(t, m.Put([]byte("a"), 42))
	v, ok = m.Get([]byte("a"))
	require.True(t, ok)
	require.Equal(t, 42, v)
	require.Equal(t, 2, m.Len())

	require.True(t, m.Delete([]byte("a")))
	_, ok = m.Get([]byte("a"))
	require.False(t, ok)
	require.False(t, m.Delete([]byte("a")))
}

func TestGetAbsent(t *testing.T) {
	m := rhmap.New[int]()
	_, ok := m.Get([]byte("missing"))
	require.False(t, ok)
}

func TestResizeKeepsAllKeys(t *testing.T) {
	m := rhmap.New[int](rhmap.WithCapacity[int](2))
	const n = 500
	for i := 0; i < n; i++ {
		require.True(t, m.Put([]byte(fmt.Sprintf("key-%d", i)), i))
	}
	require.Equal(t, n, m.Len())
	for i := 0; i < n; i++ {
		v, ok := m.Get([]byte(fmt.Sprintf("key-%d", i)))
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	require.LessOrEqual(t, m.LoadFactor(), rhmap.DefaultMaxLoadFactor)
}

func TestBackwardShiftDeletion(t *testing.T) {
	// Force heavy collisions into a tiny table so the probe chain is long,
	// exercising backward-shift across multiple slots.
	m := rhmap.New[string](
		rhmap.WithCapacity[string](8),
		rhmap.WithMaxLoadFactor[string](0.99),
		rhmap.WithHasher[string](func([]byte) uint64 { return 0 }),
	)
	keys := []string{"a", "b", "c", "d", "e"}
	for _, k := range keys {
		require.True(t, m.Put([]byte(k), k))
	}
	require.True(t, m.Delete([]byte("b")))
	for _, k := range []string{"a", "c", "d", "e"} {
		v, ok := m.Get([]byte(k))
		require.True(t, ok, "key %q should survive deletion of an unrelated colliding key", k)
		require.Equal(t, k, v)
	}
	_, ok := m.Get([]byte("b"))
	require.False(t, ok)
}

func TestDisplacementInvariant(t *testing.T) {
	m := rhmap.New[int](rhmap.WithCapacity[int](4), rhmap.WithMaxLoadFactor[int](0.9))
	for i := 0; i < 20; i++ {
		require.True(t, m.Put([]byte(fmt.Sprintf("k%d", i)), i))
	}
	for _, e := range m.Entries() {
		disp, ok := m.Displacement(e.Key)
		require.True(t, ok)
		require.GreaterOrEqual(t, disp, int32(0))
	}
}

func TestValueDisposerCalledOnOverwriteAndDelete(t *testing.T) {
	var disposed []int
	m := rhmap.New[int](rhmap.WithValueDisposer[int](func(v int) { disposed = append(disposed, v) }))
	m.Put([]byte("x"), 1)
	m.Put([]byte("x"), 2) // overwrite disposes 1
	m.Delete([]byte("x")) // disposes 2
	require.Equal(t, []int{1, 2}, disposed)
}

func TestClear(t *testing.T) {
	m := rhmap.New[int]()
	for i := 0; i < 10; i++ {
		m.Put([]byte(fmt.Sprintf("%d", i)), i)
	}
	m.Clear()
	require.Equal(t, 0, m.Len())
	_, ok := m.Get([]byte("0"))
	require.False(t, ok)
}
