package list_test

import (
	"testing"

	"github.com/newell-romario/r2ds/list"
	"github.com/stretchr/testify/require"
)

func TestPushFrontBackOrder(t *testing.T) {
	var l list.List[int]
	l.PushBack(2)
	l.PushBack(3)
	l.PushFront(1)
	require.Equal(t, 3, l.Len())

	var got []int
	for n := l.Front(); n != nil; n = n.Next() {
		got = append(got, n.Value)
	}
	require.Equal(t, []int{1, 2, 3}, got)
}

func TestRemoveMiddleNode(t *testing.T) {
	var l list.List[string]
	l.PushBack("a")
	mid := l.PushBack("b")
	l.PushBack("c")

	l.Remove(mid)
	require.Equal(t, 2, l.Len())

	var got []string
	for n := l.Front(); n != nil; n = n.Next() {
		got = append(got, n.Value)
	}
	require.Equal(t, []string{"a", "c"}, got)
}
