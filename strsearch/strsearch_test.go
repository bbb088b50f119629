package strsearch_test

import (
	"testing"

	"github.com/newell-romario/r2ds/strsearch"
	"github.com/stretchr/testify/require"
)

func TestAllAlgorithmsAgree(t *testing.T) {
	text := []byte("abababcababab")
	pattern := []byte("abab")

	want := strsearch.Naive(text, pattern)
	require.Equal(t, []int{0, 2, 7, 9}, want)
	require.Equal(t, want, strsearch.KMP(text, pattern))
	require.Equal(t, want, strsearch.RabinKarp(text, pattern))
}

func TestNoMatch(t *testing.T) {
	text := []byte("hello world")
	pattern := []byte("xyz")
	require.Empty(t, strsearch.Naive(text, pattern))
	require.Empty(t, strsearch.KMP(text, pattern))
	require.Empty(t, strsearch.RabinKarp(text, pattern))
}

func TestPatternLongerThanText(t *testing.T) {
	require.Empty(t, strsearch.KMP([]byte("ab"), []byte("abcdef")))
}
