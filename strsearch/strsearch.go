// Package strsearch is a small collection of substring-search routines,
// independent of the rest of the library and deliberately shallow: no
// streaming interface, no Unicode-aware matching, byte slices only.
package strsearch

// Naive returns every starting index at which pattern occurs in text,
// by brute-force comparison. Complexity: O(n*m).
func Naive(text, pattern []byte) []int {
	var out []int
	if len(pattern) == 0 || len(pattern) > len(text) {
		return out
	}
	for i := 0; i+len(pattern) <= len(text); i++ {
		if equal(text[i:i+len(pattern)], pattern) {
			out = append(out, i)
		}
	}
	return out
}

// KMP returns every starting index at which pattern occurs in text using
// the Knuth-Morris-Pratt automaton, never re-examining a text byte.
// Complexity: O(n+m).
func KMP(text, pattern []byte) []int {
	var out []int
	if len(pattern) == 0 || len(pattern) > len(text) {
		return out
	}
	lps := kmpTable(pattern)

	i, j := 0, 0
	for i < len(text) {
		if text[i] == pattern[j] {
			i++
			j++
			if j == len(pattern) {
				out = append(out, i-j)
				j = lps[j-1]
			}
			continue
		}
		if j != 0 {
			j = lps[j-1]
		} else {
			i++
		}
	}
	return out
}

// kmpTable builds the longest-proper-prefix-that-is-also-suffix array
// used to skip re-comparisons on mismatch.
func kmpTable(pattern []byte) []int {
	lps := make([]int, len(pattern))
	length := 0
	for i := 1; i < len(pattern); {
		if pattern[i] == pattern[length] {
			length++
			lps[i] = length
			i++
			continue
		}
		if length != 0 {
			length = lps[length-1]
			continue
		}
		lps[i] = 0
		i++
	}
	return lps
}

const rabinKarpBase = 256
const rabinKarpMod = 1_000_000_007

// RabinKarp returns every starting index at which pattern occurs in text
// using a rolling polynomial hash, verifying each hash collision with a
// direct comparison. Complexity: O(n+m) expected, O(n*m) worst case.
func RabinKarp(text, pattern []byte) []int {
	var out []int
	m, n := len(pattern), len(text)
	if m == 0 || m > n {
		return out
	}

	var patternHash, windowHash, highOrder int64 = 0, 0, 1
	for i := 0; i < m-1; i++ {
		highOrder = (highOrder * rabinKarpBase) % rabinKarpMod
	}
	for i := 0; i < m; i++ {
		patternHash = (patternHash*rabinKarpBase + int64(pattern[i])) % rabinKarpMod
		windowHash = (windowHash*rabinKarpBase + int64(text[i])) % rabinKarpMod
	}

	for i := 0; ; i++ {
		if windowHash == patternHash && equal(text[i:i+m], pattern) {
			out = append(out, i)
		}
		if i+m == n {
			break
		}
		windowHash = (windowHash - int64(text[i])*highOrder%rabinKarpMod + rabinKarpMod) % rabinKarpMod
		windowHash = (windowHash*rabinKarpBase + int64(text[i+m])) % rabinKarpMod
	}
	return out
}

func equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
