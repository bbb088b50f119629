// Package ordkey defines the callback contracts shared by every container in
// this module: a total-order Comparator for opaque byte-sequence keys, a
// Hasher for the open-addressing table, and the Copy/Dispose pair that lets a
// container own (or merely borrow) the keys and values passed to it.
//
// None of the containers interpret key bytes themselves. A caller compares
// strings, integers encoded big-endian, struct encodings, whatever it likes,
// as long as the Comparator imposes a strict total order over it.
package ordkey

import "hash/fnv"

// Comparator returns a negative number if a < b, zero if a == b, and a
// positive number if a > b. It must impose a strict total order over every
// key the container will ever see.
type Comparator func(a, b []byte) int

// Hasher maps a key to an integer for the Robin-Hood table. A good hasher
// avalanches: a one-bit change in key should flip roughly half the output
// bits. Lookup correctness does not depend on hash quality, only performance
// does, since two keys with different hashes may still collide into the same
// home slot.
type Hasher func(key []byte) uint64

// Copier deep-copies a key or value. It returns (nil, false) on allocation
// failure so the caller can revert the mutation that required the copy. A nil
// Copier means the container aliases the caller's slice instead of copying
// it.
type Copier func(src []byte) ([]byte, bool)

// Disposer releases resources owned by a key or value previously handed to a
// container. A nil Disposer means the caller retains ownership and the
// container does nothing on removal.
type Disposer func(payload []byte)

// Bytes is the default Comparator: lexicographic byte-wise ordering,
// shorter-is-less on a common prefix (the same rule strings.Compare uses).
func Bytes(a, b []byte) int {
	la, lb := len(a), len(b)
	n := la
	if lb < n {
		n = lb
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case la < lb:
		return -1
	case la > lb:
		return 1
	default:
		return 0
	}
}

// FNV1a is the module's default Hasher: a 64-bit Fowler-Noll-Vo hash with the
// "a" mixing order (XOR before multiply), the classical non-cryptographic
// choice for hash-table keys of unknown origin.
func FNV1a(key []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(key)
	return h.Sum64()
}

// CopyBytes deep-copies a byte slice. Suitable as a Copier for keys/values
// the container should own outright.
func CopyBytes(src []byte) ([]byte, bool) {
	if src == nil {
		return nil, true
	}
	dst := make([]byte, len(src))
	copy(dst, src)
	return dst, true
}
