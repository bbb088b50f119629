// Package rhmap implements a Robin-Hood open-addressing hash table keyed by
// opaque byte sequences.
//
// Robin-Hood hashing minimises the variance of probe length: on insertion, an
// element that has travelled farther from its home slot than the occupant of
// the slot it is probing "steals" that slot, pushing the occupant onward to
// continue the search. The effect is that no key ever sits much farther from
// home than any other, which lets Get terminate early: once the probe's own
// displacement exceeds the displacement recorded at the slot it is
// examining, the key cannot be present (it would have stolen that slot on
// insertion).
//
// Deletion uses backward-shift instead of tombstones: the vacated slot is
// refilled by walking the probe chain forward and shifting each element that
// still wants to be closer to home back by one, stopping at an empty slot or
// a zero-displacement element. This keeps the table tombstone-free, so load
// factor and average probe length never degrade from a churn of
// insert/delete pairs.
//
// Complexity: O(1) expected for Put/Get/Delete; amortised O(1) for the
// resize triggered when load factor would exceed the configured ceiling.
package rhmap
