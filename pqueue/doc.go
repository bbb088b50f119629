// Package pqueue implements a binary heap priority queue whose elements
// carry a stable external Locator, letting a caller find its own entry again
// after the heap has moved it around.
//
// The heap stores items in a 1-indexed array: parent-of(i) = i/2, children
// are 2*i and 2*i+1. Every swap performed by sift-up or sift-down updates the
// position field recorded on both Locators involved, so a caller that kept a
// Locator from Insert can always call Remove or Adjust against the slot the
// item currently occupies, in O(log n), without a linear search.
//
// Ordering is controlled by a Less predicate supplied at construction: for a
// min-heap Less(a, b) should report whether a has strictly higher priority
// (sorts first) than b; a max-heap simply flips the comparison.
package pqueue
