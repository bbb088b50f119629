// Package list is a minimal doubly-linked sequence container. Shallow by
// design: no comparators, no disposal callbacks, intrusive node exposed
// directly to the caller for O(1) removal.
package list

// Node is one element of a List.
type Node[T any] struct {
	Value      T
	prev, next *Node[T]
}

// List is a doubly-linked sequence. The zero value is ready to use.
type List[T any] struct {
	head, tail *Node[T]
	size       int
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int { return l.size }

// Front returns the first node, or nil if the list is empty.
func (l *List[T]) Front() *Node[T] { return l.head }

// Back returns the last node, or nil if the list is empty.
func (l *List[T]) Back() *Node[T] { return l.tail }

// PushBack appends v and returns its node.
func (l *List[T]) PushBack(v T) *Node[T] {
	n := &Node[T]{Value: v, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++
	return n
}

// PushFront prepends v and returns its node.
func (l *List[T]) PushFront(v T) *Node[T] {
	n := &Node[T]{Value: v, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.size++
	return n
}

// Remove detaches n from the list in O(1). n must belong to l.
func (l *List[T]) Remove(n *Node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.size--
}

// Next returns the node following n, or nil at the tail.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the node preceding n, or nil at the head.
func (n *Node[T]) Prev() *Node[T] { return n.prev }
