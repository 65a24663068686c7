package list

// Node is a list element.
type Node[V any] struct {
	next, prev *Node[V]
	list       *List[V]
	id         uint64
	Value      V
}

// ID returns the identifier the list assigned to n when it was inserted.
func (n *Node[V]) ID() uint64 {
	return n.id
}

// Next returns the next node or nil if n is the last node in its list.
func (n *Node[V]) Next() *Node[V] {
	return n.next
}

// Prev returns the previous node or nil if n is the first node in its list.
func (n *Node[V]) Prev() *Node[V] {
	return n.prev
}
