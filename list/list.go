/*
Package list implements a doubly linked list with identifier lookup.

Every node receives an identifier from its list's counter when it is inserted.
Identifiers are never reused by the same list, so a node can be addressed in O(1)
by identifier independent of its current position.

A List is not safe for concurrent use and must not be changed during a traversal.
*/
package list

// List is a doubly linked list with an identifier index.
//
// The zero value is a ready to use empty list.
type List[V any] struct {
	head, tail *Node[V]
	nodes      map[uint64]*Node[V]
	lastID     uint64
	len        int
}

// FromSlice creates a list holding values in order.
func FromSlice[V any](values []V) *List[V] {
	l := &List[V]{}
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Len returns the number of nodes in the list.
func (l *List[V]) Len() int {
	return l.len
}

// IsEmpty reports whether the list has no nodes.
func (l *List[V]) IsEmpty() bool {
	return l.len == 0
}

// Front returns the first node of the list or nil.
func (l *List[V]) Front() *Node[V] {
	return l.head
}

// Back returns the last node of the list or nil.
func (l *List[V]) Back() *Node[V] {
	return l.tail
}

// First returns the first value of the list.
func (l *List[V]) First() (value V, ok bool) {
	if l.head == nil {
		return value, false
	}
	return l.head.Value, true
}

// Last returns the last value of the list.
func (l *List[V]) Last() (value V, ok bool) {
	if l.tail == nil {
		return value, false
	}
	return l.tail.Value, true
}

// PushFront inserts a value at the front of list l and returns the new node.
func (l *List[V]) PushFront(value V) *Node[V] {
	n := l.newNode(value)
	l.link(n, nil, l.head)
	return n
}

// PushBack inserts a value at the back of list l and returns the new node.
func (l *List[V]) PushBack(value V) *Node[V] {
	n := l.newNode(value)
	l.link(n, l.tail, nil)
	return n
}

// InsertAfter inserts a value immediately after mark and returns the new node.
// If mark == l.Back(), the new node becomes the back node.
func (l *List[V]) InsertAfter(mark *Node[V], value V) *Node[V] {
	l.mustOwn(mark)
	n := l.newNode(value)
	l.link(n, mark, mark.next)
	return n
}

// InsertBefore inserts a value immediately before mark and returns the new node.
// If mark == l.Front(), the new node becomes the front node.
func (l *List[V]) InsertBefore(mark *Node[V], value V) *Node[V] {
	l.mustOwn(mark)
	n := l.newNode(value)
	l.link(n, mark.prev, mark)
	return n
}

// InsertAt inserts a value so that it ends up at index i and returns the new node.
// It returns nil if i is not in [0, l.Len()].
func (l *List[V]) InsertAt(i int, value V) *Node[V] {
	switch {
	case i < 0 || i > l.len:
		return nil
	case i == 0:
		return l.PushFront(value)
	case i == l.len:
		return l.PushBack(value)
	default:
		return l.InsertBefore(l.NodeAt(i), value)
	}
}

// PopFront removes the first node and returns its value.
func (l *List[V]) PopFront() (value V, ok bool) {
	if l.head == nil {
		return value, false
	}
	return l.Remove(l.head), true
}

// PopBack removes the last node and returns its value.
func (l *List[V]) PopBack() (value V, ok bool) {
	if l.tail == nil {
		return value, false
	}
	return l.Remove(l.tail), true
}

// Remove a node from the list and return its value.
// It panics if n does not belong to l.
func (l *List[V]) Remove(n *Node[V]) V {
	l.mustOwn(n)
	l.unlink(n)
	delete(l.nodes, n.id)
	n.list = nil
	return n.Value
}

// RemoveAt removes the node at index i and returns its value.
func (l *List[V]) RemoveAt(i int) (value V, ok bool) {
	switch {
	case i < 0 || i >= l.len:
		return value, false
	case i == 0:
		return l.PopFront()
	case i == l.len-1:
		return l.PopBack()
	default:
		return l.Remove(l.NodeAt(i)), true
	}
}

// NodeAt returns the node at index i or nil if i is out of range.
// The walk starts from whichever end of the list is closer to i.
func (l *List[V]) NodeAt(i int) *Node[V] {
	if i < 0 || i >= l.len {
		return nil
	}

	if i < l.len/2 {
		n := l.head
		for ; i > 0; i-- {
			n = n.next
		}
		return n
	}

	n := l.tail
	for j := l.len - 1; j > i; j-- {
		n = n.prev
	}
	return n
}

// At returns the value at index i.
func (l *List[V]) At(i int) (value V, ok bool) {
	if n := l.NodeAt(i); n != nil {
		return n.Value, true
	}
	return value, false
}

// Clear removes all nodes from the list.
// Identifiers assigned before Clear are not reused.
func (l *List[V]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.next, n.prev, n.list = nil, nil, nil
		n = next
	}
	l.head = nil
	l.tail = nil
	l.nodes = nil
	l.len = 0
}

// MoveAfter moves a node to its new position after mark.
// If mark == l.Back(), n becomes the new back node.
func (l *List[V]) MoveAfter(n, mark *Node[V]) {
	l.mustOwn(n)
	l.mustOwn(mark)

	if n == mark {
		return
	}

	l.unlink(n)
	l.link(n, mark, mark.next)
}

// MoveBefore moves a node to its new position before mark.
// If mark == l.Front(), n becomes the new front node.
func (l *List[V]) MoveBefore(n, mark *Node[V]) {
	l.mustOwn(n)
	l.mustOwn(mark)

	if n == mark {
		return
	}

	l.unlink(n)
	l.link(n, mark.prev, mark)
}

// MoveToFront moves the node to the front of list l.
func (l *List[V]) MoveToFront(n *Node[V]) {
	l.MoveBefore(n, l.head)
}

// MoveToBack moves the node to the back of list l.
func (l *List[V]) MoveToBack(n *Node[V]) {
	l.MoveAfter(n, l.tail)
}

// Move moves node n forward or backwards by at most delta positions
// or until the node becomes the front or back node in the list.
func (l *List[V]) Move(n *Node[V], delta int) {
	l.mustOwn(n)

	mark := n

	switch {
	case delta == 0:
		return

	case delta > 0:
		for i := 0; i < delta && mark.next != nil; i++ {
			mark = mark.next
		}

		l.MoveAfter(n, mark)

	case delta < 0:
		for i := 0; i > delta && mark.prev != nil; i-- {
			mark = mark.prev
		}

		l.MoveBefore(n, mark)
	}
}

func (l *List[V]) newNode(value V) *Node[V] {
	if l.nodes == nil {
		l.nodes = make(map[uint64]*Node[V])
	}

	l.lastID++
	n := &Node[V]{
		list:  l,
		id:    l.lastID,
		Value: value,
	}
	l.nodes[n.id] = n

	return n
}

// link inserts n between prev and next. A nil prev or next means n becomes
// the front or back node.
func (l *List[V]) link(n, prev, next *Node[V]) {
	n.prev = prev
	n.next = next

	if prev != nil {
		prev.next = n
	} else {
		l.head = n
	}

	if next != nil {
		next.prev = n
	} else {
		l.tail = n
	}

	l.len++
}

// unlink detaches n from its neighbours. The identifier index is left untouched.
func (l *List[V]) unlink(n *Node[V]) {
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

	n.next = nil
	n.prev = nil
	l.len--
}

func (l *List[V]) mustOwn(n *Node[V]) {
	if n == nil || n.list != l {
		panic("list: invalid element")
	}
}
