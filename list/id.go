package list

// NodeByID returns the node with identifier id or nil.
func (l *List[V]) NodeByID(id uint64) *Node[V] {
	return l.nodes[id]
}

// ByID returns the value of the node with identifier id.
func (l *List[V]) ByID(id uint64) (value V, ok bool) {
	if n, ok := l.nodes[id]; ok {
		return n.Value, true
	}
	return value, false
}

// HasID reports whether a node with identifier id is in the list.
func (l *List[V]) HasID(id uint64) bool {
	_, ok := l.nodes[id]
	return ok
}

// RemoveByID removes the node with identifier id and returns its value.
func (l *List[V]) RemoveByID(id uint64) (value V, ok bool) {
	if n, ok := l.nodes[id]; ok {
		return l.Remove(n), true
	}
	return value, false
}

// RemovePrevByID removes the node before the node with identifier id.
// It fails if id is unknown or its node is the front node.
func (l *List[V]) RemovePrevByID(id uint64) (value V, ok bool) {
	if n, ok := l.nodes[id]; ok && n.prev != nil {
		return l.Remove(n.prev), true
	}
	return value, false
}

// RemoveNextByID removes the node after the node with identifier id.
// It fails if id is unknown or its node is the back node.
func (l *List[V]) RemoveNextByID(id uint64) (value V, ok bool) {
	if n, ok := l.nodes[id]; ok && n.next != nil {
		return l.Remove(n.next), true
	}
	return value, false
}

// InsertAfterID inserts a value after the node with identifier id.
// It returns nil if id is unknown.
func (l *List[V]) InsertAfterID(id uint64, value V) *Node[V] {
	if mark, ok := l.nodes[id]; ok {
		return l.InsertAfter(mark, value)
	}
	return nil
}

// InsertBeforeID inserts a value before the node with identifier id.
// It returns nil if id is unknown.
func (l *List[V]) InsertBeforeID(id uint64, value V) *Node[V] {
	if mark, ok := l.nodes[id]; ok {
		return l.InsertBefore(mark, value)
	}
	return nil
}
