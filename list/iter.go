package list

import "iter"

// Do calls function f on each node of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[V]) Do(f func(n *Node[V]) bool) {
	for n := l.head; n != nil; n = n.next {
		if !f(n) {
			return
		}
	}
}

// ForEach calls f with each value, its index and its node, from front to back.
// f must not change l.
func (l *List[V]) ForEach(f func(value V, i int, n *Node[V])) {
	i := 0
	for n := l.head; n != nil; n = n.next {
		f(n.Value, i, n)
		i++
	}
}

// ForEachReverse calls f with each value, its index and its node, from back to front.
// f must not change l.
func (l *List[V]) ForEachReverse(f func(value V, i int, n *Node[V])) {
	i := l.len - 1
	for n := l.tail; n != nil; n = n.prev {
		f(n.Value, i, n)
		i--
	}
}

// All returns an iterator over the values from front to back.
// The list must not change while the iterator is in use.
func (l *List[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values from back to front.
// The list must not change while the iterator is in use.
func (l *List[V]) Backward() iter.Seq[V] {
	return func(yield func(V) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Nodes returns an iterator over index and node pairs from front to back.
// The list must not change while the iterator is in use.
func (l *List[V]) Nodes() iter.Seq2[int, *Node[V]] {
	return func(yield func(int, *Node[V]) bool) {
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n) {
				return
			}
			i++
		}
	}
}

// Find returns the first node whose value satisfies f or nil.
func (l *List[V]) Find(f func(value V) bool) *Node[V] {
	for n := l.head; n != nil; n = n.next {
		if f(n.Value) {
			return n
		}
	}
	return nil
}

// IndexOf returns the index of the first value satisfying f or -1.
func (l *List[V]) IndexOf(f func(value V) bool) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if f(n.Value) {
			return i
		}
		i++
	}
	return -1
}

// Contains reports whether any value satisfies f.
func (l *List[V]) Contains(f func(value V) bool) bool {
	return l.Find(f) != nil
}

// Filter returns the values satisfying f, in list order.
func (l *List[V]) Filter(f func(value V, i int) bool) []V {
	var result []V
	l.ForEach(func(value V, i int, _ *Node[V]) {
		if f(value, i) {
			result = append(result, value)
		}
	})
	return result
}

// ToSlice returns the values of the list in order.
func (l *List[V]) ToSlice() []V {
	result := make([]V, 0, l.len)
	for n := l.head; n != nil; n = n.next {
		result = append(result, n.Value)
	}
	return result
}

// Map returns f applied to each value of l, in list order.
func Map[V, U any](l *List[V], f func(value V, i int) U) []U {
	result := make([]U, 0, l.len)
	l.ForEach(func(value V, i int, _ *Node[V]) {
		result = append(result, f(value, i))
	})
	return result
}
