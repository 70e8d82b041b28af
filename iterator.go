package list

// Iterator walks the values of a LinkedList from front to back.
//
// An Iterator is fused: once Next reported the end of the sequence it keeps doing so. Mutating the LinkedList while an
// Iterator is alive is allowed but best-effort: the Iterator follows the live links, so values pushed at the back before
// it reached the end are still visited, and it terminates if the node under its cursor gets removed.
type Iterator[T any] struct {
	// list is the LinkedList that owns the nodes the cursor points to.
	list *LinkedList[T]

	// cursor points to the node whose value is yielded next.
	cursor handle

	// exhausted is set once the end of the sequence was reached.
	exhausted bool
}

// newIterator creates an Iterator positioned at the given node.
func newIterator[T any](list *LinkedList[T], cursor handle) *Iterator[T] {
	return &Iterator[T]{
		list:      list,
		cursor:    cursor,
		exhausted: cursor.isAbsent(),
	}
}

// Next returns the next value and true, or the zero value and false if the sequence is exhausted.
func (i *Iterator[T]) Next() (value T, ok bool) {
	if i.exhausted {
		return value, false
	}

	node, exists := i.list.nodes.get(i.cursor)
	if !exists {
		i.exhaust()

		return value, false
	}

	value = node.value
	if i.cursor = node.links[nextLink]; i.cursor.isAbsent() {
		i.exhaust()
	}

	return value, true
}

// Exhausted returns true if the Iterator will not yield any more values.
func (i *Iterator[T]) Exhausted() bool {
	return i.exhausted
}

// exhaust moves the Iterator into its terminal state.
func (i *Iterator[T]) exhaust() {
	i.exhausted = true
	i.cursor = absent
	i.list = nil
}
