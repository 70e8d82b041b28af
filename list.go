// Package list implements a generic doubly linked list that supports insertion and removal at both ends and forward
// iteration.
//
// Nodes live in an arena owned by the list and link to each other through generation checked handles, so an Iterator
// that outlives the node under its cursor terminates instead of reading a recycled node.
//
// A LinkedList is not safe for concurrent use.
package list

import (
	"fmt"
	"iter"

	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/stringify"
)

// LinkedList is a doubly linked list of values of type T. Values cannot be changed after they have been added.
//
// The zero value is an empty list ready to use.
type LinkedList[T any] struct {
	// nodes owns all nodes of the list.
	nodes arena[T]

	// ends holds the head and the tail of the list (both absent if the list is empty).
	ends [2]handle

	// len is the number of elements in the list.
	len int
}

// New returns a new empty LinkedList.
func New[T any]() *LinkedList[T] {
	return new(LinkedList[T])
}

// Push appends the value to the end of the LinkedList.
func (l *LinkedList[T]) Push(value T) {
	l.push(value, tail)
}

// PushFront inserts the value at the front of the LinkedList.
func (l *LinkedList[T]) PushFront(value T) {
	l.push(value, head)
}

// Pop removes the last element of the LinkedList and returns its value and whether the element existed.
func (l *LinkedList[T]) Pop() (value T, exists bool) {
	return l.pop(tail)
}

// PopFront removes the first element of the LinkedList and returns its value and whether the element existed.
func (l *LinkedList[T]) PopFront() (value T, exists bool) {
	return l.pop(head)
}

// Front returns the first value of the LinkedList without removing it.
func (l *LinkedList[T]) Front() (value T, exists bool) {
	return l.peek(head)
}

// Back returns the last value of the LinkedList without removing it.
func (l *LinkedList[T]) Back() (value T, exists bool) {
	return l.peek(tail)
}

// Len returns the number of elements in the LinkedList.
func (l *LinkedList[T]) Len() int {
	return l.len
}

// IsEmpty returns true if the LinkedList contains no elements.
func (l *LinkedList[T]) IsEmpty() bool {
	return l.len == 0
}

// Clear removes all elements from the LinkedList. Iterators created before are terminated.
func (l *LinkedList[T]) Clear() {
	l.nodes.releaseAll()
	l.ends = [2]handle{}
	l.len = 0
}

// Iter returns a new Iterator that starts at the current front of the LinkedList.
func (l *LinkedList[T]) Iter() *Iterator[T] {
	return newIterator(l, l.ends[head])
}

// All returns a sequence over the values of the LinkedList from front to back.
//
// It is equivalent to draining Iter and is intended to be used with for-range.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := l.Iter(); ; {
			value, ok := it.Next()
			if !ok || !yield(value) {
				return
			}
		}
	}
}

// ForEach executes the callback for each value from front to back. The iteration is aborted if the callback returns an
// error.
func (l *LinkedList[T]) ForEach(callback func(value T) error) error {
	for value := range l.All() {
		if err := callback(value); err != nil {
			return err
		}
	}

	return nil
}

// Range executes the callback for each value from front to back.
func (l *LinkedList[T]) Range(callback func(value T)) {
	for value := range l.All() {
		callback(value)
	}
}

// Values returns a slice of all values from front to back.
func (l *LinkedList[T]) Values() []T {
	values := make([]T, 0, l.len)
	l.Range(func(value T) {
		values = append(values, value)
	})

	return values
}

// String returns a human-readable version of the LinkedList.
func (l *LinkedList[T]) String() string {
	return stringify.Struct("LinkedList",
		stringify.NewStructField("len", l.len),
		stringify.NewStructField("values", lo.Map(l.Values(), func(value T) string { return fmt.Sprint(value) })),
	)
}

// push links a new node holding the value at the given end.
func (l *LinkedList[T]) push(value T, at end) {
	newNode := l.nodes.alloc(value)
	l.len++

	if l.ends[at].isAbsent() {
		l.ends = [2]handle{newNode, newNode}

		return
	}

	oldEnd := l.ends[at]
	l.nodes.mustGet(oldEnd).links[at.outward()] = newNode
	l.nodes.mustGet(newNode).links[at.inward()] = oldEnd
	l.ends[at] = newNode
}

// pop unlinks the node at the given end and returns its value.
func (l *LinkedList[T]) pop(at end) (value T, exists bool) {
	if l.ends[at].isAbsent() {
		return value, false
	}

	oldEnd := l.ends[at]
	if neighbor := l.nodes.mustGet(oldEnd).links[at.inward()]; neighbor.isAbsent() {
		l.ends = [2]handle{}
	} else {
		l.ends[at] = neighbor
		l.nodes.mustGet(neighbor).links[at.outward()] = absent
	}
	l.len--

	return l.nodes.release(oldEnd), true
}

// peek returns the value stored at the given end.
func (l *LinkedList[T]) peek(at end) (value T, exists bool) {
	if l.ends[at].isAbsent() {
		return value, false
	}

	return l.nodes.mustGet(l.ends[at]).value, true
}
