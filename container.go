package list

import (
	"github.com/emirpasic/gods/containers"

	"github.com/iotaledger/hive.go/lo"
)

// containerView exposes a LinkedList through the gods Container interface.
type containerView[T any] struct {
	list *LinkedList[T]
}

// AsContainer returns a view of the LinkedList that implements containers.Container. The view shares the underlying
// LinkedList, so clearing it clears the list.
func (l *LinkedList[T]) AsContainer() containers.Container {
	return &containerView[T]{list: l}
}

func (c *containerView[T]) Empty() bool {
	return c.list.IsEmpty()
}

func (c *containerView[T]) Size() int {
	return c.list.Len()
}

func (c *containerView[T]) Clear() {
	c.list.Clear()
}

func (c *containerView[T]) Values() []interface{} {
	return lo.Map(c.list.Values(), func(value T) interface{} {
		return value
	})
}

func (c *containerView[T]) String() string {
	return c.list.String()
}

// code contract - make sure the type implements the interface.
var _ containers.Container = &containerView[int]{}
