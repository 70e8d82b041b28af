package list

// region handle ///////////////////////////////////////////////////////////////////////////////////////////////////////

// handle addresses a slot of the arena. The zero handle is the absent link.
type handle struct {
	// index is the position of the slot in the arena.
	index uint32

	// generation must match the generation of the slot for the handle to be valid.
	generation uint32
}

// absent is the handle that does not point to any node.
var absent = handle{}

// isAbsent returns true if the handle does not point to any node.
func (h handle) isAbsent() bool {
	return h.generation == 0
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region slot /////////////////////////////////////////////////////////////////////////////////////////////////////////

// slot is a node of the list stored inside the arena.
type slot[T any] struct {
	// value is set once when the slot is allocated.
	value T

	// links holds the previous and the next node indexed by direction.
	links [2]handle

	// generation is bumped every time the slot is released.
	generation uint32

	// live is true while the slot holds a node of the list.
	live bool
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region arena ////////////////////////////////////////////////////////////////////////////////////////////////////////

// arena owns all nodes of a list and hands out generation checked handles to them.
type arena[T any] struct {
	slots []slot[T]
	free  []uint32
	live  int
}

// alloc stores the value in a free slot (or a new one) and returns its handle.
func (a *arena[T]) alloc(value T) handle {
	var index uint32
	if freeCount := len(a.free); freeCount > 0 {
		index = a.free[freeCount-1]
		a.free = a.free[:freeCount-1]
	} else {
		index = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{generation: 1})
	}

	s := &a.slots[index]
	s.value = value
	s.links = [2]handle{}
	s.live = true
	a.live++

	return handle{index: index, generation: s.generation}
}

// release frees the slot behind the handle and returns the value it held.
func (a *arena[T]) release(h handle) (value T) {
	s, exists := a.get(h)
	if !exists {
		return value
	}

	value = s.value

	var zero T
	s.value = zero
	s.links = [2]handle{}
	s.live = false
	if s.generation++; s.generation == 0 {
		s.generation = 1
	}

	a.free = append(a.free, h.index)
	a.live--

	return value
}

// releaseAll frees every live slot while keeping the generations so old handles stay stale.
func (a *arena[T]) releaseAll() {
	for i := range a.slots {
		if a.slots[i].live {
			a.release(handle{index: uint32(i), generation: a.slots[i].generation})
		}
	}
}

// get returns the slot behind the handle if the handle is still valid.
func (a *arena[T]) get(h handle) (s *slot[T], exists bool) {
	if h.isAbsent() || int(h.index) >= len(a.slots) {
		return nil, false
	}

	if s = &a.slots[h.index]; !s.live || s.generation != h.generation {
		return nil, false
	}

	return s, true
}

// mustGet returns the slot behind a handle that the list itself holds.
func (a *arena[T]) mustGet(h handle) *slot[T] {
	s, exists := a.get(h)
	if !exists {
		panic("list: internal handle points to a released node")
	}

	return s
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
