package list

import (
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrLengthMismatch is returned if the stored length does not match the number of linked nodes.
	ErrLengthMismatch = ierrors.New("length mismatch")

	// ErrBrokenLink is returned if two adjacent nodes do not point at each other.
	ErrBrokenLink = ierrors.New("broken link")

	// ErrDanglingEnd is returned if the head or the tail is inconsistent with the rest of the list.
	ErrDanglingEnd = ierrors.New("dangling end")

	// ErrArenaCorrupted is returned if the node storage disagrees with the list.
	ErrArenaCorrupted = ierrors.New("arena corrupted")
)

// CheckInvariants walks the LinkedList in both directions and returns an error describing the first structural
// inconsistency it finds.
func (l *LinkedList[T]) CheckInvariants() error {
	if err := l.checkEnds(); err != nil {
		return err
	}

	if err := l.checkWalk(head); err != nil {
		return ierrors.Wrap(err, "forward walk failed")
	}

	if err := l.checkWalk(tail); err != nil {
		return ierrors.Wrap(err, "backward walk failed")
	}

	return l.checkArena()
}

// checkEnds verifies the head and tail references against the length.
func (l *LinkedList[T]) checkEnds() error {
	headHandle, tailHandle := l.ends[head], l.ends[tail]

	if l.len == 0 {
		if !headHandle.isAbsent() || !tailHandle.isAbsent() {
			return ierrors.Wrap(ErrDanglingEnd, "empty list must not reference any node")
		}

		return nil
	}

	for _, at := range []end{head, tail} {
		node, exists := l.nodes.get(l.ends[at])
		if !exists {
			return ierrors.Wrapf(ErrDanglingEnd, "end %d references a released node", at)
		}

		if !node.links[at.outward()].isAbsent() {
			return ierrors.Wrapf(ErrDanglingEnd, "end %d has an outward link", at)
		}
	}

	if (l.len == 1) != (headHandle == tailHandle) {
		return ierrors.Wrapf(ErrDanglingEnd, "head and tail must coincide exactly for a single element (len %d)", l.len)
	}

	return nil
}

// checkWalk follows the links starting at the given end, checking link symmetry and counting the visited nodes.
func (l *LinkedList[T]) checkWalk(from end) error {
	var count int
	previous := absent
	for current := l.ends[from]; !current.isAbsent(); {
		if count++; count > l.len {
			return ierrors.Wrapf(ErrLengthMismatch, "more than %d nodes reachable", l.len)
		}

		node, exists := l.nodes.get(current)
		if !exists {
			return ierrors.Wrapf(ErrBrokenLink, "link to released node at index %d", current.index)
		}

		if node.links[from.outward()] != previous {
			return ierrors.Wrapf(ErrBrokenLink, "node at index %d does not link back to its predecessor", current.index)
		}

		previous, current = current, node.links[from.inward()]
	}

	if count != l.len {
		return ierrors.Wrapf(ErrLengthMismatch, "%d nodes reachable but length is %d", count, l.len)
	}

	if previous != l.ends[1-from] {
		return ierrors.Wrap(ErrDanglingEnd, "walk did not end at the opposite end")
	}

	return nil
}

// checkArena verifies that the node storage holds exactly the linked nodes.
func (l *LinkedList[T]) checkArena() error {
	if l.nodes.live != l.len {
		return ierrors.Wrapf(ErrArenaCorrupted, "%d live nodes but length is %d", l.nodes.live, l.len)
	}

	if len(l.nodes.free)+l.nodes.live != len(l.nodes.slots) {
		return ierrors.Wrapf(ErrArenaCorrupted, "%d free and %d live nodes in %d slots", len(l.nodes.free), l.nodes.live, len(l.nodes.slots))
	}

	for _, index := range l.nodes.free {
		if l.nodes.slots[index].live {
			return ierrors.Wrapf(ErrArenaCorrupted, "free slot %d is live", index)
		}
	}

	return nil
}
