package list

// direction selects one of the two links of a node.
type direction int

const (
	prevLink direction = iota
	nextLink
)

// end selects the boundary of the list that an operation updates.
type end int

const (
	head end = iota
	tail
)

// outward returns the link direction that points away from the list at this end.
func (e end) outward() direction {
	if e == head {
		return prevLink
	}

	return nextLink
}

// inward returns the link direction that points back into the list at this end.
func (e end) inward() direction {
	if e == head {
		return nextLink
	}

	return prevLink
}
