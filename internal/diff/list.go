package diff

// List accumulates the differences of one top-level comparison call, in the
// order the engine discovered them (depth-first, left-to-right over the
// actual graph). It is exclusively owned by that call and performs no
// synchronization.
type List struct {
	diffs []Difference
}

// NewList creates an empty collector for a single comparison call.
func NewList() *List {
	return &List{}
}

// Add appends a difference in traversal order.
func (l *List) Add(d Difference) {
	l.diffs = append(l.diffs, d)
}

// IsEmpty returns true when no differences were recorded, i.e. the two
// graphs are recursively equal.
func (l *List) IsEmpty() bool {
	return len(l.diffs) == 0
}

// Len returns the number of recorded differences.
func (l *List) Len() int {
	return len(l.diffs)
}

// All returns the recorded differences in traversal order. The returned
// slice is the collector's own backing storage; callers must not mutate it.
func (l *List) All() []Difference {
	return l.diffs
}

// At returns the difference recorded at the given canonical path string, if
// any. Callers constructing failure messages use this to pull the record for
// a specific location.
func (l *List) At(path string) (Difference, bool) {
	for _, d := range l.diffs {
		if d.Path.String() == path {
			return d, true
		}
	}
	return Difference{}, false
}
