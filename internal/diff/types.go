package diff

import (
	"fmt"

	"github.com/vk/structcmp/internal/fieldpath"
)

// Kind classifies a single difference.
type Kind int

const (
	// ValueMismatch indicates two leaf values differ under natural equality.
	ValueMismatch Kind = iota

	// NullnessMismatch indicates exactly one side is nil/absent.
	NullnessMismatch

	// ShapeMismatch indicates the containers disagree on length or key set,
	// or two incompatible types met with no comparator and no shared shape.
	ShapeMismatch

	// ComparatorRejected indicates a registered comparator reported the pair
	// unequal.
	ComparatorRejected
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case ValueMismatch:
		return "value mismatch"
	case NullnessMismatch:
		return "nullness mismatch"
	case ShapeMismatch:
		return "shape mismatch"
	case ComparatorRejected:
		return "comparator rejected"
	default:
		return "unknown"
	}
}

// Difference is the immutable record of one divergence between the actual and
// expected graphs. It is created by the engine and never mutated afterwards.
type Difference struct {
	// Path locates the diverging node relative to the comparison root. It is
	// resolvable on both graphs, though the values found there may have
	// different runtime types.
	Path fieldpath.Path

	// Kind classifies the divergence.
	Kind Kind

	// Actual and Expected carry the values found at Path on each side.
	Actual   any
	Expected any

	// Explanation optionally names the comparator that rejected equality or
	// describes the shape discrepancy. Empty for plain value mismatches.
	Explanation string
}

// String renders the difference as a single report line. Full failure-message
// formatting belongs to callers; this is the raw record form.
func (d Difference) String() string {
	location := d.Path.String()
	if d.Path.IsRoot() {
		location = "(root)"
	}
	s := fmt.Sprintf("%s: %s: actual=%v expected=%v", location, d.Kind, d.Actual, d.Expected)
	if d.Explanation != "" {
		s += " (" + d.Explanation + ")"
	}
	return s
}
