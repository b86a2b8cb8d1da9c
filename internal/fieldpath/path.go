// internal/fieldpath/path.go
package fieldpath

import (
	"fmt"
	"reflect"
	"strings"
)

// Path is the ordered sequence of segments locating a node relative to the
// comparison root. The zero value is the root itself.
//
// Paths are derived, never mutated: Field, Index and Key return a new Path
// with its own backing array, so a Path captured in a difference record stays
// stable while the traversal that produced it keeps descending.
type Path []Segment

// Field derives the path of a named field of the current node.
func (p Path) Field(name string) Path {
	return p.child(NewField(name))
}

// Index derives the path of a positional element of the current node.
func (p Path) Index(i int) Path {
	return p.child(NewIndex(i))
}

// Key derives the path of a keyed entry of the current node.
func (p Path) Key(key string) Path {
	return p.child(NewKey(key))
}

func (p Path) child(s Segment) Path {
	next := make(Path, len(p)+1)
	copy(next, p)
	next[len(p)] = s
	return next
}

// IsRoot returns true for the empty path addressing the top-level pair.
func (p Path) IsRoot() bool {
	return len(p) == 0
}

// String serializes the path into its canonical string representation. The
// root path renders as the empty string.
func (p Path) String() string {
	var sb strings.Builder
	for _, segment := range p {
		switch {
		case segment.HasIndex():
			fmt.Fprintf(&sb, "[%d]", segment.Index)
		case segment.HasKey():
			fmt.Fprintf(&sb, "[%s]", segment.Key)
		default:
			if sb.Len() > 0 {
				sb.WriteRune('.')
			}
			sb.WriteString(segment.Name)
		}
	}
	return sb.String()
}

// Equal checks for deep equality between two paths.
func (p Path) Equal(other Path) bool {
	return reflect.DeepEqual(p, other)
}
