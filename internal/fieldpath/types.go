// internal/fieldpath/types.go
package fieldpath

// Segment represents a single component of a path: a named field, a
// positional index into a sequence, or a formatted map key.
type Segment struct {
	Name  string
	Index int    // -1 indicates no index is present.
	Key   string // formatted map key; empty when the segment is not keyed.
	keyed bool
}

// NewField creates a segment for a named struct field.
func NewField(name string) Segment {
	return Segment{Name: name, Index: -1}
}

// NewIndex creates a segment for a positional element of a sequence.
func NewIndex(index int) Segment {
	return Segment{Index: index}
}

// NewKey creates a segment for an entry of an associative container. The key
// is carried in its formatted form so paths stay printable for any key type.
func NewKey(key string) Segment {
	return Segment{Index: -1, Key: key, keyed: true}
}

// HasIndex returns true if the segment addresses a positional element.
func (s Segment) HasIndex() bool {
	return s.Index != -1
}

// HasKey returns true if the segment addresses a keyed entry.
func (s Segment) HasKey() bool {
	return s.keyed
}
