package visited

import (
	"reflect"
)

// ID is the identity of one graph node: its dynamic type plus the address of
// the data it points at. Only pointer-like values have an identity; plain
// values are copied on every access and cannot participate in a cycle.
type ID struct {
	typ reflect.Type
	ptr uintptr
	len int // slice length; -1 for non-slices (a resliced view is a different node)
}

// IDOf derives the identity of a reflect.Value, reporting false for values
// that have no stable address (primitives, structs held by value, invalid
// values).
func IDOf(v reflect.Value) (ID, bool) {
	if !v.IsValid() {
		return ID{}, false
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if v.IsNil() {
			return ID{}, false
		}
		return ID{typ: v.Type(), ptr: v.Pointer(), len: -1}, true
	case reflect.Slice:
		if v.IsNil() {
			return ID{}, false
		}
		return ID{typ: v.Type(), ptr: v.Pointer(), len: v.Len()}, true
	default:
		return ID{}, false
	}
}

// Same reports whether two values are the very same node.
func Same(a, e reflect.Value) bool {
	aID, aOK := IDOf(a)
	eID, eOK := IDOf(e)
	return aOK && eOK && aID == eID
}

type pair struct {
	actual   ID
	expected ID
}

// Pairs is the ancestor set of one in-flight comparison. It is exclusively
// owned by that call: the walk is synchronous and single-goroutine (one
// plain depth-first recursion), so no locking is involved.
type Pairs struct {
	active map[pair]struct{}
}

// New creates an empty tracker for a single top-level comparison call.
func New() *Pairs {
	return &Pairs{active: make(map[pair]struct{})}
}

// Seen reports whether the pair is an ancestor on the current path.
func (p *Pairs) Seen(actual, expected ID) bool {
	_, ok := p.active[pair{actual, expected}]
	return ok
}

// Push records the pair for the duration of its subtree.
func (p *Pairs) Push(actual, expected ID) {
	p.active[pair{actual, expected}] = struct{}{}
}

// Pop removes the pair when its subtree returns, regardless of outcome.
func (p *Pairs) Pop(actual, expected ID) {
	delete(p.active, pair{actual, expected})
}
