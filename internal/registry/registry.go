package registry

import (
	"reflect"
	"sync"
)

// pairKey identifies a symmetric bridge entry. Both argument orders of a
// registered pair are stored, so lookups stay a single map access.
type pairKey struct {
	a reflect.Type
	e reflect.Type
}

// Registry holds the type-to-comparator associations for one comparison
// configuration. At most one comparator exists per exact type and per type
// pair; re-registration replaces the prior entry.
type Registry struct {
	mu    sync.RWMutex
	exact map[reflect.Type]Comparator
	pairs map[pairKey]Comparator
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		exact: make(map[reflect.Type]Comparator),
		pairs: make(map[pairKey]Comparator),
	}
}

// Register associates a comparator with an exact type, overwriting any prior
// comparator for that type.
func (r *Registry) Register(t reflect.Type, c Comparator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exact[t] = c
}

// RegisterPair associates a symmetric comparator with a type pair. The entry
// matches the pair in either argument order, and registering (t1, t2) then
// (t2, t1) overwrites the same entry.
func (r *Registry) RegisterPair(t1, t2 reflect.Type, c Comparator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pairs[pairKey{t1, t2}] = c
	r.pairs[pairKey{t2, t1}] = c
}

// Lookup returns the comparator registered for the exact type, if present.
func (r *Registry) Lookup(t reflect.Type) (Comparator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.exact[t]
	return c, ok
}

// LookupPair returns the symmetric comparator bridging the two types, in
// either order, if present.
func (r *Registry) LookupPair(at, et reflect.Type) (Comparator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.pairs[pairKey{at, et}]
	return c, ok
}

// Resolve selects the comparator applicable to a node holding the given
// actual and expected dynamic types. The most specific match wins: an exact
// entry for the actual side's type takes precedence over any cross-type
// bridge. Absent both, the node falls through to structural recursion.
func (r *Registry) Resolve(at, et reflect.Type) (Comparator, bool) {
	if c, ok := r.Lookup(at); ok {
		return c, true
	}
	if c, ok := r.LookupPair(at, et); ok {
		return c, true
	}
	return nil, false
}

// Len returns the number of distinct registrations (pair entries count once).
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pairs := 0
	for k := range r.pairs {
		if k.a == k.e {
			pairs += 2 // self-pairs occupy a single map slot
		} else {
			pairs++
		}
	}
	return len(r.exact) + pairs/2
}
