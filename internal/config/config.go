package config

import (
	"reflect"

	"github.com/vk/structcmp/internal/registry"
)

// Comparison is the configuration for recursive comparison calls. The zero
// value is not usable; construct instances with New.
//
// Registration is allowed between comparison passes and, because the
// underlying registry takes a write lock, even while other comparisons are
// reading — though the usual lifecycle is configure once, compare many.
type Comparison struct {
	reg *registry.Registry
}

// New creates a comparison configuration with an empty registry: every node
// falls through to default field-by-field recursion until comparators are
// registered.
func New() *Comparison {
	return &Comparison{reg: registry.New()}
}

// RegisterComparatorForType associates a comparator with an exact runtime
// type. Nodes of that type become atomic: the comparator's verdict stands
// for the whole subtree and recursion never descends into the type's fields.
// Registering again for the same type replaces the prior comparator.
//
// Comparators are registered for the value type; the engine resolves through
// pointers, so a *T node is checked by a comparator registered for T.
func (c *Comparison) RegisterComparatorForType(t reflect.Type, cmp registry.Comparator) {
	c.reg.Register(t, cmp)
}

// RegisterComparatorForTypes associates a symmetric comparator with a pair
// of distinct types. The comparator applies regardless of which side of the
// comparison presents which type, so bridged values compare equal in both
// argument orders.
func (c *Comparison) RegisterComparatorForTypes(t1, t2 reflect.Type, cmp registry.Comparator) {
	c.reg.RegisterPair(t1, t2, cmp)
}

// Registry exposes the underlying registry for the engine's resolution step.
func (c *Comparison) Registry() *registry.Registry {
	return c.reg
}
