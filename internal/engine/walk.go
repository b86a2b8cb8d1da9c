package engine

import (
	"fmt"
	"reflect"

	"github.com/vk/structcmp/internal/diff"
	"github.com/vk/structcmp/internal/fieldpath"
	"github.com/vk/structcmp/internal/registry"
	"github.com/vk/structcmp/internal/visited"
)

// walk compares one pair of nodes at path p. The check order is fixed:
// identity, nullness, comparator, cycle, then structural descent. Identity
// precedes comparators on purpose — the very same node is equal to itself
// even under a never-equal comparator — and nullness precedes them too, so a
// comparator is never handed a one-sided nil.
func (w *walker) walk(p fieldpath.Path, av, ev reflect.Value) error {
	av = unwrap(av)
	ev = unwrap(ev)

	aAbsent := isAbsent(av)
	eAbsent := isAbsent(ev)
	switch {
	case aAbsent && eAbsent:
		return nil
	case aAbsent != eAbsent:
		w.report(diff.Difference{
			Path:     p,
			Kind:     diff.NullnessMismatch,
			Actual:   valueOf(av),
			Expected: valueOf(ev),
		})
		return nil
	}

	if visited.Same(av, ev) {
		return nil
	}

	if done, err := w.tryComparator(p, av, ev); done || err != nil {
		return err
	}

	aID, aOK := visited.IDOf(av)
	eID, eOK := visited.IDOf(ev)
	if aOK && eOK {
		if w.pairs.Seen(aID, eID) {
			// The pair is an ancestor on the current path: the reference
			// chain looped back. Treat as equal and stop descending.
			w.logger.Debug("cycle detected, collapsing ancestor pair.", "path", p.String())
			return nil
		}
		w.pairs.Push(aID, eID)
		defer w.pairs.Pop(aID, eID)
	}

	// Pointers carry no structure of their own; compare what they point at.
	if av.Kind() == reflect.Pointer {
		av = av.Elem()
	}
	if ev.Kind() == reflect.Pointer {
		ev = ev.Elem()
	}

	switch {
	case av.Kind() == reflect.Struct && ev.Kind() == reflect.Struct:
		return w.walkStruct(p, av, ev)
	case isSequence(av) && isSequence(ev):
		return w.walkSequence(p, av, ev)
	case av.Kind() == reflect.Map && ev.Kind() == reflect.Map:
		return w.walkMap(p, av, ev)
	default:
		w.walkLeaf(p, av, ev)
		return nil
	}
}

// tryComparator resolves and applies a registered comparator for the node.
// It reports true when a comparator ruled (either way): the subtree is
// atomic and the walk must not descend past it.
func (w *walker) tryComparator(p fieldpath.Path, av, ev reflect.Value) (bool, error) {
	c, actual, expected, ok := w.resolve(av, ev)
	if !ok {
		return false, nil
	}

	equal, err := w.invoke(c, actual, expected)
	if err != nil {
		return true, err
	}
	if equal {
		w.logger.Debug("comparator accepted node as atomic.", "path", p.String(), "comparator", fmt.Sprintf("%T", c))
		return true, nil
	}
	w.report(diff.Difference{
		Path:        p,
		Kind:        diff.ComparatorRejected,
		Actual:      actual,
		Expected:    expected,
		Explanation: fmt.Sprintf("rejected by comparator %T", c),
	})
	return true, nil
}

// resolve selects the comparator applicable to the node's type pair. Exact
// entries for the actual side's dynamic type win over symmetric bridges, and
// both strategies also resolve through pointers: a *T node is checked by a
// comparator registered for T, against the dereferenced values.
func (w *walker) resolve(av, ev reflect.Value) (registry.Comparator, any, any, bool) {
	if c, ok := w.reg.Resolve(av.Type(), ev.Type()); ok {
		return c, av.Interface(), ev.Interface(), true
	}

	da, de := av, ev
	derefed := false
	if da.Kind() == reflect.Pointer {
		da = da.Elem()
		derefed = true
	}
	if de.Kind() == reflect.Pointer {
		de = de.Elem()
		derefed = true
	}
	if derefed {
		if c, ok := w.reg.Resolve(da.Type(), de.Type()); ok {
			return c, da.Interface(), de.Interface(), true
		}
	}
	return nil, nil, nil, false
}

// invoke runs a comparator, converting a panic into an error that aborts the
// whole comparison: a panicking comparator cannot be trusted to yield a
// valid verdict, so its fault is not recorded as a difference.
func (w *walker) invoke(c registry.Comparator, actual, expected any) (equal bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("comparator %T panicked comparing %T and %T: %v", c, actual, expected, r)
		}
	}()
	return c.Equal(actual, expected), nil
}

// unwrap resolves an interface value to its dynamic value so the walk and
// the registry always see concrete types.
func unwrap(v reflect.Value) reflect.Value {
	if v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		return v.Elem()
	}
	return v
}

// isAbsent reports whether the value represents "no value": an untyped nil
// or a nil of any nilable kind.
func isAbsent(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// valueOf extracts the value for a difference record; absent sides become nil.
func valueOf(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	return v.Interface()
}

func isSequence(v reflect.Value) bool {
	return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
}
