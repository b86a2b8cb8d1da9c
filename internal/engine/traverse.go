package engine

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/vk/structcmp/internal/diff"
	"github.com/vk/structcmp/internal/fieldpath"
)

// walkStruct recurses into the exported fields of both sides. Same-typed
// structs compare field-for-field in declaration order. Differing struct
// types still compare when they share shape: the actual side's field set is
// the member list, matched by name on the expected side; names the expected
// type lacks become a single shape difference at the node itself, so every
// emitted path stays resolvable on both graphs.
//
// Unexported fields are skipped: reflection cannot read them without unsafe,
// and compared state is the observable state.
func (w *walker) walkStruct(p fieldpath.Path, av, ev reflect.Value) error {
	at, et := av.Type(), ev.Type()

	// A type with no exported fields is opaque from the outside: there is
	// nothing to decompose, so natural equality decides at the node itself.
	// Without this, two such values would compare equal vacuously.
	if !hasExportedFields(at) {
		w.walkLeaf(p, av, ev)
		return nil
	}

	if at == et {
		for i := 0; i < at.NumField(); i++ {
			field := at.Field(i)
			if !field.IsExported() {
				continue
			}
			if err := w.walk(p.Field(field.Name), av.Field(i), ev.Field(i)); err != nil {
				return err
			}
		}
		return nil
	}

	var missing []string
	for i := 0; i < at.NumField(); i++ {
		field := at.Field(i)
		if !field.IsExported() {
			continue
		}
		counterpart, ok := et.FieldByName(field.Name)
		if !ok || !counterpart.IsExported() {
			missing = append(missing, field.Name)
			continue
		}
		if err := w.walk(p.Field(field.Name), av.Field(i), ev.FieldByIndex(counterpart.Index)); err != nil {
			return err
		}
	}
	if len(missing) > 0 {
		w.report(diff.Difference{
			Path:        p,
			Kind:        diff.ShapeMismatch,
			Actual:      av.Interface(),
			Expected:    ev.Interface(),
			Explanation: fmt.Sprintf("fields absent on expected side (%s): %s", et, strings.Join(missing, ", ")),
		})
	}
	return nil
}

// walkSequence compares ordered sequences positionally. A length mismatch is
// one difference at the sequence itself, with no positional descent — there
// is no meaningful element correspondence to report once the lengths differ.
func (w *walker) walkSequence(p fieldpath.Path, av, ev reflect.Value) error {
	if av.Len() != ev.Len() {
		w.report(diff.Difference{
			Path:        p,
			Kind:        diff.ShapeMismatch,
			Actual:      av.Interface(),
			Expected:    ev.Interface(),
			Explanation: fmt.Sprintf("length %d vs %d", av.Len(), ev.Len()),
		})
		return nil
	}
	for i := 0; i < av.Len(); i++ {
		if err := w.walk(p.Index(i), av.Index(i), ev.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

// walkMap recurses into entries shared by both maps, visiting keys in sorted
// label order so repeated runs emit identical difference sequences despite
// Go's randomized map iteration. Keys present on only one side become a
// single shape difference at the map itself.
func (w *walker) walkMap(p fieldpath.Path, av, ev reflect.Value) error {
	at, et := av.Type(), ev.Type()
	if at.Key() != et.Key() {
		w.report(diff.Difference{
			Path:        p,
			Kind:        diff.ShapeMismatch,
			Actual:      av.Interface(),
			Expected:    ev.Interface(),
			Explanation: fmt.Sprintf("incompatible map key types %s and %s", at.Key(), et.Key()),
		})
		return nil
	}

	var onlyActual, onlyExpected []string
	shared := make([]mapEntry, 0, av.Len())
	for _, entry := range sortedKeys(av) {
		if ev.MapIndex(entry.key).IsValid() {
			shared = append(shared, entry)
		} else {
			onlyActual = append(onlyActual, entry.label)
		}
	}
	for _, entry := range sortedKeys(ev) {
		if !av.MapIndex(entry.key).IsValid() {
			onlyExpected = append(onlyExpected, entry.label)
		}
	}

	if len(onlyActual) > 0 || len(onlyExpected) > 0 {
		w.report(diff.Difference{
			Path:        p,
			Kind:        diff.ShapeMismatch,
			Actual:      av.Interface(),
			Expected:    ev.Interface(),
			Explanation: describeKeySets(onlyActual, onlyExpected),
		})
	}

	for _, entry := range shared {
		if err := w.walk(p.Key(entry.label), av.MapIndex(entry.key), ev.MapIndex(entry.key)); err != nil {
			return err
		}
	}
	return nil
}

// walkLeaf compares values with no further decomposable structure by natural
// equality. Distinct dynamic types meeting here share no structural shape,
// which is one difference at the node, not a descent.
func (w *walker) walkLeaf(p fieldpath.Path, av, ev reflect.Value) {
	at, et := av.Type(), ev.Type()
	if at != et {
		w.report(diff.Difference{
			Path:        p,
			Kind:        diff.ShapeMismatch,
			Actual:      av.Interface(),
			Expected:    ev.Interface(),
			Explanation: fmt.Sprintf("incompatible types %s and %s", at, et),
		})
		return
	}
	if !leafEqual(av, ev) {
		w.report(diff.Difference{
			Path:     p,
			Kind:     diff.ValueMismatch,
			Actual:   av.Interface(),
			Expected: ev.Interface(),
		})
	}
}

func hasExportedFields(t reflect.Type) bool {
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			return true
		}
	}
	return false
}

func leafEqual(av, ev reflect.Value) bool {
	switch av.Kind() {
	case reflect.Bool:
		return av.Bool() == ev.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return av.Int() == ev.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return av.Uint() == ev.Uint()
	case reflect.Float32, reflect.Float64:
		return av.Float() == ev.Float()
	case reflect.Complex64, reflect.Complex128:
		return av.Complex() == ev.Complex()
	case reflect.String:
		return av.String() == ev.String()
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		// Identity is the only equality these kinds have; the same-node case
		// was already handled before descent.
		return av.Pointer() == ev.Pointer()
	default:
		return reflect.DeepEqual(av.Interface(), ev.Interface())
	}
}

type mapEntry struct {
	label string
	key   reflect.Value
}

// sortedKeys formats every key for path segments and reporting, then sorts
// by that label to fix the visiting order.
func sortedKeys(m reflect.Value) []mapEntry {
	entries := make([]mapEntry, 0, m.Len())
	iter := m.MapRange()
	for iter.Next() {
		key := iter.Key()
		entries = append(entries, mapEntry{label: fmt.Sprintf("%v", key.Interface()), key: key})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].label < entries[j].label })
	return entries
}

func describeKeySets(onlyActual, onlyExpected []string) string {
	var parts []string
	if len(onlyActual) > 0 {
		parts = append(parts, "keys only in actual: "+strings.Join(onlyActual, ", "))
	}
	if len(onlyExpected) > 0 {
		parts = append(parts, "keys only in expected: "+strings.Join(onlyExpected, ", "))
	}
	return strings.Join(parts, "; ")
}
