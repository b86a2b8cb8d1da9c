package registry

// Comparator is a binary equivalence predicate for values of a registered
// type or type pair. Implementations receive the raw node values and decide
// equality on their own terms; the engine never descends past a node once a
// comparator has ruled on it.
//
// A comparator must return, not panic. A panicking comparator is treated as
// a configuration contract violation and aborts the whole comparison.
type Comparator interface {
	Equal(actual, expected any) bool
}

// Func adapts an ordinary function to the Comparator interface.
type Func func(actual, expected any) bool

// Equal implements Comparator.
func (f Func) Equal(actual, expected any) bool {
	return f(actual, expected)
}
