// Package registry stores the mappings between runtime types and the
// comparators that override field-by-field recursion for them.
//
// Two explicitly ordered lookup strategies exist: exact entries keyed by a
// single reflect.Type, matched against the actual value's dynamic type, and
// symmetric pair entries bridging two distinct types, matched regardless of
// which side presents which type. A type with a registered comparator is
// treated as a leaf during comparison: the comparator's verdict stands for
// the whole subtree.
//
// The registry is read many times and written rarely: registration takes the
// write lock, while any number of in-flight comparisons may resolve
// comparators concurrently under the read lock.
package registry
