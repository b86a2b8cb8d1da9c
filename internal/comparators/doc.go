// Package comparators ships ready-made comparators for types whose natural
// representation makes field-by-field recursion the wrong equality: numeric
// values needing tolerance, strings compared without case, time.Time whose
// wall/monotonic/location internals differ between equal instants, and
// cty.Value whose representation is entirely unexported.
package comparators
