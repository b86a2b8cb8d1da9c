// Package engine implements the recursive comparison walk: two object
// graphs are traversed in lock-step, depth-first and left-to-right over the
// actual side, consulting the comparator registry and the visited-pair
// tracker at every node and emitting a difference record for each
// divergence.
//
// The engine never fails on a mismatch — mismatches are data, collected so
// one call surfaces all of them. The only error a comparison returns is a
// configuration contract violation: a registered comparator panicking.
package engine
