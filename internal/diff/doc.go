// Package diff defines the immutable difference records produced by the
// comparison engine and the per-call collector that accumulates them.
//
// A Difference never aborts a comparison: every divergence the engine finds
// is captured as data and the traversal continues, so one top-level call
// surfaces the complete, deterministically ordered list of mismatches rather
// than just the first one. Turning a non-empty list into a user-facing
// failure is the caller's job.
package diff
