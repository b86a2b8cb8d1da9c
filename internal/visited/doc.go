// Package visited tracks the identity pairs currently on the active
// recursion path of one comparison call, so cyclic graphs terminate.
//
// The set follows stack discipline: a pair is pushed when the engine
// descends into it and popped when its subtree returns. It records
// ancestors, not a global "already compared" cache — the same pair may
// legitimately be compared again on a sibling branch. When a pair reappears
// while still an ancestor, the reference chain has looped back and the pair
// is treated as equal instead of recursing forever.
package visited
