// Package testutil provides shared fixtures and assertion helpers for the
// comparison test suites: a small person/home/address object model whose
// graphs can be made cyclic, and require-based checks over difference lists.
package testutil
