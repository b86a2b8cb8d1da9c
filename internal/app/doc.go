// Package app contains the document-diff application logic: it loads two
// documents, runs the recursive comparison under a configuration assembled
// from CLI options, and renders one report line per difference. It is
// decoupled from any specific entrypoint like a CLI or server.
package app
