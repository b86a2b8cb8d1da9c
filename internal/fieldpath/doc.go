// Package fieldpath models the location of a node within a compared object
// graph as an ordered sequence of segments, and renders it in the canonical
// dotted/indexed form used in difference reports, e.g.
// `home.address.number`, `friends[1].name` or `env[PATH]`.
package fieldpath
