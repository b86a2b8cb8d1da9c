// Package docload reads HCL, JSON and YAML documents into native Go value
// graphs (map[string]any, []any, string, float64, bool, nil) so the
// comparison engine can walk them with its ordinary traversal strategies.
// The format is chosen by file extension; HCL and JSON share the hcl/v2
// parser family, YAML goes through yaml.v3.
package docload
