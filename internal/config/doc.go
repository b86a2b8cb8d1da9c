// Package config defines the configuration object that callers pass into
// every comparison call. It owns the comparator registry and exposes
// registration, keeping comparator state explicit instead of process-global:
// concurrent comparisons can safely share one configuration, and distinct
// configurations never observe each other's registrations.
package config
