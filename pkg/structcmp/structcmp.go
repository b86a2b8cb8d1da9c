// Package structcmp is the public facade for the recursive comparison
// engine. It re-exports the configuration surface, the difference model,
// and the stock comparators so importers need a single path.
package structcmp

import (
	"context"
	"reflect"

	"github.com/vk/structcmp/internal/comparators"
	"github.com/vk/structcmp/internal/config"
	"github.com/vk/structcmp/internal/diff"
	"github.com/vk/structcmp/internal/engine"
	"github.com/vk/structcmp/internal/fieldpath"
	"github.com/vk/structcmp/internal/registry"
)

// Comparator decides equality for a pair of values of its registered type(s).
type Comparator = registry.Comparator

// ComparatorFunc adapts an ordinary function to the Comparator interface.
type ComparatorFunc = registry.Func

// Path locates a node relative to the comparison root.
type Path = fieldpath.Path

// Kind classifies a single difference.
type Kind = diff.Kind

// Difference is the record of one divergence between the two graphs.
type Difference = diff.Difference

// List is the ordered, deterministic collection of differences.
type List = diff.List

const (
	ValueMismatch      = diff.ValueMismatch
	NullnessMismatch   = diff.NullnessMismatch
	ShapeMismatch      = diff.ShapeMismatch
	ComparatorRejected = diff.ComparatorRejected
)

// Config holds per-comparison settings: the comparator registry and nothing
// else, for now.
type Config = config.Comparison

// NewConfig creates an empty comparison configuration.
func NewConfig() *Config {
	return config.New()
}

// Compare walks both object graphs from the root and returns every
// difference found. A nil cfg compares with default recursion only. The
// only error condition is a panicking comparator; mismatches are returned
// as data.
func Compare(ctx context.Context, actual, expected any, cfg *Config) (*List, error) {
	if cfg == nil {
		cfg = config.New()
	}
	return engine.Compare(ctx, actual, expected, cfg)
}

// RegisterFor associates a comparator with the runtime type of the sample
// value. It is a convenience over Config.RegisterComparatorForType for
// callers that would otherwise spell out reflect.TypeOf themselves.
func RegisterFor(cfg *Config, sample any, cmp Comparator) {
	cfg.RegisterComparatorForType(reflect.TypeOf(sample), cmp)
}

// RegisterForPair associates a symmetric comparator with the runtime types
// of the two sample values, in either argument order.
func RegisterForPair(cfg *Config, sample1, sample2 any, cmp Comparator) {
	cfg.RegisterComparatorForTypes(reflect.TypeOf(sample1), reflect.TypeOf(sample2), cmp)
}

// Stock comparators.

// Tolerance accepts numeric pairs within delta of each other.
func Tolerance(delta float64) Comparator { return comparators.Tolerance(delta) }

// FoldCase accepts string pairs equal under Unicode case-folding.
func FoldCase() Comparator { return comparators.FoldCase() }

// TimeInstant accepts time.Time pairs denoting the same instant.
func TimeInstant() Comparator { return comparators.TimeInstant() }

// CtyValue accepts cty.Value pairs under raw equality.
func CtyValue() Comparator { return comparators.CtyValue() }

// AlwaysEqual accepts every pair, making a type equal-by-fiat.
func AlwaysEqual() Comparator { return comparators.AlwaysEqual() }

// NeverEqual rejects every pair.
func NeverEqual() Comparator { return comparators.NeverEqual() }
