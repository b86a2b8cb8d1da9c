package engine

import (
	"context"
	"log/slog"
	"reflect"

	"github.com/vk/structcmp/internal/config"
	"github.com/vk/structcmp/internal/ctxlog"
	"github.com/vk/structcmp/internal/diff"
	"github.com/vk/structcmp/internal/fieldpath"
	"github.com/vk/structcmp/internal/registry"
	"github.com/vk/structcmp/internal/visited"
)

// Engine performs recursive comparisons under one configuration. It holds no
// per-call state, so a single Engine is safe for concurrent use: every
// Compare call constructs its own tracker and collector.
type Engine struct {
	cfg *config.Comparison
}

// New creates an engine bound to the given configuration.
func New(cfg *config.Comparison) *Engine {
	return &Engine{cfg: cfg}
}

// Compare walks the two graphs and returns the collected differences in
// traversal order; an empty list means recursively equal. The error is
// non-nil only when a registered comparator panicked, which aborts the
// comparison — mismatches themselves are always returned as data.
func (en *Engine) Compare(ctx context.Context, actual, expected any) (*diff.List, error) {
	w := &walker{
		reg:    en.cfg.Registry(),
		pairs:  visited.New(),
		list:   diff.NewList(),
		logger: ctxlog.FromContext(ctx),
	}
	if err := w.walk(fieldpath.Path{}, reflect.ValueOf(actual), reflect.ValueOf(expected)); err != nil {
		return nil, err
	}
	return w.list, nil
}

// Compare is a convenience for one-shot calls without keeping an Engine.
func Compare(ctx context.Context, actual, expected any, cfg *config.Comparison) (*diff.List, error) {
	return New(cfg).Compare(ctx, actual, expected)
}

// walker is the per-call state of one top-level comparison: the registry
// snapshot it reads, the ancestor tracker, the collector, and the logger. It
// lives on one goroutine for one call and is discarded afterwards.
type walker struct {
	reg    *registry.Registry
	pairs  *visited.Pairs
	list   *diff.List
	logger *slog.Logger
}

func (w *walker) report(d diff.Difference) {
	w.logger.Debug("difference recorded.",
		"path", d.Path.String(),
		"kind", d.Kind.String(),
	)
	w.list.Add(d)
}
