package app

import (
	"context"
	"fmt"

	"github.com/vk/structcmp/internal/ctxlog"
	"github.com/vk/structcmp/internal/docload"
	"github.com/vk/structcmp/internal/engine"
)

// Run executes the comparison: both documents are loaded, walked, and every
// difference is rendered as one line on the output writer. A non-empty
// result returns a DifferencesError so the entrypoint can map it to an exit
// code; operational failures return ordinary errors.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	actual, err := docload.Load(ctx, a.cfg.ActualPath)
	if err != nil {
		return fmt.Errorf("failed to load actual document: %w", err)
	}
	expected, err := docload.Load(ctx, a.cfg.ExpectedPath)
	if err != nil {
		return fmt.Errorf("failed to load expected document: %w", err)
	}
	a.logger.Debug("Documents loaded.", "actual", a.cfg.ActualPath, "expected", a.cfg.ExpectedPath)

	list, err := engine.Compare(ctx, actual, expected, a.cmp)
	if err != nil {
		return fmt.Errorf("comparison aborted: %w", err)
	}

	if list.IsEmpty() {
		a.logger.Info("Documents are recursively equal.")
		fmt.Fprintln(a.outW, "documents are recursively equal")
		return nil
	}

	for _, d := range list.All() {
		fmt.Fprintln(a.outW, d.String())
	}
	a.logger.Info("Comparison finished with differences.", "count", list.Len())
	return &DifferencesError{Count: list.Len()}
}
