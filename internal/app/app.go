package app

import (
	"fmt"
	"io"
	"log/slog"
	"reflect"

	"github.com/vk/structcmp/internal/comparators"
	"github.com/vk/structcmp/internal/config"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *Config
	cmp    *config.Comparison
}

// DifferencesError signals that the comparison completed and found the two
// documents unequal. It is distinct from operational errors: the report has
// already been written to the output writer when it is returned.
type DifferencesError struct {
	Count int
}

// Error implements the error interface for DifferencesError.
func (e *DifferencesError) Error() string {
	return fmt.Sprintf("found %d difference(s)", e.Count)
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and comparison
// configuration.
func NewApp(outW, logW io.Writer, appConfig *Config) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	cmp := config.New()
	if appConfig.Tolerance > 0 {
		tolerant := comparators.Tolerance(appConfig.Tolerance)
		floatType := reflect.TypeOf(0.0)
		intType := reflect.TypeOf(0)
		cmp.RegisterComparatorForType(floatType, tolerant)
		cmp.RegisterComparatorForType(intType, tolerant)
		// YAML numbers decode as int while HCL and JSON numbers decode as
		// float64; the bridge lets cross-format documents agree.
		cmp.RegisterComparatorForTypes(floatType, intType, tolerant)
		logger.Debug("Numeric tolerance registered.", "delta", appConfig.Tolerance)
	}

	return &App{
		outW:   outW,
		logger: logger,
		cfg:    appConfig,
		cmp:    cmp,
	}
}

// Comparison returns the app's comparison configuration. This is primarily
// for testing.
func (a *App) Comparison() *config.Comparison {
	return a.cmp
}
