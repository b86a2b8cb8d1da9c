package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ActualPath   string // document treated as the actual side
	ExpectedPath string // document treated as the expected side

	LogFormat string
	LogLevel  string

	// Tolerance, when positive, registers a numeric comparator so document
	// numbers within the given delta compare equal, bridging int and float
	// representations across formats. Zero means strict numeric equality.
	Tolerance float64
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ActualPath == "" || cfg.ExpectedPath == "" {
		return nil, errors.New("both an actual and an expected document path are required")
	}
	if cfg.Tolerance < 0 {
		return nil, errors.New("tolerance cannot be negative")
	}
	return &cfg, nil
}
