package truncate

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration validation. Construction is the only
// place this package returns errors; truncation itself always succeeds.
var (
	// ErrNoBudget indicates neither a token nor a character budget was set.
	ErrNoBudget = errors.New("no budget configured")

	// ErrNegativeBudget indicates a budget below zero.
	ErrNegativeBudget = errors.New("budget is negative")

	// ErrBadRatio indicates a middle-split ratio outside (0, 1).
	ErrBadRatio = errors.New("middle ratio must be between 0 and 1")
)

// ConfigError wraps a validation failure with the offending field.
type ConfigError struct {
	Field string
	Err   error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("truncate config: %s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ConfigError) Unwrap() error {
	return e.Err
}
