package apperr

import (
	"errors"
	"fmt"
	"log/slog"
)

// CLIAdapter handles error presentation and exit code determination for the CLI.
type CLIAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIAdapter creates a new CLI error adapter.
func NewCLIAdapter(verbose bool, logger *slog.Logger) *CLIAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIAdapter{verbose: verbose, logger: logger}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	var ae *Error
	if errors.As(err, &ae) {
		switch ae.Category {
		case CategoryValidation:
			return 2 // Invalid usage
		case CategoryConfig:
			return 7 // Configuration error
		case CategoryCache:
			return 8 // Storage error
		case CategoryInternal:
			return 10 // Internal error
		}
	}
	return 1 // General error
}

// FormatError formats an error for user-friendly display.
func (a *CLIAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	var ae *Error
	if errors.As(err, &ae) {
		if a.verbose {
			return ae.Error()
		}
		return fmt.Sprintf("Error: %s", ae.Message)
	}
	return fmt.Sprintf("Error: %v", err)
}
