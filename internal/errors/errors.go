package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorConfig   = 4   // Indicates a configuration or input validation error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// HorizonError reports an invalid simulation horizon. The simulator requires
// at least one full yearly step; shorter horizons are rejected rather than
// substituted with a best-effort default.
type HorizonError struct {
	// Years is the rejected horizon value.
	Years int
}

// Error returns a formatted message describing the invalid horizon.
func (e HorizonError) Error() string {
	return fmt.Sprintf("invalid horizon: years must be >= 1, got %d", e.Years)
}

// StartPopulationError reports a non-positive starting colony count.
type StartPopulationError struct {
	// Colonies is the rejected starting population.
	Colonies float64
}

// Error returns a formatted message describing the invalid start population.
func (e StartPopulationError) Error() string {
	return fmt.Sprintf("invalid start population: colonies must be > 0, got %g", e.Colonies)
}

// SimulationError encapsulates a simulation failure while preserving the
// original cause. This allows for structured error handling and inspection
// of what went wrong during a model run.
type SimulationError struct {
	// Cause is the underlying error that triggered this simulation error.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e SimulationError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e SimulationError) Unwrap() error { return e.Cause }

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsInputError reports whether the error stems from invalid caller input
// (horizon, start population, or configuration) rather than a runtime failure.
func IsInputError(err error) bool {
	var horizonErr HorizonError
	var startErr StartPopulationError
	var configErr ConfigError
	var validationErr ValidationError
	return errors.As(err, &horizonErr) ||
		errors.As(err, &startErr) ||
		errors.As(err, &configErr) ||
		errors.As(err, &validationErr)
}

// ExitCodeForError maps an error to the application exit code that the CLI
// should return. Context cancellation maps to the conventional SIGINT code,
// deadline expiry to the timeout code, input errors to the config code.
//
// Parameters:
//   - err: The error to classify. A nil error maps to ExitSuccess.
//   - elapsed: The elapsed duration, included for diagnostics symmetry with
//     callers that report it; unused in classification.
func ExitCodeForError(err error, elapsed time.Duration) int {
	_ = elapsed
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case IsInputError(err):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}
