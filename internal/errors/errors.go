package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess      = 0 // Indicates successful execution (including degraded runs).
	ExitErrorGeneric = 1 // Indicates a generic fatal error.
	ExitErrorInit    = 3 // Indicates a collaborator initialization failure.
	ExitErrorConfig  = 4 // Indicates a configuration error.
)

// ConfigError represents a user configuration error, such as an invalid flag
// or an unusable data directory. It indicates that the application cannot
// proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
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

// InitializationError encapsulates a collaborator construction failure while
// preserving the original cause. Construction failures are always fatal: the
// required key was present, so an error here is a program defect rather than
// a degraded-configuration condition.
type InitializationError struct {
	// Component is the name of the collaborator that failed to initialize.
	Component string
	// Cause is the underlying error raised by the collaborator constructor.
	Cause error
}

// Error returns a formatted message naming the failed component.
//
// Returns:
//   - string: The error message string.
func (e InitializationError) Error() string {
	return fmt.Sprintf("initializing %s: %v", e.Component, e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause of the InitializationError.
func (e InitializationError) Unwrap() error { return e.Cause }

// NewInitializationError creates an InitializationError for the named
// component.
//
// Parameters:
//   - component: The collaborator name (e.g., "data collection agent").
//   - cause: The constructor error.
//
// Returns:
//   - error: A new InitializationError instance.
func NewInitializationError(component string, cause error) error {
	return InitializationError{Component: component, Cause: cause}
}

// CollectionError encapsulates a failure during a collaborator call (price
// fetch, news scrape, task execution) while preserving the original cause.
// Collection errors are contained within their demo stage and never escape
// to the process boundary.
type CollectionError struct {
	// Operation is the name of the collaborator call that failed.
	Operation string
	// Cause is the underlying error.
	Cause error
}

// Error returns a formatted message describing the failed operation.
//
// Returns:
//   - string: The error message string.
func (e CollectionError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Cause)
}

// Unwrap returns the original wrapped error.
//
// Returns:
//   - error: The underlying cause of the CollectionError.
func (e CollectionError) Unwrap() error { return e.Cause }

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
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps a fatal error to the process exit code reported to the OS.
// Interrupt-driven cancellation is a clean stop and maps to ExitSuccess: the
// run was asked to end, it did not fail.
//
// Parameters:
//   - err: The fatal error escaping the application run, possibly nil.
//
// Returns:
//   - int: The exit code to pass to os.Exit.
func ExitCodeFor(err error) int {
	if err == nil || IsContextError(err) {
		return ExitSuccess
	}
	var initErr InitializationError
	if errors.As(err, &initErr) {
		return ExitErrorInit
	}
	var cfgErr ConfigError
	if errors.As(err, &cfgErr) {
		return ExitErrorConfig
	}
	return ExitErrorGeneric
}
