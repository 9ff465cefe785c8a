package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorDeck     = 2   // Indicates the deck could not be loaded.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// Sentinel errors for the presentation engine taxonomy.
var (
	// ErrDegenerateGeometry is matched by DegenerateGeometryError. It is
	// recoverable: the scale defaults to 1 until the next resize.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrMissingFullScreenCapability reports that the host exposes neither a
	// request nor a cancel full-screen capability. The toggle becomes inert.
	ErrMissingFullScreenCapability = errors.New("full-screen capability not available")

	// ErrInvalidSlideIndex is matched by InvalidSlideIndexError. It signals a
	// desynchronisation between the deck authority and the view list and is
	// never absorbed.
	ErrInvalidSlideIndex = errors.New("invalid slide index")
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

// DegenerateGeometryError is raised when a scale computation receives a box
// with a zero, negative or non-finite dimension.
type DegenerateGeometryError struct {
	ContentWidth, ContentHeight float64
	TargetWidth, TargetHeight   float64
}

// Error returns a formatted message naming both boxes.
func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("degenerate geometry: content %gx%g, target %gx%g",
		e.ContentWidth, e.ContentHeight, e.TargetWidth, e.TargetHeight)
}

// Is reports whether target is ErrDegenerateGeometry.
func (e *DegenerateGeometryError) Is(target error) bool {
	return target == ErrDegenerateGeometry
}

// InvalidSlideIndexError is returned when a show or hide request names an
// index outside the current view list.
type InvalidSlideIndexError struct {
	// Index is the requested slide index.
	Index int
	// Count is the number of slide views at the time of the request.
	Count int
}

// Error returns a formatted message with the index and valid range.
func (e *InvalidSlideIndexError) Error() string {
	return fmt.Sprintf("invalid slide index %d: %d slide views", e.Index, e.Count)
}

// Is reports whether target is ErrInvalidSlideIndex.
func (e *InvalidSlideIndexError) Is(target error) bool {
	return target == ErrInvalidSlideIndex
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

// ExitCode maps an error returned by the application to a process exit code.
func ExitCode(err error) int {
	var cfgErr ConfigError
	var valErr ValidationError
	switch {
	case err == nil:
		return ExitSuccess
	case IsContextError(err):
		return ExitErrorCanceled
	case errors.As(err, &cfgErr), errors.As(err, &valErr):
		return ExitErrorConfig
	}
	return ExitErrorGeneric
}
