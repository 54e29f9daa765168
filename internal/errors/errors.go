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
	ExitSuccess         = 0   // Indicates successful execution.
	ExitErrorGeneric    = 1   // Indicates a generic error.
	ExitErrorTimeout    = 2   // Indicates the flow did not finish in time.
	ExitErrorValidation = 3   // Indicates rejected user input (e.g. unsupported file).
	ExitErrorConfig     = 4   // Indicates a configuration error.
	ExitErrorCanceled   = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// UnsupportedFileMessage is the notification shown when an upload is rejected.
const UnsupportedFileMessage = "Please upload only PDF or DOCX files."

// ErrInvalidTransition is matched by every TransitionError.
var ErrInvalidTransition = errors.New("invalid stage transition")

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

// UnsupportedFileError is returned by the upload boundary when a file is
// neither a PDF (by declared content type) nor a DOCX (by name suffix).
type UnsupportedFileError struct {
	// Name is the rejected file name.
	Name string
	// ContentType is the declared content type of the rejected file.
	ContentType string
}

// Error returns the user-facing rejection message followed by the file details.
func (e UnsupportedFileError) Error() string {
	if e.ContentType == "" {
		return fmt.Sprintf("%s (%s)", UnsupportedFileMessage, e.Name)
	}
	return fmt.Sprintf("%s (%s, %s)", UnsupportedFileMessage, e.Name, e.ContentType)
}

// TransitionError reports a stage operation that is not legal in the current
// stage. The state it was attempted on is left untouched.
type TransitionError struct {
	// Operation is the controller operation that was attempted.
	Operation string
	// From is the stage the controller was in.
	From string
	// Reason is an optional detail, e.g. a missing precondition.
	Reason string
}

// Error returns a formatted message describing the rejected transition.
func (e TransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s not allowed in stage %s: %s", e.Operation, e.From, e.Reason)
	}
	return fmt.Sprintf("%s not allowed in stage %s", e.Operation, e.From)
}

// Unwrap lets errors.Is match ErrInvalidTransition.
func (e TransitionError) Unwrap() error { return ErrInvalidTransition }

// TimeoutError represents a flow that did not reach its final stage within
// the configured limit.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Returns nil if err is nil.
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

// ExitCodeFor maps an error returned by a run to the process exit code.
func ExitCodeFor(err error) int {
	var (
		configErr      ConfigError
		validationErr  ValidationError
		unsupportedErr UnsupportedFileError
		timeoutErr     TimeoutError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &timeoutErr):
		return ExitErrorTimeout
	case errors.As(err, &unsupportedErr), errors.As(err, &validationErr):
		return ExitErrorValidation
	case errors.As(err, &configErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}
