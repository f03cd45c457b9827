// Package errors provides error types with actionable suggestions for depdoc.
// Errors carry a Kind for errors.Is matching plus optional details that the
// TUI status bar and the log can show.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel error kinds for use with errors.Is().
var (
	// ErrParse indicates manifest text that is not decodable as structured data.
	ErrParse = errors.New("parse error")
	// ErrIO indicates a file read or write failure.
	ErrIO = errors.New("io error")
	// ErrClipboard indicates the system clipboard could not be read or written.
	ErrClipboard = errors.New("clipboard error")
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
)

// DepdocError is the base error type for depdoc errors.
type DepdocError struct {
	// Kind is the category of error (e.g., ErrParse, ErrIO).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., file path, source).
	Details map[string]string
}

// Error implements the error interface.
func (e *DepdocError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *DepdocError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error's Kind matches target.
func (e *DepdocError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a multi-line message with details and suggestion.
func (e *DepdocError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n💡 Suggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// LogAttrs returns key/value pairs suitable for slog-style logging.
func (e *DepdocError) LogAttrs() []any {
	attrs := []any{"kind", kindName(e.Kind), "error", e.Error()}
	keys := make([]string, 0, len(e.Details))
	for k := range e.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, k, e.Details[k])
	}
	return attrs
}

func kindName(kind error) string {
	if kind == nil {
		return "unknown"
	}
	return kind.Error()
}

// WithDetails adds details to the error.
func (e *DepdocError) WithDetails(key, value string) *DepdocError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *DepdocError) WithCause(cause error) *DepdocError {
	e.Cause = cause
	return e
}

// New creates a new DepdocError with the given kind and message.
func New(kind error, message string) *DepdocError {
	return &DepdocError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *DepdocError {
	return &DepdocError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// Is is a convenience re-export of the standard errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a convenience re-export of the standard errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
