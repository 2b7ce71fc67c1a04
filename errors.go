package autoid

import (
	"errors"
	"fmt"

	"github.com/schatt/sixlayer-autoid/config"
	"github.com/schatt/sixlayer-autoid/export"
)

// Sentinel errors for common engine error conditions.
// These errors can be used with errors.Is() for error checking.
//
// The subpackage sentinels are re-exported here so facade users can match
// them without importing config or export directly.
var (
	// ErrConfigNotFound indicates no configuration file was found at the
	// requested location. Callers commonly treat it as "run with defaults".
	ErrConfigNotFound = config.ErrNotFound

	// ErrUnknownFormat indicates an unrecognized export format.
	ErrUnknownFormat = export.ErrUnknownFormat

	// ErrClipboardUnavailable indicates the system clipboard could not be
	// written, typically in headless environments.
	ErrClipboardUnavailable = export.ErrClipboardUnavailable
)

// Error kinds categorize errors by their type.
const (
	// KindValidation represents errors related to input validation.
	KindValidation = "validation"

	// KindConfiguration represents errors related to configuration.
	KindConfiguration = "configuration"

	// KindExport represents errors raised while exporting identifiers.
	KindExport = "export"

	// KindIO represents errors related to file reads and writes.
	KindIO = "io"
)

// Error is a structured error type that wraps underlying errors with the
// operation that failed and the category of failure.
//
// Error implements the error interface and supports error unwrapping,
// making it compatible with errors.Is() and errors.As().
type Error struct {
	// Op is the operation that failed (e.g., "Engine.LoadConfigFile").
	Op string

	// Kind categorizes the error (e.g., KindConfiguration, KindExport).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context provides additional context about the error (optional),
	// such as paths, formats, or identifier counts.
	Context map[string]any
}

// Error implements the error interface, returning a formatted message
// that includes the operation, kind, and underlying error.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("autoid: %s: %s", e.Op, e.Kind)
	}

	if len(e.Context) > 0 {
		return fmt.Sprintf("autoid: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}

	return fmt.Sprintf("autoid: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and
// errors.As() to work correctly with wrapped errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error matching, comparing against another *Error by Kind
// (and Op when the target sets one) before delegating to the underlying
// error.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	return errors.Is(e.Err, target)
}

// WithContext returns a copy of the error with the provided context
// merged in. The receiver's context map is never shared with the copy.
func (e *Error) WithContext(ctx map[string]any) *Error {
	newErr := *e
	merged := make(map[string]any, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	newErr.Context = merged
	return &newErr
}

// NewValidationError creates a new Error with KindValidation.
func NewValidationError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindValidation,
		Err:  err,
	}
}

// NewConfigurationError creates a new Error with KindConfiguration.
func NewConfigurationError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindConfiguration,
		Err:  err,
	}
}

// NewExportError creates a new Error with KindExport.
func NewExportError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindExport,
		Err:  err,
	}
}

// NewIOError creates a new Error with KindIO.
func NewIOError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindIO,
		Err:  err,
	}
}
