package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
	// ErrorTypeScan represents site-root discovery errors
	ErrorTypeScan ErrorType = "scan"
	// ErrorTypeProbe represents per-page probing errors
	ErrorTypeProbe ErrorType = "probe"
	// ErrorTypeNavigation represents navigation-document errors
	ErrorTypeNavigation ErrorType = "navigation"
	// ErrorTypeSitemap represents sitemap emission errors
	ErrorTypeSitemap ErrorType = "sitemap"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// ErrType returns the error category. Promoted through embedding so
// typed errors answer IsErrorType without a type switch.
func (e *BaseError) ErrType() ErrorType {
	return e.Type
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Scan Errors

// ErrSiteRootUnreadable is returned when the site root cannot be
// enumerated. Fatal for the whole run.
type ErrSiteRootUnreadable struct {
	*BaseError
	Path string
}

func NewSiteRootUnreadable(path string, err error) *ErrSiteRootUnreadable {
	return &ErrSiteRootUnreadable{
		BaseError: NewBaseError(ErrorTypeScan, fmt.Sprintf("site root unreadable: %s", path), err),
		Path:      path,
	}
}

// Probe Errors

// ErrPageUnreadable is returned when a tool's page source cannot be read.
// Absorbed by the prober; never aborts discovery.
type ErrPageUnreadable struct {
	*BaseError
	Path string
}

func NewPageUnreadable(path string, err error) *ErrPageUnreadable {
	return &ErrPageUnreadable{
		BaseError: NewBaseError(ErrorTypeProbe, fmt.Sprintf("page unreadable: %s", path), err),
		Path:      path,
	}
}

// Navigation Errors

// ErrNavDocumentMissing is returned when the navigation document does
// not exist at the expected path
type ErrNavDocumentMissing struct {
	*BaseError
	Path string
}

func NewNavDocumentMissing(path string) *ErrNavDocumentMissing {
	return &ErrNavDocumentMissing{
		BaseError: NewBaseError(ErrorTypeNavigation, fmt.Sprintf("navigation document not found: %s", path), nil),
		Path:      path,
	}
}

// ErrNavDocumentInvalid is returned when the navigation document exists
// but cannot be decoded
type ErrNavDocumentInvalid struct {
	*BaseError
	Path string
}

func NewNavDocumentInvalid(path string, err error) *ErrNavDocumentInvalid {
	return &ErrNavDocumentInvalid{
		BaseError: NewBaseError(ErrorTypeNavigation, fmt.Sprintf("navigation document invalid: %s", path), err),
		Path:      path,
	}
}

// Output Errors

// ErrOutputWriteFailed is returned when a generated artifact cannot be
// written to disk
type ErrOutputWriteFailed struct {
	*BaseError
	Path string
}

func NewOutputWriteFailed(errType ErrorType, path string, err error) *ErrOutputWriteFailed {
	return &ErrOutputWriteFailed{
		BaseError: NewBaseError(errType, fmt.Sprintf("failed to write output: %s", path), err),
		Path:      path,
	}
}

// Config Errors

// ErrConfigValidationFailed is returned when a config value is present
// but unusable
type ErrConfigValidationFailed struct {
	*BaseError
	Field  string
	Reason string
}

func NewConfigValidationFailed(field, reason string) *ErrConfigValidationFailed {
	return &ErrConfigValidationFailed{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("config validation failed: %s - %s", field, reason), nil),
		Field:     field,
		Reason:    reason,
	}
}

// ErrConfigMissingRequired is returned when a required config value is missing
type ErrConfigMissingRequired struct {
	*BaseError
	Field string
}

func NewConfigMissingRequired(field string) *ErrConfigMissingRequired {
	return &ErrConfigMissingRequired{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("missing required config: %s", field), nil),
		Field:     field,
	}
}

// Helper functions

// IsErrorType checks if an error belongs to a specific category,
// looking through wrapped errors.
func IsErrorType(err error, errType ErrorType) bool {
	var categorized interface{ ErrType() ErrorType }
	if stderrors.As(err, &categorized) {
		return categorized.ErrType() == errType
	}
	return false
}

// IsFatal reports whether an error should abort its pipeline stage.
// Probe errors degrade to a safe default; everything else surfaces
// immediately. Nothing in this system is retryable: all operations are
// local filesystem reads and writes.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	return !IsErrorType(err, ErrorTypeProbe)
}
