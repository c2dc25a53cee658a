// Package errors provides the structured error type shared by the registry,
// the custom data loader and the CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// Common error codes.
const (
	ErrCodeEmptyTagName        = "ERR_EMPTY_TAG_NAME"
	ErrCodeDuplicateTag        = "ERR_DUPLICATE_TAG"
	ErrCodeUnknownMarkupKind   = "ERR_UNKNOWN_MARKUP_KIND"
	ErrCodeEmptyAttribute      = "ERR_EMPTY_ATTRIBUTE_NAME"
	ErrCodeVersionMismatch     = "ERR_VERSION_MISMATCH"
	ErrCodeDecodeFailed        = "ERR_DECODE_FAILED"
	ErrCodeUnsupportedFormat   = "ERR_UNSUPPORTED_FORMAT"
	ErrCodeFileNotFound        = "ERR_FILE_NOT_FOUND"
	ErrCodeReadFailed          = "ERR_READ_FAILED"
	ErrCodeConfigInvalid       = "ERR_CONFIG_INVALID"
	ErrCodeValidationFailed    = "ERR_VALIDATION_FAILED"
	ErrCodeInternalError       = "ERR_INTERNAL"
	ErrCodeWatchSetupFailed    = "ERR_WATCH_SETUP_FAILED"
	ErrCodeRenderFailed        = "ERR_RENDER_FAILED"
	ErrCodeEncodeFailed        = "ERR_ENCODE_FAILED"
	ErrCodeInvalidOutputFormat = "ERR_INVALID_OUTPUT_FORMAT"
)

// TagDataError is a structured error type with context.
type TagDataError struct {
	Type     ErrorType
	Code     string
	Message  string
	Cause    error
	Context  map[string]interface{}
	Tag      string
	FilePath string
}

// Error implements the error interface.
func (e *TagDataError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}

	if e.Tag != "" {
		parts = append(parts, "tag:"+e.Tag)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *TagDataError) Unwrap() error {
	return e.Cause
}

// Is matches on type and code.
func (e *TagDataError) Is(target error) bool {
	var t *TagDataError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *TagDataError) WithContext(key string, value interface{}) *TagDataError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithCause attaches the underlying error.
func (e *TagDataError) WithCause(err error) *TagDataError {
	e.Cause = err

	return e
}

// WithFile records the file the error came from.
func (e *TagDataError) WithFile(path string) *TagDataError {
	e.FilePath = path

	return e
}

// WithTag records the tag the error refers to.
func (e *TagDataError) WithTag(name string) *TagDataError {
	e.Tag = name

	return e
}

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *TagDataError {
	return &TagDataError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
	}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *TagDataError {
	return &TagDataError{
		Type:    ErrorTypeIO,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *TagDataError {
	return &TagDataError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *TagDataError {
	return &TagDataError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var te *TagDataError
	if errors.As(err, &te) {
		return te.Type == ErrorTypeValidation
	}

	return false
}

// IsIOError checks if an error is an I/O error.
func IsIOError(err error) bool {
	var te *TagDataError
	if errors.As(err, &te) {
		return te.Type == ErrorTypeIO
	}

	return false
}

// Code returns the code of the first TagDataError in the chain, or "".
func Code(err error) string {
	var te *TagDataError
	if errors.As(err, &te) {
		return te.Code
	}

	return ""
}

// Helper functions for common errors

// ErrEmptyTagName reports a tag declared without a name at the given index.
func ErrEmptyTagName(index int) *TagDataError {
	return NewValidationError(ErrCodeEmptyTagName, "tag has an empty name").
		WithContext("index", index)
}

// ErrDuplicateTag reports a second declaration of name.
func ErrDuplicateTag(name string) *TagDataError {
	return NewValidationError(ErrCodeDuplicateTag, "duplicate tag name").WithTag(name)
}

// ErrUnknownMarkupKind reports a description kind outside plaintext/markdown.
func ErrUnknownMarkupKind(tag, kind string) *TagDataError {
	return NewValidationError(ErrCodeUnknownMarkupKind, "unknown markup kind "+quote(kind)).
		WithTag(tag).
		WithContext("kind", kind)
}

// ErrEmptyAttributeName reports an attribute without a name.
func ErrEmptyAttributeName(tag string, index int) *TagDataError {
	return NewValidationError(ErrCodeEmptyAttribute, "attribute has an empty name").
		WithTag(tag).
		WithContext("index", index)
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}
