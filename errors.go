package djkit

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnsupportedFormat indicates an upload's extension has no registered handler.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrParse indicates a format handler failed to parse the upload.
	ErrParse = errors.New("parse failed")

	// ErrRowTransform indicates a row validator failed or returned a malformed row.
	ErrRowTransform = errors.New("row transform failed")

	// ErrWriteOnly indicates an attempt to read a write-only field for output.
	ErrWriteOnly = errors.New("write-only field")

	// ErrUnknownMember indicates a label or value with no corresponding enum member.
	ErrUnknownMember = errors.New("unknown enum member")

	// ErrRowBounds indicates a row index outside the table.
	ErrRowBounds = errors.New("row index out of range")

	// ErrNoHandlers indicates a table field was built without any format handlers.
	ErrNoHandlers = errors.New("no format handlers configured")
)

// FormatError reports an upload whose format could not be dispatched.
// It wraps ErrUnsupportedFormat with the offending extension.
type FormatError struct {
	Err    error  // Underlying sentinel error (ErrUnsupportedFormat)
	Format string // Extension extracted from the filename ("" when absent)
}

func (e *FormatError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("%s: filename has no extension", e.Err.Error())
	}
	return fmt.Sprintf("%s %q", e.Err.Error(), e.Format)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// ParseError reports a handler failure while parsing an upload.
// The handler's own error is preserved in Cause.
type ParseError struct {
	Err    error  // Underlying sentinel error (ErrParse)
	Format string // Format whose handler failed
	Cause  error  // Original error from the handler
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s for format %q: %v", e.Err.Error(), e.Format, e.Cause)
	}
	return fmt.Sprintf("%s for format %q", e.Err.Error(), e.Format)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RowError reports a row validator failure at a specific row index.
// Validator errors are carried in Cause exactly as the validator raised them.
type RowError struct {
	Err   error // Underlying sentinel error (ErrRowTransform)
	Index int   // Row index that failed
	Cause error // Original error from the validator, nil for shape rejections
}

func (e *RowError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("row %d is invalid: %v", e.Index, e.Cause)
	}
	return fmt.Sprintf("row %d is invalid", e.Index)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// FieldError scopes an error to a named field so that callers can keep
// validating sibling fields and aggregate failures per field. The error
// renderer partitions on this type.
type FieldError struct {
	Field string // Field name the error belongs to
	Err   error  // Underlying error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// NewFieldError scopes err to the named field.
func NewFieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}

// newFormatError creates a FormatError for unsupported upload formats.
func newFormatError(format string) error {
	return &FormatError{
		Err:    ErrUnsupportedFormat,
		Format: format,
	}
}

// newParseError creates a ParseError preserving the handler's failure.
func newParseError(format string, cause error) error {
	return &ParseError{
		Err:    ErrParse,
		Format: format,
		Cause:  cause,
	}
}

// newRowError creates a RowError for row validator failures.
func newRowError(index int, cause error) error {
	return &RowError{
		Err:   ErrRowTransform,
		Index: index,
		Cause: cause,
	}
}
