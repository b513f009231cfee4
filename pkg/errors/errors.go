// Package errors provides custom error types for transitdata.
// These errors let callers check failures programmatically (errors.Is / errors.As)
// and keep the original diagnostic attached for the user-facing message.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is and As are re-exported so callers only need one errors import.
var (
	Is = errors.Is
	As = errors.As
)

// Common sentinel errors for transitdata
var (
	// ErrMissingKey indicates that a record lacks its identifying field
	ErrMissingKey = errors.New("missing key")

	// ErrMalformed indicates that a source did not decode into the expected shape
	ErrMalformed = errors.New("malformed dataset")

	// ErrDuplicateKey indicates that a key appeared more than once where uniqueness is required
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrIO indicates that a durable source or sink could not be read or written
	ErrIO = errors.New("io failure")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")
)

// MissingKeyError reports a record that has no usable value for the key field.
type MissingKeyError struct {
	Field  string
	Index  int    // Position of the record in its dataset
	Source string // "base", "incoming" or a file path
}

// Error implements the error interface
func (e *MissingKeyError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("record has no %q field", e.Field)
	}
	if e.Source != "" {
		return fmt.Sprintf("record %d in %s has no %q field", e.Index, e.Source, e.Field)
	}
	return fmt.Sprintf("record %d has no %q field", e.Index, e.Field)
}

// Is implements errors.Is support
func (e *MissingKeyError) Is(target error) bool {
	return target == ErrMissingKey
}

// NewMissingKeyError creates a new MissingKeyError
func NewMissingKeyError(field string, index int) *MissingKeyError {
	return &MissingKeyError{Field: field, Index: index}
}

// MalformedDatasetError represents a source that is not a collection of records.
type MalformedDatasetError struct {
	Source  string
	Offset  int64 // Byte offset of the failure, -1 when unknown
	Line    int
	Column  int
	Message string
	Err     error
}

// Error implements the error interface
func (e *MalformedDatasetError) Error() string {
	var where string
	switch {
	case e.Source != "" && e.Line > 0:
		where = fmt.Sprintf(" in %s at line %d column %d", e.Source, e.Line, e.Column)
	case e.Source != "":
		where = " in " + e.Source
	case e.Line > 0:
		where = fmt.Sprintf(" at line %d column %d", e.Line, e.Column)
	}
	return fmt.Sprintf("malformed dataset%s: %s", where, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *MalformedDatasetError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *MalformedDatasetError) Is(target error) bool {
	return target == ErrMalformed
}

// NewMalformedDatasetError creates a new MalformedDatasetError without position information.
func NewMalformedDatasetError(message string, err error) *MalformedDatasetError {
	return &MalformedDatasetError{Offset: -1, Message: message, Err: err}
}

// DuplicateKeyError reports a key that appears more than once in a batch
// that must be unique.
type DuplicateKeyError struct {
	Key    string
	First  int
	Second int
	Source string
}

// Error implements the error interface
func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %s in %s (records %d and %d)", e.Key, e.Source, e.First, e.Second)
}

// Is implements errors.Is support
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "rename", "sync"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsMissingKey checks if an error is a missing key error
func IsMissingKey(err error) bool {
	return errors.Is(err, ErrMissingKey)
}

// IsMalformed checks if an error is a malformed dataset error
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformed)
}

// IsDuplicateKey checks if an error is a duplicate key error
func IsDuplicateKey(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}

// IsIO checks if an error is an I/O failure
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapMalformed attaches a source name to a MalformedDatasetError, or wraps
// any other error as one.
func WrapMalformed(source string, err error) error {
	if err == nil {
		return nil
	}
	var mde *MalformedDatasetError
	if errors.As(err, &mde) {
		cp := *mde
		cp.Source = source
		return &cp
	}
	return &MalformedDatasetError{Source: source, Offset: -1, Message: err.Error(), Err: err}
}
