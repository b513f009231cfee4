// Package alerts prints the one-line outcome of a command. Details such as
// the kind of the repaired value are printed as indented lines below it.
package alerts

import (
	"errors"
	"fmt"
)

// Alert is a command outcome.
type Alert struct {
	Level   Level
	Message string
	Details []string
	Err     error
}

// New creates a new alert with the given level and message.
func New(level Level, message string) *Alert {
	return &Alert{Level: level, Message: message}
}

// NewError creates a new error alert.
func NewError(message string) *Alert {
	return New(LevelError, message)
}

// NewWarning creates a new warning alert.
func NewWarning(message string) *Alert {
	return New(LevelWarning, message)
}

// NewInfo creates a new info alert.
func NewInfo(message string) *Alert {
	return New(LevelInfo, message)
}

// NewSuccess creates a new success alert.
func NewSuccess(message string) *Alert {
	return New(LevelSuccess, message)
}

// WithError adds an underlying error to the alert.
func (a *Alert) WithError(err error) *Alert {
	a.Err = err
	return a
}

// WithDetails adds additional lines to the alert.
func (a *Alert) WithDetails(details ...string) *Alert {
	a.Details = append(a.Details, details...)
	return a
}

// String returns the message, followed by the error when there is one.
func (a *Alert) String() string {
	if a.Err != nil {
		return fmt.Sprintf("%s: %v", a.Message, a.Err)
	}
	return a.Message
}

// Failure is a command error that carries the message its alert shows.
type Failure struct {
	Message string
	Err     error
}

// Fail wraps err so that it is reported as "message: err". It returns nil
// when err is nil.
func Fail(message string, err error) error {
	if err == nil {
		return nil
	}
	return &Failure{Message: message, Err: err}
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Message, f.Err)
}

// Unwrap returns the underlying error.
func (f *Failure) Unwrap() error {
	return f.Err
}

// FromError builds the error alert reported for err.
func FromError(err error) *Alert {
	var f *Failure
	if errors.As(err, &f) {
		return NewError(f.Message).WithError(f.Err)
	}
	return NewError("Error").WithError(err)
}
