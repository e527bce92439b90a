package errors

import (
	"fmt"
	"maps"
)

// StewardError extends the standard error interface with structured information
// for consistent error handling.
//
// StewardError provides an error code for categorization, contextual metadata
// (paths, task index, run ID), and compatibility with standard library error
// handling (errors.Is, errors.As, errors.Unwrap).
type StewardError interface {
	error

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error for errors.Is and errors.As compatibility.
	// Returns nil if this error does not wrap another error.
	Unwrap() error
}

// stewardError is the concrete implementation of StewardError.
// It is private to enforce construction through package functions.
type stewardError struct {
	code    ErrorCode
	message string
	context map[string]interface{}
	cause   error
}

// Error returns the string representation of the error.
// Format: "[CODE] message" or "[CODE] message: cause" if cause is present.
func (e *stewardError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code returns the error code.
func (e *stewardError) Code() ErrorCode {
	return e.code
}

// Message returns the error message.
func (e *stewardError) Message() string {
	return e.message
}

// Context returns a copy of the context map, or nil if none was attached.
func (e *stewardError) Context() map[string]interface{} {
	if e.context == nil {
		return nil
	}
	return maps.Clone(e.context)
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *stewardError) Unwrap() error {
	return e.cause
}

// asStewardError converts err to a StewardError, wrapping foreign errors
// with CodeUnknown.
func asStewardError(err error) StewardError {
	var se StewardError
	if As(err, &se) {
		return se
	}
	return &stewardError{
		code:    CodeUnknown,
		message: err.Error(),
		cause:   err,
	}
}
