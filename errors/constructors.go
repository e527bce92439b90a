package errors

import "fmt"

// New creates a new StewardError with the given code and message.
//
// Example:
//
//	err := errors.New(errors.CodeNotFound, `the path "/srv/app/a" does not exist`)
func New(code ErrorCode, message string) StewardError {
	return &stewardError{
		code:    code,
		message: message,
	}
}

// Newf creates a new StewardError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeJurisdiction, "the path %q is beyond the steward's jurisdiction", path)
func Newf(code ErrorCode, format string, args ...interface{}) StewardError {
	return &stewardError{
		code:    code,
		message: fmt.Sprintf(format, args...),
	}
}
