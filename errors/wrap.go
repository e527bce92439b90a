package errors

import (
	"fmt"
	"maps"
)

// Wrap wraps a low-level error with a code and message while preserving the
// original error. The wrapped error is accessible via Unwrap() and compatible
// with errors.Is and errors.As.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := store.MkdirAll(path, 0o755); err != nil {
//	    return errors.Wrap(err, errors.CodeOperationFailed, "failed to create the directory")
//	}
func Wrap(err error, code ErrorCode, message string) StewardError {
	if err == nil {
		return nil
	}

	return &stewardError{
		code:    code,
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with a formatted message while preserving the original error.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := store.Rename(oldPath, newPath); err != nil {
//	    return errors.Wrapf(err, errors.CodeOperationFailed, "failed to rename %q to %q", oldPath, newPath)
//	}
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) StewardError {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single operation.
// The context map is copied to prevent external mutation.
//
// Returns nil if err is nil.
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) StewardError {
	if err == nil {
		return nil
	}

	var contextCopy map[string]interface{}
	if ctx != nil {
		contextCopy = maps.Clone(ctx)
	}

	return &stewardError{
		code:    code,
		message: message,
		context: contextCopy,
		cause:   err,
	}
}
