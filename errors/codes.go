package errors

// ErrorCode identifies the kind of failure a steward operation reported.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Input errors.

	// CodeInvalidArgument indicates malformed call input: an unusable path value,
	// a task missing a required field, or a request the operation cannot satisfy
	// by construction (e.g. copying a directory into itself).
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// CodeJurisdiction indicates a resolved path is neither the steward's root
	// nor a descendant of it.
	CodeJurisdiction ErrorCode = "JURISDICTION_VIOLATION"

	// Resource errors.

	// CodeNotFound indicates the operation required an existing path and the
	// path is absent.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates the target exists and the operation was told
	// not to overwrite it.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Storage errors.

	// CodeOperationFailed indicates the storage layer rejected the operation, or
	// an entry kind unsupported by the operation was encountered.
	CodeOperationFailed ErrorCode = "OPERATION_FAILED"

	// Generic errors.

	// CodeUnknown indicates an error that did not originate from this package.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// String returns the code as a plain string.
func (c ErrorCode) String() string {
	return string(c)
}
