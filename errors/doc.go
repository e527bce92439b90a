// Package errors provides structured error handling for the steward.
//
// Every failure raised at the steward or bulk-runner boundary is a
// StewardError carrying one of a small set of codes, a human-readable
// message naming the offending path(s), optional context metadata, and the
// low-level storage error that caused it (if any). It stays fully compatible
// with the standard library errors package (errors.Is, errors.As,
// errors.Unwrap).
//
// # Error Codes
//
//   - CodeInvalidArgument: malformed input or a missing task field
//   - CodeJurisdiction: a resolved path escapes the steward's root
//   - CodeNotFound: a required path is absent
//   - CodeAlreadyExists: the target exists and overwriting was disabled
//   - CodeOperationFailed: storage rejected the call, or the entry kind is unsupported
//   - CodeUnknown: any error that did not originate here
//
// # Quick Start
//
// Creating errors:
//
//	err := errors.Newf(errors.CodeNotFound, "the path %q does not exist", path)
//
// Wrapping storage failures:
//
//	if err := store.Remove(path); err != nil {
//	    return errors.Wrapf(err, errors.CodeOperationFailed, "failed to remove %q", path)
//	}
//
// Adding context:
//
//	err = errors.WithContext(err, "index", 3)
//
// Inspecting errors:
//
//	switch errors.GetCode(err) {
//	case errors.CodeNotFound:
//	    // ...
//	}
//
// # Standard Library Compatibility
//
// The storage cause is reachable through the chain, so callers may still
// test for fs.ErrNotExist, fs.ErrPermission and friends:
//
//	if errors.Is(err, fs.ErrPermission) {
//	    // ...
//	}
//
// Context is included in JSON serialization (ToJSON, MarshalJSON) but the
// cause chain is not.
package errors
