package errors

import (
	"encoding/json"
)

// ErrorResponse represents the JSON structure of an error reported by the
// steward CLI and any API built on top of it.
//
// The wrapped error chain is intentionally excluded; callers get the code,
// the message and the context (paths, task index) only.
type ErrorResponse struct {
	// Code is the error code identifying the type of error.
	Code string `json:"code"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Context contains optional metadata about the error.
	// Omitted from JSON if empty.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// For StewardError instances, extracts code, message, and context.
// For standard errors, uses CodeUnknown and the error message.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	message := err.Error()
	var context map[string]interface{}

	var se StewardError
	if As(err, &se) {
		message = se.Message()
		context = se.Context()
	}

	return &ErrorResponse{
		Code:    string(GetCode(err)),
		Message: message,
		Context: context,
	}
}

// MarshalJSON implements json.Marshaler for stewardError.
//
// Example:
//
//	err := errors.New(errors.CodeNotFound, "the path does not exist")
//	jsonBytes, _ := json.Marshal(err)
//	// Output: {"code":"NOT_FOUND","message":"the path does not exist"}
func (e *stewardError) MarshalJSON() ([]byte, error) {
	response := &ErrorResponse{
		Code:    string(e.code),
		Message: e.message,
		Context: e.context,
	}
	data, err := json.Marshal(response)
	if err != nil {
		return nil, &stewardError{
			code:    CodeUnknown,
			message: "failed to marshal error response",
			cause:   err,
		}
	}
	return data, nil
}
