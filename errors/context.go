package errors

// WithContext adds a single context field to an error.
// Returns a new StewardError with the context field added.
// Existing context fields are preserved.
//
// If err is not a StewardError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(errors.CodeNotFound, "the source does not exist")
//	err = errors.WithContext(err, "path", srcPath)
func WithContext(err error, key string, value interface{}) StewardError {
	if err == nil {
		return nil
	}

	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap adds multiple context fields to an error.
// Existing context fields are preserved; new fields override existing ones with the same key.
//
// If err is not a StewardError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContextMap(err, map[string]interface{}{
//	    "src":  srcPath,
//	    "dest": destPath,
//	})
func WithContextMap(err error, ctx map[string]interface{}) StewardError {
	if err == nil {
		return nil
	}

	se := asStewardError(err)

	newContext := make(map[string]interface{})
	for k, v := range se.Context() {
		newContext[k] = v
	}
	for k, v := range ctx {
		newContext[k] = v
	}

	return &stewardError{
		code:    se.Code(),
		message: se.Message(),
		context: newContext,
		cause:   se.Unwrap(),
	}
}

// WithMessage replaces the message of an error, keeping its code, context
// and cause. The bulk runner uses it to annotate a failure with the position
// of the task that raised it.
//
// If err is not a StewardError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithMessage(err error, message string) StewardError {
	if err == nil {
		return nil
	}

	se := asStewardError(err)

	return &stewardError{
		code:    se.Code(),
		message: message,
		context: se.Context(),
		cause:   se.Unwrap(),
	}
}
