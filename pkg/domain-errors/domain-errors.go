package domainerrors

import "errors"

// Code represents a bridge error category independent of the transport that
// surfaced it. These codes describe what went wrong in consent-bridge terms,
// not in terms of the native SDK's own error vocabulary.
type Code string

const (
	CodeNotFound     Code = "not_found"
	CodeInvalidInput Code = "invalid_input"     // value outside an enumerated vocabulary
	CodeValidation   Code = "validation_failed" // missing required field, unresolvable color
	CodeInternal     Code = "internal_error"
	CodeTimeout      Code = "timeout"

	// CodeNativeSDK marks operational failures reported by the native CMP SDK
	// (e.g. network failure while fetching consent rules, invalid CMP id).
	// The SDK's message is preserved verbatim; the caller decides whether to retry.
	CodeNativeSDK Code = "native_sdk_failure"

	// CodeReentrantCall marks a synchronous main-thread read issued from the
	// main thread itself, which would deadlock the calling goroutine.
	CodeReentrantCall Code = "reentrant_call"
)

// Error wraps validation or native-SDK failures with a stable code.
// It is transport-agnostic and can be used across normalizer, service, and
// geometry layers.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Code)
}

// Unwrap implements error unwrapping for error chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is enables errors.Is() to match errors by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new domain error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap creates a new domain error wrapping an existing error.
// If the wrapped error is already a domain error, the original code is preserved.
func Wrap(err error, code Code, msg string) error {
	var existing *Error
	if errors.As(err, &existing) {
		return &Error{Code: existing.Code, Message: msg, Err: err}
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode checks if an error is a domain error with the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
