package smsprovider

import (
	"errors"
	"fmt"
)

const (
	ErrorCodeServerError    = "SERVER_ERROR"    // 5xx or unclassified provider rejection
	ErrorCodeTimeout        = "TIMEOUT"         // deadline hit before the request was made
	ErrorCodeInvalidNumber  = "INVALID_NUMBER"  // 400 / number validation errors
	ErrorCodeNetworkError   = "NETWORK_ERROR"   // transport failures
	ErrorCodeUnknownOutcome = "UNKNOWN_OUTCOME" // request timed out in flight, may have been delivered
)

type Error struct {
	Code  string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Code
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Temporary reports whether the send may be retried later. An unknown outcome
// is never retried.
func (e *Error) Temporary() bool {
	return e.Code != ErrorCodeInvalidNumber && e.Code != ErrorCodeUnknownOutcome
}

func newError(code string, cause error) *Error {
	return &Error{Code: code, Cause: cause}
}

// Code returns the classification code of err, or "" if it was not produced by a provider.
func Code(err error) string {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

func IsTemporary(err error) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Temporary()
	}
	return false
}
