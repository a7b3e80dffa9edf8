package sfcrawl

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic and map well to transport-level and
// page-level failure categories. Page-level failures never escape the
// worker boundary; codes let the worker decide between retry, skip,
// and soft fallback.
const (
	EINVALID     = "invalid"     // malformed input or page structure
	ENOTFOUND    = "not_found"   // removed page, 404 marker
	EUNAVAILABLE = "unavailable" // transient network failure
	EDRIVER      = "driver"      // browser session failure
	EINTERNAL    = "internal"    // unexpected internal error
)

// Error represents an application-specific error. Errors carry a
// machine-readable code and a human-readable message.
type Error struct {
	// Code is one of the application error codes above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("sfcrawl error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsTransient reports whether an error represents a transient condition
// worth retrying, such as a timeout or connection reset.
func IsTransient(err error) bool {
	return ErrorCode(err) == EUNAVAILABLE
}
