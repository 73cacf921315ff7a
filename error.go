package cleantext

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// ENETWORK, EHTTPSTATUS and EOUTPUT map to the failure modes surfaced to
// callers: connection/DNS-level failures, non-2xx HTTP responses, and
// unwritable output destinations. EINVALID and EINTERNAL cover programming
// and unexpected errors.
const (
	EINTERNAL   = "internal"
	EINVALID    = "invalid"
	ENETWORK    = "network"
	EHTTPSTATUS = "http_status"
	EOUTPUT     = "output"
)

// Error represents an application-specific error. Errors are identified by
// a machine-readable code and carry a human-readable message. EHTTPSTATUS
// errors additionally carry the HTTP status code of the response.
type Error struct {
	// Code is one of the E-constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string

	// Status is the HTTP status code for EHTTPSTATUS errors, zero otherwise.
	Status int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("cleantext error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// HTTPStatusErrorf returns an EHTTPSTATUS Error carrying the given status
// code.
func HTTPStatusErrorf(status int, format string, args ...any) *Error {
	return &Error{
		Code:    EHTTPSTATUS,
		Message: fmt.Sprintf(format, args...),
		Status:  status,
	}
}

// ErrorCode unwraps an application error and returns its code. Non-application
// errors always return EINTERNAL.
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

// ErrorStatus unwraps an application error and returns its HTTP status code,
// or zero when the error carries none.
func ErrorStatus(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}
