package dailystoic

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	ECORRECTION  = "correction"  // correction service failed or returned garbage
	EINTERNAL    = "internal"    // anything we didn't anticipate
	EINVALID     = "invalid"     // invalid user input (e.g. an unparseable date)
	EMALFORMED   = "malformed"   // located entry is missing expected structure
	ENOTFOUND    = "not_found"   // entry boundary missing from the document
	EUNAVAILABLE = "unavailable" // document source unreachable
)

// Error represents an application error with a machine-readable code and
// a human-readable message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface. Not user friendly; use
// ErrorMessage for user-facing output.
func (e *Error) Error() string {
	return fmt.Sprintf("dailystoic error: code=%s message=%s", e.Code, e.Message)
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
// Non-application errors always return a generic message.
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
