package errors

import (
	"context"
	"errors"
	"fmt"
	"maps"
)

// Error is the error type every layer of the map generator returns. Code
// decides the transport status, Message is safe to show to the requester.
type Error struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithMeta sets key on e and returns e
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// New creates an error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// codeOf classifies err. Context errors keep their meaning so a request the
// caller abandoned is not reported as a server fault.
func codeOf(err error) Code {
	var customErr *Error
	switch {
	case errors.As(err, &customErr):
		return customErr.Code
	case errors.Is(err, context.Canceled):
		return CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return CodeDeadlineExceeded
	default:
		return CodeInternal
	}
}

// metaOf copies the metadata of the outermost *Error in err's chain. Wrappers
// get their own map so WithMeta on a wrapper leaves the cause untouched.
func metaOf(err error) map[string]interface{} {
	var customErr *Error
	if !errors.As(err, &customErr) || len(customErr.Meta) == 0 {
		return nil
	}
	return maps.Clone(customErr.Meta)
}

// Wrap adds message to err. The code comes from err: the code of a wrapped
// *Error, CANCELED or DEADLINE_EXCEEDED for context errors, INTERNAL otherwise.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	return &Error{
		Code:    codeOf(err),
		Message: message,
		Cause:   err,
		Meta:    metaOf(err),
	}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err and overrides its code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
		Meta:    metaOf(err),
	}
}

// NotFound reports a catalog entry or template that does not exist
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

func NotFoundf(format string, args ...interface{}) *Error {
	return NotFound(fmt.Sprintf(format, args...))
}

// InvalidArgument reports a bad request or config value
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

func InvalidArgumentf(format string, args ...interface{}) *Error {
	return InvalidArgument(fmt.Sprintf(format, args...))
}

func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Unavailable reports a catalog backend that cannot be reached
func Unavailable(message string) *Error {
	return New(CodeUnavailable, message)
}
