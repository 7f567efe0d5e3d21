// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the rawbuf library.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrOutOfMemory     = fmt.Errorf("out of memory")
	ErrOutOfBounds     = fmt.Errorf("index out of bounds")
	ErrNotAccessible   = fmt.Errorf("buffer is not accessible")
	ErrUnsupported     = fmt.Errorf("operation not supported")
	ErrAllocatorClosed = fmt.Errorf("allocator is closed")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeOutOfMemory
	ErrCodeOutOfBounds
	ErrCodeNotAccessible
	ErrCodeUnsupported
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps structured codes back onto the sentinel errors so that
// errors.Is keeps working across the two styles.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	case ErrCodeOutOfMemory:
		return ErrOutOfMemory
	case ErrCodeOutOfBounds:
		return ErrOutOfBounds
	case ErrCodeNotAccessible:
		return ErrNotAccessible
	case ErrCodeUnsupported:
		return ErrUnsupported
	default:
		return nil
	}
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
