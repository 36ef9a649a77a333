package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller specified an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested resource was not found
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates an attempt to create a resource that already exists
	CodeAlreadyExists Code = "already_exists"

	// CodeInvalidState indicates the resource is in a state that forbids the
	// operation (max level reached, wrong rarity tier)
	CodeInvalidState Code = "invalid_state"

	// CodeInsufficientResources indicates the player lacks the duplicates or
	// currency the operation requires
	CodeInsufficientResources Code = "insufficient_resources"

	// CodeInvalidInput indicates the wrong input cardinality for an operation
	CodeInvalidInput Code = "invalid_input"

	// CodeDataIntegrity indicates authored game content violates a balance
	// invariant; checked at startup, never tolerated per-request
	CodeDataIntegrity Code = "data_integrity"

	// CodeConflict indicates an optimistic version check failed on update
	CodeConflict Code = "conflict"

	// CodeRateLimited indicates an upstream API rejected the request for
	// exceeding its rate limit; meta carries the retry delay when known
	CodeRateLimited Code = "rate_limited"

	// CodeInternal indicates an internal system error
	CodeInternal Code = "internal"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// If it's already our error type, preserve the code
	var ddErr *Error
	if errors.As(err, &ddErr) {
		return &Error{
			Code:    ddErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(ddErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// Helper functions for common error types

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExists creates an already exists error
func AlreadyExists(message string) *Error {
	return New(CodeAlreadyExists, message)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// InvalidState creates an invalid state error
func InvalidState(message string) *Error {
	return New(CodeInvalidState, message)
}

// InvalidStatef creates a formatted invalid state error
func InvalidStatef(format string, args ...any) *Error {
	return Newf(CodeInvalidState, format, args...)
}

// InsufficientResources creates an insufficient resources error
func InsufficientResources(message string) *Error {
	return New(CodeInsufficientResources, message)
}

// InsufficientResourcesf creates a formatted insufficient resources error
func InsufficientResourcesf(format string, args ...any) *Error {
	return Newf(CodeInsufficientResources, format, args...)
}

// InvalidInput creates an invalid input error
func InvalidInput(message string) *Error {
	return New(CodeInvalidInput, message)
}

// InvalidInputf creates a formatted invalid input error
func InvalidInputf(format string, args ...any) *Error {
	return Newf(CodeInvalidInput, format, args...)
}

// DataIntegrity creates a data integrity error
func DataIntegrity(message string) *Error {
	return New(CodeDataIntegrity, message)
}

// DataIntegrityf creates a formatted data integrity error
func DataIntegrityf(format string, args ...any) *Error {
	return Newf(CodeDataIntegrity, format, args...)
}

// Conflict creates a version conflict error
func Conflict(message string) *Error {
	return New(CodeConflict, message)
}

// Conflictf creates a formatted version conflict error
func Conflictf(format string, args ...any) *Error {
	return Newf(CodeConflict, format, args...)
}

// RateLimited creates a rate limited error
func RateLimited(message string) *Error {
	return New(CodeRateLimited, message)
}

// RateLimitedf creates a formatted rate limited error
func RateLimitedf(format string, args ...any) *Error {
	return Newf(CodeRateLimited, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Error checking functions

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var ddErr *Error
	if errors.As(err, &ddErr) {
		return ddErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsInvalidState checks if the error is an invalid state error
func IsInvalidState(err error) bool {
	return Is(err, CodeInvalidState)
}

// IsInsufficientResources checks if the error is an insufficient resources error
func IsInsufficientResources(err error) bool {
	return Is(err, CodeInsufficientResources)
}

// IsInvalidInput checks if the error is an invalid input error
func IsInvalidInput(err error) bool {
	return Is(err, CodeInvalidInput)
}

// IsRateLimited checks if the error is a rate limited error
func IsRateLimited(err error) bool {
	return Is(err, CodeRateLimited)
}

// IsDataIntegrity checks if the error is a data integrity error
func IsDataIntegrity(err error) bool {
	return Is(err, CodeDataIntegrity)
}

// IsConflict checks if the error is a version conflict error
func IsConflict(err error) bool {
	return Is(err, CodeConflict)
}

// IsInternal checks if the error is an internal error
func IsInternal(err error) bool {
	return Is(err, CodeInternal)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var ddErr *Error
	if errors.As(err, &ddErr) {
		return ddErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var ddErr *Error
	if errors.As(err, &ddErr) {
		return ddErr.Meta
	}
	return nil
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
