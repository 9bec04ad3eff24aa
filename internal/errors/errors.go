package errors

import (
	"context"
	"errors"
	"fmt"
)

// ErrorCode represents a category of controller error.
type ErrorCode string

const (
	// ErrCodeAuthFailure indicates the server rejected the login credentials.
	ErrCodeAuthFailure ErrorCode = "auth_failure"
	// ErrCodePrecondition indicates an operation was blocked before any network call.
	ErrCodePrecondition ErrorCode = "precondition_failure"
	// ErrCodeServerRejection indicates the server answered with a non-2xx status.
	ErrCodeServerRejection ErrorCode = "server_rejection"
	// ErrCodeTransport indicates no usable response: network, read or decode failure.
	ErrCodeTransport ErrorCode = "transport_failure"
	// ErrCodeValidation indicates invalid input data.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "internal"
	// ErrCodeTimeout indicates a timeout occurred.
	ErrCodeTimeout ErrorCode = "timeout"
	// ErrCodeCanceled indicates the operation was canceled.
	ErrCodeCanceled ErrorCode = "canceled"
)

// AppError represents a structured error with a code, message, and optional cause.
// It supports error wrapping and unwrapping for use with errors.Is and errors.As.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
	// Field is the specific field that caused the error (optional, for validation errors)
	Field string
	// Status is the HTTP status for server rejections (optional)
	Status int
}

// Error implements the error interface.
func (e *AppError) Error() string {
	msg := e.Message
	if e.Status != 0 {
		if msg == "" {
			msg = fmt.Sprintf("status %d", e.Status)
		} else {
			msg = fmt.Sprintf("status %d: %s", e.Status, msg)
		}
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// AuthFailure creates an error for rejected login credentials.
func AuthFailure(message string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeAuthFailure,
		Message: message,
		Cause:   cause,
	}
}

// PreconditionFailure creates an error for an operation blocked locally.
func PreconditionFailure(message string) *AppError {
	return &AppError{
		Code:    ErrCodePrecondition,
		Message: message,
	}
}

// Rejection creates a ServerRejection error carrying the HTTP status and the
// server-supplied detail, which may be empty.
func Rejection(status int, detail string) *AppError {
	return &AppError{
		Code:    ErrCodeServerRejection,
		Message: detail,
		Status:  status,
	}
}

// Transport wraps a network, read or decode error. Context errors keep their own code.
func Transport(err error, message string) *AppError {
	if err == nil {
		return nil
	}
	code := ErrCodeTransport
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		code = ErrCodeTimeout
	case errors.Is(err, context.Canceled):
		code = ErrCodeCanceled
	}
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}

// ValidationField creates a new Validation error for a specific field.
func ValidationField(field, message string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Field:   field,
	}
}

// Internal creates a new Internal error.
func Internal(message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
	}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsAuthFailure checks if an error is an AuthFailure error.
func IsAuthFailure(err error) bool {
	return isCode(err, ErrCodeAuthFailure)
}

// IsPrecondition checks if an error is a PreconditionFailure error.
func IsPrecondition(err error) bool {
	return isCode(err, ErrCodePrecondition)
}

// IsServerRejection checks if an error is a ServerRejection error.
func IsServerRejection(err error) bool {
	return isCode(err, ErrCodeServerRejection)
}

// IsTransport reports whether no usable response was received. Timeouts and
// cancellations count as transport failures for the controller.
func IsTransport(err error) bool {
	return isCode(err, ErrCodeTransport) || isCode(err, ErrCodeTimeout) || isCode(err, ErrCodeCanceled)
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool {
	return isCode(err, ErrCodeValidation)
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// Detail returns the server-supplied rejection detail and status, if err carries one.
func Detail(err error) (string, int, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code == ErrCodeServerRejection {
		return appErr.Message, appErr.Status, true
	}
	return "", 0, false
}
