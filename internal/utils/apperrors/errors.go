package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
)

// ErrorType categorizes an application error for HTTP status mapping.
type ErrorType string

const (
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeValidation   ErrorType = "VALIDATION"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeConflict     ErrorType = "CONFLICT"
	ErrorTypeExternal     ErrorType = "EXTERNAL"
	ErrorTypeDatabase     ErrorType = "DATABASE_ERROR"
	ErrorTypeInternal     ErrorType = "INTERNAL"
)

// AppError is the error shape every handler failure resolves to. Detail is
// what the client sees (a string or a JSON-marshalable object); Err and Stack
// stay server-side.
type AppError struct {
	Type       ErrorType
	StatusCode int // explicit override; 0 means "derive from Type"
	Detail     any
	Err        error
	Stack      []byte
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %v: %v", e.Type, e.Detail, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Detail)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status code for this error.
func (e *AppError) Status() int {
	if e.StatusCode != 0 {
		return e.StatusCode
	}
	return TypeToHTTPStatus(e.Type)
}

// New creates an AppError with the stack captured at the call site.
func New(errorType ErrorType, detail any) *AppError {
	return &AppError{
		Type:   errorType,
		Detail: detail,
		Stack:  debug.Stack(),
	}
}

// Wrap creates an AppError around a cause.
func Wrap(errorType ErrorType, detail any, err error) *AppError {
	return &AppError{
		Type:   errorType,
		Detail: detail,
		Err:    err,
		Stack:  debug.Stack(),
	}
}

// NotFound creates a 404 error whose detail is shown to the client verbatim.
func NotFound(detail string) *AppError {
	return New(ErrorTypeNotFound, detail)
}

// Upstream wraps a failure of the external completion API. The upstream's
// status code is kept when present, otherwise 500; the client-visible detail
// carries only the stringified cause.
func Upstream(statusCode int, err error) *AppError {
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}
	return &AppError{
		Type:       ErrorTypeExternal,
		StatusCode: statusCode,
		Detail:     map[string]string{"message": err.Error()},
		Err:        err,
		Stack:      debug.Stack(),
	}
}

// Get unwraps err to an *AppError, or nil if it isn't one.
func Get(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, errorType ErrorType) bool {
	appErr := Get(err)
	return appErr != nil && appErr.Type == errorType
}

// TypeToHTTPStatus maps error types to HTTP status codes.
func TypeToHTTPStatus(errorType ErrorType) int {
	switch errorType {
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeValidation:
		return http.StatusBadRequest
	case ErrorTypeUnauthorized:
		return http.StatusUnauthorized
	case ErrorTypeConflict:
		return http.StatusConflict
	case ErrorTypeExternal:
		return http.StatusBadGateway
	case ErrorTypeDatabase, ErrorTypeInternal:
		fallthrough
	default:
		return http.StatusInternalServerError
	}
}
