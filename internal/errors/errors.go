package errors

import (
	stderrors "errors"
	"fmt"

	"baselinedash/domain/core"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    Classify(err),
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetCode returns the error code if it's an AppError, otherwise the
// code derived from the domain taxonomy.
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return Classify(err)
}

// Predefined error codes
const (
	CodeSourceRead    = "SOURCE_READ_ERROR"
	CodeSchema        = "SCHEMA_ERROR"
	CodeEmptyResult   = "EMPTY_RESULT"
	CodeNoTable       = "NO_TABLE"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeInternalError = "INTERNAL_ERROR"
)

// Classify maps a domain error to its code so the top-level handler
// (and tests) can branch on kind rather than message text.
func Classify(err error) string {
	switch {
	case core.IsSourceReadError(err):
		return CodeSourceRead
	case core.IsSchemaError(err):
		return CodeSchema
	case core.IsEmptyResult(err):
		return CodeEmptyResult
	case stderrors.Is(err, core.ErrNoTable):
		return CodeNoTable
	default:
		return CodeInternalError
	}
}

// Common error constructors
func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}
