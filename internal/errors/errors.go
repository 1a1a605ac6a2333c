package errors

import (
	"fmt"
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
		Code:    CodeInternalError,
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

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes
const (
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeFileNotFound  = "FILE_NOT_FOUND"
	CodeParseError    = "PARSE_ERROR"
	CodeNoTable       = "NO_TABLE"
	CodeEmptyColumn   = "EMPTY_COLUMN"
	CodeBadStrategy   = "BAD_STRATEGY"
	CodeRenderError   = "RENDER_ERROR"
	CodeInternalError = "INTERNAL_ERROR"
)

// Common error constructors

func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func FileNotFound(path string) *AppError {
	return New(CodeFileNotFound, fmt.Sprintf("file not found: %s", path))
}

func ParseError(path string, cause error) *AppError {
	return &AppError{
		Code:    CodeParseError,
		Message: fmt.Sprintf("failed to parse %s", path),
		Cause:   cause,
	}
}

func NoTable() *AppError {
	return New(CodeNoTable, "no dataset loaded")
}

func EmptyColumn(column string) *AppError {
	return New(CodeEmptyColumn, fmt.Sprintf("column %q has no non-null values", column))
}

func BadStrategy(token string) *AppError {
	return New(CodeBadStrategy, fmt.Sprintf("unknown imputation strategy %q", token))
}
