package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Conversion errors
	ErrSourceUnreadable      ErrorCode = "SOURCE_UNREADABLE"
	ErrDestinationUnwritable ErrorCode = "DESTINATION_UNWRITABLE"
	ErrSerialization         ErrorCode = "SERIALIZATION"
)

// LootifierError represents a structured error with code and details
type LootifierError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LootifierError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LootifierError) Unwrap() error {
	return e.Wrapped
}

// Is matches any LootifierError carrying the same code
func (e *LootifierError) Is(target error) bool {
	var targetErr *LootifierError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LootifierError with the given code and message
func New(code ErrorCode, message string) *LootifierError {
	return &LootifierError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LootifierError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LootifierError {
	return &LootifierError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *LootifierError {
	if err == nil {
		return nil
	}
	return &LootifierError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LootifierError {
	if err == nil {
		return nil
	}
	return &LootifierError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LootifierError) WithDetail(key string, value interface{}) *LootifierError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var lerr *LootifierError
	if errors.As(err, &lerr) {
		return lerr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LootifierError
func GetErrorCode(err error) ErrorCode {
	var lerr *LootifierError
	if errors.As(err, &lerr) {
		return lerr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a LootifierError
func GetErrorDetails(err error) map[string]interface{} {
	var lerr *LootifierError
	if errors.As(err, &lerr) {
		return lerr.Details
	}
	return nil
}
