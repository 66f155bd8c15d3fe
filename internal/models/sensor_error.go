package models

import "fmt"

// ErrorCode is a string type for consistent sensor error codes.
type ErrorCode string

// Predefined error codes for sensor failures.
const (
	// ErrorCodeAccess covers files that cannot be opened or read:
	// missing device, permissions, filesystem unavailable.
	ErrorCodeAccess ErrorCode = "access_error"
	// ErrorCodeParse covers device file content that does not match the
	// expected two-line, '='-delimited, integer-suffix shape.
	ErrorCodeParse ErrorCode = "parse_error"
)

// SensorError describes a failed device read or a malformed device file.
type SensorError struct {
	Code    ErrorCode
	Message string
	Err     error
}

// Error makes SensorError implement the error interface.
func (e *SensorError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e *SensorError) Unwrap() error {
	return e.Err
}

// NewAccessError wraps a filesystem failure.
func NewAccessError(message string, err error) *SensorError {
	return &SensorError{Code: ErrorCodeAccess, Message: message, Err: err}
}

// NewParseError marks device file content of an unexpected shape.
func NewParseError(message string, err error) *SensorError {
	return &SensorError{Code: ErrorCodeParse, Message: message, Err: err}
}
