package shared

import "errors"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes used across the domain
const (
	CodeNotFound      = "NOT_FOUND"
	CodeAlreadyExists = "ALREADY_EXISTS"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeInternal      = "INTERNAL_ERROR"
)

// Common domain errors
var (
	ErrNotFound      = NewDomainError(CodeNotFound, "Resource not found")
	ErrAlreadyExists = NewDomainError(CodeAlreadyExists, "Resource already exists")
	ErrInvalidInput  = NewDomainError(CodeInvalidInput, "Invalid input provided")
)

// NewNotFoundError creates a NOT_FOUND error with a specific message
func NewNotFoundError(message string) *DomainError {
	return NewDomainError(CodeNotFound, message)
}

// NewInternalError creates an INTERNAL_ERROR with a fixed, non-leaking message.
// The underlying cause must never be embedded in the message; log it instead.
func NewInternalError(message string) *DomainError {
	return NewDomainError(CodeInternal, message)
}

// ErrorCode extracts the domain error code from an error, or an empty string
// if the error is not a DomainError.
func ErrorCode(err error) string {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

// IsCode reports whether err is a DomainError carrying the given code.
func IsCode(err error, code string) bool {
	return ErrorCode(err) == code
}
