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

// Is reports whether target is a DomainError with the same code.
// This lets callers match a specific failure with errors.Is(err, shared.ErrNotFound)
// regardless of the message attached to it.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes
const (
	CodeNotFound            = "NOT_FOUND"
	CodeAlreadyExists       = "ALREADY_EXISTS"
	CodeInvalidInput        = "INVALID_INPUT"
	CodeConcurrencyConflict = "CONCURRENCY_CONFLICT"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeInvalidState        = "INVALID_STATE"
	CodeInsufficientStock   = "INSUFFICIENT_STOCK"
)

// Common domain errors
var (
	ErrNotFound            = NewDomainError(CodeNotFound, "Resource not found")
	ErrAlreadyExists       = NewDomainError(CodeAlreadyExists, "Resource already exists")
	ErrInvalidInput        = NewDomainError(CodeInvalidInput, "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError(CodeConcurrencyConflict, "Resource was modified by another process")
	ErrUnauthorized        = NewDomainError(CodeUnauthorized, "Not authorized to perform this action")
	ErrForbidden           = NewDomainError(CodeForbidden, "Access to this resource is forbidden")
	ErrInvalidState        = NewDomainError(CodeInvalidState, "Operation not allowed in current state")
	ErrInsufficientStock   = NewDomainError(CodeInsufficientStock, "Insufficient stock available")
)

// NewValidationError creates an INVALID_INPUT error with a specific message
func NewValidationError(message string) *DomainError {
	return NewDomainError(CodeInvalidInput, message)
}

// NewNotFoundError creates a NOT_FOUND error with a specific message
func NewNotFoundError(message string) *DomainError {
	return NewDomainError(CodeNotFound, message)
}

// NewInvalidStateError creates an INVALID_STATE error with a specific message
func NewInvalidStateError(message string) *DomainError {
	return NewDomainError(CodeInvalidState, message)
}

// NewInsufficientStockError creates an INSUFFICIENT_STOCK error with a specific message
func NewInsufficientStockError(message string) *DomainError {
	return NewDomainError(CodeInsufficientStock, message)
}

// IsRetryable reports whether err is a transient contention failure.
// Only concurrency conflicts qualify; every business rule violation is final.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConcurrencyConflict)
}
