package dto

import (
	"net/http"

	"github.com/fieldstock/backend/internal/domain/shared"
)

// Error codes sent to clients. Domain codes pass through unchanged.
const (
	ErrCodeInvalidInput        = shared.CodeInvalidInput
	ErrCodeUnauthorized        = shared.CodeUnauthorized
	ErrCodeForbidden           = shared.CodeForbidden
	ErrCodeNotFound            = shared.CodeNotFound
	ErrCodeAlreadyExists       = shared.CodeAlreadyExists
	ErrCodeConcurrencyConflict = shared.CodeConcurrencyConflict
	ErrCodeInsufficientStock   = shared.CodeInsufficientStock
	ErrCodeInvalidState        = shared.CodeInvalidState

	// ErrCodeDuplicateRequest is used when an Idempotency-Key was already seen
	ErrCodeDuplicateRequest = "DUPLICATE_REQUEST"
	// ErrCodeRequestTooLarge is used when the body exceeds the configured limit
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
	// ErrCodeRouteNotFound is used for unknown paths
	ErrCodeRouteNotFound = "ROUTE_NOT_FOUND"
	// ErrCodeServiceUnavailable is used when a required dependency is down
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	// ErrCodeInternal is used for every failure that is not a domain error
	ErrCodeInternal = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInvalidInput: http.StatusBadRequest,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeRouteNotFound: http.StatusNotFound,

	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,
	ErrCodeDuplicateRequest:    http.StatusConflict,

	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	// Business rule errors -> 422 Unprocessable Entity
	ErrCodeInsufficientStock: http.StatusUnprocessableEntity,
	ErrCodeInvalidState:      http.StatusUnprocessableEntity,

	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeInternal:           http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
