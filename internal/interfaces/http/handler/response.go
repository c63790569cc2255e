package handler

import "github.com/fieldstock/backend/internal/interfaces/http/dto"

// APIResponse is the success envelope as documented in the OpenAPI schema.
// Handlers write dto.Response; this type only gives swag a concrete Data.
type APIResponse[T any] struct {
	Success bool           `json:"success" example:"true"`
	Data    T              `json:"data,omitempty"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
	Meta    *dto.Meta      `json:"meta,omitempty"`
}

// ErrorResponse is the failure envelope
// @Description Standard error response
type ErrorResponse struct {
	Success bool           `json:"success" example:"false"`
	Error   *dto.ErrorInfo `json:"error"`
}
