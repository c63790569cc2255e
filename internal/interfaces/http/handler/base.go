package handler

import (
	"errors"
	"net/http"

	inventoryapp "github.com/fieldstock/backend/internal/application/inventory"
	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/fieldstock/backend/internal/infrastructure/logger"
	"github.com/fieldstock/backend/internal/interfaces/http/dto"
	"github.com/fieldstock/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// SuccessPage sends a page of items with pagination meta
func SuccessPage[T any](c *gin.Context, page *shared.Paginated[T]) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(page.Items, page.Total, page.Page, page.PageSize))
}

// Error sends an error response, deriving the status from the code
func (h *BaseHandler) Error(c *gin.Context, code, message string) {
	c.JSON(dto.GetHTTPStatus(code), dto.NewErrorResponse(code, message, middleware.GetRequestID(c)))
}

// HandleError converts an error returned by the application layer into a response.
// Domain errors keep their code and message. Anything else is logged and
// reported as INTERNAL_ERROR without exposing its text.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.Error(c, domainErr.Code, domainErr.Message)
		return
	}

	logger.GetGinLogger(c).Error("Request failed", zap.Error(err))
	h.Error(c, dto.ErrCodeInternal, "An unexpected error occurred")
}

// bindJSON binds and validates the request body, answering 400 on failure
func (h *BaseHandler) bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		middleware.HandleValidationError(c, err)
		return false
	}
	return true
}

// uuidParam parses a uuid path parameter, answering 400 when it is malformed
func (h *BaseHandler) uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	return h.parseUUID(c, name, c.Param(name))
}

// parseUUID parses value as a UUID, answering 400 against field when it is malformed
func (h *BaseHandler) parseUUID(c *gin.Context, field, value string) (uuid.UUID, bool) {
	id, err := uuid.Parse(value)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(
			"Request validation failed",
			middleware.GetRequestID(c),
			[]dto.ValidationDetail{{Field: field, Message: "Invalid UUID format"}},
		))
		return uuid.Nil, false
	}
	return id, true
}

// bindListFilter reads paging and filter query parameters
func (h *BaseHandler) bindListFilter(c *gin.Context) (inventoryapp.ListFilter, bool) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.HandleValidationError(c, err)
		return inventoryapp.ListFilter{}, false
	}

	filter := inventoryapp.ListFilter{Page: q.Page, PageSize: q.PageSize}
	if q.RiderID != "" {
		riderID, err := uuid.Parse(q.RiderID)
		if err != nil {
			h.Error(c, dto.ErrCodeInvalidInput, "Invalid rider_id")
			return inventoryapp.ListFilter{}, false
		}
		filter.RiderID = &riderID
	}
	return filter, true
}
