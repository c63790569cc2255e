package handler

import (
	inventoryapp "github.com/fieldstock/backend/internal/application/inventory"
	"github.com/gin-gonic/gin"
)

// RiderHandler serves a rider's own holdings and history
type RiderHandler struct {
	BaseHandler
	queries *inventoryapp.QueryService
}

// NewRiderHandler creates a new RiderHandler
func NewRiderHandler(queries *inventoryapp.QueryService) *RiderHandler {
	return &RiderHandler{queries: queries}
}

// Inventory returns the products the rider currently holds
//
// @ID           getRiderInventory
// @Summary      Get a rider's inventory
// @Description  Products the rider currently holds. Riders may only read their own.
// @Tags         riders
// @Produce      json
// @Param        rider_id path string true "Rider ID" format(uuid)
// @Success      200 {object} APIResponse[[]inventoryapp.RiderInventoryResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /riders/{rider_id}/inventory [get]
func (h *RiderHandler) Inventory(c *gin.Context) {
	riderID, ok := h.uuidParam(c, "rider_id")
	if !ok {
		return
	}
	rows, err := h.queries.ListRiderInventory(c.Request.Context(), riderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// Returns returns a page of the rider's return history, newest first
//
// @ID           listRiderReturns
// @Summary      List a rider's returns
// @Tags         riders
// @Produce      json
// @Param        rider_id  path  string true  "Rider ID" format(uuid)
// @Param        page      query int    false "Page number" minimum(1)
// @Param        page_size query int    false "Page size" minimum(1) maximum(100)
// @Success      200 {object} APIResponse[[]inventoryapp.ReturnRequestResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /riders/{rider_id}/returns [get]
func (h *RiderHandler) Returns(c *gin.Context) {
	riderID, ok := h.uuidParam(c, "rider_id")
	if !ok {
		return
	}
	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}
	page, err := h.queries.ListRiderReturns(c.Request.Context(), riderID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	SuccessPage(c, page)
}
