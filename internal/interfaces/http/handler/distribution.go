package handler

import (
	inventoryapp "github.com/fieldstock/backend/internal/application/inventory"
	"github.com/fieldstock/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// DistributionHandler serves distribution endpoints
type DistributionHandler struct {
	BaseHandler
	distributions *inventoryapp.DistributionService
	queries       *inventoryapp.QueryService
}

// NewDistributionHandler creates a new DistributionHandler
func NewDistributionHandler(distributions *inventoryapp.DistributionService, queries *inventoryapp.QueryService) *DistributionHandler {
	return &DistributionHandler{distributions: distributions, queries: queries}
}

// Create moves stock from the warehouse to a rider and records the distribution
//
// @ID           createDistribution
// @Summary      Distribute stock to a rider
// @Description  Move stock from the warehouse to a rider and record the distribution. Admin only.
// @Tags         distributions
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string                false "Replay protection key"
// @Param        request         body   dto.DistributeRequest true  "Distribution"
// @Success      201 {object} APIResponse[inventoryapp.DistributionResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /distributions [post]
func (h *DistributionHandler) Create(c *gin.Context) {
	var req dto.DistributeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	productID, ok := h.parseUUID(c, "product_id", req.ProductID)
	if !ok {
		return
	}
	riderID, ok := h.parseUUID(c, "rider_id", req.RiderID)
	if !ok {
		return
	}

	distribution, err := h.distributions.Distribute(c.Request.Context(), inventoryapp.DistributeRequest{
		ProductID: productID,
		RiderID:   riderID,
		Quantity:  req.Quantity,
		Notes:     req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, distribution)
}

// List returns a page of distributions, newest first, optionally for one rider
//
// @ID           listDistributions
// @Summary      List distributions
// @Tags         distributions
// @Produce      json
// @Param        page      query int    false "Page number" minimum(1)
// @Param        page_size query int    false "Page size" minimum(1) maximum(100)
// @Param        rider_id  query string false "Only this rider" format(uuid)
// @Success      200 {object} APIResponse[[]inventoryapp.DistributionResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /distributions [get]
func (h *DistributionHandler) List(c *gin.Context) {
	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}
	page, err := h.queries.ListDistributions(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	SuccessPage(c, page)
}
