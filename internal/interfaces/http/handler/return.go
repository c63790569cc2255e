package handler

import (
	inventoryapp "github.com/fieldstock/backend/internal/application/inventory"
	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/fieldstock/backend/internal/interfaces/http/dto"
	"github.com/fieldstock/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// ReturnHandler serves the return workflow
type ReturnHandler struct {
	BaseHandler
	returns *inventoryapp.ReturnService
	queries *inventoryapp.QueryService
}

// NewReturnHandler creates a new ReturnHandler
func NewReturnHandler(returns *inventoryapp.ReturnService, queries *inventoryapp.QueryService) *ReturnHandler {
	return &ReturnHandler{returns: returns, queries: queries}
}

// Create files a pending return on behalf of the calling rider
//
// @ID           createReturn
// @Summary      Request a return
// @Description  File a pending return of goods the calling rider holds. Stock moves only on approval.
// @Tags         returns
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string                  false "Replay protection key"
// @Param        request         body   dto.CreateReturnRequest true  "Return"
// @Success      201 {object} APIResponse[inventoryapp.ReturnRequestResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /returns [post]
func (h *ReturnHandler) Create(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		h.HandleError(c, shared.ErrUnauthorized)
		return
	}
	var req dto.CreateReturnRequest
	if !h.bindJSON(c, &req) {
		return
	}
	productID, ok := h.parseUUID(c, "product_id", req.ProductID)
	if !ok {
		return
	}

	ret, err := h.returns.RequestReturn(c.Request.Context(), inventoryapp.RequestReturnRequest{
		RiderID:   principal.ID,
		ProductID: productID,
		Quantity:  req.Quantity,
		Reason:    req.Reason,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, ret)
}

// Approve moves the returned goods back into the warehouse
//
// @ID           approveReturn
// @Summary      Approve a return
// @Description  Move the returned quantity from the rider back to the warehouse. Admin only.
// @Tags         returns
// @Produce      json
// @Param        id path string true "Return request ID" format(uuid)
// @Success      200 {object} APIResponse[inventoryapp.ReturnRequestResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /returns/{id}/approve [post]
func (h *ReturnHandler) Approve(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	ret, err := h.returns.ApproveReturn(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ret)
}

// Reject closes a pending return without moving stock
//
// @ID           rejectReturn
// @Summary      Reject a return
// @Tags         returns
// @Produce      json
// @Param        id path string true "Return request ID" format(uuid)
// @Success      200 {object} APIResponse[inventoryapp.ReturnRequestResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /returns/{id}/reject [post]
func (h *ReturnHandler) Reject(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	ret, err := h.returns.RejectReturn(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ret)
}

// ListPending returns a page of pending returns, newest first
//
// @ID           listPendingReturns
// @Summary      List pending returns
// @Tags         returns
// @Produce      json
// @Param        page      query int false "Page number" minimum(1)
// @Param        page_size query int false "Page size" minimum(1) maximum(100)
// @Success      200 {object} APIResponse[[]inventoryapp.ReturnRequestResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /returns/pending [get]
func (h *ReturnHandler) ListPending(c *gin.Context) {
	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}
	page, err := h.queries.ListPendingReturns(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	SuccessPage(c, page)
}

// Reasons lists the selectable return reasons
//
// @ID           listReturnReasons
// @Summary      List return reasons
// @Tags         returns
// @Produce      json
// @Success      200 {object} APIResponse[[]inventoryapp.ReturnReasonResponse]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /returns/reasons [get]
func (h *ReturnHandler) Reasons(c *gin.Context) {
	h.Success(c, h.queries.ReturnReasons())
}
