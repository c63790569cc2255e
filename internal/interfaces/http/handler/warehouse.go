package handler

import (
	inventoryapp "github.com/fieldstock/backend/internal/application/inventory"
	"github.com/fieldstock/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// WarehouseHandler serves warehouse stock endpoints
type WarehouseHandler struct {
	BaseHandler
	ledger  *inventoryapp.LedgerService
	queries *inventoryapp.QueryService
	monitor *inventoryapp.LowStockMonitor
}

// NewWarehouseHandler creates a new WarehouseHandler
func NewWarehouseHandler(
	ledger *inventoryapp.LedgerService,
	queries *inventoryapp.QueryService,
	monitor *inventoryapp.LowStockMonitor,
) *WarehouseHandler {
	return &WarehouseHandler{ledger: ledger, queries: queries, monitor: monitor}
}

// ListStock returns a page of warehouse stock rows, most recently updated first
//
// @ID           listWarehouseStock
// @Summary      List warehouse stock
// @Description  Page through warehouse stock rows, most recently updated first
// @Tags         warehouse
// @Produce      json
// @Param        page      query int false "Page number" minimum(1)
// @Param        page_size query int false "Page size" minimum(1) maximum(100)
// @Success      200 {object} APIResponse[[]inventoryapp.WarehouseStockResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /warehouse/stock [get]
func (h *WarehouseHandler) ListStock(c *gin.Context) {
	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}
	page, err := h.queries.ListWarehouseStock(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	SuccessPage(c, page)
}

// GetStock returns the stock row of one product
//
// @ID           getWarehouseStock
// @Summary      Get warehouse stock of a product
// @Tags         warehouse
// @Produce      json
// @Param        product_id path string true "Product ID" format(uuid)
// @Success      200 {object} APIResponse[inventoryapp.WarehouseStockResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /warehouse/stock/{product_id} [get]
func (h *WarehouseHandler) GetStock(c *gin.Context) {
	productID, ok := h.uuidParam(c, "product_id")
	if !ok {
		return
	}
	stock, err := h.queries.GetWarehouseStock(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stock)
}

// AdjustStock sets the absolute quantity and minimum of a product's warehouse row
//
// @ID           adjustWarehouseStock
// @Summary      Adjust warehouse stock
// @Description  Set the absolute quantity and low-stock threshold. Creates the row on first use. Admin only.
// @Tags         warehouse
// @Accept       json
// @Produce      json
// @Param        product_id      path   string                 true  "Product ID" format(uuid)
// @Param        Idempotency-Key header string                 false "Replay protection key"
// @Param        request         body   dto.AdjustStockRequest true  "New levels"
// @Success      200 {object} APIResponse[inventoryapp.WarehouseStockResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /warehouse/stock/{product_id} [put]
func (h *WarehouseHandler) AdjustStock(c *gin.Context) {
	productID, ok := h.uuidParam(c, "product_id")
	if !ok {
		return
	}
	var req dto.AdjustStockRequest
	if !h.bindJSON(c, &req) {
		return
	}

	stock, err := h.ledger.AdjustWarehouseStock(c.Request.Context(), inventoryapp.AdjustStockRequest{
		ProductID: productID,
		Quantity:  *req.Quantity,
		MinStock:  *req.MinStock,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stock)
}

// ListLowStock returns every row at or below its minimum
//
// @ID           listLowStock
// @Summary      List low stock
// @Description  Every warehouse row whose quantity is at or below its minimum, emptiest first
// @Tags         warehouse
// @Produce      json
// @Success      200 {object} APIResponse[[]inventoryapp.WarehouseStockResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /warehouse/low-stock [get]
func (h *WarehouseHandler) ListLowStock(c *gin.Context) {
	rows, err := h.monitor.ListLowStock(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}
