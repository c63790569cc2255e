package handler

import (
	inventoryapp "github.com/fieldstock/backend/internal/application/inventory"
	"github.com/gin-gonic/gin"
)

// ProductHandler serves the product catalog
type ProductHandler struct {
	BaseHandler
	queries *inventoryapp.QueryService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(queries *inventoryapp.QueryService) *ProductHandler {
	return &ProductHandler{queries: queries}
}

// List returns the catalog ordered by name
//
// @ID           listProducts
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Success      200 {object} APIResponse[[]inventoryapp.ProductResponse]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.queries.ListProducts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}
