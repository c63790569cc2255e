package inventory

import (
	"time"

	"github.com/fieldstock/backend/internal/domain/catalog"
	"github.com/fieldstock/backend/internal/domain/inventory"
	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AdjustStockRequest is the input of an administrative stock adjustment
type AdjustStockRequest struct {
	ProductID uuid.UUID
	Quantity  int64
	MinStock  int64
}

// TransferRequest is the input of a ledger transfer
type TransferRequest struct {
	ProductID uuid.UUID
	RiderID   uuid.UUID
	Quantity  int64
}

// DistributeRequest is the input of a distribution
type DistributeRequest struct {
	ProductID uuid.UUID
	RiderID   uuid.UUID
	Quantity  int64
	Notes     string
}

// RequestReturnRequest is the input of a rider's return request
type RequestReturnRequest struct {
	RiderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int64
	Reason    string
}

// ListFilter represents paging and filter options for list queries
type ListFilter struct {
	Page      int
	PageSize  int
	RiderID   *uuid.UUID
	ProductID *uuid.UUID
}

// ProductResponse represents a catalog product
type ProductResponse struct {
	ID   uuid.UUID `json:"id"`
	SKU  string    `json:"sku"`
	Name string    `json:"name"`
}

// WarehouseStockResponse represents a warehouse stock row
type WarehouseStockResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductSKU  string    `json:"product_sku,omitempty"`
	ProductName string    `json:"product_name,omitempty"`
	Quantity    int64     `json:"quantity"`
	MinStock    int64     `json:"min_stock"`
	IsLowStock  bool      `json:"is_low_stock"`
	UpdatedAt   time.Time `json:"updated_at"`
	Version     int       `json:"version"`
}

// RiderInventoryResponse represents a rider inventory row
type RiderInventoryResponse struct {
	ID          uuid.UUID `json:"id"`
	RiderID     uuid.UUID `json:"rider_id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductSKU  string    `json:"product_sku,omitempty"`
	ProductName string    `json:"product_name,omitempty"`
	Quantity    int64     `json:"quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransferResponse holds both sides of a transfer
type TransferResponse struct {
	Warehouse WarehouseStockResponse `json:"warehouse"`
	Rider     RiderInventoryResponse `json:"rider"`
}

// DistributionResponse represents a distribution record
type DistributionResponse struct {
	ID            uuid.UUID `json:"id"`
	ProductID     uuid.UUID `json:"product_id"`
	ProductSKU    string    `json:"product_sku,omitempty"`
	ProductName   string    `json:"product_name,omitempty"`
	RiderID       uuid.UUID `json:"rider_id"`
	Quantity      int64     `json:"quantity"`
	Notes         string    `json:"notes,omitempty"`
	DistributedBy uuid.UUID `json:"distributed_by"`
	DistributedAt time.Time `json:"distributed_at"`
}

// ReturnRequestResponse represents a return request
type ReturnRequestResponse struct {
	ID          uuid.UUID  `json:"id"`
	RiderID     uuid.UUID  `json:"rider_id"`
	ProductID   uuid.UUID  `json:"product_id"`
	ProductSKU  string     `json:"product_sku,omitempty"`
	ProductName string     `json:"product_name,omitempty"`
	Quantity    int64      `json:"quantity"`
	Reason      string     `json:"reason"`
	ReasonLabel string     `json:"reason_label"`
	Status      string     `json:"status"`
	ReturnedAt  time.Time  `json:"returned_at"`
	DecidedAt   *time.Time `json:"decided_at,omitempty"`
	DecidedBy   *uuid.UUID `json:"decided_by,omitempty"`
}

// ReturnReasonResponse is a selectable return reason
type ReturnReasonResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ToProductResponse converts a product to its response
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{ID: p.ID, SKU: p.SKU, Name: p.Name}
}

// ToWarehouseStockResponse converts a warehouse row; product may be nil
func ToWarehouseStockResponse(s *inventory.WarehouseStock, product *catalog.Product) WarehouseStockResponse {
	resp := WarehouseStockResponse{
		ID:         s.ID,
		ProductID:  s.ProductID,
		Quantity:   s.Quantity,
		MinStock:   s.MinStock,
		IsLowStock: s.IsLowStock(),
		UpdatedAt:  s.UpdatedAt,
		Version:    s.Version,
	}
	if product != nil {
		resp.ProductSKU = product.SKU
		resp.ProductName = product.Name
	}
	return resp
}

// ToRiderInventoryResponse converts a rider row; product may be nil
func ToRiderInventoryResponse(r *inventory.RiderInventory, product *catalog.Product) RiderInventoryResponse {
	resp := RiderInventoryResponse{
		ID:        r.ID,
		RiderID:   r.RiderID,
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		UpdatedAt: r.UpdatedAt,
	}
	if product != nil {
		resp.ProductSKU = product.SKU
		resp.ProductName = product.Name
	}
	return resp
}

// ToTransferResponse converts a transfer result
func ToTransferResponse(r *TransferResult) *TransferResponse {
	return &TransferResponse{
		Warehouse: ToWarehouseStockResponse(r.Warehouse, nil),
		Rider:     ToRiderInventoryResponse(r.Rider, nil),
	}
}

// ToDistributionResponse converts a distribution; product may be nil
func ToDistributionResponse(d *inventory.Distribution, product *catalog.Product) DistributionResponse {
	resp := DistributionResponse{
		ID:            d.ID,
		ProductID:     d.ProductID,
		RiderID:       d.RiderID,
		Quantity:      d.Quantity,
		Notes:         d.Notes,
		DistributedBy: d.DistributedBy,
		DistributedAt: d.DistributedAt,
	}
	if product != nil {
		resp.ProductSKU = product.SKU
		resp.ProductName = product.Name
	}
	return resp
}

// ToReturnRequestResponse converts a return request; product may be nil
func ToReturnRequestResponse(r *inventory.ReturnRequest, product *catalog.Product) ReturnRequestResponse {
	resp := ReturnRequestResponse{
		ID:          r.ID,
		RiderID:     r.RiderID,
		ProductID:   r.ProductID,
		Quantity:    r.Quantity,
		Reason:      string(r.Reason),
		ReasonLabel: r.Reason.Label(),
		Status:      string(r.Status),
		ReturnedAt:  r.ReturnedAt,
		DecidedAt:   r.DecidedAt,
		DecidedBy:   r.DecidedBy,
	}
	if product != nil {
		resp.ProductSKU = product.SKU
		resp.ProductName = product.Name
	}
	return resp
}

// toFilter converts the list options into a repository filter
func (f ListFilter) toFilter() shared.Filter {
	filter := shared.Filter{Page: f.Page, PageSize: f.PageSize}.Normalize()
	if f.RiderID != nil {
		filter.Filters["rider_id"] = *f.RiderID
	}
	if f.ProductID != nil {
		filter.Filters["product_id"] = *f.ProductID
	}
	return filter
}
