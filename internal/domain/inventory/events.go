package inventory

import (
	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constants
const (
	AggregateTypeWarehouseStock = "WarehouseStock"
	AggregateTypeDistribution   = "Distribution"
	AggregateTypeReturnRequest  = "ReturnRequest"
)

// Event type constants
const (
	EventTypeWarehouseStockAdjusted = "WarehouseStockAdjusted"
	EventTypeStockBelowThreshold    = "StockBelowThreshold"
	EventTypeStockDistributed       = "StockDistributed"
	EventTypeReturnRequested        = "ReturnRequested"
	EventTypeReturnApproved         = "ReturnApproved"
	EventTypeReturnRejected         = "ReturnRejected"
)

// WarehouseStockAdjustedEvent is raised on an administrative stock adjustment
type WarehouseStockAdjustedEvent struct {
	shared.EventHeader
	ProductID   uuid.UUID `json:"product_id"`
	OldQuantity int64     `json:"old_quantity"`
	NewQuantity int64     `json:"new_quantity"`
	MinStock    int64     `json:"min_stock"`
}

// NewWarehouseStockAdjustedEvent creates a new WarehouseStockAdjustedEvent
func NewWarehouseStockAdjustedEvent(s *WarehouseStock, oldQuantity int64) *WarehouseStockAdjustedEvent {
	return &WarehouseStockAdjustedEvent{
		EventHeader: shared.NewEventHeader(EventTypeWarehouseStockAdjusted, AggregateTypeWarehouseStock, s.ID),
		ProductID:       s.ProductID,
		OldQuantity:     oldQuantity,
		NewQuantity:     s.Quantity,
		MinStock:        s.MinStock,
	}
}

// StockBelowThresholdEvent is raised when warehouse stock drops to or below its minimum
type StockBelowThresholdEvent struct {
	shared.EventHeader
	ProductID       uuid.UUID `json:"product_id"`
	CurrentQuantity int64     `json:"current_quantity"`
	MinimumQuantity int64     `json:"minimum_quantity"`
}

// NewStockBelowThresholdEvent creates a new StockBelowThresholdEvent
func NewStockBelowThresholdEvent(s *WarehouseStock) *StockBelowThresholdEvent {
	return &StockBelowThresholdEvent{
		EventHeader: shared.NewEventHeader(EventTypeStockBelowThreshold, AggregateTypeWarehouseStock, s.ID),
		ProductID:       s.ProductID,
		CurrentQuantity: s.Quantity,
		MinimumQuantity: s.MinStock,
	}
}

// IsOutOfStock reports whether the warehouse is empty for the product
func (e *StockBelowThresholdEvent) IsOutOfStock() bool {
	return e.CurrentQuantity == 0
}

// StockDistributedEvent is raised after a distribution commits
type StockDistributedEvent struct {
	shared.EventHeader
	ProductID uuid.UUID `json:"product_id"`
	RiderID   uuid.UUID `json:"rider_id"`
	Quantity  int64     `json:"quantity"`
}

// NewStockDistributedEvent creates a new StockDistributedEvent
func NewStockDistributedEvent(d *Distribution) *StockDistributedEvent {
	return &StockDistributedEvent{
		EventHeader: shared.NewEventHeader(EventTypeStockDistributed, AggregateTypeDistribution, d.ID),
		ProductID:       d.ProductID,
		RiderID:         d.RiderID,
		Quantity:        d.Quantity,
	}
}

// ReturnEvent carries the common payload of return request events
type ReturnEvent struct {
	shared.EventHeader
	RiderID   uuid.UUID    `json:"rider_id"`
	ProductID uuid.UUID    `json:"product_id"`
	Quantity  int64        `json:"quantity"`
	Reason    ReturnReason `json:"reason"`
}

func newReturnEvent(eventType string, r *ReturnRequest) ReturnEvent {
	return ReturnEvent{
		EventHeader: shared.NewEventHeader(eventType, AggregateTypeReturnRequest, r.ID),
		RiderID:         r.RiderID,
		ProductID:       r.ProductID,
		Quantity:        r.Quantity,
		Reason:          r.Reason,
	}
}

// ReturnRequestedEvent is raised when a rider files a return
type ReturnRequestedEvent struct {
	ReturnEvent
}

// NewReturnRequestedEvent creates a new ReturnRequestedEvent
func NewReturnRequestedEvent(r *ReturnRequest) *ReturnRequestedEvent {
	return &ReturnRequestedEvent{ReturnEvent: newReturnEvent(EventTypeReturnRequested, r)}
}

// ReturnApprovedEvent is raised when an admin approves a return
type ReturnApprovedEvent struct {
	ReturnEvent
	ApprovedBy uuid.UUID `json:"approved_by"`
}

// NewReturnApprovedEvent creates a new ReturnApprovedEvent
func NewReturnApprovedEvent(r *ReturnRequest) *ReturnApprovedEvent {
	e := &ReturnApprovedEvent{ReturnEvent: newReturnEvent(EventTypeReturnApproved, r)}
	if r.DecidedBy != nil {
		e.ApprovedBy = *r.DecidedBy
	}
	return e
}

// ReturnRejectedEvent is raised when an admin rejects a return
type ReturnRejectedEvent struct {
	ReturnEvent
	RejectedBy uuid.UUID `json:"rejected_by"`
}

// NewReturnRejectedEvent creates a new ReturnRejectedEvent
func NewReturnRejectedEvent(r *ReturnRequest) *ReturnRejectedEvent {
	e := &ReturnRejectedEvent{ReturnEvent: newReturnEvent(EventTypeReturnRejected, r)}
	if r.DecidedBy != nil {
		e.RejectedBy = *r.DecidedBy
	}
	return e
}
