package inventory

import (
	"fmt"

	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// RiderInventory is the quantity of one product held by one rider.
// A row with quantity 0 stays valid.
type RiderInventory struct {
	shared.BaseAggregateRoot
	RiderID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_rider_inventory_rider_product,priority:1" json:"rider_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_rider_inventory_rider_product,priority:2;index" json:"product_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
}

// TableName returns the table name for GORM
func (RiderInventory) TableName() string {
	return "rider_inventory"
}

// NewRiderInventory creates an empty rider inventory row
func NewRiderInventory(riderID, productID uuid.UUID) (*RiderInventory, error) {
	if riderID == uuid.Nil {
		return nil, shared.NewValidationError("Rider ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewValidationError("Product ID cannot be empty")
	}
	return &RiderInventory{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		RiderID:           riderID,
		ProductID:         productID,
	}, nil
}

// Credit adds quantity to the rider
func (r *RiderInventory) Credit(quantity int64) error {
	if quantity <= 0 {
		return shared.NewValidationError("Quantity must be positive")
	}
	if err := checkCapacity(r.Quantity, quantity); err != nil {
		return err
	}
	r.Quantity += quantity
	r.IncrementVersion()
	return nil
}

// Debit removes quantity from the rider
func (r *RiderInventory) Debit(quantity int64) error {
	if quantity <= 0 {
		return shared.NewValidationError("Quantity must be positive")
	}
	if r.Quantity < quantity {
		return shared.NewInsufficientStockError(
			fmt.Sprintf("Insufficient rider inventory: available %d, requested %d", r.Quantity, quantity))
	}
	r.Quantity -= quantity
	r.IncrementVersion()
	return nil
}
