package inventory

import (
	"fmt"
	"math"

	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DefaultMinStock is the low-stock threshold given to rows created without one
const DefaultMinStock int64 = 10

// WarehouseStock is the central warehouse quantity of one product.
// Quantity and MinStock are never negative.
type WarehouseStock struct {
	shared.BaseAggregateRoot
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"product_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	MinStock  int64     `gorm:"not null" json:"min_stock"`
}

// TableName returns the table name for GORM
func (WarehouseStock) TableName() string {
	return "warehouse_stock"
}

// NewWarehouseStock creates a warehouse stock row
func NewWarehouseStock(productID uuid.UUID, quantity, minStock int64) (*WarehouseStock, error) {
	if productID == uuid.Nil {
		return nil, shared.NewValidationError("Product ID cannot be empty")
	}
	if err := validateLevels(quantity, minStock); err != nil {
		return nil, err
	}

	return &WarehouseStock{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductID:         productID,
		Quantity:          quantity,
		MinStock:          minStock,
	}, nil
}

// Adjust sets quantity and threshold administratively.
// This is the only mutation allowed to change the system-wide total of a product.
func (s *WarehouseStock) Adjust(quantity, minStock int64) error {
	if err := validateLevels(quantity, minStock); err != nil {
		return err
	}

	wasLow := s.IsLowStock()
	oldQuantity := s.Quantity

	s.Quantity = quantity
	s.MinStock = minStock
	s.IncrementVersion()

	s.AddDomainEvent(NewWarehouseStockAdjustedEvent(s, oldQuantity))
	s.checkThreshold(wasLow)
	return nil
}

// Withdraw removes quantity from the warehouse
func (s *WarehouseStock) Withdraw(quantity int64) error {
	if quantity <= 0 {
		return shared.NewValidationError("Quantity must be positive")
	}
	if s.Quantity < quantity {
		return shared.NewInsufficientStockError(
			fmt.Sprintf("Insufficient warehouse stock: available %d, requested %d", s.Quantity, quantity))
	}

	wasLow := s.IsLowStock()
	s.Quantity -= quantity
	s.IncrementVersion()
	s.checkThreshold(wasLow)
	return nil
}

// Receive adds quantity back to the warehouse
func (s *WarehouseStock) Receive(quantity int64) error {
	if quantity <= 0 {
		return shared.NewValidationError("Quantity must be positive")
	}
	if err := checkCapacity(s.Quantity, quantity); err != nil {
		return err
	}
	s.Quantity += quantity
	s.IncrementVersion()
	return nil
}

// IsLowStock reports whether the row is at or below its threshold
func (s *WarehouseStock) IsLowStock() bool {
	return IsLowStock(s.Quantity, s.MinStock)
}

// checkThreshold raises StockBelowThreshold when the row has just crossed into low stock
func (s *WarehouseStock) checkThreshold(wasLow bool) {
	if !wasLow && s.IsLowStock() {
		s.AddDomainEvent(NewStockBelowThresholdEvent(s))
	}
}

// CheckProductTotal rejects a warehouse quantity that, together with the units
// riders hold, cannot be represented as a product total
func CheckProductTotal(warehouse, heldByRiders int64) error {
	if warehouse > math.MaxInt64-heldByRiders {
		return shared.NewValidationError(fmt.Sprintf(
			"Quantity %d exceeds the maximum stock level: riders already hold %d", warehouse, heldByRiders))
	}
	return nil
}

// checkCapacity rejects adding quantity to current when the sum overflows
func checkCapacity(current, quantity int64) error {
	if quantity > math.MaxInt64-current {
		return shared.NewValidationError(fmt.Sprintf(
			"Quantity %d exceeds the maximum stock level: %d already recorded", quantity, current))
	}
	return nil
}

func validateLevels(quantity, minStock int64) error {
	if quantity < 0 {
		return shared.NewValidationError("Quantity cannot be negative")
	}
	if minStock < 0 {
		return shared.NewValidationError("Minimum stock cannot be negative")
	}
	return nil
}
