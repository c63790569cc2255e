package inventory

import (
	"time"
	"unicode/utf8"

	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MaxNotesLength bounds free-text notes on distributions
const MaxNotesLength = 500

// Distribution is an immutable record of a completed warehouse to rider transfer
type Distribution struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	RiderID       uuid.UUID `gorm:"type:uuid;not null;index" json:"rider_id"`
	Quantity      int64     `gorm:"not null" json:"quantity"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	DistributedBy uuid.UUID `gorm:"type:uuid;not null" json:"distributed_by"`
	DistributedAt time.Time `gorm:"not null;index" json:"distributed_at"`
}

// TableName returns the table name for GORM
func (Distribution) TableName() string {
	return "distributions"
}

// NewDistribution creates the record of a transfer that has already succeeded
func NewDistribution(productID, riderID uuid.UUID, quantity int64, notes string, distributedBy uuid.UUID) (*Distribution, error) {
	if err := ValidateDistribution(productID, riderID, quantity, notes); err != nil {
		return nil, err
	}
	return &Distribution{
		ID:            uuid.New(),
		ProductID:     productID,
		RiderID:       riderID,
		Quantity:      quantity,
		Notes:         notes,
		DistributedBy: distributedBy,
		DistributedAt: time.Now().UTC(),
	}, nil
}

// ValidateDistribution checks distribution input before any stock moves
func ValidateDistribution(productID, riderID uuid.UUID, quantity int64, notes string) error {
	if productID == uuid.Nil {
		return shared.NewValidationError("Product ID cannot be empty")
	}
	if riderID == uuid.Nil {
		return shared.NewValidationError("Rider ID cannot be empty")
	}
	if quantity <= 0 {
		return shared.NewValidationError("Quantity must be positive")
	}
	if utf8.RuneCountInString(notes) > MaxNotesLength {
		return shared.NewValidationError("Notes cannot exceed 500 characters")
	}
	return nil
}

// Event returns the StockDistributed event describing this record
func (d *Distribution) Event() *StockDistributedEvent {
	return NewStockDistributedEvent(d)
}
