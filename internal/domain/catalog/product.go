package catalog

import (
	"strings"

	"github.com/fieldstock/backend/internal/domain/shared"
)

// Product is catalog reference data: identity, SKU and display name.
// The inventory core only reads products.
type Product struct {
	shared.BaseEntity
	SKU  string `gorm:"type:varchar(64);not null;uniqueIndex" json:"sku"`
	Name string `gorm:"type:varchar(200);not null" json:"name"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(sku, name string) (*Product, error) {
	sku = strings.ToUpper(strings.TrimSpace(sku))
	name = strings.TrimSpace(name)

	if sku == "" {
		return nil, shared.NewValidationError("Product SKU cannot be empty")
	}
	if len(sku) > 64 {
		return nil, shared.NewValidationError("Product SKU cannot exceed 64 characters")
	}
	if name == "" {
		return nil, shared.NewValidationError("Product name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewValidationError("Product name cannot exceed 200 characters")
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		SKU:        sku,
		Name:       name,
	}, nil
}
