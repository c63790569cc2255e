package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository is the read-only catalog lookup used by the inventory core
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindBySKU finds a product by its SKU
	FindBySKU(ctx context.Context, sku string) (*Product, error)

	// FindByIDs finds multiple products by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)

	// FindAll returns every product ordered by name
	FindAll(ctx context.Context) ([]Product, error)

	// ExistsByID checks if a product exists
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// IndexByID builds an ID lookup table from a product slice
func IndexByID(products []Product) map[uuid.UUID]Product {
	index := make(map[uuid.UUID]Product, len(products))
	for _, p := range products {
		index[p.ID] = p
	}
	return index
}
