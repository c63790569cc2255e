package inventory

import (
	"context"

	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// WarehouseStockRepository defines persistence for warehouse stock rows
type WarehouseStockRepository interface {
	// FindByProductID finds the warehouse row of a product
	FindByProductID(ctx context.Context, productID uuid.UUID) (*WarehouseStock, error)
	// FindByProductIDForUpdate finds the warehouse row of a product and locks it until the transaction ends
	FindByProductIDForUpdate(ctx context.Context, productID uuid.UUID) (*WarehouseStock, error)
	// GetOrCreateForUpdate returns the locked row, creating it with quantity 0 and minStock if missing
	GetOrCreateForUpdate(ctx context.Context, productID uuid.UUID, minStock int64) (*WarehouseStock, error)
	// FindAll lists warehouse rows ordered by most recently updated
	FindAll(ctx context.Context, filter shared.Filter) ([]WarehouseStock, error)
	// Count counts warehouse rows matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// FindLowStock lists rows where quantity <= min_stock, emptiest first
	FindLowStock(ctx context.Context) ([]WarehouseStock, error)
	// SaveWithLock persists a modified row if its version is unchanged
	SaveWithLock(ctx context.Context, stock *WarehouseStock) error
}

// RiderInventoryRepository defines persistence for rider inventory rows
type RiderInventoryRepository interface {
	// FindByRiderAndProduct finds the row of a (rider, product) pair
	FindByRiderAndProduct(ctx context.Context, riderID, productID uuid.UUID) (*RiderInventory, error)
	// FindByRiderAndProductForUpdate finds and locks the row of a (rider, product) pair
	FindByRiderAndProductForUpdate(ctx context.Context, riderID, productID uuid.UUID) (*RiderInventory, error)
	// GetOrCreateForUpdate returns the locked row, creating an empty one if missing
	GetOrCreateForUpdate(ctx context.Context, riderID, productID uuid.UUID) (*RiderInventory, error)
	// FindByRider lists a rider's rows; inStockOnly keeps only quantity > 0
	FindByRider(ctx context.Context, riderID uuid.UUID, inStockOnly bool) ([]RiderInventory, error)
	// SumByProduct sums quantity held by all riders for a product
	SumByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
	// SaveWithLock persists a modified row if its version is unchanged
	SaveWithLock(ctx context.Context, inv *RiderInventory) error
}

// DistributionRepository defines the append-only distribution log
type DistributionRepository interface {
	// Create appends a distribution record
	Create(ctx context.Context, d *Distribution) error
	// FindByID finds a distribution by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Distribution, error)
	// FindAll lists distributions newest first; supports rider_id and product_id filters
	FindAll(ctx context.Context, filter shared.Filter) ([]Distribution, error)
	// Count counts distributions matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// ReturnRequestRepository defines persistence for return requests
type ReturnRequestRepository interface {
	// Create inserts a new return request
	Create(ctx context.Context, r *ReturnRequest) error
	// FindByID finds a return request by ID
	FindByID(ctx context.Context, id uuid.UUID) (*ReturnRequest, error)
	// FindByIDForUpdate finds and locks a return request
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*ReturnRequest, error)
	// SaveDecision persists a pending to approved/rejected transition.
	// Fails with a concurrency conflict unless the stored row is still pending at the previous version.
	SaveDecision(ctx context.Context, r *ReturnRequest) error
	// FindAll lists return requests newest first; supports status and rider_id filters
	FindAll(ctx context.Context, filter shared.Filter) ([]ReturnRequest, error)
	// Count counts return requests matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
