package inventory

import (
	"context"

	"github.com/fieldstock/backend/internal/domain/inventory"
)

// TransactionScope provides transactional access to inventory repositories.
// All repository operations performed inside Execute are committed or rolled back together.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to all inventory repositories within a transaction.
// All repositories returned share the same underlying database transaction.
type TransactionalRepositories interface {
	// WarehouseStockRepo returns the warehouse stock repository scoped to the current transaction
	WarehouseStockRepo() inventory.WarehouseStockRepository
	// RiderInventoryRepo returns the rider inventory repository scoped to the current transaction
	RiderInventoryRepo() inventory.RiderInventoryRepository
	// DistributionRepo returns the distribution repository scoped to the current transaction
	DistributionRepo() inventory.DistributionRepository
	// ReturnRepo returns the return request repository scoped to the current transaction
	ReturnRepo() inventory.ReturnRequestRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use transactions.
// This is useful for testing or when transaction support is not required.
type NoOpTransactionScope struct {
	stockRepo        inventory.WarehouseStockRepository
	riderRepo        inventory.RiderInventoryRepository
	distributionRepo inventory.DistributionRepository
	returnRepo       inventory.ReturnRequestRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	stockRepo inventory.WarehouseStockRepository,
	riderRepo inventory.RiderInventoryRepository,
	distributionRepo inventory.DistributionRepository,
	returnRepo inventory.ReturnRequestRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		stockRepo:        stockRepo,
		riderRepo:        riderRepo,
		distributionRepo: distributionRepo,
		returnRepo:       returnRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// WarehouseStockRepo returns the warehouse stock repository.
func (s *NoOpTransactionScope) WarehouseStockRepo() inventory.WarehouseStockRepository {
	return s.stockRepo
}

// RiderInventoryRepo returns the rider inventory repository.
func (s *NoOpTransactionScope) RiderInventoryRepo() inventory.RiderInventoryRepository {
	return s.riderRepo
}

// DistributionRepo returns the distribution repository.
func (s *NoOpTransactionScope) DistributionRepo() inventory.DistributionRepository {
	return s.distributionRepo
}

// ReturnRepo returns the return request repository.
func (s *NoOpTransactionScope) ReturnRepo() inventory.ReturnRequestRepository {
	return s.returnRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
