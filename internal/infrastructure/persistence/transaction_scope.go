package persistence

import (
	"context"

	appinv "github.com/fieldstock/backend/internal/application/inventory"
	"github.com/fieldstock/backend/internal/domain/inventory"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// It provides atomic execution of multiple repository operations.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appinv.TransactionalRepositories) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
	return translateError(err)
}

// gormTransactionalRepositories provides access to all repositories within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// WarehouseStockRepo returns the warehouse stock repository scoped to the current transaction.
func (r *gormTransactionalRepositories) WarehouseStockRepo() inventory.WarehouseStockRepository {
	return NewGormWarehouseStockRepository(r.tx)
}

// RiderInventoryRepo returns the rider inventory repository scoped to the current transaction.
func (r *gormTransactionalRepositories) RiderInventoryRepo() inventory.RiderInventoryRepository {
	return NewGormRiderInventoryRepository(r.tx)
}

// DistributionRepo returns the distribution repository scoped to the current transaction.
func (r *gormTransactionalRepositories) DistributionRepo() inventory.DistributionRepository {
	return NewGormDistributionRepository(r.tx)
}

// ReturnRepo returns the return request repository scoped to the current transaction.
func (r *gormTransactionalRepositories) ReturnRepo() inventory.ReturnRequestRepository {
	return NewGormReturnRequestRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ appinv.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements TransactionalRepositories
var _ appinv.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
