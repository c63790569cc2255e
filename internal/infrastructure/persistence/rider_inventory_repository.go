package persistence

import (
	"context"

	"github.com/fieldstock/backend/internal/domain/inventory"
	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRiderInventoryRepository implements RiderInventoryRepository using GORM
type GormRiderInventoryRepository struct {
	db *gorm.DB
}

// NewGormRiderInventoryRepository creates a new GormRiderInventoryRepository
func NewGormRiderInventoryRepository(db *gorm.DB) *GormRiderInventoryRepository {
	return &GormRiderInventoryRepository{db: db}
}

// FindByRiderAndProduct finds the row of a (rider, product) pair
func (r *GormRiderInventoryRepository) FindByRiderAndProduct(ctx context.Context, riderID, productID uuid.UUID) (*inventory.RiderInventory, error) {
	var inv inventory.RiderInventory
	if err := r.db.WithContext(ctx).
		Where("rider_id = ? AND product_id = ?", riderID, productID).
		First(&inv).Error; err != nil {
		return nil, translateError(err)
	}
	return &inv, nil
}

// FindByRiderAndProductForUpdate finds and locks the row of a (rider, product) pair
func (r *GormRiderInventoryRepository) FindByRiderAndProductForUpdate(ctx context.Context, riderID, productID uuid.UUID) (*inventory.RiderInventory, error) {
	var inv inventory.RiderInventory
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("rider_id = ? AND product_id = ?", riderID, productID).
		First(&inv).Error; err != nil {
		return nil, translateError(err)
	}
	return &inv, nil
}

// GetOrCreateForUpdate inserts an empty row if none exists, then locks and returns the row
func (r *GormRiderInventoryRepository) GetOrCreateForUpdate(ctx context.Context, riderID, productID uuid.UUID) (*inventory.RiderInventory, error) {
	inv, err := inventory.NewRiderInventory(riderID, productID)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "rider_id"}, {Name: "product_id"}},
			DoNothing: true,
		}).
		Create(inv).Error; err != nil {
		return nil, translateError(err)
	}
	return r.FindByRiderAndProductForUpdate(ctx, riderID, productID)
}

// FindByRider lists a rider's rows, most recently changed first
func (r *GormRiderInventoryRepository) FindByRider(ctx context.Context, riderID uuid.UUID, inStockOnly bool) ([]inventory.RiderInventory, error) {
	var rows []inventory.RiderInventory
	query := r.db.WithContext(ctx).Where("rider_id = ?", riderID)
	if inStockOnly {
		query = query.Where("quantity > 0")
	}
	if err := query.Order("updated_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SumByProduct sums quantity held by all riders for a product
func (r *GormRiderInventoryRepository) SumByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var result struct {
		Total int64
	}
	if err := r.db.WithContext(ctx).
		Model(&inventory.RiderInventory{}).
		Select("COALESCE(SUM(quantity), 0) AS total").
		Where("product_id = ?", productID).
		Scan(&result).Error; err != nil {
		return 0, err
	}
	return result.Total, nil
}

// SaveWithLock updates the row only if the stored version is the one it was read at
func (r *GormRiderInventoryRepository) SaveWithLock(ctx context.Context, inv *inventory.RiderInventory) error {
	result := r.db.WithContext(ctx).
		Model(&inventory.RiderInventory{}).
		Where("id = ? AND version = ?", inv.ID, inv.Version-1).
		Updates(map[string]interface{}{
			"quantity":   inv.Quantity,
			"version":    inv.Version,
			"updated_at": inv.UpdatedAt,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError(shared.CodeConcurrencyConflict, "Rider inventory was modified by another transaction")
	}
	return nil
}

// Ensure GormRiderInventoryRepository implements RiderInventoryRepository
var _ inventory.RiderInventoryRepository = (*GormRiderInventoryRepository)(nil)
