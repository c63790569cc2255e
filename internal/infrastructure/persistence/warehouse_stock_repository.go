package persistence

import (
	"context"

	"github.com/fieldstock/backend/internal/domain/inventory"
	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWarehouseStockRepository implements WarehouseStockRepository using GORM
type GormWarehouseStockRepository struct {
	db *gorm.DB
}

// NewGormWarehouseStockRepository creates a new GormWarehouseStockRepository
func NewGormWarehouseStockRepository(db *gorm.DB) *GormWarehouseStockRepository {
	return &GormWarehouseStockRepository{db: db}
}

// FindByProductID finds the warehouse row of a product
func (r *GormWarehouseStockRepository) FindByProductID(ctx context.Context, productID uuid.UUID) (*inventory.WarehouseStock, error) {
	var stock inventory.WarehouseStock
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&stock).Error; err != nil {
		return nil, translateError(err)
	}
	return &stock, nil
}

// FindByProductIDForUpdate finds the warehouse row of a product with SELECT ... FOR UPDATE.
// Must be called inside a transaction.
func (r *GormWarehouseStockRepository) FindByProductIDForUpdate(ctx context.Context, productID uuid.UUID) (*inventory.WarehouseStock, error) {
	var stock inventory.WarehouseStock
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("product_id = ?", productID).
		First(&stock).Error; err != nil {
		return nil, translateError(err)
	}
	return &stock, nil
}

// GetOrCreateForUpdate inserts an empty row if none exists, then locks and returns the row.
// Concurrent creators race on the unique product_id index; the loser's insert is a no-op.
func (r *GormWarehouseStockRepository) GetOrCreateForUpdate(ctx context.Context, productID uuid.UUID, minStock int64) (*inventory.WarehouseStock, error) {
	stock, err := inventory.NewWarehouseStock(productID, 0, minStock)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}},
			DoNothing: true,
		}).
		Create(stock).Error; err != nil {
		return nil, translateError(err)
	}
	return r.FindByProductIDForUpdate(ctx, productID)
}

// FindAll lists warehouse rows, most recently updated first unless the filter says otherwise
func (r *GormWarehouseStockRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.WarehouseStock, error) {
	var rows []inventory.WarehouseStock
	query := r.applyFilter(r.db.WithContext(ctx).Model(&inventory.WarehouseStock{}), filter).
		Clauses(warehouseStockSort.orderBy(filter))
	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count counts warehouse rows matching the filter
func (r *GormWarehouseStockRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.applyFilter(r.db.WithContext(ctx).Model(&inventory.WarehouseStock{}), filter).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindLowStock lists rows where quantity <= min_stock, emptiest first then by id
func (r *GormWarehouseStockRepository) FindLowStock(ctx context.Context) ([]inventory.WarehouseStock, error) {
	var rows []inventory.WarehouseStock
	if err := r.db.WithContext(ctx).
		Where("quantity <= min_stock").
		Clauses(lowStockOrder).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SaveWithLock updates the row only if the stored version is the one it was read at
func (r *GormWarehouseStockRepository) SaveWithLock(ctx context.Context, stock *inventory.WarehouseStock) error {
	result := r.db.WithContext(ctx).
		Model(&inventory.WarehouseStock{}).
		Where("id = ? AND version = ?", stock.ID, stock.Version-1).
		Updates(map[string]interface{}{
			"quantity":   stock.Quantity,
			"min_stock":  stock.MinStock,
			"version":    stock.Version,
			"updated_at": stock.UpdatedAt,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError(shared.CodeConcurrencyConflict, "Warehouse stock was modified by another transaction")
	}
	return nil
}

func (r *GormWarehouseStockRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "product_id":
			query = query.Where("product_id = ?", value)
		case "low_stock":
			if value == true {
				query = query.Where("quantity <= min_stock")
			}
		}
	}
	return query
}

// Ensure GormWarehouseStockRepository implements WarehouseStockRepository
var _ inventory.WarehouseStockRepository = (*GormWarehouseStockRepository)(nil)
