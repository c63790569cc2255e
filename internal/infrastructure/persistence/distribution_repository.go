package persistence

import (
	"context"

	"github.com/fieldstock/backend/internal/domain/inventory"
	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDistributionRepository implements DistributionRepository using GORM.
// Distribution rows are append-only.
type GormDistributionRepository struct {
	db *gorm.DB
}

// NewGormDistributionRepository creates a new GormDistributionRepository
func NewGormDistributionRepository(db *gorm.DB) *GormDistributionRepository {
	return &GormDistributionRepository{db: db}
}

// Create appends a distribution record
func (r *GormDistributionRepository) Create(ctx context.Context, d *inventory.Distribution) error {
	return translateError(r.db.WithContext(ctx).Create(d).Error)
}

// FindByID finds a distribution by ID
func (r *GormDistributionRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Distribution, error) {
	var d inventory.Distribution
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &d, nil
}

// FindAll lists distributions newest first
func (r *GormDistributionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Distribution, error) {
	var rows []inventory.Distribution
	query := r.applyFilter(r.db.WithContext(ctx).Model(&inventory.Distribution{}), filter).
		Clauses(distributionSort.orderBy(filter))
	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count counts distributions matching the filter
func (r *GormDistributionRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.applyFilter(r.db.WithContext(ctx).Model(&inventory.Distribution{}), filter).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormDistributionRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "rider_id":
			query = query.Where("rider_id = ?", value)
		case "product_id":
			query = query.Where("product_id = ?", value)
		}
	}
	return query
}

// Ensure GormDistributionRepository implements DistributionRepository
var _ inventory.DistributionRepository = (*GormDistributionRepository)(nil)
