package persistence

import (
	"context"

	"github.com/fieldstock/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &product, nil
}

// FindBySKU finds a product by its SKU
func (r *GormProductRepository) FindBySKU(ctx context.Context, sku string) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&product).Error; err != nil {
		return nil, translateError(err)
	}
	return &product, nil
}

// FindByIDs finds multiple products by their IDs
func (r *GormProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	if len(ids) == 0 {
		return []catalog.Product{}, nil
	}
	var products []catalog.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindAll returns every product ordered by name
func (r *GormProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ExistsByID checks if a product exists
func (r *GormProductRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Upsert inserts a product or updates the name of the product with the same SKU.
// Used by seeding; the catalog is otherwise read-only here.
func (r *GormProductRepository) Upsert(ctx context.Context, product *catalog.Product) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "sku"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
		}).
		Create(product).Error
	return translateError(err)
}

// Ensure GormProductRepository implements ProductRepository
var _ catalog.ProductRepository = (*GormProductRepository)(nil)
