package persistence

import (
	"context"

	"github.com/fieldstock/backend/internal/domain/inventory"
	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormReturnRequestRepository implements ReturnRequestRepository using GORM
type GormReturnRequestRepository struct {
	db *gorm.DB
}

// NewGormReturnRequestRepository creates a new GormReturnRequestRepository
func NewGormReturnRequestRepository(db *gorm.DB) *GormReturnRequestRepository {
	return &GormReturnRequestRepository{db: db}
}

// Create inserts a new return request
func (r *GormReturnRequestRepository) Create(ctx context.Context, req *inventory.ReturnRequest) error {
	return translateError(r.db.WithContext(ctx).Create(req).Error)
}

// FindByID finds a return request by ID
func (r *GormReturnRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.ReturnRequest, error) {
	var req inventory.ReturnRequest
	if err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &req, nil
}

// FindByIDForUpdate finds and locks a return request
func (r *GormReturnRequestRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*inventory.ReturnRequest, error) {
	var req inventory.ReturnRequest
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&req, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &req, nil
}

// SaveDecision writes a pending to approved/rejected transition.
// The update only matches a row that is still pending at the version it was read at,
// so two concurrent decisions cannot both succeed.
func (r *GormReturnRequestRepository) SaveDecision(ctx context.Context, req *inventory.ReturnRequest) error {
	result := r.db.WithContext(ctx).
		Model(&inventory.ReturnRequest{}).
		Where("id = ? AND status = ? AND version = ?", req.ID, inventory.ReturnStatusPending, req.Version-1).
		Updates(map[string]interface{}{
			"status":     req.Status,
			"decided_at": req.DecidedAt,
			"decided_by": req.DecidedBy,
			"version":    req.Version,
			"updated_at": req.UpdatedAt,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError(shared.CodeConcurrencyConflict, "Return request was modified by another transaction")
	}
	return nil
}

// FindAll lists return requests newest first
func (r *GormReturnRequestRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.ReturnRequest, error) {
	var rows []inventory.ReturnRequest
	query := r.applyFilter(r.db.WithContext(ctx).Model(&inventory.ReturnRequest{}), filter).
		Clauses(returnRequestSort.orderBy(filter))
	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count counts return requests matching the filter
func (r *GormReturnRequestRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.applyFilter(r.db.WithContext(ctx).Model(&inventory.ReturnRequest{}), filter).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormReturnRequestRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "rider_id":
			query = query.Where("rider_id = ?", value)
		case "product_id":
			query = query.Where("product_id = ?", value)
		}
	}
	return query
}

// Ensure GormReturnRequestRepository implements ReturnRequestRepository
var _ inventory.ReturnRequestRepository = (*GormReturnRequestRepository)(nil)
