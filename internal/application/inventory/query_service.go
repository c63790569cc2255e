package inventory

import (
	"context"
	"errors"

	"github.com/fieldstock/backend/internal/domain/catalog"
	"github.com/fieldstock/backend/internal/domain/identity"
	"github.com/fieldstock/backend/internal/domain/inventory"
	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// QueryService serves the read side of the inventory core
type QueryService struct {
	stocks        inventory.WarehouseStockRepository
	riders        inventory.RiderInventoryRepository
	distributions inventory.DistributionRepository
	returns       inventory.ReturnRequestRepository
	products      catalog.ProductRepository
	access        identity.AccessControl
}

// NewQueryService creates a new QueryService
func NewQueryService(
	stocks inventory.WarehouseStockRepository,
	riders inventory.RiderInventoryRepository,
	distributions inventory.DistributionRepository,
	returns inventory.ReturnRequestRepository,
	products catalog.ProductRepository,
	access identity.AccessControl,
) *QueryService {
	return &QueryService{
		stocks:        stocks,
		riders:        riders,
		distributions: distributions,
		returns:       returns,
		products:      products,
		access:        access,
	}
}

// ListProducts returns the catalog ordered by name
func (s *QueryService) ListProducts(ctx context.Context) ([]ProductResponse, error) {
	if _, err := identity.Current(ctx, s.access); err != nil {
		return nil, err
	}
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, ToProductResponse(&products[i]))
	}
	return result, nil
}

// ListWarehouseStock returns warehouse rows, most recently updated first
func (s *QueryService) ListWarehouseStock(ctx context.Context, filter ListFilter) (*shared.Paginated[WarehouseStockResponse], error) {
	if _, err := identity.RequireAdmin(ctx, s.access); err != nil {
		return nil, err
	}
	f := filter.toFilter()
	rows, err := s.stocks.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.stocks.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	index, err := productIndex(ctx, s.products, stockProductIDs(rows))
	if err != nil {
		return nil, err
	}
	items := make([]WarehouseStockResponse, 0, len(rows))
	for i := range rows {
		items = append(items, ToWarehouseStockResponse(&rows[i], lookup(index, rows[i].ProductID)))
	}
	return shared.NewPaginated(items, total, f.Page, f.PageSize), nil
}

// GetWarehouseStock returns the warehouse row of one product
func (s *QueryService) GetWarehouseStock(ctx context.Context, productID uuid.UUID) (*WarehouseStockResponse, error) {
	if _, err := identity.RequireAdmin(ctx, s.access); err != nil {
		return nil, err
	}
	stock, err := s.stocks.FindByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Warehouse stock not found")
		}
		return nil, err
	}
	product, err := s.products.FindByID(ctx, productID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	resp := ToWarehouseStockResponse(stock, product)
	return &resp, nil
}

// ListDistributions returns distribution records, newest first
func (s *QueryService) ListDistributions(ctx context.Context, filter ListFilter) (*shared.Paginated[DistributionResponse], error) {
	if _, err := identity.RequireAdmin(ctx, s.access); err != nil {
		return nil, err
	}
	f := filter.toFilter()
	rows, err := s.distributions.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.distributions.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for _, d := range rows {
		ids = append(ids, d.ProductID)
	}
	index, err := productIndex(ctx, s.products, ids)
	if err != nil {
		return nil, err
	}
	items := make([]DistributionResponse, 0, len(rows))
	for i := range rows {
		items = append(items, ToDistributionResponse(&rows[i], lookup(index, rows[i].ProductID)))
	}
	return shared.NewPaginated(items, total, f.Page, f.PageSize), nil
}

// ListPendingReturns returns return requests awaiting a decision, newest first
func (s *QueryService) ListPendingReturns(ctx context.Context, filter ListFilter) (*shared.Paginated[ReturnRequestResponse], error) {
	if _, err := identity.RequireAdmin(ctx, s.access); err != nil {
		return nil, err
	}
	f := filter.toFilter()
	f.Filters["status"] = string(inventory.ReturnStatusPending)
	return s.listReturns(ctx, f)
}

// ListRiderReturns returns a rider's return history; riders may only see their own
func (s *QueryService) ListRiderReturns(ctx context.Context, riderID uuid.UUID, filter ListFilter) (*shared.Paginated[ReturnRequestResponse], error) {
	if _, err := identity.RequireSelfOrAdmin(ctx, s.access, riderID); err != nil {
		return nil, err
	}
	f := filter.toFilter()
	f.Filters["rider_id"] = riderID
	return s.listReturns(ctx, f)
}

// ListRiderInventory returns the products a rider currently holds
func (s *QueryService) ListRiderInventory(ctx context.Context, riderID uuid.UUID) ([]RiderInventoryResponse, error) {
	if _, err := identity.RequireSelfOrAdmin(ctx, s.access, riderID); err != nil {
		return nil, err
	}
	rows, err := s.riders.FindByRider(ctx, riderID, true)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ProductID)
	}
	index, err := productIndex(ctx, s.products, ids)
	if err != nil {
		return nil, err
	}
	result := make([]RiderInventoryResponse, 0, len(rows))
	for i := range rows {
		result = append(result, ToRiderInventoryResponse(&rows[i], lookup(index, rows[i].ProductID)))
	}
	return result, nil
}

// ReturnReasons lists the selectable return reasons
func (s *QueryService) ReturnReasons() []ReturnReasonResponse {
	reasons := inventory.ReturnReasons()
	result := make([]ReturnReasonResponse, 0, len(reasons))
	for _, r := range reasons {
		result = append(result, ReturnReasonResponse{Value: string(r), Label: r.Label()})
	}
	return result
}

func (s *QueryService) listReturns(ctx context.Context, f shared.Filter) (*shared.Paginated[ReturnRequestResponse], error) {
	rows, err := s.returns.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.returns.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ProductID)
	}
	index, err := productIndex(ctx, s.products, ids)
	if err != nil {
		return nil, err
	}
	items := make([]ReturnRequestResponse, 0, len(rows))
	for i := range rows {
		items = append(items, ToReturnRequestResponse(&rows[i], lookup(index, rows[i].ProductID)))
	}
	return shared.NewPaginated(items, total, f.Page, f.PageSize), nil
}
