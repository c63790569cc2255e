package inventory

import (
	"context"
	"sort"
	"sync"

	"github.com/fieldstock/backend/internal/domain/catalog"
	"github.com/fieldstock/backend/internal/domain/identity"
	"github.com/fieldstock/backend/internal/domain/inventory"
	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// memStore is an in-memory ledger with serialized, all-or-nothing transactions
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	products      map[uuid.UUID]catalog.Product
	stocks        map[uuid.UUID]inventory.WarehouseStock
	riders        map[riderKey]inventory.RiderInventory
	distributions []inventory.Distribution
	returns       map[uuid.UUID]inventory.ReturnRequest

	// conflicts makes the next N SaveWithLock calls fail with a concurrency conflict
	conflicts int
}

type riderKey struct {
	rider   uuid.UUID
	product uuid.UUID
}

func newMemStore() *memStore {
	return &memStore{
		products: make(map[uuid.UUID]catalog.Product),
		stocks:   make(map[uuid.UUID]inventory.WarehouseStock),
		riders:   make(map[riderKey]inventory.RiderInventory),
		returns:  make(map[uuid.UUID]inventory.ReturnRequest),
	}
}

type memSnapshot struct {
	stocks        map[uuid.UUID]inventory.WarehouseStock
	riders        map[riderKey]inventory.RiderInventory
	distributions []inventory.Distribution
	returns       map[uuid.UUID]inventory.ReturnRequest
}

func (s *memStore) snapshot() memSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := memSnapshot{
		stocks:        make(map[uuid.UUID]inventory.WarehouseStock, len(s.stocks)),
		riders:        make(map[riderKey]inventory.RiderInventory, len(s.riders)),
		distributions: append([]inventory.Distribution(nil), s.distributions...),
		returns:       make(map[uuid.UUID]inventory.ReturnRequest, len(s.returns)),
	}
	for k, v := range s.stocks {
		snap.stocks[k] = v
	}
	for k, v := range s.riders {
		snap.riders[k] = v
	}
	for k, v := range s.returns {
		snap.returns[k] = v
	}
	return snap
}

func (s *memStore) restore(snap memSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stocks = snap.stocks
	s.riders = snap.riders
	s.distributions = snap.distributions
	s.returns = snap.returns
}

// Execute implements TransactionScope
func (s *memStore) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	snap := s.snapshot()
	if err := fn(s); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *memStore) WarehouseStockRepo() inventory.WarehouseStockRepository { return memStockRepo{s} }
func (s *memStore) RiderInventoryRepo() inventory.RiderInventoryRepository { return memRiderRepo{s} }
func (s *memStore) DistributionRepo() inventory.DistributionRepository     { return memDistributionRepo{s} }
func (s *memStore) ReturnRepo() inventory.ReturnRequestRepository          { return memReturnRepo{s} }

func (s *memStore) addProduct(sku, name string) *catalog.Product {
	p, err := catalog.NewProduct(sku, name)
	if err != nil {
		panic(err)
	}
	s.mu.Lock()
	s.products[p.ID] = *p
	s.mu.Unlock()
	return p
}

func (s *memStore) warehouseQty(productID uuid.UUID) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stocks[productID].Quantity
}

func (s *memStore) riderQty(riderID, productID uuid.UUID) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.riders[riderKey{riderID, productID}].Quantity
}

func (s *memStore) distributionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.distributions)
}

func (s *memStore) returnCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.returns)
}

func (s *memStore) takeConflict() bool {
	if s.conflicts > 0 {
		s.conflicts--
		return true
	}
	return false
}

type memStockRepo struct{ s *memStore }

func (r memStockRepo) FindByProductID(_ context.Context, productID uuid.UUID) (*inventory.WarehouseStock, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row, ok := r.s.stocks[productID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	row.ClearDomainEvents()
	return &row, nil
}

func (r memStockRepo) FindByProductIDForUpdate(ctx context.Context, productID uuid.UUID) (*inventory.WarehouseStock, error) {
	return r.FindByProductID(ctx, productID)
}

func (r memStockRepo) GetOrCreateForUpdate(ctx context.Context, productID uuid.UUID, minStock int64) (*inventory.WarehouseStock, error) {
	r.s.mu.Lock()
	if _, ok := r.s.stocks[productID]; !ok {
		row, err := inventory.NewWarehouseStock(productID, 0, minStock)
		if err != nil {
			r.s.mu.Unlock()
			return nil, err
		}
		row.ClearDomainEvents()
		r.s.stocks[productID] = *row
	}
	r.s.mu.Unlock()
	return r.FindByProductID(ctx, productID)
}

func (r memStockRepo) FindAll(_ context.Context, filter shared.Filter) ([]inventory.WarehouseStock, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rows := make([]inventory.WarehouseStock, 0, len(r.s.stocks))
	for _, row := range r.s.stocks {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].UpdatedAt.After(rows[j].UpdatedAt) })
	return page(rows, filter), nil
}

func (r memStockRepo) Count(context.Context, shared.Filter) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.stocks)), nil
}

func (r memStockRepo) FindLowStock(context.Context) ([]inventory.WarehouseStock, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rows := make([]inventory.WarehouseStock, 0)
	for _, row := range r.s.stocks {
		if row.Quantity <= row.MinStock {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Quantity != rows[j].Quantity {
			return rows[i].Quantity < rows[j].Quantity
		}
		return rows[i].ID.String() < rows[j].ID.String()
	})
	return rows, nil
}

func (r memStockRepo) SaveWithLock(_ context.Context, stock *inventory.WarehouseStock) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.stocks[stock.ProductID]
	if !ok || r.s.takeConflict() || stored.Version != stock.Version-1 {
		return shared.ErrConcurrencyConflict
	}
	row := *stock
	row.ClearDomainEvents()
	r.s.stocks[stock.ProductID] = row
	return nil
}

type memRiderRepo struct{ s *memStore }

func (r memRiderRepo) FindByRiderAndProduct(_ context.Context, riderID, productID uuid.UUID) (*inventory.RiderInventory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row, ok := r.s.riders[riderKey{riderID, productID}]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &row, nil
}

func (r memRiderRepo) FindByRiderAndProductForUpdate(ctx context.Context, riderID, productID uuid.UUID) (*inventory.RiderInventory, error) {
	return r.FindByRiderAndProduct(ctx, riderID, productID)
}

func (r memRiderRepo) GetOrCreateForUpdate(ctx context.Context, riderID, productID uuid.UUID) (*inventory.RiderInventory, error) {
	r.s.mu.Lock()
	key := riderKey{riderID, productID}
	if _, ok := r.s.riders[key]; !ok {
		row, err := inventory.NewRiderInventory(riderID, productID)
		if err != nil {
			r.s.mu.Unlock()
			return nil, err
		}
		r.s.riders[key] = *row
	}
	r.s.mu.Unlock()
	return r.FindByRiderAndProduct(ctx, riderID, productID)
}

func (r memRiderRepo) FindByRider(_ context.Context, riderID uuid.UUID, inStockOnly bool) ([]inventory.RiderInventory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rows := make([]inventory.RiderInventory, 0)
	for k, row := range r.s.riders {
		if k.rider != riderID || (inStockOnly && row.Quantity <= 0) {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (r memRiderRepo) SumByProduct(_ context.Context, productID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var sum int64
	for k, row := range r.s.riders {
		if k.product == productID {
			sum += row.Quantity
		}
	}
	return sum, nil
}

func (r memRiderRepo) SaveWithLock(_ context.Context, inv *inventory.RiderInventory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := riderKey{inv.RiderID, inv.ProductID}
	stored, ok := r.s.riders[key]
	if !ok || r.s.takeConflict() || stored.Version != inv.Version-1 {
		return shared.ErrConcurrencyConflict
	}
	r.s.riders[key] = *inv
	return nil
}

type memDistributionRepo struct{ s *memStore }

func (r memDistributionRepo) Create(_ context.Context, d *inventory.Distribution) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.distributions = append(r.s.distributions, *d)
	return nil
}

func (r memDistributionRepo) FindByID(_ context.Context, id uuid.UUID) (*inventory.Distribution, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, d := range r.s.distributions {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r memDistributionRepo) FindAll(_ context.Context, filter shared.Filter) ([]inventory.Distribution, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rows := make([]inventory.Distribution, 0, len(r.s.distributions))
	for i := len(r.s.distributions) - 1; i >= 0; i-- {
		d := r.s.distributions[i]
		if id, ok := filter.Filters["rider_id"].(uuid.UUID); ok && d.RiderID != id {
			continue
		}
		if id, ok := filter.Filters["product_id"].(uuid.UUID); ok && d.ProductID != id {
			continue
		}
		rows = append(rows, d)
	}
	return page(rows, filter), nil
}

func (r memDistributionRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	r.s.mu.Lock()
	n := len(r.s.distributions)
	r.s.mu.Unlock()
	all := filter
	all.Page, all.PageSize = 1, n+1
	rows, err := r.FindAll(ctx, all)
	return int64(len(rows)), err
}

type memReturnRepo struct{ s *memStore }

func (r memReturnRepo) Create(_ context.Context, req *inventory.ReturnRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row := *req
	row.ClearDomainEvents()
	r.s.returns[req.ID] = row
	return nil
}

func (r memReturnRepo) FindByID(_ context.Context, id uuid.UUID) (*inventory.ReturnRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row, ok := r.s.returns[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &row, nil
}

func (r memReturnRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*inventory.ReturnRequest, error) {
	return r.FindByID(ctx, id)
}

func (r memReturnRepo) SaveDecision(_ context.Context, req *inventory.ReturnRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.returns[req.ID]
	if !ok || !stored.IsPending() || stored.Version != req.Version-1 {
		return shared.ErrConcurrencyConflict
	}
	row := *req
	row.ClearDomainEvents()
	r.s.returns[req.ID] = row
	return nil
}

func (r memReturnRepo) FindAll(_ context.Context, filter shared.Filter) ([]inventory.ReturnRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rows := make([]inventory.ReturnRequest, 0, len(r.s.returns))
	for _, row := range r.s.returns {
		if status, ok := filter.Filters["status"].(string); ok && string(row.Status) != status {
			continue
		}
		if id, ok := filter.Filters["rider_id"].(uuid.UUID); ok && row.RiderID != id {
			continue
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ReturnedAt.After(rows[j].ReturnedAt) })
	return page(rows, filter), nil
}

func (r memReturnRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	r.s.mu.Lock()
	n := len(r.s.returns)
	r.s.mu.Unlock()
	all := filter
	all.Page, all.PageSize = 1, n+1
	rows, err := r.FindAll(ctx, all)
	return int64(len(rows)), err
}

type memProductRepo struct{ s *memStore }

func (r memProductRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &p, nil
}

func (r memProductRepo) FindBySKU(_ context.Context, sku string) (*catalog.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.SKU == sku {
			return &p, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r memProductRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.s.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r memProductRepo) FindAll(context.Context) ([]catalog.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]catalog.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r memProductRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := r.FindByID(ctx, id)
	return err == nil, nil
}

func page[T any](rows []T, filter shared.Filter) []T {
	f := filter.Normalize()
	start := f.Offset()
	if start >= len(rows) {
		return []T{}
	}
	end := start + f.PageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// switchableAccess lets a test change the acting principal between calls
type switchableAccess struct {
	mu        sync.Mutex
	principal identity.Principal
}

func (a *switchableAccess) as(p identity.Principal) {
	a.mu.Lock()
	a.principal = p
	a.mu.Unlock()
}

func (a *switchableAccess) current() identity.StaticAccessControl {
	a.mu.Lock()
	defer a.mu.Unlock()
	return identity.StaticAccessControl{Principal: a.principal}
}

func (a *switchableAccess) CurrentRole(ctx context.Context) (identity.Role, error) {
	return a.current().CurrentRole(ctx)
}

func (a *switchableAccess) CurrentPrincipalID(ctx context.Context) (uuid.UUID, error) {
	return a.current().CurrentPrincipalID(ctx)
}

var (
	_ TransactionScope          = (*memStore)(nil)
	_ TransactionalRepositories = (*memStore)(nil)
	_ catalog.ProductRepository = memProductRepo{}
	_ identity.AccessControl    = (*switchableAccess)(nil)
)
