package inventory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fieldstock/backend/internal/domain/catalog"
	"github.com/fieldstock/backend/internal/domain/identity"
	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingPublisher keeps every published event
type recordingPublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) byType(eventType string) []shared.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]shared.DomainEvent, 0)
	for _, e := range p.events {
		if e.EventType() == eventType {
			out = append(out, e)
		}
	}
	return out
}

// MockLedgerMetrics is a mock implementation of LedgerMetrics
type MockLedgerMetrics struct {
	mock.Mock
}

func (m *MockLedgerMetrics) ObserveLedgerOperation(op, outcome string, d time.Duration) {
	m.Called(op, outcome, d)
}

func (m *MockLedgerMetrics) IncConflictRetry(op string) {
	m.Called(op)
}

type fixture struct {
	store         *memStore
	access        *switchableAccess
	publisher     *recordingPublisher
	ledger        *LedgerService
	distributions *DistributionService
	returns       *ReturnService
	queries       *QueryService
	monitor       *LowStockMonitor

	admin   identity.Principal
	rider   identity.Principal
	product *catalog.Product
}

func newFixture(t *testing.T, opts ...LedgerOption) *fixture {
	t.Helper()
	store := newMemStore()
	access := &switchableAccess{}
	products := memProductRepo{store}

	opts = append([]LedgerOption{WithRetryConfig(RetryConfig{
		MaxRetries:      3,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
	})}, opts...)
	ledger := NewLedgerService(store, products, access, nil, opts...)
	publisher := &recordingPublisher{}
	ledger.SetEventPublisher(publisher)

	f := &fixture{
		store:         store,
		access:        access,
		publisher:     publisher,
		ledger:        ledger,
		distributions: NewDistributionService(ledger, access, nil),
		returns:       NewReturnService(ledger, access, nil),
		queries:       NewQueryService(memStockRepo{store}, memRiderRepo{store}, memDistributionRepo{store}, memReturnRepo{store}, products, access),
		monitor:       NewLowStockMonitor(memStockRepo{store}, products),
		admin:         identity.Principal{ID: uuid.New(), Role: identity.RoleAdmin},
		rider:         identity.Principal{ID: uuid.New(), Role: identity.RoleRider},
		product:       store.addProduct("SKU-1", "Bottled Water"),
	}
	f.asAdmin()
	return f
}

func (f *fixture) asAdmin() { f.access.as(f.admin) }
func (f *fixture) asRider() { f.access.as(f.rider) }

func (f *fixture) asOtherRider() {
	f.access.as(identity.Principal{ID: uuid.New(), Role: identity.RoleRider})
}

func (f *fixture) stock(t *testing.T, quantity, minStock int64) {
	t.Helper()
	f.asAdmin()
	_, err := f.ledger.AdjustWarehouseStock(context.Background(), AdjustStockRequest{
		ProductID: f.product.ID,
		Quantity:  quantity,
		MinStock:  minStock,
	})
	require.NoError(t, err)
}

func (f *fixture) distribute(t *testing.T, quantity int64) {
	t.Helper()
	f.asAdmin()
	_, err := f.distributions.Distribute(context.Background(), DistributeRequest{
		ProductID: f.product.ID,
		RiderID:   f.rider.ID,
		Quantity:  quantity,
	})
	require.NoError(t, err)
}

func (f *fixture) requestReturn(t *testing.T, quantity int64) *ReturnRequestResponse {
	t.Helper()
	f.asRider()
	resp, err := f.returns.RequestReturn(context.Background(), RequestReturnRequest{
		RiderID:   f.rider.ID,
		ProductID: f.product.ID,
		Quantity:  quantity,
		Reason:    "unsold",
	})
	require.NoError(t, err)
	return resp
}

func (f *fixture) warehouseQty() int64 { return f.store.warehouseQty(f.product.ID) }
func (f *fixture) riderQty() int64     { return f.store.riderQty(f.rider.ID, f.product.ID) }
