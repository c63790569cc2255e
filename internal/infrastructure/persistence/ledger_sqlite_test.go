package persistence

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	appinv "github.com/fieldstock/backend/internal/application/inventory"
	"github.com/fieldstock/backend/internal/domain/catalog"
	"github.com/fieldstock/backend/internal/domain/identity"
	"github.com/fieldstock/backend/internal/domain/inventory"
	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ledgerStack wires the application services over a real GORM store
type ledgerStack struct {
	db      *gorm.DB
	product *catalog.Product
	admin   identity.Principal
	rider   identity.Principal

	ledger        *appinv.LedgerService
	distributions *appinv.DistributionService
	adminReturns  *appinv.ReturnService
	riderReturns  *appinv.ReturnService
	monitor       *appinv.LowStockMonitor
}

func newLedgerStack(t *testing.T) *ledgerStack {
	t.Helper()
	db := newTestDB(t)

	s := &ledgerStack{
		db:      db,
		product: seedProduct(t, db, "SKU-1", "Bottled Water"),
		admin:   identity.Principal{ID: uuid.New(), Role: identity.RoleAdmin},
		rider:   identity.Principal{ID: uuid.New(), Role: identity.RoleRider},
	}
	adminAccess := identity.StaticAccessControl{Principal: s.admin}
	riderAccess := identity.StaticAccessControl{Principal: s.rider}
	products := NewGormProductRepository(db)

	s.ledger = appinv.NewLedgerService(NewGormTransactionScope(db), products, adminAccess, nil,
		appinv.WithRetryConfig(appinv.RetryConfig{
			MaxRetries:      5,
			InitialInterval: time.Millisecond,
			MaxInterval:     5 * time.Millisecond,
		}))
	s.distributions = appinv.NewDistributionService(s.ledger, adminAccess, nil)
	s.adminReturns = appinv.NewReturnService(s.ledger, adminAccess, nil)
	s.riderReturns = appinv.NewReturnService(s.ledger, riderAccess, nil)
	s.monitor = appinv.NewLowStockMonitor(NewGormWarehouseStockRepository(db), products)
	return s
}

func (s *ledgerStack) warehouseQty(t *testing.T) int64 {
	t.Helper()
	stock, err := NewGormWarehouseStockRepository(s.db).FindByProductID(context.Background(), s.product.ID)
	require.NoError(t, err)
	return stock.Quantity
}

func (s *ledgerStack) riderQty(t *testing.T) int64 {
	t.Helper()
	inv, err := NewGormRiderInventoryRepository(s.db).FindByRiderAndProduct(context.Background(), s.rider.ID, s.product.ID)
	if err != nil {
		require.ErrorIs(t, err, shared.ErrNotFound)
		return 0
	}
	return inv.Quantity
}

func (s *ledgerStack) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, s.db.Model(model).Count(&n).Error)
	return n
}

func (s *ledgerStack) stock(t *testing.T, qty, minStock int64) {
	t.Helper()
	_, err := s.ledger.AdjustWarehouseStock(context.Background(), appinv.AdjustStockRequest{
		ProductID: s.product.ID,
		Quantity:  qty,
		MinStock:  minStock,
	})
	require.NoError(t, err)
}

func TestLedger_SQLite_DistributeReturnApprove(t *testing.T) {
	ctx := context.Background()
	s := newLedgerStack(t)

	s.stock(t, 100, 10)

	_, err := s.distributions.Distribute(ctx, appinv.DistributeRequest{
		ProductID: s.product.ID,
		RiderID:   s.rider.ID,
		Quantity:  30,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(70), s.warehouseQty(t))
	assert.Equal(t, int64(30), s.riderQty(t))

	_, err = s.riderReturns.RequestReturn(ctx, appinv.RequestReturnRequest{
		RiderID: s.rider.ID, ProductID: s.product.ID, Quantity: 40, Reason: "unsold",
	})
	assert.ErrorIs(t, err, shared.ErrInsufficientStock)
	assert.Zero(t, s.count(t, &inventory.ReturnRequest{}))

	pending, err := s.riderReturns.RequestReturn(ctx, appinv.RequestReturnRequest{
		RiderID: s.rider.ID, ProductID: s.product.ID, Quantity: 20, Reason: "unsold",
	})
	require.NoError(t, err)
	assert.Equal(t, string(inventory.ReturnStatusPending), pending.Status)
	assert.Equal(t, int64(30), s.riderQty(t))

	approved, err := s.adminReturns.ApproveReturn(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, string(inventory.ReturnStatusApproved), approved.Status)

	assert.Equal(t, int64(10), s.riderQty(t))
	assert.Equal(t, int64(90), s.warehouseQty(t))

	low, err := s.monitor.ListLowStock(ctx)
	require.NoError(t, err)
	assert.Empty(t, low)

	_, err = s.adminReturns.ApproveReturn(ctx, pending.ID)
	assert.ErrorIs(t, err, shared.ErrInvalidState)
	assert.Equal(t, int64(90), s.warehouseQty(t))
}

func TestLedger_SQLite_ConcurrentTransfersNeverOversell(t *testing.T) {
	ctx := context.Background()
	s := newLedgerStack(t)
	s.stock(t, 50, 0)

	const workers = 12
	const each = 7
	var successes atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.ledger.TransferWarehouseToRider(ctx, appinv.TransferRequest{
				ProductID: s.product.ID,
				RiderID:   s.rider.ID,
				Quantity:  each,
			})
			if err == nil {
				successes.Add(1)
				return
			}
			assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(7), successes.Load())
	assert.Equal(t, int64(50-7*each), s.warehouseQty(t))
	assert.Equal(t, 7*int64(each), s.riderQty(t))
}

func TestLedger_SQLite_ConcurrentApproveSucceedsOnce(t *testing.T) {
	ctx := context.Background()
	s := newLedgerStack(t)
	s.stock(t, 100, 10)
	_, err := s.distributions.Distribute(ctx, appinv.DistributeRequest{
		ProductID: s.product.ID, RiderID: s.rider.ID, Quantity: 30,
	})
	require.NoError(t, err)
	pending, err := s.riderReturns.RequestReturn(ctx, appinv.RequestReturnRequest{
		RiderID: s.rider.ID, ProductID: s.product.ID, Quantity: 20, Reason: "defective",
	})
	require.NoError(t, err)

	var approvals, invalid atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.adminReturns.ApproveReturn(ctx, pending.ID)
			switch {
			case err == nil:
				approvals.Add(1)
			case assert.ErrorIs(t, err, shared.ErrInvalidState):
				invalid.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), approvals.Load())
	assert.Equal(t, int64(7), invalid.Load())
	assert.Equal(t, int64(10), s.riderQty(t))
	assert.Equal(t, int64(90), s.warehouseQty(t))
}

func TestLedger_SQLite_ApproveRollsBackWhenRiderIsShort(t *testing.T) {
	ctx := context.Background()
	s := newLedgerStack(t)
	s.stock(t, 100, 10)
	_, err := s.distributions.Distribute(ctx, appinv.DistributeRequest{
		ProductID: s.product.ID, RiderID: s.rider.ID, Quantity: 30,
	})
	require.NoError(t, err)

	first, err := s.riderReturns.RequestReturn(ctx, appinv.RequestReturnRequest{
		RiderID: s.rider.ID, ProductID: s.product.ID, Quantity: 25, Reason: "unsold",
	})
	require.NoError(t, err)
	second, err := s.riderReturns.RequestReturn(ctx, appinv.RequestReturnRequest{
		RiderID: s.rider.ID, ProductID: s.product.ID, Quantity: 25, Reason: "unsold",
	})
	require.NoError(t, err)

	_, err = s.adminReturns.ApproveReturn(ctx, first.ID)
	require.NoError(t, err)

	_, err = s.adminReturns.ApproveReturn(ctx, second.ID)
	assert.ErrorIs(t, err, shared.ErrInsufficientStock)

	stored, err := NewGormReturnRequestRepository(s.db).FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, inventory.ReturnStatusPending, stored.Status, "status change rolled back with the transfer")
	assert.Equal(t, int64(5), s.riderQty(t))
	assert.Equal(t, int64(95), s.warehouseQty(t))

	rejected, err := s.adminReturns.RejectReturn(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, string(inventory.ReturnStatusRejected), rejected.Status)
	assert.Equal(t, int64(5), s.riderQty(t))
}

func TestLedger_SQLite_FailedDistributionLeavesNoRecord(t *testing.T) {
	ctx := context.Background()
	s := newLedgerStack(t)
	s.stock(t, 10, 2)

	_, err := s.distributions.Distribute(ctx, appinv.DistributeRequest{
		ProductID: s.product.ID, RiderID: s.rider.ID, Quantity: 11,
	})
	assert.ErrorIs(t, err, shared.ErrInsufficientStock)
	assert.Zero(t, s.count(t, &inventory.Distribution{}))
	assert.Zero(t, s.count(t, &inventory.RiderInventory{}), "rider row created in the failed transaction is rolled back")
	assert.Equal(t, int64(10), s.warehouseQty(t))
}

func TestLedger_SQLite_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newLedgerStack(t)
	s.stock(t, 40, 5)

	req := appinv.TransferRequest{ProductID: s.product.ID, RiderID: s.rider.ID, Quantity: 15}
	_, err := s.ledger.TransferWarehouseToRider(ctx, req)
	require.NoError(t, err)
	back, err := s.ledger.TransferRiderToWarehouse(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, int64(40), back.Warehouse.Quantity)
	assert.Equal(t, int64(0), back.Rider.Quantity)
	assert.Equal(t, int64(40), s.warehouseQty(t))
}
