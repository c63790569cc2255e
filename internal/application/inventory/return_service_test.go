package inventory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/fieldstock/backend/internal/domain/inventory"
	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflow_DistributeReturnApprove(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.stock(t, 100, 10)
	f.distribute(t, 30)
	assert.Equal(t, int64(70), f.warehouseQty())
	assert.Equal(t, int64(30), f.riderQty())

	f.asRider()
	_, err := f.returns.RequestReturn(ctx, RequestReturnRequest{
		RiderID:   f.rider.ID,
		ProductID: f.product.ID,
		Quantity:  40,
		Reason:    "unsold",
	})
	assert.ErrorIs(t, err, shared.ErrInsufficientStock)
	assert.Zero(t, f.store.returnCount())

	pending := f.requestReturn(t, 20)
	assert.Equal(t, string(inventory.ReturnStatusPending), pending.Status)
	assert.Equal(t, "Unsold product", pending.ReasonLabel)
	assert.Equal(t, int64(30), f.riderQty(), "requesting a return does not move stock")

	f.asAdmin()
	approved, err := f.returns.ApproveReturn(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, string(inventory.ReturnStatusApproved), approved.Status)
	require.NotNil(t, approved.DecidedBy)
	assert.Equal(t, f.admin.ID, *approved.DecidedBy)

	assert.Equal(t, int64(10), f.riderQty())
	assert.Equal(t, int64(90), f.warehouseQty())

	low, err := f.monitor.ListLowStock(ctx)
	require.NoError(t, err)
	assert.Empty(t, low)

	assert.Len(t, f.publisher.byType(inventory.EventTypeStockDistributed), 1)
	assert.Len(t, f.publisher.byType(inventory.EventTypeReturnRequested), 1)
	assert.Len(t, f.publisher.byType(inventory.EventTypeReturnApproved), 1)
}

func TestReturnService_ApproveReturn(t *testing.T) {
	ctx := context.Background()

	t.Run("second approval fails and moves nothing", func(t *testing.T) {
		f := newFixture(t)
		f.stock(t, 50, 0)
		f.distribute(t, 20)
		req := f.requestReturn(t, 5)

		f.asAdmin()
		_, err := f.returns.ApproveReturn(ctx, req.ID)
		require.NoError(t, err)
		_, err = f.returns.ApproveReturn(ctx, req.ID)
		assert.ErrorIs(t, err, shared.ErrInvalidState)

		assert.Equal(t, int64(15), f.riderQty())
		assert.Equal(t, int64(35), f.warehouseQty())
	})

	t.Run("concurrent approvals succeed once", func(t *testing.T) {
		f := newFixture(t)
		f.stock(t, 50, 0)
		f.distribute(t, 20)
		req := f.requestReturn(t, 5)
		f.asAdmin()

		var ok atomic.Int64
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := f.returns.ApproveReturn(ctx, req.ID); err == nil {
					ok.Add(1)
				} else {
					assert.ErrorIs(t, err, shared.ErrInvalidState)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int64(1), ok.Load())
		assert.Equal(t, int64(15), f.riderQty())
	})

	t.Run("unknown request", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.returns.ApproveReturn(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("riders cannot approve", func(t *testing.T) {
		f := newFixture(t)
		f.stock(t, 50, 0)
		f.distribute(t, 20)
		req := f.requestReturn(t, 5)

		_, err := f.returns.ApproveReturn(ctx, req.ID)
		assert.ErrorIs(t, err, shared.ErrForbidden)
		assert.Equal(t, int64(20), f.riderQty())
	})

	t.Run("failed transfer leaves the request pending", func(t *testing.T) {
		f := newFixture(t)
		f.stock(t, 50, 0)
		f.distribute(t, 30)
		first := f.requestReturn(t, 20)
		second := f.requestReturn(t, 20)

		f.asAdmin()
		_, err := f.returns.ApproveReturn(ctx, first.ID)
		require.NoError(t, err)

		_, err = f.returns.ApproveReturn(ctx, second.ID)
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)

		stored, err := memReturnRepo{f.store}.FindByID(ctx, second.ID)
		require.NoError(t, err)
		assert.True(t, stored.IsPending())
		assert.Equal(t, int64(10), f.riderQty())
		assert.Equal(t, int64(40), f.warehouseQty())
	})
}

func TestReturnService_RequestReturn(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		act     func(f *fixture)
		req     func(f *fixture) RequestReturnRequest
		wantErr error
	}{
		{
			name: "another rider",
			act:  (*fixture).asOtherRider,
			req: func(f *fixture) RequestReturnRequest {
				return RequestReturnRequest{RiderID: f.rider.ID, ProductID: f.product.ID, Quantity: 1, Reason: "reject"}
			},
			wantErr: shared.ErrForbidden,
		},
		{
			name: "admin on behalf of rider",
			act:  (*fixture).asAdmin,
			req: func(f *fixture) RequestReturnRequest {
				return RequestReturnRequest{RiderID: f.rider.ID, ProductID: f.product.ID, Quantity: 1, Reason: "reject"}
			},
			wantErr: shared.ErrForbidden,
		},
		{
			name: "zero quantity",
			act:  (*fixture).asRider,
			req: func(f *fixture) RequestReturnRequest {
				return RequestReturnRequest{RiderID: f.rider.ID, ProductID: f.product.ID, Quantity: 0, Reason: "reject"}
			},
			wantErr: shared.ErrInvalidInput,
		},
		{
			name: "unknown reason",
			act:  (*fixture).asRider,
			req: func(f *fixture) RequestReturnRequest {
				return RequestReturnRequest{RiderID: f.rider.ID, ProductID: f.product.ID, Quantity: 1, Reason: "lost"}
			},
			wantErr: shared.ErrInvalidInput,
		},
		{
			name: "product never distributed",
			act:  (*fixture).asRider,
			req: func(f *fixture) RequestReturnRequest {
				return RequestReturnRequest{RiderID: f.rider.ID, ProductID: uuid.New(), Quantity: 1, Reason: "defective"}
			},
			wantErr: shared.ErrInsufficientStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.stock(t, 10, 0)
			f.distribute(t, 5)

			tt.act(f)
			_, err := f.returns.RequestReturn(ctx, tt.req(f))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, f.store.returnCount())
			assert.Equal(t, int64(5), f.riderQty())
		})
	}
}

func TestReturnService_RejectReturn(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.stock(t, 10, 0)
	f.distribute(t, 5)
	req := f.requestReturn(t, 3)

	f.asAdmin()
	rejected, err := f.returns.RejectReturn(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, string(inventory.ReturnStatusRejected), rejected.Status)
	assert.Equal(t, int64(5), f.riderQty())
	assert.Equal(t, int64(5), f.warehouseQty())

	_, err = f.returns.ApproveReturn(ctx, req.ID)
	assert.ErrorIs(t, err, shared.ErrInvalidState)
	assert.Len(t, f.publisher.byType(inventory.EventTypeReturnRejected), 1)
}
