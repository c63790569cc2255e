package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldstock/backend/internal/domain/catalog"
	"github.com/fieldstock/backend/internal/domain/identity"
	"github.com/fieldstock/backend/internal/domain/inventory"
	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LedgerService owns warehouse stock and rider inventory quantities.
// Every quantity mutation in the system goes through it.
type LedgerService struct {
	products        catalog.ProductRepository
	access          identity.AccessControl
	runner          *txExecutor
	defaultMinStock int64
	logger          *zap.Logger
}

// LedgerOption configures a LedgerService
type LedgerOption func(*LedgerService)

// WithRetryConfig overrides the conflict retry policy
func WithRetryConfig(cfg RetryConfig) LedgerOption {
	return func(l *LedgerService) {
		l.runner.retry = cfg
	}
}

// WithDefaultMinStock sets the threshold of warehouse rows created by returns
func WithDefaultMinStock(minStock int64) LedgerOption {
	return func(l *LedgerService) {
		if minStock >= 0 {
			l.defaultMinStock = minStock
		}
	}
}

// WithLedgerMetrics sets the metrics sink
func WithLedgerMetrics(m LedgerMetrics) LedgerOption {
	return func(l *LedgerService) {
		if m != nil {
			l.runner.metrics = m
		}
	}
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(
	txScope TransactionScope,
	products catalog.ProductRepository,
	access identity.AccessControl,
	logger *zap.Logger,
	opts ...LedgerOption,
) *LedgerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &LedgerService{
		products:        products,
		access:          access,
		defaultMinStock: inventory.DefaultMinStock,
		logger:          logger,
		runner: &txExecutor{
			scope:   txScope,
			retry:   DefaultRetryConfig(),
			metrics: noopLedgerMetrics{},
			logger:  logger,
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SetEventPublisher sets the event publisher for publishing domain events
func (l *LedgerService) SetEventPublisher(publisher shared.EventPublisher) {
	l.runner.publisher = publisher
}

// TransferResult holds both rows after a transfer
type TransferResult struct {
	Warehouse *inventory.WarehouseStock
	Rider     *inventory.RiderInventory
}

// AdjustWarehouseStock sets the quantity and threshold of a product's warehouse row, creating it if needed
func (l *LedgerService) AdjustWarehouseStock(ctx context.Context, req AdjustStockRequest) (*WarehouseStockResponse, error) {
	if _, err := identity.RequireAdmin(ctx, l.access); err != nil {
		return nil, err
	}
	if req.Quantity < 0 || req.MinStock < 0 {
		return nil, shared.NewValidationError("Quantity and minimum stock cannot be negative")
	}
	product, err := l.findProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	var result *inventory.WarehouseStock
	err = l.runner.execute(ctx, OpAdjustStock, func(repos TransactionalRepositories, events *eventBuffer) error {
		stocks := repos.WarehouseStockRepo()
		stock, err := stocks.GetOrCreateForUpdate(ctx, req.ProductID, req.MinStock)
		if err != nil {
			return err
		}
		// Rider rows only grow through the warehouse row locked above.
		held, err := repos.RiderInventoryRepo().SumByProduct(ctx, req.ProductID)
		if err != nil {
			return err
		}
		if err := inventory.CheckProductTotal(req.Quantity, held); err != nil {
			return err
		}
		if err := stock.Adjust(req.Quantity, req.MinStock); err != nil {
			return err
		}
		if err := stocks.SaveWithLock(ctx, stock); err != nil {
			return err
		}
		events.collect(stock)
		result = stock
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.logger.Info("warehouse stock adjusted",
		zap.String("product_id", req.ProductID.String()),
		zap.Int64("quantity", result.Quantity),
		zap.Int64("min_stock", result.MinStock),
	)
	resp := ToWarehouseStockResponse(result, product)
	return &resp, nil
}

// TransferWarehouseToRider moves quantity from the warehouse to a rider atomically
func (l *LedgerService) TransferWarehouseToRider(ctx context.Context, req TransferRequest) (*TransferResponse, error) {
	if _, err := identity.RequireAdmin(ctx, l.access); err != nil {
		return nil, err
	}
	if err := validateTransfer(req); err != nil {
		return nil, err
	}

	var result *TransferResult
	err := l.runner.execute(ctx, OpTransferToRider, func(repos TransactionalRepositories, events *eventBuffer) error {
		res, err := l.transferToRider(ctx, repos, req.ProductID, req.RiderID, req.Quantity)
		if err != nil {
			return err
		}
		events.collect(res.Warehouse)
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToTransferResponse(result), nil
}

// TransferRiderToWarehouse moves quantity from a rider back to the warehouse atomically
func (l *LedgerService) TransferRiderToWarehouse(ctx context.Context, req TransferRequest) (*TransferResponse, error) {
	if _, err := identity.RequireAdmin(ctx, l.access); err != nil {
		return nil, err
	}
	if err := validateTransfer(req); err != nil {
		return nil, err
	}

	var result *TransferResult
	err := l.runner.execute(ctx, OpTransferToWarehouse, func(repos TransactionalRepositories, events *eventBuffer) error {
		res, err := l.transferToWarehouse(ctx, repos, req.ProductID, req.RiderID, req.Quantity)
		if err != nil {
			return err
		}
		events.collect(res.Warehouse)
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToTransferResponse(result), nil
}

// transferToRider performs the warehouse to rider move inside the caller's transaction.
// Rows are always locked warehouse first, rider second.
func (l *LedgerService) transferToRider(ctx context.Context, repos TransactionalRepositories, productID, riderID uuid.UUID, quantity int64) (*TransferResult, error) {
	stock, err := repos.WarehouseStockRepo().FindByProductIDForUpdate(ctx, productID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewInsufficientStockError("No warehouse stock recorded for product")
		}
		return nil, err
	}
	if stock.Quantity < quantity {
		return nil, shared.NewInsufficientStockError(
			fmt.Sprintf("Insufficient warehouse stock: available %d, requested %d", stock.Quantity, quantity))
	}

	inv, err := repos.RiderInventoryRepo().GetOrCreateForUpdate(ctx, riderID, productID)
	if err != nil {
		return nil, err
	}
	if err := inventory.MoveToRider(stock, inv, quantity); err != nil {
		return nil, err
	}
	if err := l.save(ctx, repos, stock, inv); err != nil {
		return nil, err
	}
	return &TransferResult{Warehouse: stock, Rider: inv}, nil
}

// transferToWarehouse performs the rider to warehouse move inside the caller's transaction
func (l *LedgerService) transferToWarehouse(ctx context.Context, repos TransactionalRepositories, productID, riderID uuid.UUID, quantity int64) (*TransferResult, error) {
	stock, err := repos.WarehouseStockRepo().GetOrCreateForUpdate(ctx, productID, l.defaultMinStock)
	if err != nil {
		return nil, err
	}
	inv, err := repos.RiderInventoryRepo().FindByRiderAndProductForUpdate(ctx, riderID, productID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewInsufficientStockError("Rider holds no inventory of this product")
		}
		return nil, err
	}
	if err := inventory.MoveToWarehouse(inv, stock, quantity); err != nil {
		return nil, err
	}
	if err := l.save(ctx, repos, stock, inv); err != nil {
		return nil, err
	}
	return &TransferResult{Warehouse: stock, Rider: inv}, nil
}

func (l *LedgerService) save(ctx context.Context, repos TransactionalRepositories, stock *inventory.WarehouseStock, inv *inventory.RiderInventory) error {
	if err := repos.WarehouseStockRepo().SaveWithLock(ctx, stock); err != nil {
		return err
	}
	return repos.RiderInventoryRepo().SaveWithLock(ctx, inv)
}

func (l *LedgerService) findProduct(ctx context.Context, productID uuid.UUID) (*catalog.Product, error) {
	if productID == uuid.Nil {
		return nil, shared.NewValidationError("Product ID cannot be empty")
	}
	product, err := l.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Product not found")
		}
		return nil, err
	}
	return product, nil
}

func validateTransfer(req TransferRequest) error {
	if req.ProductID == uuid.Nil {
		return shared.NewValidationError("Product ID cannot be empty")
	}
	if req.RiderID == uuid.Nil {
		return shared.NewValidationError("Rider ID cannot be empty")
	}
	if req.Quantity <= 0 {
		return shared.NewValidationError("Quantity must be positive")
	}
	return nil
}
