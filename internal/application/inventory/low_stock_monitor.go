package inventory

import (
	"context"

	"github.com/fieldstock/backend/internal/domain/catalog"
	"github.com/fieldstock/backend/internal/domain/inventory"
	"github.com/google/uuid"
)

// LowStockMonitor reports warehouse rows at or below their threshold
type LowStockMonitor struct {
	stocks   inventory.WarehouseStockRepository
	products catalog.ProductRepository
}

// NewLowStockMonitor creates a new LowStockMonitor
func NewLowStockMonitor(stocks inventory.WarehouseStockRepository, products catalog.ProductRepository) *LowStockMonitor {
	return &LowStockMonitor{stocks: stocks, products: products}
}

// IsLowStock reports whether quantity is at or below minStock
func (m *LowStockMonitor) IsLowStock(quantity, minStock int64) bool {
	return inventory.IsLowStock(quantity, minStock)
}

// ListLowStock returns every warehouse row with quantity <= min_stock, with product details
func (m *LowStockMonitor) ListLowStock(ctx context.Context) ([]WarehouseStockResponse, error) {
	rows, err := m.stocks.FindLowStock(ctx)
	if err != nil {
		return nil, err
	}
	// the repository filters in SQL; re-apply so the result never disagrees with IsLowStock
	rows = inventory.FilterLowStock(rows)

	index, err := productIndex(ctx, m.products, stockProductIDs(rows))
	if err != nil {
		return nil, err
	}
	result := make([]WarehouseStockResponse, 0, len(rows))
	for i := range rows {
		result = append(result, ToWarehouseStockResponse(&rows[i], lookup(index, rows[i].ProductID)))
	}
	return result, nil
}

func stockProductIDs(rows []inventory.WarehouseStock) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ProductID)
	}
	return ids
}

// productIndex loads the products referenced by a page of rows
func productIndex(ctx context.Context, products catalog.ProductRepository, ids []uuid.UUID) (map[uuid.UUID]catalog.Product, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]catalog.Product{}, nil
	}
	found, err := products.FindByIDs(ctx, uniqueIDs(ids))
	if err != nil {
		return nil, err
	}
	return catalog.IndexByID(found), nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func lookup(index map[uuid.UUID]catalog.Product, id uuid.UUID) *catalog.Product {
	p, ok := index[id]
	if !ok {
		return nil
	}
	return &p
}
