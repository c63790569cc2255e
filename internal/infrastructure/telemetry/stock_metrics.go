package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StockLevels is a point-in-time summary of the ledger
type StockLevels struct {
	LowStockProducts   int64
	OutOfStockProducts int64
	WarehouseUnits     int64
	RiderUnits         int64
}

// StockLevelsProvider computes StockLevels
type StockLevelsProvider interface {
	StockLevels(ctx context.Context) (StockLevels, error)
}

// GormStockLevelsProvider aggregates the stock tables directly
type GormStockLevelsProvider struct {
	db *gorm.DB
}

// NewGormStockLevelsProvider creates a new GormStockLevelsProvider
func NewGormStockLevelsProvider(db *gorm.DB) *GormStockLevelsProvider {
	return &GormStockLevelsProvider{db: db}
}

// StockLevels implements StockLevelsProvider
func (p *GormStockLevelsProvider) StockLevels(ctx context.Context) (StockLevels, error) {
	var warehouse struct {
		LowStock   int64
		OutOfStock int64
		Units      int64
	}
	err := p.db.WithContext(ctx).
		Table("warehouse_stock").
		Select("COALESCE(SUM(CASE WHEN quantity <= min_stock THEN 1 ELSE 0 END), 0) AS low_stock, " +
			"COALESCE(SUM(CASE WHEN quantity = 0 THEN 1 ELSE 0 END), 0) AS out_of_stock, " +
			"COALESCE(SUM(quantity), 0) AS units").
		Scan(&warehouse).Error
	if err != nil {
		return StockLevels{}, err
	}

	var riderUnits int64
	err = p.db.WithContext(ctx).
		Table("rider_inventory").
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&riderUnits).Error
	if err != nil {
		return StockLevels{}, err
	}

	return StockLevels{
		LowStockProducts:   warehouse.LowStock,
		OutOfStockProducts: warehouse.OutOfStock,
		WarehouseUnits:     warehouse.Units,
		RiderUnits:         riderUnits,
	}, nil
}

// StockMetrics exports StockLevels as observable gauges
type StockMetrics struct {
	registration metric.Registration
}

// RegisterStockMetrics observes provider on each collection cycle, bounded by timeout
func RegisterStockMetrics(meter metric.Meter, provider StockLevelsProvider, timeout time.Duration, logger *zap.Logger) (*StockMetrics, error) {
	products, err := meter.Int64ObservableGauge("fieldstock_low_stock_products",
		metric.WithDescription("Products at or below their warehouse minimum, by level"),
		metric.WithUnit("{product}"),
	)
	if err != nil {
		return nil, err
	}
	units, err := meter.Int64ObservableGauge("fieldstock_stock_units",
		metric.WithDescription("Units held, by location"),
		metric.WithUnit("{unit}"),
	)
	if err != nil {
		return nil, err
	}

	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	reg, err := meter.RegisterCallback(func(ctx context.Context, o metric.Observer) error {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		levels, err := provider.StockLevels(ctx)
		if err != nil {
			logger.Warn("failed to collect stock levels", zap.Error(err))
			return nil
		}
		o.ObserveInt64(products, levels.LowStockProducts, metric.WithAttributes(AttrStockLevel.String("low_stock")))
		o.ObserveInt64(products, levels.OutOfStockProducts, metric.WithAttributes(AttrStockLevel.String("out_of_stock")))
		o.ObserveInt64(units, levels.WarehouseUnits, metric.WithAttributes(AttrStockLevel.String("warehouse")))
		o.ObserveInt64(units, levels.RiderUnits, metric.WithAttributes(AttrStockLevel.String("riders")))
		return nil
	}, products, units)
	if err != nil {
		return nil, err
	}
	return &StockMetrics{registration: reg}, nil
}

// Stop unregisters the observer
func (m *StockMetrics) Stop() error {
	return m.registration.Unregister()
}
