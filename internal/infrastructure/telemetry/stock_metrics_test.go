package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type mockStockLevelsProvider struct {
	mock.Mock
}

func (m *mockStockLevelsProvider) StockLevels(ctx context.Context) (StockLevels, error) {
	args := m.Called(ctx)
	return args.Get(0).(StockLevels), args.Error(1)
}

func TestGormStockLevelsProvider(t *testing.T) {
	db := newSQLiteDB(t)
	require.NoError(t, db.Exec(`INSERT INTO warehouse_stock (product_id, quantity, min_stock) VALUES
		('p1', 50, 10),
		('p2', 10, 10),
		('p3', 0, 5),
		('p4', 3, 0)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO rider_inventory (rider_id, product_id, quantity) VALUES
		('r1', 'p1', 7),
		('r2', 'p1', 5),
		('r2', 'p2', 0)`).Error)

	levels, err := NewGormStockLevelsProvider(db).StockLevels(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), levels.LowStockProducts, "p2 sits at its minimum and p3 is below it")
	assert.Equal(t, int64(1), levels.OutOfStockProducts)
	assert.Equal(t, int64(63), levels.WarehouseUnits)
	assert.Equal(t, int64(12), levels.RiderUnits)
}

func TestGormStockLevelsProvider_Empty(t *testing.T) {
	db := newSQLiteDB(t)

	levels, err := NewGormStockLevelsProvider(db).StockLevels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StockLevels{}, levels)
}

func TestRegisterStockMetrics(t *testing.T) {
	t.Run("observes provider values", func(t *testing.T) {
		reader, mp := newManualMeter(t)
		provider := new(mockStockLevelsProvider)
		provider.On("StockLevels", mock.Anything).Return(StockLevels{
			LowStockProducts:   4,
			OutOfStockProducts: 1,
			WarehouseUnits:     120,
			RiderUnits:         35,
		}, nil)

		sm, err := RegisterStockMetrics(mp.Meter("test"), provider, time.Second, zap.NewNop())
		require.NoError(t, err)
		defer func() { _ = sm.Stop() }()

		rm := collect(t, reader)

		products, ok := findMetric(rm, "fieldstock_low_stock_products")
		require.True(t, ok)
		v, ok := gaugeValue(products, AttrStockLevel.String("low_stock"))
		require.True(t, ok)
		assert.Equal(t, int64(4), v)
		v, ok = gaugeValue(products, AttrStockLevel.String("out_of_stock"))
		require.True(t, ok)
		assert.Equal(t, int64(1), v)

		units, ok := findMetric(rm, "fieldstock_stock_units")
		require.True(t, ok)
		v, ok = gaugeValue(units, AttrStockLevel.String("warehouse"))
		require.True(t, ok)
		assert.Equal(t, int64(120), v)
		v, ok = gaugeValue(units, AttrStockLevel.String("riders"))
		require.True(t, ok)
		assert.Equal(t, int64(35), v)

		provider.AssertExpectations(t)
	})

	t.Run("provider failure is logged and skipped", func(t *testing.T) {
		reader, mp := newManualMeter(t)
		core, logs := observer.New(zap.WarnLevel)
		provider := new(mockStockLevelsProvider)
		provider.On("StockLevels", mock.Anything).Return(StockLevels{}, errors.New("connection refused"))

		sm, err := RegisterStockMetrics(mp.Meter("test"), provider, 0, zap.New(core))
		require.NoError(t, err)
		defer func() { _ = sm.Stop() }()

		rm := collect(t, reader)
		_, ok := findMetric(rm, "fieldstock_low_stock_products")
		assert.False(t, ok)
		assert.Equal(t, 1, logs.FilterMessage("failed to collect stock levels").Len())
	})

	t.Run("stop unregisters the callback", func(t *testing.T) {
		reader, mp := newManualMeter(t)
		provider := new(mockStockLevelsProvider)
		provider.On("StockLevels", mock.Anything).Return(StockLevels{}, nil)

		sm, err := RegisterStockMetrics(mp.Meter("test"), provider, time.Second, zap.NewNop())
		require.NoError(t, err)
		require.NoError(t, sm.Stop())

		collect(t, reader)
		provider.AssertNotCalled(t, "StockLevels", mock.Anything)
	})
}
