package persistence

import (
	"path/filepath"
	"testing"

	"github.com/fieldstock/backend/internal/domain/catalog"
	"github.com/fieldstock/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a file-backed SQLite database with the ledger schema.
// A single connection plus immediate transactions serializes writers the way
// row locks do on PostgreSQL.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fieldstock.db")
	db, err := Open(sqlite.Open("file:"+path+"?_busy_timeout=5000&_txlock=immediate"), nil)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&catalog.Product{},
		&inventory.WarehouseStock{},
		&inventory.RiderInventory{},
		&inventory.Distribution{},
		&inventory.ReturnRequest{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, sku, name string) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(sku, name)
	require.NoError(t, err)
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedStock(t *testing.T, db *gorm.DB, productID uuid.UUID, qty, minStock int64) *inventory.WarehouseStock {
	t.Helper()
	stock, err := inventory.NewWarehouseStock(productID, qty, minStock)
	require.NoError(t, err)
	require.NoError(t, db.Create(stock).Error)
	return stock
}

func seedRider(t *testing.T, db *gorm.DB, riderID, productID uuid.UUID, qty int64) *inventory.RiderInventory {
	t.Helper()
	inv, err := inventory.NewRiderInventory(riderID, productID)
	require.NoError(t, err)
	inv.Quantity = qty
	require.NoError(t, db.Create(inv).Error)
	return inv
}

// inTx runs fn in a committed transaction and fails the test on error
func inTx(t *testing.T, db *gorm.DB, fn func(tx *gorm.DB) error) {
	t.Helper()
	require.NoError(t, db.Transaction(fn))
}
