package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	inventoryapp "github.com/fieldstock/backend/internal/application/inventory"
	"github.com/fieldstock/backend/internal/domain/catalog"
	"github.com/fieldstock/backend/internal/domain/identity"
	"github.com/fieldstock/backend/internal/domain/inventory"
	"github.com/fieldstock/backend/internal/infrastructure/auth"
	"github.com/fieldstock/backend/internal/infrastructure/persistence"
	"github.com/fieldstock/backend/internal/interfaces/http/dto"
	"github.com/fieldstock/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

const (
	testUserHeader = "X-Test-User"
	testRoleHeader = "X-Test-Role"
)

// fixture serves the handlers over SQLite with the caller taken from test headers
type fixture struct {
	db      *gorm.DB
	router  *gin.Engine
	product *catalog.Product
	admin   identity.Principal
	rider   identity.Principal
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	path := filepath.Join(t.TempDir(), "handler.db")
	db, err := persistence.Open(sqlite.Open("file:"+path+"?_busy_timeout=5000&_txlock=immediate"), nil)
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

	product, err := catalog.NewProduct("SKU-1", "Bottled Water")
	require.NoError(t, err)
	require.NoError(t, db.Create(product).Error)

	access := auth.NewContextAccessControl()
	products := persistence.NewGormProductRepository(db)
	stocks := persistence.NewGormWarehouseStockRepository(db)
	ledger := inventoryapp.NewLedgerService(persistence.NewGormTransactionScope(db), products, access, nil,
		inventoryapp.WithRetryConfig(inventoryapp.RetryConfig{
			MaxRetries:      3,
			InitialInterval: time.Millisecond,
			MaxInterval:     5 * time.Millisecond,
		}))
	queries := inventoryapp.NewQueryService(
		stocks,
		persistence.NewGormRiderInventoryRepository(db),
		persistence.NewGormDistributionRepository(db),
		persistence.NewGormReturnRequestRepository(db),
		products,
		access,
	)

	warehouse := NewWarehouseHandler(ledger, queries, inventoryapp.NewLowStockMonitor(stocks, products))
	distributions := NewDistributionHandler(inventoryapp.NewDistributionService(ledger, access, nil), queries)
	returns := NewReturnHandler(inventoryapp.NewReturnService(ledger, access, nil), queries)
	riders := NewRiderHandler(queries)

	r := gin.New()
	r.Use(middleware.RequestID(), testPrincipal())
	r.GET("/products", NewProductHandler(queries).List)
	r.GET("/warehouse/stock", warehouse.ListStock)
	r.GET("/warehouse/stock/:product_id", warehouse.GetStock)
	r.PUT("/warehouse/stock/:product_id", warehouse.AdjustStock)
	r.GET("/warehouse/low-stock", warehouse.ListLowStock)
	r.POST("/distributions", distributions.Create)
	r.GET("/distributions", distributions.List)
	r.POST("/returns", returns.Create)
	r.GET("/returns/pending", returns.ListPending)
	r.GET("/returns/reasons", returns.Reasons)
	r.POST("/returns/:id/approve", returns.Approve)
	r.POST("/returns/:id/reject", returns.Reject)
	r.GET("/riders/:rider_id/inventory", riders.Inventory)
	r.GET("/riders/:rider_id/returns", riders.Returns)

	return &fixture{
		db:      db,
		router:  r,
		product: product,
		admin:   identity.Principal{ID: uuid.New(), Role: identity.RoleAdmin, Username: "admin"},
		rider:   identity.Principal{ID: uuid.New(), Role: identity.RoleRider, Username: "rider-1"},
	}
}

// testPrincipal stands in for the JWT middleware
func testPrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.GetHeader(testUserHeader))
		if err == nil {
			p := identity.Principal{ID: id, Role: identity.Role(c.GetHeader(testRoleHeader))}
			c.Request = c.Request.WithContext(auth.ContextWithPrincipal(c.Request.Context(), p))
		}
		c.Next()
	}
}

func (f *fixture) do(t *testing.T, as *identity.Principal, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if as != nil {
		req.Header.Set(testUserHeader, as.ID.String())
		req.Header.Set(testRoleHeader, string(as.Role))
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

// stock sets the warehouse row through the API
func (f *fixture) stock(t *testing.T, quantity, minStock int64) {
	t.Helper()
	w := f.do(t, &f.admin, http.MethodPut, "/warehouse/stock/"+f.product.ID.String(),
		gin.H{"quantity": quantity, "min_stock": minStock})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func (f *fixture) distribute(t *testing.T, quantity int64) {
	t.Helper()
	w := f.do(t, &f.admin, http.MethodPost, "/distributions", gin.H{
		"product_id": f.product.ID, "rider_id": f.rider.ID, "quantity": quantity,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func (f *fixture) requestReturn(t *testing.T, quantity int64) uuid.UUID {
	t.Helper()
	w := f.do(t, &f.rider, http.MethodPost, "/returns", gin.H{
		"product_id": f.product.ID, "quantity": quantity, "reason": "unsold",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var ret inventoryapp.ReturnRequestResponse
	decodeData(t, w, &ret)
	return ret.ID
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// decodeData unmarshals the envelope's data field into out
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) dto.Response {
	t.Helper()
	var raw struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.NoError(t, json.Unmarshal(raw.Data, out))
	return decodeResponse(t, w)
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error, w.Body.String())
	return resp.Error.Code
}
