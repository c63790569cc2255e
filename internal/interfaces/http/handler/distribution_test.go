package handler

import (
	"net/http"
	"testing"

	inventoryapp "github.com/fieldstock/backend/internal/application/inventory"
	"github.com/fieldstock/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistributionHandler_Create(t *testing.T) {
	f := newFixture(t)
	f.stock(t, 50, 10)

	t.Run("moves stock to the rider", func(t *testing.T) {
		w := f.do(t, &f.admin, http.MethodPost, "/distributions", gin.H{
			"product_id": f.product.ID, "rider_id": f.rider.ID, "quantity": 20, "notes": "morning round",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var d inventoryapp.DistributionResponse
		decodeData(t, w, &d)
		assert.Equal(t, int64(20), d.Quantity)
		assert.Equal(t, f.rider.ID, d.RiderID)
		assert.Equal(t, f.admin.ID, d.DistributedBy)
		assert.Equal(t, "morning round", d.Notes)
	})

	t.Run("over quantity is rejected", func(t *testing.T) {
		w := f.do(t, &f.admin, http.MethodPost, "/distributions", gin.H{
			"product_id": f.product.ID, "rider_id": f.rider.ID, "quantity": 31,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, dto.ErrCodeInsufficientStock, errorCode(t, w))
	})

	t.Run("zero quantity is rejected", func(t *testing.T) {
		w := f.do(t, &f.admin, http.MethodPost, "/distributions", gin.H{
			"product_id": f.product.ID, "rider_id": f.rider.ID, "quantity": 0,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := f.do(t, &f.admin, http.MethodPost, "/distributions", `{"product_id":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("riders may not distribute", func(t *testing.T) {
		w := f.do(t, &f.rider, http.MethodPost, "/distributions", gin.H{
			"product_id": f.product.ID, "rider_id": f.rider.ID, "quantity": 1,
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("rider holds what was distributed", func(t *testing.T) {
		w := f.do(t, &f.rider, http.MethodGet, "/riders/"+f.rider.ID.String()+"/inventory", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var rows []inventoryapp.RiderInventoryResponse
		decodeData(t, w, &rows)
		require.Len(t, rows, 1)
		assert.Equal(t, int64(20), rows[0].Quantity)
	})
}

func TestDistributionHandler_List(t *testing.T) {
	f := newFixture(t)
	f.stock(t, 50, 10)
	f.distribute(t, 5)
	f.distribute(t, 7)

	t.Run("lists all distributions", func(t *testing.T) {
		w := f.do(t, &f.admin, http.MethodGet, "/distributions", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var rows []inventoryapp.DistributionResponse
		resp := decodeData(t, w, &rows)
		require.Len(t, rows, 2)
		assert.Equal(t, int64(2), resp.Meta.Total)
	})

	t.Run("filters by rider", func(t *testing.T) {
		w := f.do(t, &f.admin, http.MethodGet, "/distributions?rider_id="+uuid.NewString(), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var rows []inventoryapp.DistributionResponse
		decodeData(t, w, &rows)
		assert.Empty(t, rows)
	})

	t.Run("rejects malformed rider filter", func(t *testing.T) {
		w := f.do(t, &f.admin, http.MethodGet, "/distributions?rider_id=bogus", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
