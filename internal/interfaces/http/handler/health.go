package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger checks connectivity of a backing service
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness and readiness checks
type HealthHandler struct {
	db      Pinger
	version string
}

// HealthResponse is the body of the health endpoints
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version,omitempty" example:"1.0.0"`
	Timestamp string `json:"timestamp,omitempty" example:"2024-01-15T10:30:00Z"`
	Database  string `json:"database,omitempty" example:"connected"`
	Error     string `json:"error,omitempty"`
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db Pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// Health reports that the process is serving
//
// @ID           health
// @Summary      Liveness check
// @Tags         system
// @Produce      json
// @Success      200 {object} HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Version:   h.version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready reports whether the database is reachable
//
// @ID           ready
// @Summary      Readiness check
// @Tags         system
// @Produce      json
// @Success      200 {object} HealthResponse
// @Failure      503 {object} HealthResponse
// @Router       /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ready", Database: "connected"})
}
