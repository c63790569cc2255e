package inventory

import (
	"context"
	"fmt"

	"github.com/fieldstock/backend/internal/domain/inventory"
	"github.com/fieldstock/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Alert types
const (
	AlertTypeLowStock   = "low_stock"
	AlertTypeOutOfStock = "out_of_stock"
)

// AlertMetrics counts raised stock alerts
type AlertMetrics interface {
	IncLowStockAlert(alertType string)
}

// LowStockAlertHandler handles StockBelowThreshold events
// and raises an alert when a warehouse row drops to its minimum threshold
type LowStockAlertHandler struct {
	logger  *zap.Logger
	metrics AlertMetrics
}

// NewLowStockAlertHandler creates a new handler for stock below threshold events
func NewLowStockAlertHandler(logger *zap.Logger) *LowStockAlertHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LowStockAlertHandler{logger: logger}
}

// WithMetrics sets the alert counter
func (h *LowStockAlertHandler) WithMetrics(metrics AlertMetrics) *LowStockAlertHandler {
	h.metrics = metrics
	return h
}

// EventTypes returns the event types this handler is interested in
func (h *LowStockAlertHandler) EventTypes() []string {
	return []string{inventory.EventTypeStockBelowThreshold}
}

// Handle processes a StockBelowThresholdEvent
func (h *LowStockAlertHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	thresholdEvent, ok := event.(*inventory.StockBelowThresholdEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", inventory.EventTypeStockBelowThreshold),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			inventory.EventTypeStockBelowThreshold, event.EventType())
	}

	alertType := AlertTypeLowStock
	if thresholdEvent.IsOutOfStock() {
		alertType = AlertTypeOutOfStock
	}

	h.logger.Warn("stock below threshold detected",
		zap.String("alert_type", alertType),
		zap.String("warehouse_stock_id", thresholdEvent.AggregateID().String()),
		zap.String("product_id", thresholdEvent.ProductID.String()),
		zap.Int64("current_quantity", thresholdEvent.CurrentQuantity),
		zap.Int64("minimum_quantity", thresholdEvent.MinimumQuantity),
	)

	if h.metrics != nil {
		h.metrics.IncLowStockAlert(alertType)
	}
	return nil
}

var _ shared.EventHandler = (*LowStockAlertHandler)(nil)
