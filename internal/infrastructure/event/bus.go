package event

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/fieldstock/backend/internal/infrastructure/logger"
	"github.com/fieldstock/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// InMemoryEventBus delivers committed domain events to in-process handlers.
// Delivery is synchronous on the publishing goroutine. A failing or
// panicking handler is logged and never fails the publisher.
type InMemoryEventBus struct {
	registry  *HandlerRegistry
	logger    *zap.Logger
	running   atomic.Bool
	published atomic.Int64
	failed    atomic.Int64
}

// NewInMemoryEventBus creates a new in-memory event bus
func NewInMemoryEventBus(log *zap.Logger) *InMemoryEventBus {
	if log == nil {
		log = zap.NewNop()
	}
	return &InMemoryEventBus{
		registry: NewHandlerRegistry(),
		logger:   log,
	}
}

// Publish dispatches each event to its handlers in registration order
func (b *InMemoryEventBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	if !b.running.Load() {
		if len(events) > 0 {
			b.logger.Warn("event bus not running, dropping events", zap.Int("count", len(events)))
		}
		return nil
	}

	log := logger.WithTraceContext(ctx, b.logger)
	for _, event := range events {
		b.published.Add(1)
		for _, handler := range b.registry.HandlersFor(event.EventType()) {
			if err := b.dispatch(ctx, handler, event); err != nil {
				b.failed.Add(1)
				log.Error("event handler failed",
					zap.String("event_type", event.EventType()),
					zap.String("event_id", event.EventID().String()),
					zap.String("aggregate_id", event.AggregateID().String()),
					zap.Error(err),
				)
			}
		}
	}
	return nil
}

// Subscribe registers handler for eventTypes, or for handler.EventTypes() when none are given
func (b *InMemoryEventBus) Subscribe(handler shared.EventHandler, eventTypes ...string) {
	if len(eventTypes) == 0 {
		eventTypes = handler.EventTypes()
	}
	b.registry.Register(handler, eventTypes...)
	b.logger.Debug("handler subscribed", zap.Strings("event_types", eventTypes))
}

// Unsubscribe removes a handler
func (b *InMemoryEventBus) Unsubscribe(handler shared.EventHandler) {
	b.registry.Unregister(handler)
}

// Start enables delivery
func (b *InMemoryEventBus) Start(context.Context) error {
	b.running.Store(true)
	b.logger.Info("event bus started", zap.Int("handlers", b.registry.Len()))
	return nil
}

// Stop disables delivery. Publish calls already dispatching run to completion.
func (b *InMemoryEventBus) Stop(context.Context) error {
	b.running.Store(false)
	b.logger.Info("event bus stopped",
		zap.Int64("published", b.published.Load()),
		zap.Int64("handler_failures", b.failed.Load()),
	)
	return nil
}

// Stats returns the number of published events and failed handler invocations
func (b *InMemoryEventBus) Stats() (published, failed int64) {
	return b.published.Load(), b.failed.Load()
}

func (b *InMemoryEventBus) dispatch(ctx context.Context, handler shared.EventHandler, event shared.DomainEvent) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "event", "dispatch",
		attribute.String("event.type", event.EventType()),
		attribute.String("event.aggregate_id", event.AggregateID().String()),
	)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
		telemetry.EndSpan(span, err)
	}()
	return handler.Handle(ctx, event)
}

var _ shared.EventBus = (*InMemoryEventBus)(nil)
