package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/fieldstock/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Operation names used in logs and metrics
const (
	OpAdjustStock         = "adjust_stock"
	OpTransferToRider     = "transfer_to_rider"
	OpTransferToWarehouse = "transfer_to_warehouse"
	OpDistribute          = "distribute"
	OpRequestReturn       = "request_return"
	OpApproveReturn       = "approve_return"
	OpRejectReturn        = "reject_return"
)

// Operation outcomes
const (
	OutcomeSuccess  = "success"
	OutcomeConflict = "conflict"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// RetryConfig bounds the automatic retry of concurrency conflicts
type RetryConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryConfig returns the default conflict retry policy
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:      5,
		InitialInterval: 10 * time.Millisecond,
		MaxInterval:     250 * time.Millisecond,
	}
}

func (c RetryConfig) backOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.InitialInterval
	b.MaxInterval = c.MaxInterval
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(max(c.MaxRetries, 0))), ctx)
}

// LedgerMetrics receives ledger operation outcomes
type LedgerMetrics interface {
	ObserveLedgerOperation(op, outcome string, duration time.Duration)
	IncConflictRetry(op string)
}

type noopLedgerMetrics struct{}

func (noopLedgerMetrics) ObserveLedgerOperation(string, string, time.Duration) {}
func (noopLedgerMetrics) IncConflictRetry(string)                              {}

// eventBuffer collects domain events raised during one transaction attempt
type eventBuffer struct {
	events []shared.DomainEvent
}

func (b *eventBuffer) collect(aggregates ...shared.AggregateRoot) {
	for _, agg := range aggregates {
		b.events = append(b.events, agg.GetDomainEvents()...)
		agg.ClearDomainEvents()
	}
}

func (b *eventBuffer) add(events ...shared.DomainEvent) {
	b.events = append(b.events, events...)
}

func (b *eventBuffer) reset() {
	b.events = b.events[:0]
}

// txExecutor runs a unit of work in a transaction, retrying concurrency conflicts
// and publishing the collected events once the transaction has committed.
type txExecutor struct {
	scope     TransactionScope
	retry     RetryConfig
	publisher shared.EventPublisher
	metrics   LedgerMetrics
	logger    *zap.Logger
}

func (e *txExecutor) execute(ctx context.Context, op string, fn func(repos TransactionalRepositories, events *eventBuffer) error) (err error) {
	start := time.Now()
	events := &eventBuffer{}
	attempt := 0

	ctx, span := telemetry.StartSpan(ctx, "ledger", op)
	defer func() {
		span.SetAttributes(
			attribute.Int("ledger.attempts", attempt),
			attribute.String("ledger.outcome", outcomeOf(err)),
		)
		telemetry.EndSpan(span, err)
	}()

	err = backoff.RetryNotify(func() error {
		attempt++
		events.reset()
		err := e.scope.Execute(ctx, func(repos TransactionalRepositories) error {
			return fn(repos, events)
		})
		if err == nil || shared.IsRetryable(err) {
			return err
		}
		return backoff.Permanent(err)
	}, e.retry.backOff(ctx), func(err error, wait time.Duration) {
		e.metrics.IncConflictRetry(op)
		e.logger.Debug("retrying after concurrency conflict",
			zap.String("operation", op),
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	})

	e.metrics.ObserveLedgerOperation(op, outcomeOf(err), time.Since(start))
	if err != nil {
		return err
	}

	e.publish(ctx, events.events)
	return nil
}

// publish hands events to the bus; handler failures are logged by the bus, not propagated
func (e *txExecutor) publish(ctx context.Context, events []shared.DomainEvent) {
	if e.publisher == nil || len(events) == 0 {
		return
	}
	if err := e.publisher.Publish(ctx, events...); err != nil {
		e.logger.Error("failed to publish domain events", zap.Error(err))
	}
}

func outcomeOf(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	if shared.IsRetryable(err) {
		return OutcomeConflict
	}
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return OutcomeRejected
	}
	return OutcomeError
}
