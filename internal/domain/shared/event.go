package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DomainEvent is a fact recorded by an aggregate during a committed mutation
type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	OccurredAt() time.Time
	AggregateID() uuid.UUID
	AggregateType() string
}

// EventHeader holds the metadata common to every DomainEvent.
// Concrete events embed it and add their payload fields.
type EventHeader struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	AggID     uuid.UUID `json:"aggregate_id"`
	AggType   string    `json:"aggregate_type"`
}

// NewEventHeader stamps a new event of eventType raised by the given aggregate
func NewEventHeader(eventType, aggType string, aggID uuid.UUID) EventHeader {
	return EventHeader{
		ID:        uuid.New(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		AggID:     aggID,
		AggType:   aggType,
	}
}

func (h *EventHeader) EventID() uuid.UUID { return h.ID }
func (h *EventHeader) EventType() string { return h.Type }
func (h *EventHeader) OccurredAt() time.Time { return h.Timestamp }
func (h *EventHeader) AggregateID() uuid.UUID { return h.AggID }
func (h *EventHeader) AggregateType() string { return h.AggType }

// EventHandler reacts to published events.
// EventTypes lists the types it wants; an empty list means all of them.
type EventHandler interface {
	Handle(ctx context.Context, event DomainEvent) error
	EventTypes() []string
}

// EventPublisher hands committed events to subscribers
type EventPublisher interface {
	Publish(ctx context.Context, events ...DomainEvent) error
}

// EventBus is an EventPublisher with a subscription lifecycle
type EventBus interface {
	EventPublisher
	Subscribe(handler EventHandler, eventTypes ...string)
	Unsubscribe(handler EventHandler)
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}
