package shared

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity carries the identity and timestamps every persisted row shares
type BaseEntity struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// NewBaseEntity returns an entity with a fresh ID stamped now
func NewBaseEntity() BaseEntity {
	now := time.Now().UTC()
	return BaseEntity{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
}

// AggregateRoot is a versioned entity that records events while it mutates.
// The ledger drains them after a successful commit.
type AggregateRoot interface {
	GetDomainEvents() []DomainEvent
	ClearDomainEvents()
}

// BaseAggregateRoot adds an optimistic-lock version and a pending event list.
// Version is 1 for a new row and grows by one per saved mutation.
type BaseAggregateRoot struct {
	BaseEntity
	Version int `gorm:"not null;default:1" json:"version"`

	pending []DomainEvent
}

// NewBaseAggregateRoot returns a version 1 aggregate with no pending events
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{BaseEntity: NewBaseEntity(), Version: 1}
}

// IncrementVersion marks one mutation
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
	a.UpdatedAt = time.Now().UTC()
}

// AddDomainEvent queues an event for publication after commit
func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.pending = append(a.pending, event)
}

func (a *BaseAggregateRoot) GetDomainEvents() []DomainEvent {
	return a.pending
}

func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.pending = nil
}
