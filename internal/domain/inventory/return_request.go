package inventory

import (
	"fmt"
	"time"

	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ReturnReason explains why a rider is sending goods back
type ReturnReason string

const (
	ReturnReasonReject    ReturnReason = "reject"
	ReturnReasonDefective ReturnReason = "defective"
	ReturnReasonUnsold    ReturnReason = "unsold"
)

var returnReasonLabels = map[ReturnReason]string{
	ReturnReasonReject:    "Reject (damaged product)",
	ReturnReasonDefective: "Defective (expired product)",
	ReturnReasonUnsold:    "Unsold product",
}

// ReturnReasons lists the reasons in display order
func ReturnReasons() []ReturnReason {
	return []ReturnReason{ReturnReasonReject, ReturnReasonDefective, ReturnReasonUnsold}
}

// IsValid checks if the reason is one of the known reasons
func (r ReturnReason) IsValid() bool {
	_, ok := returnReasonLabels[r]
	return ok
}

// Label returns a human readable label
func (r ReturnReason) Label() string {
	return returnReasonLabels[r]
}

// ReturnStatus is the state of a return request
type ReturnStatus string

const (
	ReturnStatusPending  ReturnStatus = "pending"
	ReturnStatusApproved ReturnStatus = "approved"
	ReturnStatusRejected ReturnStatus = "rejected"
)

// IsValid checks if the status is valid
func (s ReturnStatus) IsValid() bool {
	switch s {
	case ReturnStatusPending, ReturnStatusApproved, ReturnStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible
func (s ReturnStatus) IsTerminal() bool {
	return s == ReturnStatusApproved || s == ReturnStatusRejected
}

// ReturnRequest is a rider's request to move goods back to the warehouse.
// It starts pending and transitions exactly once, to approved or rejected.
type ReturnRequest struct {
	shared.BaseAggregateRoot
	RiderID    uuid.UUID    `gorm:"type:uuid;not null;index" json:"rider_id"`
	ProductID  uuid.UUID    `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity   int64        `gorm:"not null" json:"quantity"`
	Reason     ReturnReason `gorm:"type:varchar(20);not null" json:"reason"`
	Status     ReturnStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	ReturnedAt time.Time    `gorm:"not null;index" json:"returned_at"`
	DecidedAt  *time.Time   `json:"decided_at,omitempty"`
	DecidedBy  *uuid.UUID   `gorm:"type:uuid" json:"decided_by,omitempty"`
}

// TableName returns the table name for GORM
func (ReturnRequest) TableName() string {
	return "return_requests"
}

// NewReturnRequest creates a pending return request.
// onHand is the rider's live inventory for the product.
func NewReturnRequest(riderID, productID uuid.UUID, quantity int64, reason ReturnReason, onHand int64) (*ReturnRequest, error) {
	if err := ValidateReturnInput(riderID, productID, quantity, reason); err != nil {
		return nil, err
	}
	if quantity > onHand {
		return nil, shared.NewInsufficientStockError(
			fmt.Sprintf("Return quantity %d exceeds rider inventory %d", quantity, onHand))
	}

	req := &ReturnRequest{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		RiderID:           riderID,
		ProductID:         productID,
		Quantity:          quantity,
		Reason:            reason,
		Status:            ReturnStatusPending,
	}
	req.ReturnedAt = req.CreatedAt

	req.AddDomainEvent(NewReturnRequestedEvent(req))
	return req, nil
}

// ValidateReturnInput checks return input that does not depend on stock state
func ValidateReturnInput(riderID, productID uuid.UUID, quantity int64, reason ReturnReason) error {
	if riderID == uuid.Nil {
		return shared.NewValidationError("Rider ID cannot be empty")
	}
	if productID == uuid.Nil {
		return shared.NewValidationError("Product ID cannot be empty")
	}
	if quantity <= 0 {
		return shared.NewValidationError("Quantity must be positive")
	}
	if !reason.IsValid() {
		return shared.NewValidationError(fmt.Sprintf("Invalid return reason: %q", reason))
	}
	return nil
}

// Approve moves the request to approved
func (r *ReturnRequest) Approve(adminID uuid.UUID) error {
	if err := r.decide(ReturnStatusApproved, adminID); err != nil {
		return err
	}
	r.AddDomainEvent(NewReturnApprovedEvent(r))
	return nil
}

// Reject moves the request to rejected. It has no stock effect.
func (r *ReturnRequest) Reject(adminID uuid.UUID) error {
	if err := r.decide(ReturnStatusRejected, adminID); err != nil {
		return err
	}
	r.AddDomainEvent(NewReturnRejectedEvent(r))
	return nil
}

// IsPending returns true if the request awaits a decision
func (r *ReturnRequest) IsPending() bool {
	return r.Status == ReturnStatusPending
}

func (r *ReturnRequest) decide(to ReturnStatus, adminID uuid.UUID) error {
	if !r.IsPending() {
		return shared.NewInvalidStateError(
			fmt.Sprintf("Return request is %s, only pending requests can be %s", r.Status, to))
	}

	now := time.Now().UTC()
	r.Status = to
	r.DecidedAt = &now
	r.DecidedBy = &adminID
	r.IncrementVersion()
	return nil
}
