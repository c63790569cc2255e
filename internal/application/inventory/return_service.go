package inventory

import (
	"context"
	"errors"

	"github.com/fieldstock/backend/internal/domain/identity"
	"github.com/fieldstock/backend/internal/domain/inventory"
	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReturnService runs the return workflow: riders request, admins approve or reject
type ReturnService struct {
	ledger *LedgerService
	access identity.AccessControl
	logger *zap.Logger
}

// NewReturnService creates a new ReturnService
func NewReturnService(ledger *LedgerService, access identity.AccessControl, logger *zap.Logger) *ReturnService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReturnService{
		ledger: ledger,
		access: access,
		logger: logger,
	}
}

// RequestReturn files a pending return for the calling rider.
// The quantity is checked against the rider's live inventory, which is left untouched.
func (s *ReturnService) RequestReturn(ctx context.Context, req RequestReturnRequest) (*ReturnRequestResponse, error) {
	if _, err := identity.RequireRider(ctx, s.access, req.RiderID); err != nil {
		return nil, err
	}
	reason := inventory.ReturnReason(req.Reason)
	if err := inventory.ValidateReturnInput(req.RiderID, req.ProductID, req.Quantity, reason); err != nil {
		return nil, err
	}

	var created *inventory.ReturnRequest
	err := s.ledger.runner.execute(ctx, OpRequestReturn, func(repos TransactionalRepositories, events *eventBuffer) error {
		var onHand int64
		inv, err := repos.RiderInventoryRepo().FindByRiderAndProductForUpdate(ctx, req.RiderID, req.ProductID)
		switch {
		case err == nil:
			onHand = inv.Quantity
		case !errors.Is(err, shared.ErrNotFound):
			return err
		}

		r, err := inventory.NewReturnRequest(req.RiderID, req.ProductID, req.Quantity, reason, onHand)
		if err != nil {
			return err
		}
		if err := repos.ReturnRepo().Create(ctx, r); err != nil {
			return err
		}
		events.collect(r)
		created = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("return requested",
		zap.String("return_id", created.ID.String()),
		zap.String("rider_id", created.RiderID.String()),
		zap.String("product_id", created.ProductID.String()),
		zap.Int64("quantity", created.Quantity),
		zap.String("reason", string(created.Reason)),
	)
	resp := s.toResponse(ctx, created)
	return &resp, nil
}

// ApproveReturn approves a pending return and moves its quantity from the rider to the warehouse.
// The status change and the transfer commit together. A second approval fails with INVALID_STATE.
func (s *ReturnService) ApproveReturn(ctx context.Context, returnID uuid.UUID) (*ReturnRequestResponse, error) {
	admin, err := identity.RequireAdmin(ctx, s.access)
	if err != nil {
		return nil, err
	}

	var approved *inventory.ReturnRequest
	err = s.ledger.runner.execute(ctx, OpApproveReturn, func(repos TransactionalRepositories, events *eventBuffer) error {
		r, err := s.lockPending(ctx, repos, returnID)
		if err != nil {
			return err
		}
		if err := r.Approve(admin.ID); err != nil {
			return err
		}
		if err := repos.ReturnRepo().SaveDecision(ctx, r); err != nil {
			return err
		}

		res, err := s.ledger.transferToWarehouse(ctx, repos, r.ProductID, r.RiderID, r.Quantity)
		if err != nil {
			return err
		}

		events.collect(r, res.Warehouse)
		approved = r
		return nil
	})
	if err != nil {
		s.logger.Debug("return approval failed",
			zap.String("return_id", returnID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("return approved",
		zap.String("return_id", approved.ID.String()),
		zap.String("rider_id", approved.RiderID.String()),
		zap.String("product_id", approved.ProductID.String()),
		zap.Int64("quantity", approved.Quantity),
		zap.String("approved_by", admin.ID.String()),
	)
	resp := s.toResponse(ctx, approved)
	return &resp, nil
}

// RejectReturn closes a pending return without any stock movement
func (s *ReturnService) RejectReturn(ctx context.Context, returnID uuid.UUID) (*ReturnRequestResponse, error) {
	admin, err := identity.RequireAdmin(ctx, s.access)
	if err != nil {
		return nil, err
	}

	var rejected *inventory.ReturnRequest
	err = s.ledger.runner.execute(ctx, OpRejectReturn, func(repos TransactionalRepositories, events *eventBuffer) error {
		r, err := s.lockPending(ctx, repos, returnID)
		if err != nil {
			return err
		}
		if err := r.Reject(admin.ID); err != nil {
			return err
		}
		if err := repos.ReturnRepo().SaveDecision(ctx, r); err != nil {
			return err
		}
		events.collect(r)
		rejected = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("return rejected",
		zap.String("return_id", rejected.ID.String()),
		zap.String("rejected_by", admin.ID.String()),
	)
	resp := s.toResponse(ctx, rejected)
	return &resp, nil
}

// lockPending loads and locks a return request
func (s *ReturnService) lockPending(ctx context.Context, repos TransactionalRepositories, returnID uuid.UUID) (*inventory.ReturnRequest, error) {
	if returnID == uuid.Nil {
		return nil, shared.NewValidationError("Return ID cannot be empty")
	}
	r, err := repos.ReturnRepo().FindByIDForUpdate(ctx, returnID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Return request not found")
		}
		return nil, err
	}
	return r, nil
}

// toResponse attaches product details when the catalog lookup succeeds
func (s *ReturnService) toResponse(ctx context.Context, r *inventory.ReturnRequest) ReturnRequestResponse {
	product, err := s.ledger.products.FindByID(ctx, r.ProductID)
	if err != nil {
		return ToReturnRequestResponse(r, nil)
	}
	return ToReturnRequestResponse(r, product)
}
