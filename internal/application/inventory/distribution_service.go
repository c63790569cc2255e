package inventory

import (
	"context"

	"github.com/fieldstock/backend/internal/domain/identity"
	"github.com/fieldstock/backend/internal/domain/inventory"
	"go.uber.org/zap"
)

// DistributionService hands warehouse stock out to riders
type DistributionService struct {
	ledger *LedgerService
	access identity.AccessControl
	logger *zap.Logger
}

// NewDistributionService creates a new DistributionService
func NewDistributionService(ledger *LedgerService, access identity.AccessControl, logger *zap.Logger) *DistributionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DistributionService{
		ledger: ledger,
		access: access,
		logger: logger,
	}
}

// Distribute transfers quantity from the warehouse to a rider and records the distribution.
// The transfer and the record commit together; a failed transfer leaves no record.
func (s *DistributionService) Distribute(ctx context.Context, req DistributeRequest) (*DistributionResponse, error) {
	admin, err := identity.RequireAdmin(ctx, s.access)
	if err != nil {
		return nil, err
	}
	if err := inventory.ValidateDistribution(req.ProductID, req.RiderID, req.Quantity, req.Notes); err != nil {
		return nil, err
	}
	product, err := s.ledger.findProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	var record *inventory.Distribution
	err = s.ledger.runner.execute(ctx, OpDistribute, func(repos TransactionalRepositories, events *eventBuffer) error {
		res, err := s.ledger.transferToRider(ctx, repos, req.ProductID, req.RiderID, req.Quantity)
		if err != nil {
			return err
		}

		d, err := inventory.NewDistribution(req.ProductID, req.RiderID, req.Quantity, req.Notes, admin.ID)
		if err != nil {
			return err
		}
		if err := repos.DistributionRepo().Create(ctx, d); err != nil {
			return err
		}

		events.collect(res.Warehouse)
		events.add(d.Event())
		record = d
		return nil
	})
	if err != nil {
		s.logger.Debug("distribution rejected",
			zap.String("product_id", req.ProductID.String()),
			zap.String("rider_id", req.RiderID.String()),
			zap.Int64("quantity", req.Quantity),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("stock distributed",
		zap.String("distribution_id", record.ID.String()),
		zap.String("product_id", record.ProductID.String()),
		zap.String("rider_id", record.RiderID.String()),
		zap.Int64("quantity", record.Quantity),
	)
	resp := ToDistributionResponse(record, product)
	return &resp, nil
}
