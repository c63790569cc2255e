package inventory

import (
	"github.com/fieldstock/backend/internal/domain/shared"
)

// MoveToRider moves quantity from the warehouse row to the rider row of the same product.
// Neither row is modified unless the whole move is valid.
func MoveToRider(stock *WarehouseStock, inv *RiderInventory, quantity int64) error {
	if err := checkPair(stock, inv, quantity); err != nil {
		return err
	}
	if err := checkCapacity(inv.Quantity, quantity); err != nil {
		return err
	}
	if err := stock.Withdraw(quantity); err != nil {
		return err
	}
	return inv.Credit(quantity)
}

// MoveToWarehouse moves quantity from the rider row back to the warehouse row
func MoveToWarehouse(inv *RiderInventory, stock *WarehouseStock, quantity int64) error {
	if err := checkPair(stock, inv, quantity); err != nil {
		return err
	}
	if err := checkCapacity(stock.Quantity, quantity); err != nil {
		return err
	}
	if err := inv.Debit(quantity); err != nil {
		return err
	}
	return stock.Receive(quantity)
}

func checkPair(stock *WarehouseStock, inv *RiderInventory, quantity int64) error {
	if quantity <= 0 {
		return shared.NewValidationError("Quantity must be positive")
	}
	if stock == nil || inv == nil {
		return shared.NewValidationError("Both warehouse and rider rows are required")
	}
	if stock.ProductID != inv.ProductID {
		return shared.NewValidationError("Warehouse and rider rows belong to different products")
	}
	return nil
}
