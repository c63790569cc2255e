package inventory

// IsLowStock reports whether quantity is at or below the minimum threshold
func IsLowStock(quantity, minStock int64) bool {
	return quantity <= minStock
}

// FilterLowStock returns the rows that are at or below their threshold
func FilterLowStock(rows []WarehouseStock) []WarehouseStock {
	low := make([]WarehouseStock, 0, len(rows))
	for _, row := range rows {
		if row.IsLowStock() {
			low = append(low, row)
		}
	}
	return low
}
