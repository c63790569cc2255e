package persistence

import (
	"strings"

	"github.com/fieldstock/backend/internal/domain/shared"
	"gorm.io/gorm/clause"
)

// sortSpec whitelists the columns a listing may be ordered by.
// Anything else falls back to the default column, newest first.
type sortSpec struct {
	columns  map[string]bool
	fallback string
}

var (
	warehouseStockSort = sortSpec{
		columns:  map[string]bool{"created_at": true, "updated_at": true, "quantity": true, "min_stock": true},
		fallback: "updated_at",
	}
	distributionSort = sortSpec{
		columns:  map[string]bool{"distributed_at": true, "quantity": true},
		fallback: "distributed_at",
	}
	returnRequestSort = sortSpec{
		columns:  map[string]bool{"returned_at": true, "decided_at": true, "quantity": true},
		fallback: "returned_at",
	}
)

// lowStockOrder lists the emptiest rows first, ties broken by id
var lowStockOrder = clause.OrderBy{Columns: []clause.OrderByColumn{
	{Column: clause.Column{Name: "quantity"}},
	{Column: clause.Column{Name: "id"}},
}}

// column returns the requested column when whitelisted
func (s sortSpec) column(requested string) string {
	if name := strings.TrimSpace(requested); s.columns[name] {
		return name
	}
	return s.fallback
}

// orderBy builds the ORDER BY for filter. The id tie-break keeps pages stable
// when many rows share a timestamp or quantity.
func (s sortSpec) orderBy(filter shared.Filter) clause.OrderBy {
	desc := !strings.EqualFold(strings.TrimSpace(filter.OrderDir), "asc")
	return clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: clause.Column{Name: s.column(filter.OrderBy)}, Desc: desc},
		{Column: clause.Column{Name: "id"}, Desc: desc},
	}}
}
