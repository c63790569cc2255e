package telemetry

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// afterFunc receives the statement and the SQL verb it executed
type afterFunc func(db *gorm.DB, operation string, elapsed time.Duration)

// registerTimedCallbacks hooks before/after every gorm processor and reports
// the elapsed time of each statement to after. name prefixes the callback names.
func registerTimedCallbacks(db *gorm.DB, name string, after afterFunc) error {
	startKey := name + ":start"
	before := func(tx *gorm.DB) {
		tx.InstanceSet(startKey, time.Now())
	}
	finish := func(operation string) func(*gorm.DB) {
		return func(tx *gorm.DB) {
			var elapsed time.Duration
			if v, ok := tx.InstanceGet(startKey); ok {
				if start, ok := v.(time.Time); ok {
					elapsed = time.Since(start)
				}
			}
			op := operation
			if op == "" {
				op = detectOperation(tx.Statement.SQL.String())
			}
			after(tx, op, elapsed)
		}
	}

	cb := db.Callback()
	steps := []error{
		cb.Create().Before("gorm:create").Register(name+":before_create", before),
		cb.Create().After("gorm:create").Register(name+":after_create", finish("INSERT")),
		cb.Query().Before("gorm:query").Register(name+":before_query", before),
		cb.Query().After("gorm:query").Register(name+":after_query", finish("SELECT")),
		cb.Update().Before("gorm:update").Register(name+":before_update", before),
		cb.Update().After("gorm:update").Register(name+":after_update", finish("UPDATE")),
		cb.Delete().Before("gorm:delete").Register(name+":before_delete", before),
		cb.Delete().After("gorm:delete").Register(name+":after_delete", finish("DELETE")),
		cb.Row().Before("gorm:row").Register(name+":before_row", before),
		cb.Row().After("gorm:row").Register(name+":after_row", finish("")),
		cb.Raw().Before("gorm:raw").Register(name+":before_raw", before),
		cb.Raw().After("gorm:raw").Register(name+":after_raw", finish("")),
	}
	for _, err := range steps {
		if err != nil {
			return err
		}
	}
	return nil
}

func detectOperation(sql string) string {
	verb, _, _ := strings.Cut(strings.TrimSpace(sql), " ")
	switch verb = strings.ToUpper(verb); verb {
	case "SELECT", "INSERT", "UPDATE", "DELETE":
		return verb
	default:
		return "OTHER"
	}
}
