package infra

import (
	"fmt"

	"shopledger/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the SQLite storage file via GORM, applies the runtime
// pragmas, and brings the schema up to date. Safe to call on every process
// start, including against a pre-split database: table creation and column
// additions are introspective, and the location-split backfill is guarded so
// a second run is a no-op. Any failure here is fatal to startup.
func NewDatabase(dbFile string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// WAL keeps dashboard reads from blocking user-action writes. Still a
	// single-writer store — concurrent writers are not supported.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA cache_size=10000",
		"PRAGMA foreign_keys=ON",
	}
	for _, p := range pragmas {
		if err := db.Exec(p).Error; err != nil {
			return nil, fmt.Errorf("pragma %q: %w", p, err)
		}
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Migrate creates missing tables and columns, then applies the idempotent SQL
// patches AutoMigrate cannot express. Exported so integration tests can run
// the exact startup migration against a throwaway database.
func Migrate(db *gorm.DB) error {
	// AutoMigrate is additive: it creates absent tables and adds missing
	// columns (e.g. sales.due_amount, the warehouse/store split on products)
	// without touching existing data.
	if err := db.AutoMigrate(
		&model.Product{},
		&model.Customer{},
		&model.Sale{},
		&model.DuesReceived{},
		&model.Expense{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}

	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent statements that AutoMigrate cannot handle:
// the one-time backfill of the warehouse/store split and the secondary index
// set. Each statement is guarded (WHERE / IF NOT EXISTS) so re-running on an
// already-patched database is safe.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// Pre-split rows have both location quantities at zero while total
		// quantity is positive. Split them half and half: floor to warehouse,
		// remainder to store. Rows touched once never match again (store gets
		// at least 1 when quantity > 0).
		{"backfill warehouse/store split", `
			UPDATE products
			SET warehouse_quantity = quantity / 2,
			    store_quantity     = quantity / 2 + (quantity % 2)
			WHERE warehouse_quantity = 0
			  AND store_quantity = 0
			  AND quantity > 0`},

		{"index sales(customer_name)",
			`CREATE INDEX IF NOT EXISTS idx_sales_customer ON sales(customer_name)`},
		{"index sales(date)",
			`CREATE INDEX IF NOT EXISTS idx_sales_date_only ON sales(date)`},
		{"index dues_received(customer_name)",
			`CREATE INDEX IF NOT EXISTS idx_dues_customer ON dues_received(customer_name)`},
		{"index expenses(category)",
			`CREATE INDEX IF NOT EXISTS idx_expenses_category_only ON expenses(category)`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
