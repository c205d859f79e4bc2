package infra

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shopledger/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateIsIdempotent(t *testing.T) {
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	// A second and third run against the migrated schema must be no-ops.
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestBackfillSplitsLegacyRows(t *testing.T) {
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	// Simulate rows written before the warehouse/store split existed: total
	// quantity set, both location quantities zero.
	require.NoError(t, db.Exec(`
		INSERT INTO products (id, name, company, cost_price, quantity, warehouse_quantity, store_quantity, created_at)
		VALUES ('legacy-odd',  'Oil Filter', 'Toyota', 100, 5, 0, 0, datetime('now')),
		       ('legacy-even', 'Air Filter', 'Honda',  100, 4, 0, 0, datetime('now')),
		       ('already-split', 'Spark Plug', 'NGK',  100, 3, 1, 2, datetime('now'))`).Error)

	require.NoError(t, Migrate(db))

	var p model.Product
	require.NoError(t, db.First(&p, "id = ?", "legacy-odd").Error)
	assert.Equal(t, 2, p.WarehouseQuantity)
	assert.Equal(t, 3, p.StoreQuantity)
	assert.Equal(t, 5, p.Quantity)

	p = model.Product{}
	require.NoError(t, db.First(&p, "id = ?", "legacy-even").Error)
	assert.Equal(t, 2, p.WarehouseQuantity)
	assert.Equal(t, 2, p.StoreQuantity)

	// Rows with an existing split are never touched.
	p = model.Product{}
	require.NoError(t, db.First(&p, "id = ?", "already-split").Error)
	assert.Equal(t, 1, p.WarehouseQuantity)
	assert.Equal(t, 2, p.StoreQuantity)

	// Running the backfill again changes nothing.
	require.NoError(t, Migrate(db))
	p = model.Product{}
	require.NoError(t, db.First(&p, "id = ?", "legacy-odd").Error)
	assert.Equal(t, 2, p.WarehouseQuantity)
	assert.Equal(t, 3, p.StoreQuantity)
}

func TestResolveDataDirCreatesPerUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	dir := ResolveDataDir()
	require.NotEmpty(t, dir)
	assert.True(t, strings.HasPrefix(dir, home), "dir %q not under temp home %q", dir, home)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
