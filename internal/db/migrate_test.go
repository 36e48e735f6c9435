package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"snapshot_meta", "product_managers", "value_streams", "products", "milestones", "risks", "stakeholders"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_HorizonCheckConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO value_streams (id, name, position) VALUES ('vs1', 'Stream', 0)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO products (id, value_stream_id, name, horizon, position) VALUES ('p1', 'vs1', 'P', 'Investing', 0)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO products (id, value_stream_id, name, horizon, position) VALUES ('p2', 'vs1', 'P', 'Sunset', 1)`)
	assert.Error(t, err, "unknown horizon should be rejected")
}

func TestMigrate_EnumCheckConstraints(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO value_streams (id, name, position) VALUES ('vs1', 'Stream', 0)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO products (id, value_stream_id, name, horizon, position) VALUES ('p1', 'vs1', 'P', 'Idea', 0)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO milestones (product_id, id, title, status, position) VALUES ('p1', 'm1', 'M', 'Done', 0)`)
	assert.Error(t, err)
	_, err = db.Exec(`INSERT INTO risks (product_id, id, title, severity, probability, position) VALUES ('p1', 'r1', 'R', 'Severe', 'Low', 0)`)
	assert.Error(t, err)
	_, err = db.Exec(`INSERT INTO stakeholders (product_id, id, name, raci_role, position) VALUES ('p1', 's1', 'S', 'Owner', 0)`)
	assert.Error(t, err)
	_, err = db.Exec(`INSERT INTO stakeholders (product_id, id, name, raci_role, position) VALUES ('p1', 's1', 'S', 'Informed', 0)`)
	assert.NoError(t, err)
}

func TestMigrate_NegativeAmountsRejected(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO value_streams (id, name, total_benefit, position) VALUES ('vs1', 'Stream', -1, 0)`)
	assert.Error(t, err)
}

func TestMigrate_SingleMetaRow(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO snapshot_meta (id, source, imported_at) VALUES (1, 'a', 'now')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO snapshot_meta (id, source, imported_at) VALUES (2, 'b', 'now')`)
	assert.Error(t, err)
}

func TestOpenDB_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "horizon.db")
	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}
