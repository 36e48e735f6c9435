package db_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/alexanderramin/horizon/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func streamName(t *testing.T, database *sql.DB, id string) (string, bool) {
	t.Helper()
	var name string
	err := database.QueryRow(`SELECT name FROM value_streams WHERE id = ?`, id).Scan(&name)
	if err == sql.ErrNoRows {
		return "", false
	}
	require.NoError(t, err)
	return name, true
}

func insertStream(ctx context.Context, tx db.DBTX, id, name string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO value_streams (id, name, position) VALUES (?, ?, 0)`, id, name)
	return err
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openTestStore(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertStream(ctx, tx, "vs1", "Efficiency")
	})
	require.NoError(t, err)

	name, found := streamName(t, database, "vs1")
	assert.True(t, found, "row should exist after commit")
	assert.Equal(t, "Efficiency", name)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openTestStore(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertStream(ctx, tx, "vs2", "Customer"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	_, found := streamName(t, database, "vs2")
	assert.False(t, found, "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openTestStore(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertStream(ctx, tx, "vs3", "Innovation")
			panic("boom")
		})
	})

	_, found := streamName(t, database, "vs3")
	assert.False(t, found, "row should not exist after panic rollback")
}

func TestWithinTx_ConstraintErrorRollsBackEarlierWrites(t *testing.T) {
	database, uow := openTestStore(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertStream(ctx, tx, "vs4", "First"); err != nil {
			return err
		}
		return insertStream(ctx, tx, "vs4", "Duplicate")
	})
	require.Error(t, err)

	_, found := streamName(t, database, "vs4")
	assert.False(t, found)
}
