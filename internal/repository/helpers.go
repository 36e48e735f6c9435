package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/horizon/internal/db"
)

// parseTimestamp parses an RFC3339 column. A malformed value yields the zero
// time rather than failing the whole load.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// formatTimestamp renders t for storage, defaulting to now when t is zero.
func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(time.RFC3339)
}

// clearTables deletes every row from tables, children first.
func clearTables(ctx context.Context, tx db.DBTX, tables ...string) error {
	for _, table := range tables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}
