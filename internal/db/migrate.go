package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the snapshot store schema. Every statement is idempotent,
// so Migrate runs on each open.
func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting migration transaction: %w", err)
	}
	for i, stmt := range migrations {
		if _, err := tx.Exec(stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migrations: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS snapshot_meta (
		id          INTEGER PRIMARY KEY CHECK(id = 1),
		source      TEXT NOT NULL,
		imported_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS product_managers (
		id       TEXT PRIMARY KEY,
		name     TEXT NOT NULL,
		email    TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS value_streams (
		id                 TEXT PRIMARY KEY,
		name               TEXT NOT NULL,
		description        TEXT NOT NULL DEFAULT '',
		product_manager_id TEXT NOT NULL DEFAULT '',
		total_benefit      REAL NOT NULL DEFAULT 0 CHECK(total_benefit >= 0),
		total_cloud_costs  REAL NOT NULL DEFAULT 0 CHECK(total_cloud_costs >= 0),
		position           INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS products (
		id                TEXT PRIMARY KEY,
		value_stream_id   TEXT NOT NULL REFERENCES value_streams(id) ON DELETE CASCADE,
		value_stream_ref  TEXT NOT NULL DEFAULT '',
		name              TEXT NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		horizon           TEXT NOT NULL
		                  CHECK(horizon IN ('Idea','Evaluation','Emerging','Investing','Extracting','Retiring')),
		estimated_benefit REAL NOT NULL DEFAULT 0 CHECK(estimated_benefit >= 0),
		cloud_costs       REAL NOT NULL DEFAULT 0 CHECK(cloud_costs >= 0),
		position          INTEGER NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_products_value_stream ON products(value_stream_id, position)`,

	`CREATE TABLE IF NOT EXISTS milestones (
		product_id  TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		id          TEXT NOT NULL,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		due_date    TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL
		            CHECK(status IN ('Not Started','In Progress','Completed','At Risk')),
		owner       TEXT NOT NULL DEFAULT '',
		position    INTEGER NOT NULL,
		PRIMARY KEY (product_id, id)
	)`,

	`CREATE TABLE IF NOT EXISTS risks (
		product_id  TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		id          TEXT NOT NULL,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		severity    TEXT NOT NULL
		            CHECK(severity IN ('Low','Medium','High','Critical')),
		probability TEXT NOT NULL
		            CHECK(probability IN ('Low','Medium','High')),
		mitigation  TEXT NOT NULL DEFAULT '',
		owner       TEXT NOT NULL DEFAULT '',
		position    INTEGER NOT NULL,
		PRIMARY KEY (product_id, id)
	)`,

	`CREATE TABLE IF NOT EXISTS stakeholders (
		product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		id         TEXT NOT NULL,
		name       TEXT NOT NULL,
		role       TEXT NOT NULL DEFAULT '',
		email      TEXT NOT NULL DEFAULT '',
		raci_role  TEXT NOT NULL
		           CHECK(raci_role IN ('Responsible','Accountable','Consulted','Informed')),
		position   INTEGER NOT NULL,
		PRIMARY KEY (product_id, id)
	)`,
}
