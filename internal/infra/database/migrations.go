package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Dialect carries the statements that differ between drivers.
type Dialect struct {
	Name        string
	createTable string
	get         string
	put         string
	del         string
	listOwners  string
}

var Postgres = Dialect{
	Name: "postgres",
	createTable: `CREATE TABLE IF NOT EXISTS kv_slots (
		owner_id   BIGINT      NOT NULL,
		slot_key   TEXT        NOT NULL,
		value      TEXT        NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (owner_id, slot_key)
	)`,
	get: `SELECT value FROM kv_slots WHERE owner_id = $1 AND slot_key = $2`,
	put: `INSERT INTO kv_slots (owner_id, slot_key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (owner_id, slot_key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
	del:        `DELETE FROM kv_slots WHERE owner_id = $1 AND slot_key = $2`,
	listOwners: `SELECT owner_id FROM kv_slots WHERE slot_key = $1 ORDER BY owner_id`,
}

var SQLite = Dialect{
	Name: "sqlite",
	createTable: `CREATE TABLE IF NOT EXISTS kv_slots (
		owner_id   INTEGER NOT NULL,
		slot_key   TEXT    NOT NULL,
		value      TEXT    NOT NULL,
		updated_at TEXT    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (owner_id, slot_key)
	)`,
	get: `SELECT value FROM kv_slots WHERE owner_id = ? AND slot_key = ?`,
	put: `INSERT INTO kv_slots (owner_id, slot_key, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (owner_id, slot_key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
	del:        `DELETE FROM kv_slots WHERE owner_id = ? AND slot_key = ?`,
	listOwners: `SELECT owner_id FROM kv_slots WHERE slot_key = ? ORDER BY owner_id`,
}

// Migrate creates the key-value table if it does not exist.
func Migrate(ctx context.Context, db *sql.DB, d Dialect) error {
	if _, err := db.ExecContext(ctx, d.createTable); err != nil {
		return fmt.Errorf("failed to create kv_slots table (%s): %w", d.Name, err)
	}
	return nil
}
