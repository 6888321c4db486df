package database

import (
	"context"
	"database/sql"
)

// Migrate creates the lead schema. It is idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	// Status is stored as free text so a bad row surfaces as an
	// UnknownStatusError on load instead of a constraint failure.
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS leads (
			id TEXT PRIMARY KEY,
			status TEXT NOT NULL,
			name TEXT NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			source TEXT NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT '',
			priority TEXT NOT NULL DEFAULT 'medium',
			estimate_cents INTEGER NOT NULL DEFAULT 0,
			position INTEGER NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_leads_status
		ON leads(status, position)
	`)
	return err
}
