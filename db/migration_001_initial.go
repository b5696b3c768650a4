package db

import (
	"database/sql"
)

func init() {
	RegisterMigration(Migration{
		Version:     1,
		Description: "Initial schema - sessions and settings",
		Up:          migration001_initial,
	})
}

func migration001_initial(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Sessions table: one row per toggle-list session.
	// state holds the serialized entry array (same format the node contract
	// passes through); source optionally binds the session to a watched
	// item-source file.
	_, err = tx.Exec(`
		CREATE TABLE sessions (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			source TEXT NOT NULL DEFAULT '',
			state TEXT NOT NULL DEFAULT '[]',
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE INDEX idx_sessions_source ON sessions(source);
		CREATE INDEX idx_sessions_updated_at ON sessions(updated_at DESC);
	`)
	if err != nil {
		return err
	}

	// Settings table
	_, err = tx.Exec(`
		CREATE TABLE settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);
	`)
	if err != nil {
		return err
	}

	return tx.Commit()
}
