package db

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when no session matches the given id
var ErrSessionNotFound = errors.New("session not found")

// CreateSession inserts a new session and returns the stored record
func CreateSession(name, source, state string) (*SessionRecord, error) {
	rec := &SessionRecord{
		ID:        uuid.New().String(),
		Name:      name,
		Source:    source,
		State:     state,
		CreatedAt: NowMs(),
		UpdatedAt: NowMs(),
	}

	_, err := GetDB().Exec(`
		INSERT INTO sessions (id, name, source, state, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Name, rec.Source, rec.State, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// GetSession retrieves a session by id
func GetSession(id string) (*SessionRecord, error) {
	var rec SessionRecord
	err := GetDB().QueryRow(`
		SELECT id, name, source, state, created_at, updated_at
		FROM sessions WHERE id = ?
	`, id).Scan(&rec.ID, &rec.Name, &rec.Source, &rec.State, &rec.CreatedAt, &rec.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListSessions retrieves all sessions, most recently updated first
func ListSessions() ([]SessionRecord, error) {
	rows, err := GetDB().Query(`
		SELECT id, name, source, state, created_at, updated_at
		FROM sessions ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSessions(rows)
}

// ListSessionsBySource retrieves all sessions bound to an item source
func ListSessionsBySource(source string) ([]SessionRecord, error) {
	rows, err := GetDB().Query(`
		SELECT id, name, source, state, created_at, updated_at
		FROM sessions WHERE source = ? ORDER BY updated_at DESC
	`, source)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSessions(rows)
}

// UpdateSessionState replaces a session's serialized state
func UpdateSessionState(id, state string) error {
	res, err := GetDB().Exec(`
		UPDATE sessions SET state = ?, updated_at = ? WHERE id = ?
	`, state, NowMs(), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// UpdateSessionMeta updates a session's name and source binding
func UpdateSessionMeta(id, name, source string) error {
	res, err := GetDB().Exec(`
		UPDATE sessions SET name = ?, source = ?, updated_at = ? WHERE id = ?
	`, name, source, NowMs(), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// DeleteSession removes a session
func DeleteSession(id string) error {
	res, err := GetDB().Exec("DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// CountSessions returns the number of sessions
func CountSessions() (int64, error) {
	var count int64
	err := GetDB().QueryRow("SELECT COUNT(*) FROM sessions").Scan(&count)
	return count, err
}

func scanSessions(rows *sql.Rows) ([]SessionRecord, error) {
	var sessions []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Source, &rec.State, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, rec)
	}
	return sessions, rows.Err()
}
