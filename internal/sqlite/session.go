package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rpggio/resiliency/internal/domain/session"
	"github.com/rpggio/resiliency/internal/repository"
)

// SessionRepository implements session.Repository for SQLite
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session
func (r *SessionRepository) Create(ctx context.Context, sess *session.Session) error {
	filters, compare, err := encodeWorkspace(sess)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO sessions (
			id, client_id, filters, compare, active_record,
			details_open, created_at, last_activity
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		sess.ID,
		sess.ClientID,
		filters,
		compare,
		nullString(sess.Details.ActiveRecord),
		sess.Details.Open,
		sess.CreatedAt,
		sess.LastActivity,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// Get retrieves a session by ID within a client's scope
func (r *SessionRepository) Get(ctx context.Context, clientID, id string) (*session.Session, error) {
	query := `
		SELECT
			id, client_id, filters, compare, active_record,
			details_open, created_at, last_activity
		FROM sessions
		WHERE id = ? AND client_id = ?
	`

	var sess session.Session
	var filters, compare string
	var activeRecord sql.NullString
	err := r.db.QueryRowContext(ctx, query, id, clientID).Scan(
		&sess.ID,
		&sess.ClientID,
		&filters,
		&compare,
		&activeRecord,
		&sess.Details.Open,
		&sess.CreatedAt,
		&sess.LastActivity,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if err := json.Unmarshal([]byte(filters), &sess.Filters); err != nil {
		return nil, fmt.Errorf("failed to decode session filters: %w", err)
	}
	sess.Filters = sess.Filters.Normalize()
	if err := json.Unmarshal([]byte(compare), &sess.Compare); err != nil {
		return nil, fmt.Errorf("failed to decode compare selection: %w", err)
	}
	if sess.Compare == nil {
		sess.Compare = session.Compare{}
	}
	if activeRecord.Valid {
		sess.Details.ActiveRecord = activeRecord.String
	}

	return &sess, nil
}

// Update replaces the workspace state of a session
func (r *SessionRepository) Update(ctx context.Context, sess *session.Session) error {
	filters, compare, err := encodeWorkspace(sess)
	if err != nil {
		return err
	}

	query := `
		UPDATE sessions
		SET filters = ?, compare = ?, active_record = ?,
		    details_open = ?, last_activity = ?
		WHERE id = ? AND client_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		filters,
		compare,
		nullString(sess.Details.ActiveRecord),
		sess.Details.Open,
		sess.LastActivity,
		sess.ID,
		sess.ClientID,
	)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a session
func (r *SessionRepository) Delete(ctx context.Context, clientID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ? AND client_id = ?`, id, clientID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func encodeWorkspace(sess *session.Session) (string, string, error) {
	filters, err := json.Marshal(sess.Filters.Clone())
	if err != nil {
		return "", "", fmt.Errorf("failed to encode session filters: %w", err)
	}
	compare := sess.Compare
	if compare == nil {
		compare = session.Compare{}
	}
	pins, err := json.Marshal(compare)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode compare selection: %w", err)
	}
	return string(filters), string(pins), nil
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}
