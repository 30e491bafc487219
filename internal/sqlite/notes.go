package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rpggio/resiliency/internal/domain/notes"
	"github.com/rpggio/resiliency/internal/repository"
)

// NoteRepository implements notes.Repository over the kv_store table
type NoteRepository struct {
	db *DB
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Put writes a value, replacing any previous value for the same key
func (r *NoteRepository) Put(ctx context.Context, entry *notes.Entry) error {
	if entry.ClientID == "" || entry.Key == "" {
		return repository.ErrInvalidInput
	}
	updatedAt := entry.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO kv_store (client_id, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(client_id, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, entry.ClientID, entry.Key, entry.Value, updatedAt); err != nil {
		return fmt.Errorf("failed to put value: %w", err)
	}

	entry.UpdatedAt = updatedAt
	return nil
}

// Get reads a value
func (r *NoteRepository) Get(ctx context.Context, clientID, key string) (*notes.Entry, error) {
	query := `
		SELECT client_id, key, value, updated_at
		FROM kv_store
		WHERE client_id = ? AND key = ?
	`

	var entry notes.Entry
	err := r.db.QueryRowContext(ctx, query, clientID, key).Scan(
		&entry.ClientID,
		&entry.Key,
		&entry.Value,
		&entry.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	return &entry, nil
}
