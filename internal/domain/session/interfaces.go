package session

import (
	"context"

	"github.com/rpggio/resiliency/internal/domain/activity"
	"github.com/rpggio/resiliency/internal/domain/technology"
)

// Repository provides persistence for sessions.
type Repository interface {
	Create(ctx context.Context, sess *Session) error
	Get(ctx context.Context, clientID, id string) (*Session, error)
	Update(ctx context.Context, sess *Session) error
	Delete(ctx context.Context, clientID, id string) error
}

// RecordStore resolves catalog records.
type RecordStore interface {
	Get(id string) (technology.Record, error)
	ByInstallation(name string) []technology.Record
}

// ActivityRecorder receives best-effort audit entries.
type ActivityRecorder interface {
	Record(ctx context.Context, clientID string, entry *activity.ActivityEntry)
}
