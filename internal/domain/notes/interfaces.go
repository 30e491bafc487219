package notes

import (
	"context"

	"github.com/rpggio/resiliency/internal/domain/activity"
)

// Repository persists key-value entries. Get returns repository.ErrNotFound
// for a missing key.
type Repository interface {
	Put(ctx context.Context, entry *Entry) error
	Get(ctx context.Context, clientID, key string) (*Entry, error)
}

// RecordLookup reports whether a catalog record exists.
type RecordLookup interface {
	Has(id string) bool
}

// ActivityRecorder receives best-effort audit entries.
type ActivityRecorder interface {
	Record(ctx context.Context, clientID string, entry *activity.ActivityEntry)
}
