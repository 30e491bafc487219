package activity

import "context"

// Repository provides persistence operations for activity entries.
type Repository interface {
	Log(ctx context.Context, clientID string, entry *ActivityEntry) error
	List(ctx context.Context, clientID string, opts ListActivityOptions) ([]ActivityEntry, error)
}
