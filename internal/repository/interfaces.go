package repository

import (
	"context"

	"github.com/rpggio/resiliency/internal/domain/technology"
)

// Workspace, note and activity ports live next to their services
// (session.Repository, notes.Repository, activity.Repository) and are
// implemented by internal/sqlite.

// CatalogRepository indexes the catalog for full-text search
type CatalogRepository interface {
	Import(ctx context.Context, records []technology.Record) error
	Search(ctx context.Context, query string, opts SearchOptions) ([]SearchHit, error)
}

// SearchOptions provides paging for search
type SearchOptions struct {
	Limit  int
	Offset int
}

// SearchHit is one full-text match, best first
type SearchHit struct {
	RecordID string  `json:"id"`
	Rank     float64 `json:"rank"`
	Snippet  string  `json:"snippet,omitempty"`
}
