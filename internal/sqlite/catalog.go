package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/rpggio/resiliency/internal/domain/technology"
	"github.com/rpggio/resiliency/internal/repository"
)

// CatalogRepository implements repository.CatalogRepository with FTS5
type CatalogRepository struct {
	db *DB
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Import replaces the indexed catalog with records
func (r *CatalogRepository) Import(ctx context.Context, records []technology.Record) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM technologies`); err != nil {
		return fmt.Errorf("failed to clear catalog: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO technologies (id, technology, description, vendor, installation, tags)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare import: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		description := strings.TrimSpace(rec.TechnologyDesc + " " + rec.VendorDesc)
		if _, err := stmt.ExecContext(ctx,
			rec.ID,
			rec.Technology,
			description,
			rec.Vendor,
			rec.Installation,
			strings.Join(rec.TechNeeds, " "),
		); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("record %q: %w", rec.ID, repository.ErrConflict)
			}
			return fmt.Errorf("failed to import record %q: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

// Search runs a prefix match of every query term, best match first
func (r *CatalogRepository) Search(ctx context.Context, query string, opts repository.SearchOptions) ([]repository.SearchHit, error) {
	match := matchExpression(query)
	if match == "" {
		return nil, repository.ErrInvalidInput
	}

	baseQuery := `
		SELECT
			t.id,
			bm25(technologies_fts) AS rank,
			snippet(technologies_fts, -1, '[', ']', '...', 8) AS snippet
		FROM technologies_fts
		JOIN technologies t ON t.rowid = technologies_fts.rowid
		WHERE technologies_fts MATCH ?
		ORDER BY rank
	`
	args := []interface{}{match}

	if opts.Limit > 0 {
		baseQuery += " LIMIT ?"
		args = append(args, opts.Limit)
		if opts.Offset > 0 {
			baseQuery += " OFFSET ?"
			args = append(args, opts.Offset)
		}
	}

	rows, err := r.db.QueryContext(ctx, baseQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search catalog: %w", err)
	}
	defer rows.Close()

	var hits []repository.SearchHit
	for rows.Next() {
		var hit repository.SearchHit
		if err := rows.Scan(&hit.RecordID, &hit.Rank, &hit.Snippet); err != nil {
			return nil, fmt.Errorf("failed to scan search result: %w", err)
		}
		hits = append(hits, hit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating search results: %w", err)
	}

	return hits, nil
}

// matchExpression quotes every term so user input never reaches the FTS5
// query grammar, and makes each term a prefix match.
func matchExpression(query string) string {
	terms := strings.Fields(query)
	quoted := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.Trim(term, `"*`)
		if term == "" {
			continue
		}
		quoted = append(quoted, `"`+strings.ReplaceAll(term, `"`, `""`)+`"*`)
	}
	return strings.Join(quoted, " ")
}
