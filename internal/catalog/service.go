package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rpggio/resiliency/internal/domain/analytics"
	"github.com/rpggio/resiliency/internal/domain/filter"
	"github.com/rpggio/resiliency/internal/domain/greenpath"
	"github.com/rpggio/resiliency/internal/domain/installation"
	"github.com/rpggio/resiliency/internal/domain/technology"
	"github.com/rpggio/resiliency/internal/repository"
)

// DefaultSearchLimit caps search results when the caller gives no limit.
const DefaultSearchLimit = 20

// ErrInvalidQuery indicates an empty search query.
var ErrInvalidQuery = errors.New("invalid search query")

// Service answers read-only questions about the catalog.
type Service struct {
	store     *technology.Store
	search    repository.CatalogRepository
	enricher  *analytics.Enricher
	linkBase  string
	radarSize int
	logger    *slog.Logger
}

// Options configures a Service.
type Options struct {
	LinkBase     string
	AnalyticSeed uint64
	RadarSize    int
}

// NewService creates a catalog service. search may be nil, in which case
// Search falls back to substring matching over the store.
func NewService(store *technology.Store, search repository.CatalogRepository, opts Options, logger *slog.Logger) *Service {
	return &Service{
		store:     store,
		search:    search,
		enricher:  analytics.NewEnricher(opts.AnalyticSeed),
		linkBase:  opts.LinkBase,
		radarSize: opts.RadarSize,
		logger:    logger,
	}
}

// Store exposes the underlying record store.
func (s *Service) Store() *technology.Store {
	return s.store
}

// Query is a filtered, sorted table request.
type Query struct {
	Filters filter.State
	Sort    technology.SortKey
	Dir     technology.Direction
}

// QueryResult is the table view for a query.
type QueryResult struct {
	Filters   filter.State      `json:"filters"`
	Records   []technology.View `json:"records"`
	Total     int               `json:"total"`
	Matched   int               `json:"matched"`
	Available filter.Options    `json:"available"`
	Link      string            `json:"link"`
}

// Filter applies the filter state, sorts, and reports the options still
// reachable from the result.
func (s *Service) Filter(q Query) QueryResult {
	state := q.Filters.Normalize()
	matched := filter.Apply(s.store.All(), state)
	sorted := technology.SortRecords(matched, q.Sort, q.Dir)
	return QueryResult{
		Filters:   state,
		Records:   technology.NewViews(sorted),
		Total:     s.store.Len(),
		Matched:   len(matched),
		Available: filter.Available(matched, state),
		Link:      filter.Link(s.linkBase, state),
	}
}

// Get returns one record with its derived values.
func (s *Service) Get(id string) (technology.View, error) {
	rec, err := s.store.Get(id)
	if err != nil {
		return technology.View{}, err
	}
	return technology.NewView(rec), nil
}

// FilterOptions lists every distinct value in the store.
func (s *Service) FilterOptions() filter.Options {
	return filter.Collect(s.store.All())
}

// Link builds the shareable link for a state.
func (s *Service) Link(state filter.State) string {
	return filter.Link(s.linkBase, state.Normalize())
}

// SearchResult is a record matched by full-text search.
type SearchResult struct {
	technology.View
	Rank    float64 `json:"rank"`
	Snippet string  `json:"snippet,omitempty"`
}

// Search finds records whose text matches every query term.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrInvalidQuery
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if s.search == nil {
		return s.scan(query, limit), nil
	}

	hits, err := s.search.Search(ctx, query, repository.SearchOptions{Limit: limit})
	if err != nil {
		if errors.Is(err, repository.ErrInvalidInput) {
			return nil, ErrInvalidQuery
		}
		return nil, fmt.Errorf("searching catalog: %w", err)
	}

	results := make([]SearchResult, 0, len(hits))
	for _, hit := range hits {
		rec, err := s.store.Get(hit.RecordID)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("search index out of sync with store", "record_id", hit.RecordID)
			}
			continue
		}
		results = append(results, SearchResult{View: technology.NewView(rec), Rank: hit.Rank, Snippet: hit.Snippet})
	}
	return results, nil
}

func (s *Service) scan(query string, limit int) []SearchResult {
	terms := strings.Fields(strings.ToLower(query))
	var results []SearchResult
	for _, rec := range s.store.All() {
		text := strings.ToLower(strings.Join(append([]string{
			rec.Technology, rec.TechnologyDesc, rec.Vendor, rec.VendorDesc, rec.Installation,
		}, rec.TechNeeds...), " "))
		matched := true
		for _, term := range terms {
			if !strings.Contains(text, term) {
				matched = false
				break
			}
		}
		if matched {
			results = append(results, SearchResult{View: technology.NewView(rec)})
			if len(results) == limit {
				break
			}
		}
	}
	return results
}

// Installations summarizes every installation's standing.
func (s *Service) Installations(key greenpath.SummaryKey, dir technology.Direction) []greenpath.InstallationSummary {
	return greenpath.SortSummaries(greenpath.Summarize(s.store.All()), key, dir)
}

// GapToGreen plans the technologies that would bring an installation to green.
func (s *Service) GapToGreen(name string, key greenpath.RecommendationKey, dir technology.Direction) (greenpath.Plan, error) {
	records := s.store.ByInstallation(name)
	if len(records) == 0 {
		return greenpath.Plan{}, greenpath.ErrInstallationNotFound
	}
	plan := greenpath.Compute(name, records)
	if key != greenpath.RecommendationKey("") {
		plan.Recommended = greenpath.SortRecommendations(plan.Recommended, key, dir)
	}
	return plan, nil
}

// Markers places every installation on the map, highlighted by the
// installation filter of state.
func (s *Service) Markers(state filter.State) []installation.Marker {
	return installation.Markers(s.store.All(), state.Normalize())
}

// Analytics profiles the records matching state.
func (s *Service) Analytics(state filter.State) analytics.Report {
	matched := filter.Apply(s.store.All(), state.Normalize())
	return s.enricher.Analyze(matched, s.radarSize)
}
