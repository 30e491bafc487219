package transport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rpggio/resiliency/internal/catalog"
	"github.com/rpggio/resiliency/internal/domain/activity"
	"github.com/rpggio/resiliency/internal/domain/analytics"
	"github.com/rpggio/resiliency/internal/domain/filter"
	"github.com/rpggio/resiliency/internal/domain/greenpath"
	"github.com/rpggio/resiliency/internal/domain/installation"
	"github.com/rpggio/resiliency/internal/domain/notes"
	"github.com/rpggio/resiliency/internal/domain/session"
	"github.com/rpggio/resiliency/internal/domain/technology"
)

// CatalogService defines catalog queries needed by the API.
type CatalogService interface {
	Filter(q catalog.Query) catalog.QueryResult
	Get(id string) (technology.View, error)
	FilterOptions() filter.Options
	Link(state filter.State) string
	Search(ctx context.Context, query string, limit int) ([]catalog.SearchResult, error)
	Installations(key greenpath.SummaryKey, dir technology.Direction) []greenpath.InstallationSummary
	GapToGreen(name string, key greenpath.RecommendationKey, dir technology.Direction) (greenpath.Plan, error)
	Markers(state filter.State) []installation.Marker
	Analytics(state filter.State) analytics.Report
}

// SessionService defines workspace operations needed by the API.
type SessionService interface {
	Start(ctx context.Context, clientID string, initial filter.State) (*session.Session, error)
	Get(ctx context.Context, clientID, sessionID string) (*session.Session, error)
	Close(ctx context.Context, clientID, sessionID string) error
	SetFilters(ctx context.Context, clientID, sessionID string, state filter.State) (*session.FilterResult, error)
	ClearFilters(ctx context.Context, clientID, sessionID string) (*session.FilterResult, error)
	AddToCompare(ctx context.Context, clientID, sessionID, recordID string) (*session.CompareResult, error)
	RemoveFromCompare(ctx context.Context, clientID, sessionID, recordID string) (*session.Session, error)
	ClearCompare(ctx context.Context, clientID, sessionID string) (*session.Session, error)
	ComparedRecords(ctx context.Context, clientID, sessionID string) ([]technology.View, error)
	SelectRecord(ctx context.Context, clientID, sessionID, recordID string) (*session.Session, error)
	CloseDetails(ctx context.Context, clientID, sessionID string) (*session.Session, error)
	ToggleDetails(ctx context.Context, clientID, sessionID string) (*session.Session, error)
	SelectInstallation(ctx context.Context, clientID, sessionID, name string) (*session.FilterResult, error)
}

// NoteService defines note and onboarding operations needed by the API.
type NoteService interface {
	SaveNote(ctx context.Context, clientID, recordID, text string) (*notes.Note, error)
	GetNote(ctx context.Context, clientID, recordID string) (*notes.Note, error)
	HasSeenOnboarding(ctx context.Context, clientID string) (bool, error)
	MarkOnboardingSeen(ctx context.Context, clientID string) error
}

// ActivityService defines activity operations needed by the API.
type ActivityService interface {
	GetRecentActivity(ctx context.Context, clientID string, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

// Services contains all services the API serves.
type Services struct {
	Catalog  CatalogService
	Sessions SessionService
	Notes    NoteService
	Activity ActivityService
}

// Options configures the router.
type Options struct {
	CORSOrigins    []string
	RequestTimeout time.Duration
	// MCP, when set, is mounted at /mcp.
	MCP    http.Handler
	Logger *slog.Logger
}

// Server wires HTTP handlers.
type Server struct {
	services Services
	logger   *slog.Logger
}

// NewServer creates an HTTP server router with middleware.
func NewServer(services Services, opts Options) *chi.Mux {
	r := chi.NewRouter()
	srv := &Server{services: services, logger: opts.Logger}

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(srv.loggingMiddleware)
	r.Use(metricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", ClientHeader, "Mcp-Session-Id"},
		ExposedHeaders: []string{"Mcp-Session-Id"},
		MaxAge:         300,
	}))

	r.Get("/health", srv.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	if opts.MCP != nil {
		r.Handle("/mcp", opts.MCP)
		r.Handle("/mcp/*", opts.MCP)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Timeout(timeout))
		r.Use(ClientMiddleware)

		r.Get("/technologies", srv.handleListTechnologies)
		r.Get("/technologies/{id}", srv.handleGetTechnology)
		r.Get("/search", srv.handleSearch)
		r.Get("/options", srv.handleOptions)
		r.Get("/link", srv.handleLink)
		r.Get("/installations", srv.handleListInstallations)
		r.Get("/installations/{name}/gap-to-green", srv.handleGapToGreen)
		r.Get("/map", srv.handleMap)
		r.Get("/analytics", srv.handleAnalytics)
		r.Get("/activity", srv.handleActivity)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", srv.handleStartSession)
			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", srv.handleGetSession)
				r.Delete("/", srv.handleCloseSession)
				r.Put("/filters", srv.handleSetFilters)
				r.Delete("/filters", srv.handleClearFilters)
				r.Get("/compare", srv.handleComparedRecords)
				r.Post("/compare", srv.handleAddToCompare)
				r.Delete("/compare", srv.handleClearCompare)
				r.Delete("/compare/{recordID}", srv.handleRemoveFromCompare)
				r.Put("/details", srv.handleSelectRecord)
				r.Delete("/details", srv.handleCloseDetails)
				r.Post("/details/toggle", srv.handleToggleDetails)
				r.Post("/installations/{name}/select", srv.handleSelectInstallation)
			})
		})

		r.Get("/notes/{recordID}", srv.handleGetNote)
		r.Put("/notes/{recordID}", srv.handleSaveNote)
		r.Get("/onboarding", srv.handleGetOnboarding)
		r.Put("/onboarding", srv.handleMarkOnboarding)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.logger == nil {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, _ := MapError(err)
	if status >= http.StatusInternalServerError && s.logger != nil {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err, "request_id", middleware.GetReqID(r.Context()))
	}
	writeError(w, err)
}
