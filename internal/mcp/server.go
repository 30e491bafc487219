package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/resiliency/internal/catalog"
	"github.com/rpggio/resiliency/internal/domain/analytics"
	"github.com/rpggio/resiliency/internal/domain/filter"
	"github.com/rpggio/resiliency/internal/domain/greenpath"
	"github.com/rpggio/resiliency/internal/domain/installation"
	"github.com/rpggio/resiliency/internal/domain/notes"
	"github.com/rpggio/resiliency/internal/domain/technology"
)

// CatalogService defines catalog queries needed by MCP.
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

// NoteService defines note operations needed by MCP.
type NoteService interface {
	SaveNote(ctx context.Context, clientID, recordID, text string) (*notes.Note, error)
	GetNote(ctx context.Context, clientID, recordID string) (*notes.Note, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Catalog CatalogService
	Notes   NoteService
}

// Config contains server configuration.
type Config struct {
	Services Services
	// DefaultClientID scopes notes when a request names no client.
	DefaultClientID string
	Version         string
	Logger          *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	version := cfg.Version
	if version == "" {
		version = "0.1.0"
	}
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "resiliency",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	defaultClient := cfg.DefaultClientID
	if defaultClient == "" {
		defaultClient = "local"
	}
	server.AddReceivingMiddleware(clientMiddleware(defaultClient))
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
