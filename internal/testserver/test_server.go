package testserver

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/resiliency/internal/catalog"
	"github.com/rpggio/resiliency/internal/domain/activity"
	"github.com/rpggio/resiliency/internal/domain/notes"
	"github.com/rpggio/resiliency/internal/domain/session"
	"github.com/rpggio/resiliency/internal/domain/technology"
	"github.com/rpggio/resiliency/internal/mcp"
	"github.com/rpggio/resiliency/internal/sqlite"
	"github.com/rpggio/resiliency/internal/transport"
)

// LinkBase is the page URL shareable links are built on.
const LinkBase = "http://dashboard.test/"

type TestServer struct {
	Server  *httptest.Server
	DB      *sqlite.DB
	Store   *technology.Store
	Catalog *catalog.Service
	MCP     *sdkmcp.Server
}

// New starts the HTTP API and MCP endpoint over the embedded catalog and a
// private in-memory database.
func New(t *testing.T) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	store, err := catalog.Open("")
	require.NoError(t, err)

	catalogRepo := sqlite.NewCatalogRepository(db)
	require.NoError(t, catalogRepo.Import(context.Background(), store.All()))

	activitySvc := activity.NewService(sqlite.NewActivityRepository(db), nil)
	catalogSvc := catalog.NewService(store, catalogRepo, catalog.Options{LinkBase: LinkBase, AnalyticSeed: 1, RadarSize: 5}, nil)
	sessionSvc := session.NewService(sqlite.NewSessionRepository(db), store, activitySvc, LinkBase, nil)
	noteSvc := notes.NewService(sqlite.NewNoteRepository(db), store, activitySvc, nil)

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{Catalog: catalogSvc, Notes: noteSvc},
	})
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server {
		return mcpServer
	}, nil)

	router := transport.NewServer(transport.Services{
		Catalog:  catalogSvc,
		Sessions: sessionSvc,
		Notes:    noteSvc,
		Activity: activitySvc,
	}, transport.Options{MCP: mcpHandler})
	server := httptest.NewServer(router)

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return &TestServer{
		Server:  server,
		DB:      db,
		Store:   store,
		Catalog: catalogSvc,
		MCP:     mcpServer,
	}
}
