package mcp_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/resiliency/internal/mcp"
	"github.com/rpggio/resiliency/internal/testserver"
)

type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *logBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *logBuffer) entries(t *testing.T) []map[string]any {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []map[string]any
	scanner := bufio.NewScanner(strings.NewReader(b.buf.String()))
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		out = append(out, entry)
	}
	return out
}

func connectLogged(t *testing.T, level slog.Level) (*sdkmcp.ClientSession, *logBuffer) {
	t.Helper()
	ctx := context.Background()
	ts := testserver.New(t)
	logs := &logBuffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: level}))
	server := mcp.NewServer(mcp.Config{
		Services: mcp.Services{Catalog: ts.Catalog},
		Logger:   logger,
	})

	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		_ = serverSession.Wait()
	})
	return session, logs
}

func TestTrafficLogging_ToolErrorAtInfo(t *testing.T) {
	session, logs := connectLogged(t, slog.LevelInfo)

	result := callTool(t, session, "get_technology", map[string]any{"id": "nope"})
	require.True(t, result.IsError)
	callTool(t, session, "list_filter_options", nil)

	var toolErrors []map[string]any
	for _, entry := range logs.entries(t) {
		require.NotEqual(t, "DEBUG", entry["level"])
		if entry["msg"] == "mcp tool error" {
			toolErrors = append(toolErrors, entry)
		}
	}
	require.Len(t, toolErrors, 1)
	require.Equal(t, "get_technology", toolErrors[0]["tool"])
	require.Equal(t, "RECORD_NOT_FOUND", toolErrors[0]["code"])
	require.Equal(t, "inbound", toolErrors[0]["direction"])
	require.Contains(t, toolErrors[0], "duration_ms")
}

func TestTrafficLogging_DebugPayloadsCapped(t *testing.T) {
	session, logs := connectLogged(t, slog.LevelDebug)

	callTool(t, session, "filter_technologies", nil)

	var found bool
	for _, entry := range logs.entries(t) {
		if entry["msg"] != "mcp traffic" || entry["stage"] != "response" || entry["tool"] != "filter_technologies" {
			continue
		}
		found = true
		result, ok := entry["result"].(string)
		require.True(t, ok)
		require.Contains(t, result, "bytes)")
		require.Less(t, len(result), 2100)
	}
	require.True(t, found)
}
