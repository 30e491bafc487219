package mcp_test

import (
	"context"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/resiliency/internal/testserver"
)

func connect(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	ts := testserver.New(t)

	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	serverSession, err := ts.MCP.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = session.Close()
		_ = serverSession.Wait()
	})
	return session
}

func callTool(t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any) *sdkmcp.CallToolResult {
	t.Helper()
	if args == nil {
		args = map[string]any{}
	}
	result, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	return result
}

func structured(t *testing.T, result *sdkmcp.CallToolResult) map[string]any {
	t.Helper()
	require.False(t, result.IsError, "tool returned error: %v", result.Content)
	out, ok := result.StructuredContent.(map[string]any)
	require.True(t, ok, "structured content is %T", result.StructuredContent)
	return out
}

func errorText(t *testing.T, result *sdkmcp.CallToolResult) string {
	t.Helper()
	require.True(t, result.IsError)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestListTools(t *testing.T) {
	session := connect(t)

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	require.ElementsMatch(t, []string{
		"filter_technologies", "get_technology", "search_technologies", "list_filter_options",
		"generate_link", "list_installations", "gap_to_green", "map_markers", "analytics_summary",
		"get_note", "save_note",
	}, names)
}

func TestFilterTechnologies(t *testing.T) {
	session := connect(t)

	out := structured(t, callTool(t, session, "filter_technologies", map[string]any{
		"filters": map[string]any{"vendors": []string{"AquaLoop"}, "cost_max": 50},
		"sort":    "cost",
	}))
	require.EqualValues(t, 2, out["matched"])
	records := out["records"].([]any)
	require.Equal(t, "tech-019", records[0].(map[string]any)["id"])
	require.Equal(t, "tech-012", records[1].(map[string]any)["id"])
}

func TestFilterTechnologies_QueryMerge(t *testing.T) {
	session := connect(t)

	out := structured(t, callTool(t, session, "filter_technologies", map[string]any{
		"filters": map[string]any{
			"query":    "installation=Fort+Bliss&vendor=SunSpan",
			"statuses": []string{"Level 4"},
		},
	}))
	require.EqualValues(t, 1, out["matched"])
	require.Contains(t, out["link"], "status=Level+4")
}

func TestFilterTechnologies_InvalidSort(t *testing.T) {
	session := connect(t)

	text := errorText(t, callTool(t, session, "filter_technologies", map[string]any{"sort": "color"}))
	require.Contains(t, text, "INVALID_SORT_KEY")
}

func TestGetTechnology(t *testing.T) {
	session := connect(t)

	out := structured(t, callTool(t, session, "get_technology", map[string]any{"id": "tech-016"}))
	require.Equal(t, "Level 2", out["outreach"])

	text := errorText(t, callTool(t, session, "get_technology", map[string]any{"id": "tech-404"}))
	require.Contains(t, text, "RECORD_NOT_FOUND")
}

func TestSearchTechnologies(t *testing.T) {
	session := connect(t)

	out := structured(t, callTool(t, session, "search_technologies", map[string]any{"query": "microgrid"}))
	require.Len(t, out["results"], 3)

	text := errorText(t, callTool(t, session, "search_technologies", map[string]any{"query": "  "}))
	require.Contains(t, text, "INVALID_QUERY")
}

func TestListFilterOptionsAndLink(t *testing.T) {
	session := connect(t)

	options := structured(t, callTool(t, session, "list_filter_options", nil))
	require.Len(t, options["installations"], 7)

	link := structured(t, callTool(t, session, "generate_link", map[string]any{
		"filters": map[string]any{"installations": []string{"Fort Bliss"}},
	}))
	require.Equal(t, "installation=Fort+Bliss", link["query"])
	require.Equal(t, testserver.LinkBase+"?installation=Fort+Bliss", link["link"])
}

func TestInstallationsAndGapToGreen(t *testing.T) {
	session := connect(t)

	list := structured(t, callTool(t, session, "list_installations", map[string]any{"sort": "name"}))
	installations := list["installations"].([]any)
	require.Len(t, installations, 7)
	require.Equal(t, "Camp Pendleton", installations[0].(map[string]any)["name"])

	plan := structured(t, callTool(t, session, "gap_to_green", map[string]any{"installation": "Fort Liberty"}))
	require.EqualValues(t, 28, plan["gap"])
	require.Equal(t, false, plan["achievable"])
	require.Len(t, plan["recommendedTechs"], 3)

	text := errorText(t, callTool(t, session, "gap_to_green", map[string]any{"installation": "Atlantis"}))
	require.Contains(t, text, "INSTALLATION_NOT_FOUND")
}

func TestMapMarkersAndAnalytics(t *testing.T) {
	session := connect(t)

	markers := structured(t, callTool(t, session, "map_markers", nil))
	for _, m := range markers["markers"].([]any) {
		require.Equal(t, "default", m.(map[string]any)["highlight"])
	}

	report := structured(t, callTool(t, session, "analytics_summary", map[string]any{
		"filters": map[string]any{"installations": []string{"Eielson AFB"}},
	}))
	summary := report["summary"].(map[string]any)
	require.EqualValues(t, 3, summary["count"])
}

func TestNotes(t *testing.T) {
	session := connect(t)

	saved := structured(t, callTool(t, session, "save_note", map[string]any{"id": "tech-003", "text": "pilot in spring"}))
	require.Equal(t, "pilot in spring", saved["text"])

	read := structured(t, callTool(t, session, "get_note", map[string]any{"id": "tech-003"}))
	require.Equal(t, "pilot in spring", read["text"])
}

func TestDocResources(t *testing.T) {
	session := connect(t)

	res, err := session.ReadResource(context.Background(), &sdkmcp.ReadResourceParams{URI: "resiliency://docs/filters"})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	require.Contains(t, res.Contents[0].Text, "Filters, sorting and links")
}
