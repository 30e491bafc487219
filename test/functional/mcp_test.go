package functional_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/resiliency/internal/testserver"
	"github.com/rpggio/resiliency/internal/transport"
)

// clientHeaderTransport stamps every request with a viewer id.
type clientHeaderTransport struct {
	clientID string
	base     http.RoundTripper
}

func (t *clientHeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set(transport.ClientHeader, t.clientID)
	return t.base.RoundTrip(req)
}

func connectHTTP(t *testing.T, ts *testserver.TestServer, clientID string) *sdkmcp.ClientSession {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, &sdkmcp.StreamableClientTransport{
		Endpoint: ts.Server.URL + "/mcp",
		HTTPClient: &http.Client{
			Transport: &clientHeaderTransport{clientID: clientID, base: http.DefaultTransport},
		},
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func callTool(t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any, out any) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if args == nil {
		args = map[string]any{}
	}
	result, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err, "CallTool %s failed", name)
	require.False(t, result.IsError, "Tool %s returned error: %v", name, result.Content)

	for _, content := range result.Content {
		if text, ok := content.(*sdkmcp.TextContent); ok {
			require.NoError(t, json.Unmarshal([]byte(text.Text), out))
			return
		}
	}
	t.Fatalf("Tool %s returned no text content", name)
}

func TestHTTPFunctional_PlanningWorkflow(t *testing.T) {
	ts := testserver.New(t)
	session := connectHTTP(t, ts, "planner")

	var installations struct {
		Installations []struct {
			Name     string  `json:"name"`
			Gap      float64 `json:"gapToGreen"`
			Standing string  `json:"status"`
		} `json:"installations"`
	}
	callTool(t, session, "list_installations", map[string]any{"sort": "gapToGreen", "dir": "desc"}, &installations)
	require.NotEmpty(t, installations.Installations)
	worst := installations.Installations[0]
	require.Equal(t, "Eielson AFB", worst.Name)
	require.Equal(t, "Red", worst.Standing)

	var plan struct {
		Achievable  bool `json:"achievable"`
		Recommended []struct {
			ID string `json:"id"`
		} `json:"recommendedTechs"`
		TotalCostLabel string `json:"totalCostLabel"`
	}
	callTool(t, session, "gap_to_green", map[string]any{"installation": worst.Name, "sort": "cost"}, &plan)
	require.False(t, plan.Achievable)
	require.Equal(t, "tech-009", plan.Recommended[0].ID)
	require.NotEmpty(t, plan.TotalCostLabel)

	var link struct {
		Link string `json:"link"`
	}
	callTool(t, session, "generate_link", map[string]any{
		"filters": map[string]any{"installations": []string{worst.Name}},
	}, &link)
	require.Equal(t, testserver.LinkBase+"?installation=Eielson+AFB", link.Link)

	var filtered struct {
		Matched int `json:"matched"`
	}
	callTool(t, session, "filter_technologies", map[string]any{
		"filters": map[string]any{"query": "installation=Eielson+AFB"},
	}, &filtered)
	require.Equal(t, 3, filtered.Matched)
}

func TestHTTPFunctional_NotesScopedByClient(t *testing.T) {
	ts := testserver.New(t)
	alice := connectHTTP(t, ts, "alice")
	bob := connectHTTP(t, ts, "bob")

	var note struct {
		Text string `json:"text"`
	}
	callTool(t, alice, "save_note", map[string]any{"id": "tech-014", "text": "drill test site"}, &note)
	require.Equal(t, "drill test site", note.Text)

	callTool(t, bob, "get_note", map[string]any{"id": "tech-014"}, &note)
	require.Empty(t, note.Text)

	// The HTTP API reads the same store under the same client header.
	req, err := http.NewRequest(http.MethodGet, ts.Server.URL+"/api/notes/tech-014", nil)
	require.NoError(t, err)
	req.Header.Set(transport.ClientHeader, "alice")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&note))
	require.Equal(t, "drill test site", note.Text)
}
