package mcp

import (
	"context"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type contextKey int

const clientIDKey contextKey = iota

// ClientHeader carries the viewer id over streamable HTTP.
const ClientHeader = "X-Client-Id"

const maxClientIDLen = 128

// getClientID extracts the client ID from context.
func getClientID(ctx context.Context) string {
	v, _ := ctx.Value(clientIDKey).(string)
	return v
}

// clientMiddleware scopes each request to a viewer. The id comes from the
// X-Client-Id header (HTTP) or _meta.client_id (stdio), else the default.
func clientMiddleware(defaultClient string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			var clientID string

			extra := req.GetExtra()
			if extra != nil && extra.Header != nil {
				clientID = strings.TrimSpace(extra.Header.Get(ClientHeader))
			}

			// Some notifications (like "initialized") have nil params.
			if clientID == "" {
				if params := req.GetParams(); params != nil {
					func() {
						defer func() { recover() }()
						if meta := params.GetMeta(); meta != nil {
							if id, ok := meta["client_id"].(string); ok {
								clientID = strings.TrimSpace(id)
							}
						}
					}()
				}
			}

			if clientID == "" || len(clientID) > maxClientIDLen {
				clientID = defaultClient
			}
			ctx = context.WithValue(ctx, clientIDKey, clientID)
			return next(ctx, method, req)
		}
	}
}
