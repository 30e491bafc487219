package transport

import (
	"context"
	"net/http"
	"strings"
)

// ClientHeader scopes notes, onboarding and workspaces to one viewer.
const ClientHeader = "X-Client-Id"

// DefaultClientID is used when a request carries no client header.
const DefaultClientID = "local"

const maxClientIDLen = 128

type clientKey struct{}

// ClientIDFromContext returns the client ID from context, if present.
func ClientIDFromContext(ctx context.Context) (string, bool) {
	clientID, ok := ctx.Value(clientKey{}).(string)
	return clientID, ok
}

// ClientMiddleware extracts X-Client-Id and stores it in context.
func ClientMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := strings.TrimSpace(r.Header.Get(ClientHeader))
		if clientID == "" {
			clientID = DefaultClientID
		}
		if len(clientID) > maxClientIDLen {
			writeError(w, errClientIDTooLong)
			return
		}
		ctx := context.WithValue(r.Context(), clientKey{}, clientID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func clientID(r *http.Request) string {
	if id, ok := ClientIDFromContext(r.Context()); ok {
		return id
	}
	return DefaultClientID
}
