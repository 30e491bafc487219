package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// maxLoggedPayload caps params and results in debug logs. Filter and
// analytics results can carry the whole catalog.
const maxLoggedPayload = 2048

// trafficLoggingMiddleware logs MCP calls. Full payloads are logged at debug
// level only. Tool calls that come back as error results are logged at info
// with their error code, and protocol failures at warn.
func trafficLoggingMiddleware(logger *slog.Logger, direction string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if logger == nil {
				return next(ctx, method, req)
			}
			debug := logger.Enabled(ctx, slog.LevelDebug)
			tool := toolName(req)
			if !debug && tool == "" {
				return next(ctx, method, req)
			}

			attrs := []any{
				"direction", direction,
				"method", method,
				"session_id", safeSessionID(req),
				"client_id", getClientID(ctx),
			}
			if tool != "" {
				attrs = append(attrs, "tool", tool)
			}
			if debug {
				logger.Debug("mcp traffic", slices.Concat(attrs, []any{"stage", "request", "params", formatPayload(safeParams(req))})...)
			}

			start := time.Now()
			result, err := next(ctx, method, req)
			attrs = append(attrs, "duration_ms", time.Since(start).Milliseconds())

			if err != nil {
				logger.Warn("mcp call failed", slices.Concat(attrs, []any{"error", err})...)
				return result, err
			}
			if code, failed := toolErrorCode(result); failed {
				logger.Info("mcp tool error", slices.Concat(attrs, []any{"code", code})...)
				return result, err
			}
			if debug && !strings.HasPrefix(method, "notifications/") {
				logger.Debug("mcp traffic", slices.Concat(attrs, []any{"stage", "response", "result", formatPayload(result)})...)
			}
			return result, err
		}
	}
}

func toolName(req sdkmcp.Request) string {
	call, ok := req.(*sdkmcp.CallToolRequest)
	if !ok || call == nil || call.Params == nil {
		return ""
	}
	return call.Params.Name
}

// toolErrorCode reports whether result is a tool error, and the code that
// toolError put in front of its message.
func toolErrorCode(result sdkmcp.Result) (string, bool) {
	res, ok := result.(*sdkmcp.CallToolResult)
	if !ok || res == nil || !res.IsError {
		return "", false
	}
	for _, content := range res.Content {
		text, ok := content.(*sdkmcp.TextContent)
		if !ok {
			continue
		}
		code, _, found := strings.Cut(text.Text, ":")
		if found && code == strings.ToUpper(code) && !strings.ContainsAny(code, " ") {
			return code, true
		}
		return "INTERNAL", true
	}
	return "INTERNAL", true
}

func safeSessionID(req sdkmcp.Request) (id string) {
	if req == nil {
		return ""
	}
	defer func() {
		if recover() != nil {
			id = ""
		}
	}()
	session := req.GetSession()
	if session == nil {
		return ""
	}
	return session.ID()
}

func safeParams(req sdkmcp.Request) (params any) {
	if req == nil {
		return nil
	}
	defer func() {
		if recover() != nil {
			params = nil
		}
	}()
	return req.GetParams()
}

func formatPayload(payload any) string {
	if payload == nil {
		return "<nil>"
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%T", payload)
	}
	if len(data) > maxLoggedPayload {
		return fmt.Sprintf("%s... (%d bytes)", data[:maxLoggedPayload], len(data))
	}
	return string(data)
}
