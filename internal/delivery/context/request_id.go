// Package context carries request-scoped values (request ID, auth session ID
// and logger) through context.Context from the delivery layer down to the
// use case, store and publishers.
package context

import (
	"context"
	"log/slog"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeySessionID is the key for the auth session a request operates on.
	KeySessionID ContextKey = "session_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestIDFromContext returns the request ID, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetSessionIDFromContext returns the auth session ID, or "" when the call is
// not bound to a session.
func GetSessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeySessionID).(string); ok {
		return id
	}

	return ""
}

// WithSessionID binds the context to an auth session. Loggers obtained
// through GetLoggerOrDefault carry the ID as session_id.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	if sessionID == "" || GetSessionIDFromContext(ctx) == sessionID {
		return ctx
	}

	return context.WithValue(ctx, KeySessionID, sessionID)
}

// GetLogger extracts the request-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback. Either
// one is tagged with the session ID when the context carries it.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	logger := GetLogger(ctx)
	if logger == nil {
		logger = fallback
	}
	if logger == nil {
		return nil
	}

	if sessionID := GetSessionIDFromContext(ctx); sessionID != "" {
		return logger.With(slog.String("session_id", sessionID))
	}

	return logger
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
