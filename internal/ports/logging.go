package ports

import (
	"context"

	"github.com/google/uuid"
)

// Logger is the structured logging contract shared by the engine, the HTTP
// host and the CLI. Fields are key/value pairs. Implementations must be safe
// for concurrent use and tolerate a nil receiver. Common fields:
//   - correlation_id (UUIDv4, generated per CLI command or HTTP request)
//   - component (engine, store, server, storage, tui)
//   - accommodation / path / profile
type Logger interface {
	Debug(msg string, fields ...any)
	Info(msg string, fields ...any)
	Warn(msg string, fields ...any)
	Error(err error, msg string, fields ...any)
	With(key string, value any) Logger
}

type correlationIDKey struct{}

// WithCorrelationID attaches the provided correlation ID to the context so
// downstream layers can emit correlated logs.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// GetCorrelationID extracts a correlation ID from context. It returns an empty
// string when none has been set; callers should treat that as "uncorrelated".
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GenerateCorrelationID produces a new UUIDv4 string suitable for log
// correlation.
func GenerateCorrelationID() string {
	return uuid.NewString()
}
