package logging

import "context"

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	sourceKey    contextKey = "source"
)

// WithRequestID tags ctx with the id of a page or image request.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// WithSource tags ctx with the kind of review source serving it.
func WithSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, sourceKey, source)
}

// GetRequestID retrieves the request ID from the context.
// Returns empty string if not present.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// GetSource retrieves the source kind from the context.
// Returns empty string if not present.
func GetSource(ctx context.Context) string {
	if s, ok := ctx.Value(sourceKey).(string); ok {
		return s
	}
	return ""
}
