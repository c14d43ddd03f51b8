package utils

import "context"

type traceIDKey struct{}

// WithTraceID attaches a per-request trace id to the context. The id keys
// server-side log entries for failures whose real cause is never surfaced to
// the client.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, id)
}

// TraceID returns the request trace id, or "" when none was attached.
func TraceID(ctx context.Context) string {
	id, _ := ctx.Value(traceIDKey{}).(string)
	return id
}
