package contextutil

import "context"

// Unexported key type so nothing outside this package can collide.
type contextKey string

const requestIDKey contextKey = "request_id"

// GetRequestID reads the request id propagated by the middleware, or "".
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// WithRequestID injects a request id into the context (also used by tests).
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

// GetKey exposes the raw key for middleware that stores it on gin's context.
func GetKey() string {
	return string(requestIDKey)
}
