// internal/pkg/logger/context.go
package logger

import "context"

type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyClientIP  contextKey = "client_ip"
	ContextKeySessionID contextKey = "session_id"
)

// RequestIDFromContext returns the request id carried by the context, if any.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeyRequestID).(string)
	return id
}
