package constant

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// Context keys
const (
	CtxKeyLogger    ContextKey = "logger"
	CtxKeyRequestID ContextKey = "request_id"
)

// HeaderRequestID carries the request ID in both directions
const HeaderRequestID = "X-Request-Id"
