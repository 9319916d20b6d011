package types

import "context"

// ContextKey is the typed key used for all values stored on request contexts.
type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"
	CtxUserID    ContextKey = "ctx_user_id"
	CtxSessionID ContextKey = "ctx_session_id"
)

// DefaultUserID is used when no authenticated user is on the context.
const DefaultUserID = "system"

func GetRequestID(ctx context.Context) string {
	return getString(ctx, CtxRequestID)
}

// GetUserID returns the acting user id, defaulting to "system".
func GetUserID(ctx context.Context) string {
	if id := getString(ctx, CtxUserID); id != "" {
		return id
	}
	return DefaultUserID
}

// GetSessionID returns the browser/user session id used to scope guard
// acknowledgments. Empty when the caller is not a user session.
func GetSessionID(ctx context.Context) string {
	return getString(ctx, CtxSessionID)
}

func getString(ctx context.Context, key ContextKey) string {
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}
