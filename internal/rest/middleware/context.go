package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/poolquote/poolquote/internal/types"
)

const (
	headerRequestID = "X-Request-ID"
	headerSessionID = "X-Session-ID"
	headerUserID    = "X-User-ID"
)

// ContextMiddleware seeds the request context with the request, session and
// user identifiers. The session id drives the per-session confirmation
// acknowledgment; a client without one gets prompted on every guarded write.
func ContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_REQUEST)
		}
		ctx = context.WithValue(ctx, types.CtxRequestID, requestID)

		if sessionID := c.GetHeader(headerSessionID); sessionID != "" {
			ctx = context.WithValue(ctx, types.CtxSessionID, sessionID)
		}
		if userID := c.GetHeader(headerUserID); userID != "" {
			ctx = context.WithValue(ctx, types.CtxUserID, userID)
		}

		c.Writer.Header().Set(headerRequestID, requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
