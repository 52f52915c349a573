package middleware

import (
	"go-leave/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger copies the request id and the authenticated actor from the
// gin context into the request context, together with a logger that already
// carries them.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetString("request_id")
		if rid == "" {
			rid = c.GetHeader(RequestIDHeader)
		}
		if !validRequestID(rid) {
			rid = uuid.NewString()
		}
		c.Header(RequestIDHeader, rid)

		uid := c.GetString("user_id_validated")
		if uid == "" {
			uid = c.GetString("user_id")
		}

		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithUserID(ctx, uid)
		ctx = contextutil.WithRole(ctx, c.GetString("role"))
		ctx = contextutil.WithLogger(ctx, logger.With(contextutil.ExtractMetadata(ctx).Fields()...))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
