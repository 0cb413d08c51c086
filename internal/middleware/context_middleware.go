package middleware

import (
	"hr-records/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger stores a logger tagged with the request id and the signed-in
// user in the request context, so services can log without knowing gin.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		rid := contextutil.GetRequestID(ctx)
		if rid == "" {
			rid = uuid.New().String()
			ctx = contextutil.WithRequestID(ctx, rid)
			c.Header("X-Request-ID", rid)
		}

		uid := c.GetString("user_id")

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("user_id", uid),
		)

		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
