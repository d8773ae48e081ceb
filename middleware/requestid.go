package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"hotelops-backend/logger"
)

const (
	HeaderRequestID = "X-Request-ID"
	ctxLogger       = "logger"
	ctxRequestID    = "request_id"
)

// RequestID adds a unique request ID to each request and a request-scoped
// logger to the gin and request contexts.
func RequestID(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
			c.Request.Header.Set(HeaderRequestID, requestID)
		}
		c.Header(HeaderRequestID, requestID)

		ctxLog := base.With(zap.String("request_id", requestID))
		c.Set(ctxRequestID, requestID)
		c.Set(ctxLogger, ctxLog)
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), ctxLog))
		c.Next()
	}
}

func loggerFrom(c *gin.Context, base *zap.Logger) *zap.Logger {
	if v, ok := c.Get(ctxLogger); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return base
}
