package middleware

import (
	"context"

	"company-services-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// requestIDMaxLen caps ids supplied by clients before they reach the logs
const requestIDMaxLen = 64

// RequestID reads X-Request-ID or generates a UUID, echoes it in the response
// and stores it in the request context for logger.WithContext
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(string(logger.RequestIDKey), rid)
		c.Header(RequestIDHeader, rid)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), logger.RequestIDKey, rid))

		c.Next()
	}
}
