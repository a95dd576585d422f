package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/nutriplan/diet-service/internal/pkg/cuid2"
)

// RequestIDKey is the gin context key holding the request identifier.
const RequestIDKey = "request_id"

// RequestIDHeader is the response header carrying the request identifier.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware assigns each request a unique identifier, honoring an
// incoming X-Request-ID so IDs propagate across services.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = cuid2.Generate("req")
		}
		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// RequestID returns the identifier assigned by RequestIDMiddleware, empty
// when the middleware did not run.
func RequestID(c *gin.Context) string {
	if id, ok := c.Get(RequestIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
