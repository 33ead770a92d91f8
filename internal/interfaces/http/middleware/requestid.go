package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the canonical request ID header. Incoming values are
// propagated; absent ones are generated.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the gin context key for the request ID.
const requestIDKey = "request_id"

// RequestID assigns every request a stable ID for log correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the request ID assigned by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

//Personal.AI order the ending
