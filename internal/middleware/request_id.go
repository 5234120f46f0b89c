package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request correlation id
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key holding the id
	RequestIDKey = "request_id"
)

// RequestID reuses an incoming X-Request-ID or generates one, and echoes
// it on the response
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID returns the request id, or "" outside RequestID
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
