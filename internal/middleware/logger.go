package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestLogger attaches a request scoped logger to the request context and
// writes one line per request once it completes
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqLog := log.With().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Logger()
		c.Request = c.Request.WithContext(reqLog.WithContext(c.Request.Context()))

		c.Next()

		status := c.Writer.Status()
		var event *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			event = reqLog.Error()
		case status >= http.StatusBadRequest:
			event = reqLog.Warn()
		default:
			event = reqLog.Info()
		}

		event.
			Str("query", c.Request.URL.RawQuery).
			Int("status", status).
			Int("size", c.Writer.Size()).
			Str("client_ip", c.ClientIP()).
			Dur("latency", time.Since(start)).
			Msg("request handled")
	}
}
