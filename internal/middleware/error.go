package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler logs the errors handlers attached with c.Error and, when the
// handler wrote no body, answers with the generic status text. Panics are
// turned into a 500 with the same body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := zerolog.Ctx(c.Request.Context())

		defer func() {
			if rec := recover(); rec != nil {
				log.Error().Interface("panic", rec).Msg("recovered from panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error: http.StatusText(http.StatusInternalServerError),
				})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}

		for _, ginErr := range c.Errors {
			event := log.Warn()
			if status >= http.StatusInternalServerError {
				event = log.Error()
			}
			event.Err(ginErr.Err).Int("status", status).Msg("request failed")
		}

		// Internal messages stay in the log
		if !c.Writer.Written() {
			c.JSON(status, ErrorResponse{Error: http.StatusText(status)})
		}
	}
}
