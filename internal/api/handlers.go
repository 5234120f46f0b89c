package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/recipfy/recipe-service/internal/service"
)

const healthTimeout = 2 * time.Second

// Pinger reports whether a dependency is reachable
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler reports liveness and database reachability
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.db.HealthCheck(ctx); err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("database health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "down",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "up",
	})
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, db Pinger, recipeService service.IRecipeService) {
	health := NewHealthHandler(db)
	router.GET("/health", health.HealthCheck)
	router.GET("/api/health", health.HealthCheck)

	NewRecipeHandler(recipeService).RegisterRoutes(router.Group(BasePath))
}
