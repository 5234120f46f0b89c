package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/recipfy/recipe-service/config"
	"github.com/recipfy/recipe-service/internal/api"
	"github.com/recipfy/recipe-service/internal/database"
	"github.com/recipfy/recipe-service/internal/middleware"
)

// SetupRouter configures the middleware chain and the application routes
func SetupRouter(cfg *config.Config, db *database.DB, log zerolog.Logger) *gin.Engine {
	switch {
	case cfg.Env.IsProduction():
		gin.SetMode(gin.ReleaseMode)
	case cfg.Env.IsTest():
		gin.SetMode(gin.TestMode)
	}

	router := gin.New()

	// RequestLogger must run before ErrorHandler, which logs through the
	// request scoped logger
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.ErrorHandler(),
		middleware.CORS(cfg.Server.AllowedOrigins()),
	)

	api.SetupAPI(router, db)
	return router
}
