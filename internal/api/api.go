package api

import (
	"github.com/gin-gonic/gin"

	"github.com/recipfy/recipe-service/internal/database"
	"github.com/recipfy/recipe-service/internal/repository"
	"github.com/recipfy/recipe-service/internal/service"
)

// BasePath prefixes every recipe route
const BasePath = "/api/v1/service"

// SetupAPI wires the recipe stack on top of db and registers every route
func SetupAPI(router *gin.Engine, db *database.DB) {
	recipeService := service.NewRecipeService(repository.NewRecipeRepository(db.DB))
	RegisterRoutes(router, db, recipeService)
}
