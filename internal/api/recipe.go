package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/recipfy/recipe-service/internal/model"
	"github.com/recipfy/recipe-service/internal/service"
)

var (
	errMissingBody  = errors.New("request body is required")
	errMissingQuery = errors.New("required query parameter is missing")
)

// RecipeHandler exposes the recipe service over HTTP
type RecipeHandler struct {
	recipeService service.IRecipeService
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(recipeService service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// RegisterRoutes mounts the recipe routes under /recipe. The two segment
// lookup reads its first segment as the category.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipe")
	{
		recipes.GET("/all", h.ListRecipes)
		recipes.GET("/id", h.GetRecipeByID)
		recipes.GET("/desc/all/:keyword", h.SearchByDescription)
		recipes.GET("/category/:name", h.ListByCategory)
		recipes.GET("/:term", h.ListByName)
		recipes.GET("/:term/:name", h.GetByCategoryAndName)

		recipes.POST("/save", h.SaveRecipe)
		recipes.POST("/save-all", h.SaveAllRecipes)

		recipes.DELETE("/delete/:id", h.DeleteRecipe)
		recipes.DELETE("/delete", h.DeleteByCategory)

		recipes.PUT("/update", h.UpdateDescription)
		recipes.PUT("/update/category", h.UpdateCategory)
	}
}

// ListRecipes returns every recipe, or only those that cook within
// cookingTime minutes when it is positive
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	cookingTime, err := strconv.ParseInt(c.DefaultQuery("cookingTime", "0"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Errorf("invalid cookingTime: %w", err))
		return
	}

	var recipes []model.Recipe
	if cookingTime <= 0 {
		recipes, err = h.recipeService.GetAllRecipes(c.Request.Context())
	} else {
		recipes, err = h.recipeService.GetRecipesByCookingTimeLessThanOrEqual(c.Request.Context(), cookingTime)
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) ListByName(c *gin.Context) {
	recipes, err := h.recipeService.GetRecipeByName(c.Request.Context(), c.Param("term"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) GetByCategoryAndName(c *gin.Context) {
	recipe, err := h.recipeService.GetRecipeByCategoryAndName(c.Request.Context(), c.Param("name"), c.Param("term"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) SearchByDescription(c *gin.Context) {
	recipes, err := h.recipeService.GetRecipesByDescriptionContaining(c.Request.Context(), c.Param("keyword"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) GetRecipeByID(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}

	recipe, err := h.recipeService.GetRecipeByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) ListByCategory(c *gin.Context) {
	recipes, err := h.recipeService.GetRecipeByCategory(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// SaveRecipe upserts one recipe. A JSON null body reaches the service as a
// nil recipe.
func (h *RecipeHandler) SaveRecipe(c *gin.Context) {
	recipe, err := decodeRecipe(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	if _, err := h.recipeService.AddRecipe(c.Request.Context(), recipe); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *RecipeHandler) SaveAllRecipes(c *gin.Context) {
	var recipes []model.Recipe
	if err := c.ShouldBindJSON(&recipes); err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	if err := h.recipeService.AddAllRecipe(c.Request.Context(), recipes); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Errorf("invalid id: %w", err))
		return
	}

	if err := h.recipeService.DeleteRecipeByID(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *RecipeHandler) DeleteByCategory(c *gin.Context) {
	category, ok := c.GetQuery("category")
	if !ok {
		abortWithError(c, http.StatusBadRequest, fmt.Errorf("%w: category", errMissingQuery))
		return
	}

	if err := h.recipeService.DeleteRecipesByCategory(c.Request.Context(), category); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// UpdateDescription copies only the description of the body onto the
// stored recipe
func (h *RecipeHandler) UpdateDescription(c *gin.Context) {
	id, body, ok := updateRequest(c)
	if !ok {
		return
	}

	if _, err := h.recipeService.UpdateRecipeDescriptionByID(c.Request.Context(), id, body.Description); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// UpdateCategory copies only the category of the body onto the stored recipe
func (h *RecipeHandler) UpdateCategory(c *gin.Context) {
	id, body, ok := updateRequest(c)
	if !ok {
		return
	}

	if _, err := h.recipeService.UpdateRecipeCategoryByID(c.Request.Context(), id, body.Category); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// fail maps service errors onto a status. Validation failures stay 500.
func (h *RecipeHandler) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, service.ErrRecipeNotFound) {
		status = http.StatusNotFound
	}
	abortWithError(c, status, err)
}

// abortWithError records err for the error middleware, which writes the body
func abortWithError(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.Status(status)
	c.Abort()
}

func queryID(c *gin.Context) (int64, bool) {
	raw, ok := c.GetQuery("id")
	if !ok {
		abortWithError(c, http.StatusBadRequest, fmt.Errorf("%w: id", errMissingQuery))
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Errorf("invalid id: %w", err))
		return 0, false
	}
	return id, true
}

func updateRequest(c *gin.Context) (int64, *model.Recipe, bool) {
	id, ok := queryID(c)
	if !ok {
		return 0, nil, false
	}

	body, err := decodeRecipe(c)
	if err == nil && body == nil {
		err = errMissingBody
	}
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return 0, nil, false
	}
	return id, body, true
}

// decodeRecipe reads the JSON body, returning nil for a literal null
func decodeRecipe(c *gin.Context) (*model.Recipe, error) {
	if c.Request.Body == nil {
		return nil, errMissingBody
	}

	var recipe *model.Recipe
	if err := json.NewDecoder(c.Request.Body).Decode(&recipe); err != nil {
		return nil, fmt.Errorf("invalid recipe body: %w", err)
	}
	return recipe, nil
}
