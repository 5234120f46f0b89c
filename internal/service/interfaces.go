package service

import (
	"context"

	"github.com/recipfy/recipe-service/internal/model"
)

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	GetAllRecipes(ctx context.Context) ([]model.Recipe, error)
	AddRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error)
	AddAllRecipe(ctx context.Context, recipes []model.Recipe) error
	GetRecipeByName(ctx context.Context, name string) ([]model.Recipe, error)
	GetRecipeByCategory(ctx context.Context, category string) ([]model.Recipe, error)
	GetRecipeByID(ctx context.Context, id int64) (*model.Recipe, error)
	GetRecipesByDescriptionContaining(ctx context.Context, keyword string) ([]model.Recipe, error)
	GetRecipesByCookingTimeLessThanOrEqual(ctx context.Context, maxCookingTime int64) ([]model.Recipe, error)
	GetRecipeByCategoryAndName(ctx context.Context, name, category string) (*model.Recipe, error)
	DeleteRecipeByID(ctx context.Context, id int64) error
	DeleteRecipesByCategory(ctx context.Context, category string) error
	UpdateRecipeDescriptionByID(ctx context.Context, id int64, description string) (*model.Recipe, error)
	UpdateRecipeCategoryByID(ctx context.Context, id int64, category string) (*model.Recipe, error)
}
