package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/recipfy/recipe-service/internal/model"
	"github.com/recipfy/recipe-service/internal/repository"
)

var (
	// ErrInvalidArgument reports a missing required argument
	ErrInvalidArgument = errors.New("argument can not be empty")
	// ErrOutOfRange reports a numeric argument that is zero or negative
	ErrOutOfRange = errors.New("argument must be greater than zero")
	// ErrRecipeNotFound reports a lookup that matched no recipe
	ErrRecipeNotFound = repository.ErrRecipeNotFound
)

// RecipeService handles recipe operations
type RecipeService struct {
	repo repository.RecipeRepository
}

var _ IRecipeService = (*RecipeService)(nil)

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(repo repository.RecipeRepository) *RecipeService {
	return &RecipeService{repo: repo}
}

// GetAllRecipes lists every stored recipe
func (s *RecipeService) GetAllRecipes(ctx context.Context) ([]model.Recipe, error) {
	return s.repo.FindAll(ctx)
}

// AddRecipe inserts or updates a recipe and returns the stored entity
func (s *RecipeService) AddRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	if recipe == nil {
		return nil, fmt.Errorf("%w: recipe", ErrInvalidArgument)
	}
	if err := s.repo.Save(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to save recipe: %w", err)
	}
	return recipe, nil
}

// AddAllRecipe inserts or updates every recipe in the list
func (s *RecipeService) AddAllRecipe(ctx context.Context, recipes []model.Recipe) error {
	if err := s.repo.SaveAll(ctx, recipes); err != nil {
		return fmt.Errorf("failed to save recipes: %w", err)
	}
	return nil
}

// GetRecipeByName returns every recipe with the given name
func (s *RecipeService) GetRecipeByName(ctx context.Context, name string) ([]model.Recipe, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name", ErrInvalidArgument)
	}
	return s.repo.FindByName(ctx, name)
}

// GetRecipeByCategory returns the recipes in a category
func (s *RecipeService) GetRecipeByCategory(ctx context.Context, category string) ([]model.Recipe, error) {
	if category == "" {
		return nil, fmt.Errorf("%w: category", ErrInvalidArgument)
	}
	return s.repo.FindByCategory(ctx, category)
}

// GetRecipeByID retrieves a recipe by ID, or ErrRecipeNotFound
func (s *RecipeService) GetRecipeByID(ctx context.Context, id int64) (*model.Recipe, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id %d", ErrOutOfRange, id)
	}
	return s.repo.FindByID(ctx, id)
}

// GetRecipesByDescriptionContaining returns recipes whose description
// contains keyword
func (s *RecipeService) GetRecipesByDescriptionContaining(ctx context.Context, keyword string) ([]model.Recipe, error) {
	return s.repo.FindByDescriptionContaining(ctx, keyword)
}

// GetRecipesByCookingTimeLessThanOrEqual returns recipes that take at most
// maxCookingTime minutes
func (s *RecipeService) GetRecipesByCookingTimeLessThanOrEqual(ctx context.Context, maxCookingTime int64) ([]model.Recipe, error) {
	if maxCookingTime <= 0 {
		return nil, fmt.Errorf("%w: cooking time %d", ErrOutOfRange, maxCookingTime)
	}
	return s.repo.FindByCookingTimeLessThanEqual(ctx, maxCookingTime)
}

// GetRecipeByCategoryAndName returns the recipe matching both name and
// category, or ErrRecipeNotFound
func (s *RecipeService) GetRecipeByCategoryAndName(ctx context.Context, name, category string) (*model.Recipe, error) {
	return s.repo.FindByNameAndCategory(ctx, name, category)
}

// DeleteRecipeByID deletes a recipe
func (s *RecipeService) DeleteRecipeByID(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id %d", ErrOutOfRange, id)
	}
	return s.repo.DeleteByID(ctx, id)
}

// DeleteRecipesByCategory deletes every recipe in a category
func (s *RecipeService) DeleteRecipesByCategory(ctx context.Context, category string) error {
	if category == "" {
		return fmt.Errorf("%w: category", ErrInvalidArgument)
	}
	return s.repo.DeleteByCategory(ctx, category)
}

// UpdateRecipeDescriptionByID replaces only the description of a stored recipe
func (s *RecipeService) UpdateRecipeDescriptionByID(ctx context.Context, id int64, description string) (*model.Recipe, error) {
	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	recipe.Description = description
	if err := s.repo.Save(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to update recipe %d: %w", id, err)
	}
	return recipe, nil
}

// UpdateRecipeCategoryByID moves a stored recipe to another category
func (s *RecipeService) UpdateRecipeCategoryByID(ctx context.Context, id int64, category string) (*model.Recipe, error) {
	if id <= 0 || category == "" {
		return nil, fmt.Errorf("%w: id must be greater than zero and category can not be empty", ErrInvalidArgument)
	}

	recipe, err := s.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	recipe.Category = category
	if err := s.repo.Save(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to update recipe %d: %w", id, err)
	}
	return recipe, nil
}
