package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/recipfy/recipe-service/internal/model"
)

// MockRecipeRepository is a mock implementation of the recipe repository
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Save(ctx context.Context, recipe *model.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) SaveAll(ctx context.Context, recipes []model.Recipe) error {
	args := m.Called(ctx, recipes)
	return args.Error(0)
}

func (m *MockRecipeRepository) FindAll(ctx context.Context) ([]model.Recipe, error) {
	args := m.Called(ctx)
	return recipes(args.Get(0)), args.Error(1)
}

func (m *MockRecipeRepository) FindByID(ctx context.Context, id int64) (*model.Recipe, error) {
	args := m.Called(ctx, id)
	return recipe(args.Get(0)), args.Error(1)
}

func (m *MockRecipeRepository) FindByName(ctx context.Context, name string) ([]model.Recipe, error) {
	args := m.Called(ctx, name)
	return recipes(args.Get(0)), args.Error(1)
}

func (m *MockRecipeRepository) FindByCategory(ctx context.Context, category string) ([]model.Recipe, error) {
	args := m.Called(ctx, category)
	return recipes(args.Get(0)), args.Error(1)
}

func (m *MockRecipeRepository) FindByDescriptionContaining(ctx context.Context, keyword string) ([]model.Recipe, error) {
	args := m.Called(ctx, keyword)
	return recipes(args.Get(0)), args.Error(1)
}

func (m *MockRecipeRepository) FindByCookingTimeLessThanEqual(ctx context.Context, cookingTime int64) ([]model.Recipe, error) {
	args := m.Called(ctx, cookingTime)
	return recipes(args.Get(0)), args.Error(1)
}

func (m *MockRecipeRepository) FindByNameAndCategory(ctx context.Context, name, category string) (*model.Recipe, error) {
	args := m.Called(ctx, name, category)
	return recipe(args.Get(0)), args.Error(1)
}

func (m *MockRecipeRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecipeRepository) DeleteByCategory(ctx context.Context, category string) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) GetAllRecipes(ctx context.Context) ([]model.Recipe, error) {
	args := m.Called(ctx)
	return recipes(args.Get(0)), args.Error(1)
}

func (m *MockRecipeService) AddRecipe(ctx context.Context, r *model.Recipe) (*model.Recipe, error) {
	args := m.Called(ctx, r)
	return recipe(args.Get(0)), args.Error(1)
}

func (m *MockRecipeService) AddAllRecipe(ctx context.Context, list []model.Recipe) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockRecipeService) GetRecipeByName(ctx context.Context, name string) ([]model.Recipe, error) {
	args := m.Called(ctx, name)
	return recipes(args.Get(0)), args.Error(1)
}

func (m *MockRecipeService) GetRecipeByCategory(ctx context.Context, category string) ([]model.Recipe, error) {
	args := m.Called(ctx, category)
	return recipes(args.Get(0)), args.Error(1)
}

func (m *MockRecipeService) GetRecipeByID(ctx context.Context, id int64) (*model.Recipe, error) {
	args := m.Called(ctx, id)
	return recipe(args.Get(0)), args.Error(1)
}

func (m *MockRecipeService) GetRecipesByDescriptionContaining(ctx context.Context, keyword string) ([]model.Recipe, error) {
	args := m.Called(ctx, keyword)
	return recipes(args.Get(0)), args.Error(1)
}

func (m *MockRecipeService) GetRecipesByCookingTimeLessThanOrEqual(ctx context.Context, maxCookingTime int64) ([]model.Recipe, error) {
	args := m.Called(ctx, maxCookingTime)
	return recipes(args.Get(0)), args.Error(1)
}

func (m *MockRecipeService) GetRecipeByCategoryAndName(ctx context.Context, name, category string) (*model.Recipe, error) {
	args := m.Called(ctx, name, category)
	return recipe(args.Get(0)), args.Error(1)
}

func (m *MockRecipeService) DeleteRecipeByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecipeService) DeleteRecipesByCategory(ctx context.Context, category string) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockRecipeService) UpdateRecipeDescriptionByID(ctx context.Context, id int64, description string) (*model.Recipe, error) {
	args := m.Called(ctx, id, description)
	return recipe(args.Get(0)), args.Error(1)
}

func (m *MockRecipeService) UpdateRecipeCategoryByID(ctx context.Context, id int64, category string) (*model.Recipe, error) {
	args := m.Called(ctx, id, category)
	return recipe(args.Get(0)), args.Error(1)
}

func recipe(v interface{}) *model.Recipe {
	if v == nil {
		return nil
	}
	return v.(*model.Recipe)
}

func recipes(v interface{}) []model.Recipe {
	if v == nil {
		return nil
	}
	return v.([]model.Recipe)
}
