package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/recipfy/recipe-service/internal/model"
)

// ErrRecipeNotFound is returned by single-row lookups that match nothing
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeRepository defines the queries available against tab_recipe
type RecipeRepository interface {
	Save(ctx context.Context, recipe *model.Recipe) error
	SaveAll(ctx context.Context, recipes []model.Recipe) error
	FindAll(ctx context.Context) ([]model.Recipe, error)
	FindByID(ctx context.Context, id int64) (*model.Recipe, error)
	FindByName(ctx context.Context, name string) ([]model.Recipe, error)
	FindByCategory(ctx context.Context, category string) ([]model.Recipe, error)
	FindByDescriptionContaining(ctx context.Context, keyword string) ([]model.Recipe, error)
	FindByCookingTimeLessThanEqual(ctx context.Context, cookingTime int64) ([]model.Recipe, error)
	FindByNameAndCategory(ctx context.Context, name, category string) (*model.Recipe, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteByCategory(ctx context.Context, category string) error
}

// GormRecipeRepository implements RecipeRepository on top of gorm
type GormRecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new GormRecipeRepository instance
func NewRecipeRepository(db *gorm.DB) *GormRecipeRepository {
	return &GormRecipeRepository{db: db}
}

// Save inserts a recipe without an id and updates one that has an id.
// An id that matches no row is inserted as-is.
func (r *GormRecipeRepository) Save(ctx context.Context, recipe *model.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

// SaveAll stores every recipe in a single transaction, writing the
// assigned ids back into the slice
func (r *GormRecipeRepository) SaveAll(ctx context.Context, recipes []model.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range recipes {
			if err := tx.Save(&recipes[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormRecipeRepository) FindAll(ctx context.Context) ([]model.Recipe, error) {
	return r.find(ctx, r.db)
}

// FindByID returns ErrRecipeNotFound when no row has the id
func (r *GormRecipeRepository) FindByID(ctx context.Context, id int64) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := r.db.WithContext(ctx).First(&recipe, "rec_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *GormRecipeRepository) FindByName(ctx context.Context, name string) ([]model.Recipe, error) {
	return r.find(ctx, r.db.Where("rec_name = ?", name))
}

func (r *GormRecipeRepository) FindByCategory(ctx context.Context, category string) ([]model.Recipe, error) {
	return r.find(ctx, r.db.Where("rec_category = ?", category))
}

// FindByDescriptionContaining matches keyword literally anywhere in the
// description; LIKE wildcards inside keyword are escaped
func (r *GormRecipeRepository) FindByDescriptionContaining(ctx context.Context, keyword string) ([]model.Recipe, error) {
	pattern := "%" + escapeLike(keyword) + "%"
	return r.find(ctx, r.db.Where(`rec_description LIKE ? ESCAPE '\'`, pattern))
}

func (r *GormRecipeRepository) FindByCookingTimeLessThanEqual(ctx context.Context, cookingTime int64) ([]model.Recipe, error) {
	return r.find(ctx, r.db.Where("rec_cookingtime <= ?", cookingTime))
}

// FindByNameAndCategory returns the first recipe matching both fields, or
// ErrRecipeNotFound
func (r *GormRecipeRepository) FindByNameAndCategory(ctx context.Context, name, category string) (*model.Recipe, error) {
	var recipe model.Recipe
	err := r.db.WithContext(ctx).
		Where("rec_name = ? AND rec_category = ?", name, category).
		Order("rec_id").
		First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// DeleteByID removes the recipe with the id; deleting a missing id is a no-op
func (r *GormRecipeRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Recipe{}, "rec_id = ?", id).Error
}

func (r *GormRecipeRepository) DeleteByCategory(ctx context.Context, category string) error {
	return r.db.WithContext(ctx).Where("rec_category = ?", category).Delete(&model.Recipe{}).Error
}

func (r *GormRecipeRepository) find(ctx context.Context, query *gorm.DB) ([]model.Recipe, error) {
	recipes := []model.Recipe{}
	if err := query.WithContext(ctx).Order("rec_id").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
