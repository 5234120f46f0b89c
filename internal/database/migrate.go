package database

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/recipfy/recipe-service/internal/model"
)

// postgresSchema creates tab_recipe with ids drawn from the recipe_id sequence
var postgresSchema = []string{
	fmt.Sprintf(`CREATE SEQUENCE IF NOT EXISTS %s START WITH 1`, model.RecipeSequence),
	fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS tab_recipe (
			rec_id BIGINT PRIMARY KEY DEFAULT nextval('%s'),
			rec_name TEXT,
			rec_description TEXT,
			rec_category TEXT,
			rec_cookingtime BIGINT
		)`, model.RecipeSequence),
	fmt.Sprintf(`ALTER SEQUENCE %s OWNED BY tab_recipe.rec_id`, model.RecipeSequence),
}

// Migrate makes sure the recipe table exists
func Migrate(db *gorm.DB, log zerolog.Logger) error {
	if db.Dialector.Name() != "postgres" {
		log.Info().Str("dialect", db.Dialector.Name()).Msg("using gorm auto-migration")
		return db.AutoMigrate(&model.Recipe{})
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range postgresSchema {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("failed to prepare recipe schema: %w", err)
			}
		}
		log.Info().Msg("recipe schema ready")
		return nil
	})
}
