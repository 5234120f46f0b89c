package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/recipfy/recipe-service/config"
	"github.com/recipfy/recipe-service/internal/database"
	"github.com/recipfy/recipe-service/internal/logger"
	"github.com/recipfy/recipe-service/internal/model"
	"github.com/recipfy/recipe-service/internal/repository"
	"github.com/recipfy/recipe-service/internal/service"
)

const defaultBatchSize = 5

var sampleRecipes = []model.Recipe{
	{Name: "Omelette", Description: "Quick breakfast with eggs and chives", Category: "Breakfast", CookingTime: 10},
	{Name: "Pancakes", Description: "Fluffy buttermilk pancakes", Category: "Breakfast", CookingTime: 20},
	{Name: "Overnight Oats", Description: "Oats soaked in milk with berries", Category: "Breakfast", CookingTime: 5},
	{Name: "Minestrone", Description: "Italian vegetable soup with pasta", Category: "Lunch", CookingTime: 45},
	{Name: "Greek Salad", Description: "Tomato, cucumber and feta", Category: "Lunch", CookingTime: 10},
	{Name: "Club Sandwich", Description: "Triple decker with chicken and bacon", Category: "Lunch", CookingTime: 15},
	{Name: "Roast", Description: "Slow Sunday roast with root vegetables", Category: "Dinner", CookingTime: 120},
	{Name: "Risotto", Description: "Creamy mushroom risotto", Category: "Dinner", CookingTime: 40},
	{Name: "Chili", Description: "Spicy beef and bean chili", Category: "Dinner", CookingTime: 90},
	{Name: "Tiramisu", Description: "Coffee soaked ladyfingers with mascarpone", Category: "Dessert", CookingTime: 30},
	{Name: "Brownies", Description: "Fudgy chocolate brownies", Category: "Dessert", CookingTime: 35},
}

func main() {
	file := flag.String("file", "", "JSON file with an array of recipes; built-in samples when empty")
	batchSize := flag.Int("batch", defaultBatchSize, "number of recipes stored per batch")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	appLog := logger.New(cfg)

	recipes := sampleRecipes
	if *file != "" {
		if recipes, err = loadRecipes(*file); err != nil {
			appLog.Fatal().Err(err).Str("file", *file).Msg("failed to read recipes")
		}
	}

	db, err := database.New(cfg, appLog)
	if err != nil {
		appLog.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := database.Migrate(db.DB, appLog); err != nil {
		appLog.Fatal().Err(err).Msg("failed to prepare schema")
	}

	svc := service.NewRecipeService(repository.NewRecipeRepository(db.DB))
	stored := seed(context.Background(), svc, recipes, *batchSize, appLog)
	appLog.Info().Int("stored", stored).Int("total", len(recipes)).Msg("seeding finished")
}

// loadRecipes reads a JSON array of recipes
func loadRecipes(path string) ([]model.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var recipes []model.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return recipes, nil
}

// seed stores recipes in batches and returns how many were stored. A failed
// batch is logged and skipped.
func seed(ctx context.Context, svc service.IRecipeService, recipes []model.Recipe, batchSize int, log zerolog.Logger) int {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	stored := 0
	for i := 0; i < len(recipes); i += batchSize {
		batchEnd := min(i+batchSize, len(recipes))

		log.Info().Int("from", i+1).Int("to", batchEnd).Msg("storing batch of recipes")
		if err := svc.AddAllRecipe(ctx, recipes[i:batchEnd]); err != nil {
			log.Error().Err(err).Int("from", i+1).Int("to", batchEnd).Msg("failed to store batch")
			continue
		}
		stored += batchEnd - i
	}
	return stored
}
