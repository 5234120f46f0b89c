package model

// RecipeSequence is the PostgreSQL sequence that hands out recipe ids.
const RecipeSequence = "recipe_id"

// Recipe is the only persisted entity. Column names follow the tab_recipe
// schema the service has always used.
type Recipe struct {
	ID          int64  `gorm:"column:rec_id;primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"column:rec_name" json:"name"`
	Description string `gorm:"column:rec_description" json:"description"`
	Category    string `gorm:"column:rec_category" json:"category"`
	CookingTime int64  `gorm:"column:rec_cookingtime" json:"cookingTime"`
}

// TableName overrides the gorm default table name
func (Recipe) TableName() string {
	return "tab_recipe"
}

// NewRecipe builds a recipe that has not been stored yet
func NewRecipe(name, description, category string, cookingTime int64) *Recipe {
	return &Recipe{
		Name:        name,
		Description: description,
		Category:    category,
		CookingTime: cookingTime,
	}
}
