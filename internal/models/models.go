package models

import (
	"time"
)

// User is a profile row in the hosted store, keyed by email. Saving a
// profile for an existing email replaces zip code and budget in place.
type User struct {
	Email     string    `gorm:"column:email;primaryKey;size:255" json:"email"`
	ZipCode   string    `gorm:"column:zip_code;size:10;not null" json:"zip_code"`
	Budget    float64   `gorm:"column:budget;not null" json:"budget"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// SavedRecipe associates a user email with one provider recipe. The
// (user_email, recipe_id) pair is unique so a second save of the same
// recipe surfaces as a constraint violation, not a duplicate row.
type SavedRecipe struct {
	ID              uint      `gorm:"column:id;primaryKey" json:"id"`
	UserEmail       string    `gorm:"column:user_email;size:255;not null;uniqueIndex:idx_saved_user_recipe" json:"user_email"`
	RecipeID        int       `gorm:"column:recipe_id;not null;uniqueIndex:idx_saved_user_recipe" json:"recipe_id"`
	RecipeTitle     string    `gorm:"column:recipe_title;size:255;not null" json:"recipe_title"`
	RecipeImage     string    `gorm:"column:recipe_image;size:255" json:"recipe_image"`
	PricePerServing float64   `gorm:"column:price_per_serving" json:"price_per_serving"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
}

func (SavedRecipe) TableName() string {
	return "saved_recipes"
}
