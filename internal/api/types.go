package api

import "github.com/eddiereese03-a11y/foodapp/internal/spoonacular"

// CredentialsRequest carries the three session secrets. They are held
// in the session only, never in configuration or on disk.
type CredentialsRequest struct {
	StoreEndpoint string `json:"store_endpoint" binding:"required"`
	StoreKey      string `json:"store_key" binding:"required"`
	SearchAPIKey  string `json:"search_api_key" binding:"required"`
}

// SearchRequest mirrors the filter controls. "Any" and "None" are the
// sentinel selections that omit the cuisine and diet filters.
type SearchRequest struct {
	MaxCalories int    `json:"max_calories" binding:"required,min=100,max=1000"`
	Cuisine     string `json:"cuisine" binding:"omitempty,oneof=Any American Asian European Mexican Mediterranean Italian"`
	Diet        string `json:"diet" binding:"omitempty,oneof=None Vegetarian Vegan 'Gluten Free' Ketogenic"`
}

// ProfileRequest is the profile upsert payload.
type ProfileRequest struct {
	Email   string  `json:"email" binding:"required,email"`
	ZipCode string  `json:"zip_code" binding:"required"`
	Budget  float64 `json:"budget" binding:"required,gt=0"`
}

// SaveRecipeRequest saves one recipe from the current results. Price is
// in dollars, as rendered in the search response.
type SaveRecipeRequest struct {
	RecipeID        int     `json:"recipe_id" binding:"required"`
	RecipeTitle     string  `json:"recipe_title" binding:"required"`
	RecipeImage     string  `json:"recipe_image"`
	PricePerServing float64 `json:"price_per_serving"`
}

// RecipeSummaryResponse is one search result with the provider's cent
// price converted to dollars for display.
type RecipeSummaryResponse struct {
	ID              int     `json:"id"`
	Title           string  `json:"title"`
	Image           string  `json:"image,omitempty"`
	ReadyInMinutes  int     `json:"ready_in_minutes,omitempty"`
	Servings        int     `json:"servings,omitempty"`
	PricePerServing float64 `json:"price_per_serving"`
}

func toSummaryResponse(r spoonacular.RecipeSummary) RecipeSummaryResponse {
	return RecipeSummaryResponse{
		ID:              r.ID,
		Title:           r.Title,
		Image:           r.Image,
		ReadyInMinutes:  r.ReadyInMinutes,
		Servings:        r.Servings,
		PricePerServing: r.PricePerServing / 100,
	}
}

// RecipeDetailResponse is the full recipe view. Instructions may be
// absent; that is informational, not an error.
type RecipeDetailResponse struct {
	ID                    int      `json:"id"`
	Title                 string   `json:"title"`
	Image                 string   `json:"image,omitempty"`
	Summary               string   `json:"summary,omitempty"`
	Ingredients           []string `json:"ingredients"`
	Instructions          string   `json:"instructions,omitempty"`
	InstructionsAvailable bool     `json:"instructions_available"`
}
