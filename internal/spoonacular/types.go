package spoonacular

// Filters holds the search filter selections. Cuisine "Any" and Diet
// "None" are sentinels meaning the filter is omitted from the request.
type Filters struct {
	MaxCalories int
	Cuisine     string
	Diet        string
}

// RecipeSummary is the compact recipe representation returned by a
// search. PricePerServing is kept in provider cents; conversion to
// dollars is a presentation step done by the caller.
type RecipeSummary struct {
	ID              int     `json:"id"`
	Title           string  `json:"title"`
	Image           string  `json:"image"`
	ReadyInMinutes  int     `json:"readyInMinutes"`
	Servings        int     `json:"servings"`
	PricePerServing float64 `json:"pricePerServing"`
}

// RecipeDetail is the full recipe fetched per id. Summary and
// Instructions have already had markup tags stripped; Instructions may
// be empty when the provider has none.
type RecipeDetail struct {
	ID           int
	Title        string
	Image        string
	Summary      string
	Ingredients  []string
	Instructions string
}

type searchResponse struct {
	Results []RecipeSummary `json:"results"`
}

type detailResponse struct {
	ID                  int    `json:"id"`
	Title               string `json:"title"`
	Image               string `json:"image"`
	Summary             string `json:"summary"`
	Instructions        string `json:"instructions"`
	ExtendedIngredients []struct {
		Original string `json:"original"`
	} `json:"extendedIngredients"`
}
