package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eddiereese03-a11y/foodapp/internal/session"
	"github.com/eddiereese03-a11y/foodapp/internal/spoonacular"
)

// SearchRecipes runs one provider search and, on success, replaces the
// session's held results. A failed search leaves the session state
// untouched.
func (h *Handler) SearchRecipes(c *gin.Context) {
	sess, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Searching from under an open detail view is not a legal
	// transition; reject before spending a provider call.
	if st := sess.State(); st != session.StateIdle && st != session.StateResultsShown {
		c.JSON(http.StatusConflict, gin.H{"error": "Close the recipe details before searching again"})
		return
	}

	results, err := h.recipes.Search(c.Request.Context(), sess.SearchKey(), spoonacular.Filters{
		MaxCalories: req.MaxCalories,
		Cuisine:     req.Cuisine,
		Diet:        req.Diet,
	})
	if err != nil {
		h.renderProviderError(c, "search", err)
		return
	}

	if err := sess.ShowResults(results); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	summaries := make([]RecipeSummaryResponse, 0, len(results))
	for _, r := range results {
		summaries = append(summaries, toSummaryResponse(r))
	}

	h.logger.Info("search completed",
		zap.String("session_id", sess.ID.String()),
		zap.Int("results", len(summaries)))

	c.JSON(http.StatusOK, gin.H{
		"results": summaries,
		"state":   sess.State(),
	})
}

// GetRecipeDetail fetches the full recipe for one id from the current
// results and opens the detail view over them. The results list is kept
// so closing the detail returns to it unchanged.
func (h *Handler) GetRecipeDetail(c *gin.Context) {
	sess, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	recipeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if sess.State() != session.StateResultsShown {
		c.JSON(http.StatusConflict, gin.H{"error": "Search for recipes first"})
		return
	}
	if !sess.HasResult(recipeID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe is not in the current results"})
		return
	}

	detail, err := h.recipes.GetDetail(c.Request.Context(), sess.SearchKey(), recipeID)
	if err != nil {
		h.renderProviderError(c, "detail", err)
		return
	}

	if err := sess.SelectRecipe(recipeID); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipe": RecipeDetailResponse{
			ID:                    detail.ID,
			Title:                 detail.Title,
			Image:                 detail.Image,
			Summary:               detail.Summary,
			Ingredients:           detail.Ingredients,
			Instructions:          detail.Instructions,
			InstructionsAvailable: detail.Instructions != "",
		},
		"state": sess.State(),
	})
}

// CloseDetail returns from the detail view to the prior results.
func (h *Handler) CloseDetail(c *gin.Context) {
	sess, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	if err := sess.CloseDetail(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": sess.State()})
}
