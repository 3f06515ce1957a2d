package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eddiereese03-a11y/foodapp/internal/models"
	"github.com/eddiereese03-a11y/foodapp/internal/store"
)

// SaveRecipe stores one recipe for the session's profile email. Saving
// a recipe that is already saved is an informational outcome, not a
// failure.
func (h *Handler) SaveRecipe(c *gin.Context) {
	sess, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	email := sess.ProfileEmail()
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please save your profile first"})
		return
	}

	var req SaveRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved := store.NewSavedRecipeStore(sess.DB())
	err := saved.Save(c.Request.Context(), &models.SavedRecipe{
		UserEmail:       email,
		RecipeID:        req.RecipeID,
		RecipeTitle:     req.RecipeTitle,
		RecipeImage:     req.RecipeImage,
		PricePerServing: req.PricePerServing,
	})
	if errors.Is(err, store.ErrDuplicate) {
		c.JSON(http.StatusConflict, gin.H{"message": "Recipe already saved", "already_saved": true})
		return
	}
	if err != nil {
		h.logger.Warn("recipe save failed", zap.String("session_id", sess.ID.String()), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error saving recipe. Please try again."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Recipe saved"})
}

// ListSavedRecipes returns the session user's saved recipes, most
// recent first. An empty list is a normal result.
func (h *Handler) ListSavedRecipes(c *gin.Context) {
	sess, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	email := sess.ProfileEmail()
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please save your profile to view saved recipes"})
		return
	}

	saved := store.NewSavedRecipeStore(sess.DB())
	recipes, err := saved.List(c.Request.Context(), email)
	if err != nil {
		h.logger.Warn("saved recipe list failed", zap.String("session_id", sess.ID.String()), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error loading saved recipes. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved_recipes": recipes})
}

// RemoveSavedRecipe deletes one saved recipe by its store id. Removing
// an id that no longer exists still succeeds.
func (h *Handler) RemoveSavedRecipe(c *gin.Context) {
	sess, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid saved recipe id"})
		return
	}

	saved := store.NewSavedRecipeStore(sess.DB())
	if err := saved.Remove(c.Request.Context(), uint(id)); err != nil {
		h.logger.Warn("saved recipe remove failed", zap.String("session_id", sess.ID.String()), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error removing recipe. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe removed"})
}
