package api

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eddiereese03-a11y/foodapp/internal/models"
)

func TestSaveRecipeRequiresProfile(t *testing.T) {
	a := setupAPI(t, "http://unused")
	db := setupSessionDB(t)
	_, token := a.newSession(t, db)

	w := a.do(http.MethodPost, "/api/v1/saved-recipes", token, SaveRecipeRequest{
		RecipeID:    101,
		RecipeTitle: "Lentil Soup",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w)["error"], "save your profile first")

	var count int64
	require.NoError(t, db.Model(&models.SavedRecipe{}).Count(&count).Error)
	assert.Equal(t, int64(0), count, "rejected save must not mutate the store")
}

func TestSaveRecipeDuplicateIsInformational(t *testing.T) {
	a := setupAPI(t, "http://unused")
	db := setupSessionDB(t)
	sess, token := a.newSession(t, db)
	sess.SetProfile("jo@example.com", 50)

	req := SaveRecipeRequest{
		RecipeID:        101,
		RecipeTitle:     "Lentil Soup",
		RecipeImage:     "http://img/101.jpg",
		PricePerServing: 1.43,
	}

	w := a.do(http.MethodPost, "/api/v1/saved-recipes", token, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = a.do(http.MethodPost, "/api/v1/saved-recipes", token, req)
	assert.Equal(t, http.StatusConflict, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["already_saved"])

	var count int64
	require.NoError(t, db.Model(&models.SavedRecipe{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "exactly one row after a duplicate save")
}

func TestListSavedRecipesNewestFirst(t *testing.T) {
	a := setupAPI(t, "http://unused")
	db := setupSessionDB(t)
	sess, token := a.newSession(t, db)
	sess.SetProfile("jo@example.com", 50)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []int{1, 2, 3} {
		require.NoError(t, db.Create(&models.SavedRecipe{
			UserEmail:   "jo@example.com",
			RecipeID:    id,
			RecipeTitle: "Recipe",
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		}).Error)
	}

	w := a.do(http.MethodGet, "/api/v1/saved-recipes", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	saved := decodeBody(t, w)["saved_recipes"].([]interface{})
	require.Len(t, saved, 3)
	assert.Equal(t, float64(3), saved[0].(map[string]interface{})["recipe_id"])
	assert.Equal(t, float64(1), saved[2].(map[string]interface{})["recipe_id"])
}

func TestListSavedRecipesEmpty(t *testing.T) {
	a := setupAPI(t, "http://unused")
	db := setupSessionDB(t)
	sess, token := a.newSession(t, db)
	sess.SetProfile("jo@example.com", 50)

	w := a.do(http.MethodGet, "/api/v1/saved-recipes", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["saved_recipes"])
}

func TestRemoveSavedRecipe(t *testing.T) {
	a := setupAPI(t, "http://unused")
	db := setupSessionDB(t)
	sess, token := a.newSession(t, db)
	sess.SetProfile("jo@example.com", 50)

	row := models.SavedRecipe{UserEmail: "jo@example.com", RecipeID: 101, RecipeTitle: "Soup"}
	require.NoError(t, db.Create(&row).Error)

	w := a.do(http.MethodDelete, "/api/v1/saved-recipes/"+strconv.FormatUint(uint64(row.ID), 10), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.SavedRecipe{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestRemoveNonexistentSavedRecipe(t *testing.T) {
	a := setupAPI(t, "http://unused")
	db := setupSessionDB(t)
	sess, token := a.newSession(t, db)
	sess.SetProfile("jo@example.com", 50)

	w := a.do(http.MethodDelete, "/api/v1/saved-recipes/7", token, nil)
	assert.Equal(t, http.StatusOK, w.Code, "idempotent delete")
}
