package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/eddiereese03-a11y/foodapp/internal/models"
)

// SavedRecipeStore manages the saved_recipes rows for a user.
type SavedRecipeStore struct {
	db *gorm.DB
}

// NewSavedRecipeStore creates a new SavedRecipeStore instance.
func NewSavedRecipeStore(db *gorm.DB) *SavedRecipeStore {
	return &SavedRecipeStore{db: db}
}

// Save inserts one saved-recipe row. A unique-constraint violation on
// (user_email, recipe_id) is reported as ErrDuplicate; the row count in
// the store does not change in that case.
func (s *SavedRecipeStore) Save(ctx context.Context, recipe *models.SavedRecipe) error {
	err := s.db.WithContext(ctx).Create(recipe).Error
	if isDuplicate(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to save recipe: %w", err)
	}
	return nil
}

// isDuplicate detects a unique-constraint violation structurally, via
// gorm's translated sentinel or the driver's SQLSTATE, never by
// matching message text.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// List returns the rows for an email ordered most-recent-first. An
// empty slice is a valid result.
func (s *SavedRecipeStore) List(ctx context.Context, userEmail string) ([]models.SavedRecipe, error) {
	var recipes []models.SavedRecipe
	err := s.db.WithContext(ctx).
		Where("user_email = ?", userEmail).
		Order("created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list saved recipes: %w", err)
	}
	return recipes, nil
}

// Remove deletes one row by its generated id. Removing an id that does
// not exist is not an error.
func (s *SavedRecipeStore) Remove(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Delete(&models.SavedRecipe{}, id).Error
	if err != nil {
		return fmt.Errorf("failed to remove saved recipe: %w", err)
	}
	return nil
}
