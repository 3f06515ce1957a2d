package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/eddiereese03-a11y/foodapp/internal/models"
)

// ProfileStore upserts user profiles keyed by email.
type ProfileStore struct {
	db *gorm.DB
}

// NewProfileStore creates a new ProfileStore instance.
func NewProfileStore(db *gorm.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// SaveProfile inserts or replaces the profile for the given email. The
// caller validates the fields before this is reached; the guard here is
// a backstop so an empty record can never touch the store.
func (s *ProfileStore) SaveProfile(ctx context.Context, email, zipCode string, budget float64) error {
	if email == "" || zipCode == "" || budget <= 0 {
		return errors.New("email, zip code and budget are all required")
	}

	user := models.User{
		Email:   email,
		ZipCode: zipCode,
		Budget:  budget,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"zip_code", "budget", "updated_at"}),
	}).Create(&user).Error
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetProfile fetches the profile for an email, or nil when none exists.
func (s *ProfileStore) GetProfile(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &user, nil
}
