package service

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nestmate/backend/internal/models"
)

// PreferenceService handles the 1:1 lifestyle preferences attached to users.
type PreferenceService struct {
	db *gorm.DB
}

func NewPreferenceService(db *gorm.DB) *PreferenceService {
	return &PreferenceService{db: db}
}

func (s *PreferenceService) GetByUserID(ctx context.Context, userID uint) (*models.Preference, error) {
	var pref models.Preference
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&pref).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}

// preferenceColumns is the full attribute set written on conflict. Keeping it
// explicit means a new column does not silently join the upsert.
var preferenceColumns = []string{
	"cleanliness", "noise_tolerance", "guests_frequency", "partying",
	"bed_time", "wake_up_time", "smoking", "drinking", "marijuana",
	"cooking", "food_preferences", "introversion", "openness",
	"conscientiousness", "agreeableness", "neuroticism",
	"preferred_genders", "age_pref_min", "age_pref_max",
	"lgbtq_friendly", "work_schedule", "home_frequency", "updated_at",
}

// Upsert writes the full preference set for a user in a single atomic
// statement keyed on user_id, so concurrent first-time submissions cannot
// race into duplicate rows.
func (s *PreferenceService) Upsert(ctx context.Context, userID uint, pref models.Preference) (*models.Preference, error) {
	pref.ID = 0
	pref.UserID = userID

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns(preferenceColumns),
	}).Create(&pref).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the update path returns the row's real id and timestamps.
	return s.GetByUserID(ctx, userID)
}
