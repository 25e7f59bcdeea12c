package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nestmate/backend/internal/models"
	"github.com/nestmate/backend/internal/service"
	"github.com/nestmate/backend/internal/testhelpers"
)

func samplePreference() models.Preference {
	return models.Preference{
		Cleanliness:       "clean",
		NoiseTolerance:    "low",
		GuestsFrequency:   "sometimes",
		Partying:          "never",
		BedTime:           "23:00",
		WakeUpTime:        "07:00",
		Smoking:           false,
		Drinking:          true,
		Marijuana:         false,
		Cooking:           "daily",
		FoodPreferences:   "vegetarian",
		Introversion:      6,
		Openness:          8,
		Conscientiousness: 7,
		Agreeableness:     9,
		Neuroticism:       2,
		PreferredGenders:  "no-preference",
		AgePrefMin:        21,
		AgePrefMax:        40,
		LgbtqFriendly:     true,
		WorkSchedule:      "9-5",
		HomeFrequency:     "most-evenings",
	}
}

func TestPreferenceUpsertCreates(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	prefs := service.NewPreferenceService(db)
	ctx := context.Background()

	saved, err := prefs.Upsert(ctx, 7, samplePreference())
	require.NoError(t, err)

	require.NotZero(t, saved.ID)
	require.Equal(t, uint(7), saved.UserID)
	require.Equal(t, "clean", saved.Cleanliness)
	require.Equal(t, 40, saved.AgePrefMax)

	got, err := prefs.GetByUserID(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, saved.ID, got.ID)
}

func TestPreferenceUpsertIsIdempotent(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	prefs := service.NewPreferenceService(db)
	ctx := context.Background()

	first, err := prefs.Upsert(ctx, 3, samplePreference())
	require.NoError(t, err)
	second, err := prefs.Upsert(ctx, 3, samplePreference())
	require.NoError(t, err)

	require.Equal(t, first.ID, second.ID)
	require.Equal(t, first.Cleanliness, second.Cleanliness)
	require.Equal(t, first.Neuroticism, second.Neuroticism)

	// Still exactly one row for the user.
	var count int64
	require.NoError(t, db.Model(&models.Preference{}).Where("user_id = ?", 3).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestPreferenceUpsertReplacesAllFields(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	prefs := service.NewPreferenceService(db)
	ctx := context.Background()

	_, err := prefs.Upsert(ctx, 5, samplePreference())
	require.NoError(t, err)

	changed := samplePreference()
	changed.Cleanliness = "relaxed"
	changed.Smoking = true
	changed.AgePrefMin = 30
	changed.WorkSchedule = "nights"

	saved, err := prefs.Upsert(ctx, 5, changed)
	require.NoError(t, err)

	require.Equal(t, "relaxed", saved.Cleanliness)
	require.True(t, saved.Smoking)
	require.Equal(t, 30, saved.AgePrefMin)
	require.Equal(t, "nights", saved.WorkSchedule)
}

func TestPreferenceGetMissing(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	prefs := service.NewPreferenceService(db)

	_, err := prefs.GetByUserID(context.Background(), 404)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
