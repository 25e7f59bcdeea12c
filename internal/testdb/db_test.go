package testdb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nestmate/backend/internal/models"
	"github.com/nestmate/backend/internal/service"
	"github.com/nestmate/backend/internal/testdb"
)

// Exercises the conflict-target SQL against real Postgres, which the SQLite
// unit suite cannot fully vouch for.
func TestPostgresPreferenceUpsert(t *testing.T) {
	testdb.SkipWithoutDocker(t)

	tdb := testdb.SetupTestDB(t)
	ctx := context.Background()

	users := service.NewUserService(tdb.DB)
	prefs := service.NewPreferenceService(tdb.DB)

	user, err := users.Create(ctx, service.CreateUserInput{
		Email:    "pg@example.com",
		Password: "supersecret",
		FullName: "PG User",
	})
	require.NoError(t, err)

	first, err := prefs.Upsert(ctx, user.ID, models.Preference{Cleanliness: "clean"})
	require.NoError(t, err)

	second, err := prefs.Upsert(ctx, user.ID, models.Preference{Cleanliness: "relaxed"})
	require.NoError(t, err)

	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "relaxed", second.Cleanliness)
}

func TestPostgresAmenityConflict(t *testing.T) {
	testdb.SkipWithoutDocker(t)

	tdb := testdb.SetupTestDB(t)
	ctx := context.Background()

	users := service.NewUserService(tdb.DB)
	amenities := service.NewAmenityService(tdb.DB)

	user, err := users.Create(ctx, service.CreateUserInput{
		Email:    "pg2@example.com",
		Password: "supersecret",
		FullName: "PG User",
	})
	require.NoError(t, err)

	require.NoError(t, amenities.Add(ctx, user.ID, "wifi"))
	require.NoError(t, amenities.Add(ctx, user.ID, "wifi"))

	got, err := amenities.ListByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"wifi"}, got)
}
