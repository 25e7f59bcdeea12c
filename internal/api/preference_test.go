package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nestmate/backend/internal/api"
	"github.com/nestmate/backend/internal/models"
	"github.com/nestmate/backend/internal/testhelpers"
)

func setupPreferenceRoutes(prefs *testhelpers.MockPreferenceService) http.Handler {
	router, group := newTestRouter()
	api.NewPreferenceHandler(prefs, testLogger()).RegisterRoutes(group)
	return router
}

func TestGetPreferences(t *testing.T) {
	prefs := new(testhelpers.MockPreferenceService)
	router := setupPreferenceRoutes(prefs)

	prefs.On("GetByUserID", mock.Anything, uint(7)).Return(&models.Preference{
		ID:          3,
		UserID:      7,
		Cleanliness: "clean",
		BedTime:     "23:00",
	}, nil)

	w := performRequest(router, http.MethodGet, "/api/preferences/7", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"cleanliness":"clean"`)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestGetPreferencesNotFound(t *testing.T) {
	prefs := new(testhelpers.MockPreferenceService)
	router := setupPreferenceRoutes(prefs)

	prefs.On("GetByUserID", mock.Anything, uint(12)).Return(nil, gorm.ErrRecordNotFound)

	w := performRequest(router, http.MethodGet, "/api/preferences/12", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "preferences not found")
}

func TestGetPreferencesInvalidUserID(t *testing.T) {
	prefs := new(testhelpers.MockPreferenceService)
	router := setupPreferenceRoutes(prefs)

	w := performRequest(router, http.MethodGet, "/api/preferences/zero", "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	prefs.AssertNotCalled(t, "GetByUserID")
}

func TestUpsertPreferences(t *testing.T) {
	prefs := new(testhelpers.MockPreferenceService)
	router := setupPreferenceRoutes(prefs)

	prefs.On("Upsert", mock.Anything, uint(7), mock.MatchedBy(func(p models.Preference) bool {
		return p.Cleanliness == "relaxed" && p.Smoking && p.AgePrefMax == 35
	})).Return(&models.Preference{
		ID:          3,
		UserID:      7,
		Cleanliness: "relaxed",
		Smoking:     true,
		AgePrefMax:  35,
	}, nil)

	body := `{"cleanliness":"relaxed","smoking":true,"age_pref_max":35}`
	w := performRequest(router, http.MethodPost, "/api/preferences/7", body, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"cleanliness":"relaxed"`)
	prefs.AssertExpectations(t)
}

func TestUpsertPreferencesInvalidBody(t *testing.T) {
	prefs := new(testhelpers.MockPreferenceService)
	router := setupPreferenceRoutes(prefs)

	w := performRequest(router, http.MethodPost, "/api/preferences/7", `not json`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	prefs.AssertNotCalled(t, "Upsert")
}
