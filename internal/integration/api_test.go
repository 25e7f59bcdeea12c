package integration_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestmate/backend/internal/api"
	"github.com/nestmate/backend/internal/middleware"
	"github.com/nestmate/backend/internal/router"
	"github.com/nestmate/backend/internal/service"
	"github.com/nestmate/backend/internal/testhelpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestAPI wires the real services over an in-memory store behind the real
// router, so requests exercise the whole stack short of Postgres and Redis.
func newTestAPI(t *testing.T) http.Handler {
	t.Helper()

	db := testhelpers.NewTestDB(t)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	users := service.NewUserService(db)
	rooms := service.NewRoomService(db)
	preferences := service.NewPreferenceService(db)
	amenities := service.NewAmenityService(db)
	auth := service.NewAuthService(users, nil, "integration-secret")

	handlers := router.Handlers{
		Health:      api.NewHealthHandler(db, logger),
		Users:       api.NewUserHandler(users, logger),
		Rooms:       api.NewRoomHandler(rooms, logger),
		Preferences: api.NewPreferenceHandler(preferences, logger),
		Amenities:   api.NewAmenityHandler(amenities, logger),
		Auth:        api.NewAuthHandler(auth, users, logger),
	}

	var limiter *middleware.RateLimiter
	return router.SetupRouter(handlers, auth, limiter, "http://localhost:5173")
}

func do(t *testing.T, handler http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthEndpoint(t *testing.T) {
	handler := newTestAPI(t)

	w := do(t, handler, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestUserLifecycle(t *testing.T) {
	handler := newTestAPI(t)

	created := do(t, handler, http.MethodPost, "/api/users",
		`{"email":"alice@example.com","password":"supersecret","full_name":"Alice","age":28}`, nil)
	require.Equal(t, http.StatusCreated, created.Code)
	id := decode(t, created)["id"].(float64)
	assert.NotContains(t, created.Body.String(), "supersecret")

	fetched := do(t, handler, http.MethodGet, fmt.Sprintf("/api/users/%.0f", id), "", nil)
	require.Equal(t, http.StatusOK, fetched.Code)
	assert.Equal(t, "alice@example.com", decode(t, fetched)["email"])

	updated := do(t, handler, http.MethodPut, fmt.Sprintf("/api/users/%.0f", id),
		`{"full_name":"Alice Updated","age":29,"is_active":true}`, nil)
	require.Equal(t, http.StatusOK, updated.Code)
	assert.Equal(t, "Alice Updated", decode(t, updated)["full_name"])

	deleted := do(t, handler, http.MethodDelete, fmt.Sprintf("/api/users/%.0f", id), "", nil)
	require.Equal(t, http.StatusNoContent, deleted.Code)

	gone := do(t, handler, http.MethodGet, fmt.Sprintf("/api/users/%.0f", id), "", nil)
	require.Equal(t, http.StatusNotFound, gone.Code)
}

func TestPreferenceUpsertFlow(t *testing.T) {
	handler := newTestAPI(t)

	created := do(t, handler, http.MethodPost, "/api/users",
		`{"email":"bob@example.com","password":"supersecret","full_name":"Bob"}`, nil)
	require.Equal(t, http.StatusCreated, created.Code)
	id := decode(t, created)["id"].(float64)
	path := fmt.Sprintf("/api/preferences/%.0f", id)

	missing := do(t, handler, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusNotFound, missing.Code)

	first := do(t, handler, http.MethodPost, path,
		`{"cleanliness":"clean","bed_time":"23:00","age_pref_min":21,"age_pref_max":35}`, nil)
	require.Equal(t, http.StatusOK, first.Code)
	firstID := decode(t, first)["id"]

	second := do(t, handler, http.MethodPost, path,
		`{"cleanliness":"relaxed","bed_time":"01:00","age_pref_min":21,"age_pref_max":35}`, nil)
	require.Equal(t, http.StatusOK, second.Code)
	secondBody := decode(t, second)
	// Same row both times, fully replaced.
	assert.Equal(t, firstID, secondBody["id"])
	assert.Equal(t, "relaxed", secondBody["cleanliness"])

	fetched := do(t, handler, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, fetched.Code)
	assert.Equal(t, "relaxed", decode(t, fetched)["cleanliness"])
}

func TestAmenitySetSemantics(t *testing.T) {
	handler := newTestAPI(t)

	created := do(t, handler, http.MethodPost, "/api/users",
		`{"email":"carol@example.com","password":"supersecret","full_name":"Carol"}`, nil)
	require.Equal(t, http.StatusCreated, created.Code)
	id := decode(t, created)["id"].(float64)
	path := fmt.Sprintf("/api/user-amenities/%.0f", id)

	for i := 0; i < 2; i++ {
		w := do(t, handler, http.MethodPost, path, `{"amenity":"wifi"}`, nil)
		require.Equal(t, http.StatusCreated, w.Code)
	}
	w := do(t, handler, http.MethodPost, path, `{"amenity":"parking"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	list := do(t, handler, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, list.Code)
	assert.JSONEq(t, `["parking","wifi"]`, list.Body.String())

	removed := do(t, handler, http.MethodDelete, path+"/wifi", "", nil)
	require.Equal(t, http.StatusNoContent, removed.Code)

	list = do(t, handler, http.MethodGet, path, "", nil)
	assert.JSONEq(t, `["parking"]`, list.Body.String())
}

func TestRoomLifecycleWithOwnership(t *testing.T) {
	handler := newTestAPI(t)

	owner := do(t, handler, http.MethodPost, "/api/auth/register",
		`{"email":"owner@example.com","password":"supersecret","full_name":"Owner"}`, nil)
	require.Equal(t, http.StatusCreated, owner.Code)
	ownerBody := decode(t, owner)
	ownerToken := ownerBody["token"].(string)
	ownerID := ownerBody["user"].(map[string]interface{})["id"].(float64)

	intruder := do(t, handler, http.MethodPost, "/api/auth/register",
		`{"email":"intruder@example.com","password":"supersecret","full_name":"Intruder"}`, nil)
	require.Equal(t, http.StatusCreated, intruder.Code)
	intruderToken := decode(t, intruder)["token"].(string)

	created := do(t, handler, http.MethodPost, "/api/rooms",
		fmt.Sprintf(`{"owner_id":%.0f,"title":"Sunny room","rent_amount":800,"is_active":true}`, ownerID), nil)
	require.Equal(t, http.StatusCreated, created.Code)
	roomBody := decode(t, created)
	roomID := roomBody["id"].(float64)
	assert.Equal(t, "USD", roomBody["currency"])

	roomPath := fmt.Sprintf("/api/rooms/%.0f", roomID)

	forbidden := do(t, handler, http.MethodPut, roomPath, `{"title":"Mine now"}`,
		map[string]string{"Authorization": "Bearer " + intruderToken})
	require.Equal(t, http.StatusForbidden, forbidden.Code)

	updated := do(t, handler, http.MethodPut, roomPath,
		`{"title":"Still sunny","rent_amount":850,"currency":"USD","is_active":true}`,
		map[string]string{"Authorization": "Bearer " + ownerToken})
	require.Equal(t, http.StatusOK, updated.Code)
	assert.Equal(t, "Still sunny", decode(t, updated)["title"])

	list := do(t, handler, http.MethodGet, "/api/rooms", "", nil)
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), "Still sunny")

	deleted := do(t, handler, http.MethodDelete, roomPath, "",
		map[string]string{"Authorization": "Bearer " + ownerToken})
	require.Equal(t, http.StatusNoContent, deleted.Code)

	gone := do(t, handler, http.MethodGet, roomPath, "", nil)
	require.Equal(t, http.StatusNotFound, gone.Code)
}

func TestAuthSessionFlow(t *testing.T) {
	handler := newTestAPI(t)

	registered := do(t, handler, http.MethodPost, "/api/auth/register",
		`{"email":"dave@example.com","password":"supersecret","full_name":"Dave"}`, nil)
	require.Equal(t, http.StatusCreated, registered.Code)

	duplicate := do(t, handler, http.MethodPost, "/api/auth/register",
		`{"email":"dave@example.com","password":"supersecret","full_name":"Dave"}`, nil)
	require.Equal(t, http.StatusConflict, duplicate.Code)

	badLogin := do(t, handler, http.MethodPost, "/api/auth/login",
		`{"email":"dave@example.com","password":"wrong"}`, nil)
	require.Equal(t, http.StatusUnauthorized, badLogin.Code)

	login := do(t, handler, http.MethodPost, "/api/auth/login",
		`{"email":"dave@example.com","password":"supersecret"}`, nil)
	require.Equal(t, http.StatusOK, login.Code)
	token := decode(t, login)["token"].(string)

	me := do(t, handler, http.MethodGet, "/api/auth/me", "",
		map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusOK, me.Code)
	assert.Equal(t, "dave@example.com", decode(t, me)["email"])

	anonymous := do(t, handler, http.MethodGet, "/api/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, anonymous.Code)
}

func TestRequestIDHeader(t *testing.T) {
	handler := newTestAPI(t)

	w := do(t, handler, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
