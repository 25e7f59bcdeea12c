package testhelpers

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/nestmate/backend/internal/models"
	"github.com/nestmate/backend/internal/service"
	"github.com/nestmate/backend/internal/types"
)

// MockUserService is a testify mock for the user service surface.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, input service.CreateUserInput) (*models.User, error) {
	args := m.Called(ctx, input)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id uint, input service.UpdateUserInput) (*models.User, error) {
	args := m.Called(ctx, id, input)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRoomService is a testify mock for the room service surface.
type MockRoomService struct {
	mock.Mock
}

func (m *MockRoomService) GetByID(ctx context.Context, id uint) (*models.Room, error) {
	args := m.Called(ctx, id)
	room, _ := args.Get(0).(*models.Room)
	return room, args.Error(1)
}

func (m *MockRoomService) List(ctx context.Context, limit int) ([]models.Room, error) {
	args := m.Called(ctx, limit)
	rooms, _ := args.Get(0).([]models.Room)
	return rooms, args.Error(1)
}

func (m *MockRoomService) Create(ctx context.Context, input service.CreateRoomInput) (*models.Room, error) {
	args := m.Called(ctx, input)
	room, _ := args.Get(0).(*models.Room)
	return room, args.Error(1)
}

func (m *MockRoomService) Update(ctx context.Context, id uint, input service.UpdateRoomInput) (*models.Room, error) {
	args := m.Called(ctx, id, input)
	room, _ := args.Get(0).(*models.Room)
	return room, args.Error(1)
}

func (m *MockRoomService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPreferenceService is a testify mock for the preference service surface.
type MockPreferenceService struct {
	mock.Mock
}

func (m *MockPreferenceService) GetByUserID(ctx context.Context, userID uint) (*models.Preference, error) {
	args := m.Called(ctx, userID)
	pref, _ := args.Get(0).(*models.Preference)
	return pref, args.Error(1)
}

func (m *MockPreferenceService) Upsert(ctx context.Context, userID uint, pref models.Preference) (*models.Preference, error) {
	args := m.Called(ctx, userID, pref)
	saved, _ := args.Get(0).(*models.Preference)
	return saved, args.Error(1)
}

// MockAmenityService is a testify mock for the amenity service surface.
type MockAmenityService struct {
	mock.Mock
}

func (m *MockAmenityService) ListByUserID(ctx context.Context, userID uint) ([]string, error) {
	args := m.Called(ctx, userID)
	amenities, _ := args.Get(0).([]string)
	return amenities, args.Error(1)
}

func (m *MockAmenityService) Add(ctx context.Context, userID uint, amenity string) error {
	args := m.Called(ctx, userID, amenity)
	return args.Error(0)
}

func (m *MockAmenityService) Remove(ctx context.Context, userID uint, amenity string) error {
	args := m.Called(ctx, userID, amenity)
	return args.Error(0)
}

// MockAuthService is a testify mock for the auth service surface.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, input service.CreateUserInput) (string, *models.User, error) {
	args := m.Called(ctx, input)
	user, _ := args.Get(1).(*models.User)
	return args.String(0), user, args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	args := m.Called(ctx, email, password)
	user, _ := args.Get(1).(*models.User)
	return args.String(0), user, args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, claims *types.TokenClaims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}

func (m *MockAuthService) ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error) {
	args := m.Called(ctx, token)
	claims, _ := args.Get(0).(*types.TokenClaims)
	return claims, args.Error(1)
}

// MockPhotoService is a testify mock for the photo service surface.
type MockPhotoService struct {
	mock.Mock
}

func (m *MockPhotoService) Upload(ctx context.Context, kind, filename string, body io.Reader) (string, error) {
	args := m.Called(ctx, kind, filename, body)
	return args.String(0), args.Error(1)
}
