package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nestmate/backend/internal/models"
)

// UserService handles user CRUD over the store.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// CreateUserInput carries the registration payload. The plaintext password is
// hashed here and discarded; it never reaches the store.
type CreateUserInput struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	FullName    string `json:"full_name" binding:"required"`
	Age         int    `json:"age"`
	Gender      string `json:"gender"`
	ProfileURL  string `json:"profile_url"`
	PhoneNumber string `json:"phone_number"`
	Bio         string `json:"bio"`
}

// UpdateUserInput is the full mutable field set. PUT replaces all of it.
type UpdateUserInput struct {
	FullName      string `json:"full_name"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	ProfileURL    string `json:"profile_url"`
	PhoneNumber   string `json:"phone_number"`
	Bio           string `json:"bio"`
	IsActive      bool   `json:"is_active"`
	EmailVerified bool   `json:"email_verified"`
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        input.Email,
		PasswordHash: string(hashed),
		FullName:     input.FullName,
		Age:          input.Age,
		Gender:       input.Gender,
		ProfileURL:   input.ProfileURL,
		PhoneNumber:  input.PhoneNumber,
		Bio:          input.Bio,
		IsActive:     true,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Update replaces the mutable field set and returns the updated row, or
// gorm.ErrRecordNotFound when the id matches nothing.
func (s *UserService) Update(ctx context.Context, id uint, input UpdateUserInput) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}

	user.FullName = input.FullName
	user.Age = input.Age
	user.Gender = input.Gender
	user.ProfileURL = input.ProfileURL
	user.PhoneNumber = input.PhoneNumber
	user.Bio = input.Bio
	user.IsActive = input.IsActive
	user.EmailVerified = input.EmailVerified

	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes the user and, through the association constraints, the
// preferences, amenities and rooms hanging off it. Deleting a missing id
// is not an error.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&models.User{ID: id}).Error
}
