package service

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nestmate/backend/internal/models"
)

// AmenityService manages the amenity label set attached to each user.
type AmenityService struct {
	db *gorm.DB
}

func NewAmenityService(db *gorm.DB) *AmenityService {
	return &AmenityService{db: db}
}

// ListByUserID returns the user's amenity labels. Ordered alphabetically so
// output is stable across calls.
func (s *AmenityService) ListByUserID(ctx context.Context, userID uint) ([]string, error) {
	amenities := make([]string, 0)
	err := s.db.WithContext(ctx).
		Model(&models.UserAmenity{}).
		Where("user_id = ?", userID).
		Order("amenity").
		Pluck("amenity", &amenities).Error
	if err != nil {
		return nil, err
	}
	return amenities, nil
}

// Add inserts the (user, amenity) pair. A duplicate add is a silent no-op;
// the pair ends up in the set exactly once either way.
func (s *AmenityService) Add(ctx context.Context, userID uint, amenity string) error {
	row := models.UserAmenity{UserID: userID, Amenity: amenity}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "amenity"}},
		DoNothing: true,
	}).Create(&row).Error
}

// Remove deletes the pair if present. Removing an absent pair is not an error.
func (s *AmenityService) Remove(ctx context.Context, userID uint, amenity string) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND amenity = ?", userID, amenity).
		Delete(&models.UserAmenity{}).Error
}
