package models

import (
	"time"
)

// UserAmenity is a fact table row pairing a user with a free-text
// amenity label. The (user_id, amenity) pair is unique; adding the
// same pair twice is a no-op at the store level.
type UserAmenity struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_amenity" json:"user_id"`
	Amenity   string    `gorm:"size:100;not null;uniqueIndex:idx_user_amenity" json:"amenity"`
	CreatedAt time.Time `json:"created_at"`
}
