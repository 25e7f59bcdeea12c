package models

import (
	"time"
)

type User struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Email         string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string    `gorm:"not null" json:"-"`
	FullName      string    `gorm:"not null" json:"full_name"`
	Age           int       `json:"age"`
	Gender        string    `gorm:"size:50" json:"gender"`
	ProfileURL    string    `gorm:"size:255" json:"profile_url"`
	PhoneNumber   string    `gorm:"size:50" json:"phone_number"`
	Bio           string    `gorm:"type:text" json:"bio"`
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
	EmailVerified bool      `gorm:"not null;default:false" json:"email_verified"`

	// Deleting a user removes everything hanging off it.
	Preference *Preference   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Amenities  []UserAmenity `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Rooms      []Room        `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}
