package models

import (
	"time"
)

type Room struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	OwnerID    uint `gorm:"not null;index" json:"owner_id"`
	LocationID uint `json:"location_id"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	RentAmount    float64 `json:"rent_amount"`
	DepositAmount float64 `json:"deposit_amount"`
	Currency      string  `gorm:"size:10;default:'USD'" json:"currency"`

	AvailableFrom  *time.Time `json:"available_from"`
	AvailableUntil *time.Time `json:"available_until"`

	TotalBedrooms  int     `json:"total_bedrooms"`
	TotalBathrooms float64 `json:"total_bathrooms"`
	RoomSizeSqft   int     `json:"room_size_sqft"`

	IsFurnished       bool `json:"is_furnished"`
	IsPrivateRoom     bool `json:"is_private_room"`
	IsPrivateBathroom bool `json:"is_private_bathroom"`
	IsActive          bool `gorm:"not null;default:true" json:"is_active"`
}
