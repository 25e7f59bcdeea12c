package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/nestmate/backend/internal/models"
)

const defaultRoomListLimit = 100

// RoomService handles room listing CRUD.
type RoomService struct {
	db *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{db: db}
}

// CreateRoomInput is the room creation payload.
type CreateRoomInput struct {
	OwnerID           uint       `json:"owner_id" binding:"required"`
	LocationID        uint       `json:"location_id"`
	Title             string     `json:"title" binding:"required"`
	Description       string     `json:"description"`
	RentAmount        float64    `json:"rent_amount"`
	DepositAmount     float64    `json:"deposit_amount"`
	Currency          string     `json:"currency"`
	AvailableFrom     *time.Time `json:"available_from"`
	AvailableUntil    *time.Time `json:"available_until"`
	TotalBedrooms     int        `json:"total_bedrooms"`
	TotalBathrooms    float64    `json:"total_bathrooms"`
	RoomSizeSqft      int        `json:"room_size_sqft"`
	IsFurnished       bool       `json:"is_furnished"`
	IsPrivateRoom     bool       `json:"is_private_room"`
	IsPrivateBathroom bool       `json:"is_private_bathroom"`
	IsActive          bool       `json:"is_active"`
}

// UpdateRoomInput is the mutable field set; owner and location are fixed at
// creation time.
type UpdateRoomInput struct {
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	RentAmount        float64    `json:"rent_amount"`
	DepositAmount     float64    `json:"deposit_amount"`
	Currency          string     `json:"currency"`
	AvailableFrom     *time.Time `json:"available_from"`
	AvailableUntil    *time.Time `json:"available_until"`
	TotalBedrooms     int        `json:"total_bedrooms"`
	TotalBathrooms    float64    `json:"total_bathrooms"`
	RoomSizeSqft      int        `json:"room_size_sqft"`
	IsFurnished       bool       `json:"is_furnished"`
	IsPrivateRoom     bool       `json:"is_private_room"`
	IsPrivateBathroom bool       `json:"is_private_bathroom"`
	IsActive          bool       `json:"is_active"`
}

func (s *RoomService) GetByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// List returns rooms newest-first. A non-positive limit falls back to the
// default of 100.
func (s *RoomService) List(ctx context.Context, limit int) ([]models.Room, error) {
	if limit <= 0 {
		limit = defaultRoomListLimit
	}
	rooms := make([]models.Room, 0, limit)
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *RoomService) Create(ctx context.Context, input CreateRoomInput) (*models.Room, error) {
	room := models.Room{
		OwnerID:           input.OwnerID,
		LocationID:        input.LocationID,
		Title:             input.Title,
		Description:       input.Description,
		RentAmount:        input.RentAmount,
		DepositAmount:     input.DepositAmount,
		Currency:          input.Currency,
		AvailableFrom:     input.AvailableFrom,
		AvailableUntil:    input.AvailableUntil,
		TotalBedrooms:     input.TotalBedrooms,
		TotalBathrooms:    input.TotalBathrooms,
		RoomSizeSqft:      input.RoomSizeSqft,
		IsFurnished:       input.IsFurnished,
		IsPrivateRoom:     input.IsPrivateRoom,
		IsPrivateBathroom: input.IsPrivateBathroom,
		IsActive:          input.IsActive,
	}
	if room.Currency == "" {
		room.Currency = "USD"
	}
	if err := s.db.WithContext(ctx).Create(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) Update(ctx context.Context, id uint, input UpdateRoomInput) (*models.Room, error) {
	var room models.Room
	if err := s.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}

	room.Title = input.Title
	room.Description = input.Description
	room.RentAmount = input.RentAmount
	room.DepositAmount = input.DepositAmount
	room.Currency = input.Currency
	room.AvailableFrom = input.AvailableFrom
	room.AvailableUntil = input.AvailableUntil
	room.TotalBedrooms = input.TotalBedrooms
	room.TotalBathrooms = input.TotalBathrooms
	room.RoomSizeSqft = input.RoomSizeSqft
	room.IsFurnished = input.IsFurnished
	room.IsPrivateRoom = input.IsPrivateRoom
	room.IsPrivateBathroom = input.IsPrivateBathroom
	room.IsActive = input.IsActive

	if err := s.db.WithContext(ctx).Save(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Room{}, id).Error
}
