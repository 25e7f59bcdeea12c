package main

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/nestmate/backend/config"
	"github.com/nestmate/backend/internal/database"
	"github.com/nestmate/backend/internal/models"
)

// Seeds a handful of demo users with preferences, amenities and room
// listings so the frontend has something to browse against a fresh database.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("demopassword123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	users := []models.User{
		{
			Email:         "maya.chen@example.com",
			PasswordHash:  string(hashed),
			FullName:      "Maya Chen",
			Age:           27,
			Gender:        "female",
			Bio:           "Grad student, early riser, keeps the kitchen spotless.",
			IsActive:      true,
			EmailVerified: true,
		},
		{
			Email:         "diego.alvarez@example.com",
			PasswordHash:  string(hashed),
			FullName:      "Diego Alvarez",
			Age:           31,
			Gender:        "male",
			Bio:           "Nurse on rotating shifts, quiet and rarely home.",
			IsActive:      true,
			EmailVerified: true,
		},
		{
			Email:         "sam.okafor@example.com",
			PasswordHash:  string(hashed),
			FullName:      "Sam Okafor",
			Age:           24,
			Gender:        "non-binary",
			Bio:           "Remote developer with two spare rooms to fill.",
			IsActive:      true,
			EmailVerified: false,
		},
	}

	for i := range users {
		if err := db.Where("email = ?", users[i].Email).FirstOrCreate(&users[i]).Error; err != nil {
			log.Fatalf("Failed to seed user %s: %v", users[i].Email, err)
		}
	}

	prefs := []models.Preference{
		{
			UserID:            users[0].ID,
			Cleanliness:       "clean",
			NoiseTolerance:    "low",
			GuestsFrequency:   "sometimes",
			Partying:          "never",
			BedTime:           "22:30",
			WakeUpTime:        "06:30",
			Cooking:           "daily",
			FoodPreferences:   "vegetarian",
			Introversion:      7,
			Openness:          6,
			Conscientiousness: 9,
			Agreeableness:     7,
			Neuroticism:       3,
			PreferredGenders:  "no-preference",
			AgePrefMin:        22,
			AgePrefMax:        35,
			LgbtqFriendly:     true,
			WorkSchedule:      "9-5",
			HomeFrequency:     "most-evenings",
		},
		{
			UserID:           users[1].ID,
			Cleanliness:      "moderate",
			NoiseTolerance:   "medium",
			GuestsFrequency:  "never",
			Partying:         "never",
			BedTime:          "irregular",
			WakeUpTime:       "irregular",
			Drinking:         true,
			Cooking:          "rarely",
			Introversion:     8,
			Openness:         5,
			PreferredGenders: "no-preference",
			AgePrefMin:       25,
			AgePrefMax:       45,
			LgbtqFriendly:    true,
			WorkSchedule:     "shifts",
			HomeFrequency:    "rarely-home",
		},
	}

	for i := range prefs {
		if err := db.Where("user_id = ?", prefs[i].UserID).FirstOrCreate(&prefs[i]).Error; err != nil {
			log.Fatalf("Failed to seed preferences for user %d: %v", prefs[i].UserID, err)
		}
	}

	amenities := []models.UserAmenity{
		{UserID: users[0].ID, Amenity: "wifi"},
		{UserID: users[0].ID, Amenity: "washer"},
		{UserID: users[2].ID, Amenity: "wifi"},
		{UserID: users[2].ID, Amenity: "parking"},
		{UserID: users[2].ID, Amenity: "dishwasher"},
	}

	for i := range amenities {
		err := db.Where("user_id = ? AND amenity = ?", amenities[i].UserID, amenities[i].Amenity).
			FirstOrCreate(&amenities[i]).Error
		if err != nil {
			log.Fatalf("Failed to seed amenity: %v", err)
		}
	}

	availableFrom := time.Now().AddDate(0, 1, 0)
	rooms := []models.Room{
		{
			OwnerID:           users[2].ID,
			Title:             "Sunny room near the park",
			Description:       "Second-floor room with big windows, shared kitchen and garden.",
			RentAmount:        850,
			DepositAmount:     850,
			Currency:          "USD",
			AvailableFrom:     &availableFrom,
			TotalBedrooms:     3,
			TotalBathrooms:    1.5,
			RoomSizeSqft:      140,
			IsFurnished:       true,
			IsPrivateRoom:     true,
			IsPrivateBathroom: false,
			IsActive:          true,
		},
		{
			OwnerID:        users[2].ID,
			Title:          "Quiet basement studio",
			Description:    "Separate entrance, suits someone who works nights.",
			RentAmount:     700,
			DepositAmount:  350,
			Currency:       "USD",
			TotalBedrooms:  1,
			TotalBathrooms: 1,
			RoomSizeSqft:   320,
			IsPrivateRoom:  true,
			IsActive:       true,
		},
	}

	for i := range rooms {
		err := db.Where("owner_id = ? AND title = ?", rooms[i].OwnerID, rooms[i].Title).
			FirstOrCreate(&rooms[i]).Error
		if err != nil {
			log.Fatalf("Failed to seed room %q: %v", rooms[i].Title, err)
		}
	}

	log.Printf("Seeded %d users, %d preference rows, %d amenities, %d rooms",
		len(users), len(prefs), len(amenities), len(rooms))
}
