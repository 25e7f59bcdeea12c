package models

import (
	"time"
)

// Preference holds the lifestyle attributes attached 1:1 to a user.
// At most one row exists per user; a missing row just means the user
// has not filled the form in yet.
type Preference struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Cleanliness     string `gorm:"size:50" json:"cleanliness"`
	NoiseTolerance  string `gorm:"size:50" json:"noise_tolerance"`
	GuestsFrequency string `gorm:"size:50" json:"guests_frequency"`
	Partying        string `gorm:"size:50" json:"partying"`
	BedTime         string `gorm:"size:50" json:"bed_time"`
	WakeUpTime      string `gorm:"size:50" json:"wake_up_time"`

	Smoking   bool `json:"smoking"`
	Drinking  bool `json:"drinking"`
	Marijuana bool `json:"marijuana"`

	Cooking         string `gorm:"size:50" json:"cooking"`
	FoodPreferences string `gorm:"size:255" json:"food_preferences"`

	// Big-five trait scores, 1-10.
	Introversion      int `json:"introversion"`
	Openness          int `json:"openness"`
	Conscientiousness int `json:"conscientiousness"`
	Agreeableness     int `json:"agreeableness"`
	Neuroticism       int `json:"neuroticism"`

	PreferredGenders string `gorm:"size:100" json:"preferred_genders"`
	AgePrefMin       int    `json:"age_pref_min"`
	AgePrefMax       int    `json:"age_pref_max"`
	LgbtqFriendly    bool   `json:"lgbtq_friendly"`
	WorkSchedule     string `gorm:"size:50" json:"work_schedule"`
	HomeFrequency    string `gorm:"size:50" json:"home_frequency"`
}
