package models

import "time"

type Chef struct {
	ID                   string           `json:"id"`
	Name                 string           `json:"name"`
	Email                string           `json:"email"`
	Phone                string           `json:"phone"`
	ProfileImage         string           `json:"profileImage"`
	Bio                  string           `json:"bio"`
	Specialties          []string         `json:"specialties"`
	Rating               float64          `json:"rating"`
	ReviewCount          int              `json:"reviewCount"`
	PriceRange           string           `json:"priceRange"`
	Location             string           `json:"location"`
	Availability         []TimeSlot       `json:"availability"`
	IsAvailable          bool             `json:"isAvailable"`
	ExperienceYears      int              `json:"experienceYears"`
	Verified             bool             `json:"verified"`
	BackgroundChecked    bool             `json:"backgroundChecked"`
	Badges               []Badge          `json:"badges"`
	Languages            []Language       `json:"languages"`
	BringsIngredients    bool             `json:"bringsIngredients"`
	OffersCleanup        bool             `json:"offersCleanup"`
	CleanupPrice         float64          `json:"cleanupPrice"`
	LiveStreamingEnabled bool             `json:"liveStreamingEnabled"`
	SocialMediaLinks     SocialMediaLinks `json:"socialMediaLinks"`
	CurrentLocation      *GeoLocation     `json:"currentLocation,omitempty"`
	UserRating           float64          `json:"userRating"`
}

// TimeSlot is one bookable window in a chef's availability calendar.
type TimeSlot struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsBooked  bool   `json:"isBooked"`
}

type Badge struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	EarnedAt    time.Time `json:"earnedAt"`
}

type SocialMediaLinks struct {
	Instagram string `json:"instagram,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
}

// GeoLocation is a point position reported while a chef is en route.
type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}
