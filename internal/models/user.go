package models

import "time"

// UserType distinguishes diners from chefs sharing the same account shape.
type UserType string

const (
	UserTypeUser UserType = "user"
	UserTypeChef UserType = "chef"
)

type User struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	Address            string    `json:"address"`
	UserType           UserType  `json:"userType"`
	CreatedAt          time.Time `json:"createdAt"`
	LoyaltyPoints      int       `json:"loyaltyPoints"`
	TotalBookings      int       `json:"totalBookings"`
	PreferredLanguage  Language  `json:"preferredLanguage"`
	DietaryPreferences []string  `json:"dietaryPreferences"`
	Allergens          []string  `json:"allergens"`
	KitchenRating      float64   `json:"kitchenRating"`
	BehaviorRating     float64   `json:"behaviorRating"`
	CorporateAccount   bool      `json:"corporateAccount"`
	Subscriptions      []string  `json:"subscriptions"`
}

// Language is the UI language selection carried in the snapshot.
type Language string

const (
	LanguageEN Language = "en"
	LanguageAZ Language = "az"
	LanguageRU Language = "ru"
)

func (l Language) Valid() bool {
	switch l {
	case LanguageEN, LanguageAZ, LanguageRU:
		return true
	}
	return false
}
