// Package store holds the authoritative in-memory application state and the
// closed set of actions that may change it. All mutation funnels through
// Store.Dispatch; every accepted action produces a fresh snapshot, so a
// snapshot handed to a caller is never modified afterward.
package store

import "github.com/tahirli/sofrachef-backend/internal/models"

// AppState is one immutable snapshot of every domain collection.
type AppState struct {
	CurrentUser     *models.User              `json:"currentUser"`
	Chefs           []models.Chef             `json:"chefs"`
	Bookings        []models.Booking          `json:"bookings"`
	Reviews         []models.Review           `json:"reviews"`
	Subscriptions   []models.Subscription     `json:"subscriptions"`
	LoyaltyRewards  []models.LoyaltyReward    `json:"loyaltyRewards"`
	AISuggestions   []models.AIMenuSuggestion `json:"aiSuggestions"`
	Notifications   []models.Notification     `json:"notifications"`
	Invoices        []models.Invoice          `json:"invoices"`
	Recipes         []models.Recipe           `json:"recipes"`
	MealPlans       []models.MealPlan         `json:"mealPlans"`
	Loading         bool                      `json:"loading"`
	Language        models.Language           `json:"currentLanguage"`
	TrackingEnabled bool                      `json:"trackingEnabled"`
}

// InitialState mirrors the empty state the client app boots with.
func InitialState() AppState {
	return AppState{
		Chefs:           []models.Chef{},
		Bookings:        []models.Booking{},
		Reviews:         []models.Review{},
		Subscriptions:   []models.Subscription{},
		LoyaltyRewards:  []models.LoyaltyReward{},
		AISuggestions:   []models.AIMenuSuggestion{},
		Notifications:   []models.Notification{},
		Invoices:        []models.Invoice{},
		Recipes:         []models.Recipe{},
		MealPlans:       []models.MealPlan{},
		Loading:         false,
		Language:        models.LanguageEN,
		TrackingEnabled: true,
	}
}
