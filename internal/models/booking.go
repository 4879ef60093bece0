package models

import "time"

// BookingStatus is the progression of a booking from request to finished meal.
type BookingStatus string

const (
	BookingPending     BookingStatus = "pending"
	BookingConfirmed   BookingStatus = "confirmed"
	BookingChefEnRoute BookingStatus = "chef-en-route"
	BookingChefArrived BookingStatus = "chef-arrived"
	BookingCooking     BookingStatus = "cooking"
	BookingCompleted   BookingStatus = "completed"
	BookingCancelled   BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingChefEnRoute,
		BookingChefArrived, BookingCooking, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// legalPredecessors maps each status to the statuses it may be entered from.
var legalPredecessors = map[BookingStatus][]BookingStatus{
	BookingConfirmed:   {BookingPending},
	BookingChefEnRoute: {BookingConfirmed},
	BookingChefArrived: {BookingChefEnRoute},
	BookingCooking:     {BookingChefArrived},
	BookingCompleted:   {BookingCooking},
	BookingCancelled:   {BookingPending, BookingConfirmed},
}

// CanTransition reports whether moving from s to next is a legal step.
// Setting the same status again is allowed.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	if s == next {
		return true
	}
	for _, from := range legalPredecessors[next] {
		if from == s {
			return true
		}
	}
	return false
}

type MealType string

const (
	MealHomeStyle    MealType = "home-style"
	MealDietFriendly MealType = "diet-friendly"
	MealGourmet      MealType = "gourmet"
	MealEvent        MealType = "event"
)

func (m MealType) Valid() bool {
	switch m {
	case MealHomeStyle, MealDietFriendly, MealGourmet, MealEvent:
		return true
	}
	return false
}

type IngredientOption string

const (
	IngredientsChefBrings   IngredientOption = "chef-brings"
	IngredientsUserProvides IngredientOption = "user-provides"
)

type Booking struct {
	ID                  string           `json:"id"`
	UserID              string           `json:"userId"`
	ChefID              string           `json:"chefId"`
	MealType            MealType         `json:"mealType"`
	Date                string           `json:"date"`
	Time                string           `json:"time"`
	Duration            int              `json:"duration"`
	TotalPrice          float64          `json:"totalPrice"`
	Status              BookingStatus    `json:"status"`
	Address             string           `json:"address"`
	CreatedAt           time.Time        `json:"createdAt"`
	IngredientOption    IngredientOption `json:"ingredientOption"`
	CleanupRequested    bool             `json:"cleanupRequested"`
	CleanupPrice        float64          `json:"cleanupPrice"`
	TrackingEnabled     bool             `json:"trackingEnabled"`
	ChefLocation        *GeoLocation     `json:"chefLocation,omitempty"`
	EstimatedArrival    string           `json:"estimatedArrival,omitempty"`
	LoyaltyPointsEarned int              `json:"loyaltyPointsEarned"`
	LoyaltyPointsUsed   int              `json:"loyaltyPointsUsed"`
	SubscriptionID      string           `json:"subscriptionId,omitempty"`
	AISuggested         bool             `json:"aiSuggested"`
	InvoiceGenerated    bool             `json:"invoiceGenerated"`
}

// BookingUpdate carries the partial-merge fields accepted by UPDATE_BOOKING.
// Nil pointers mean "leave unchanged".
type BookingUpdate struct {
	MealType            *MealType         `json:"mealType,omitempty"`
	Date                *string           `json:"date,omitempty"`
	Time                *string           `json:"time,omitempty"`
	Duration            *int              `json:"duration,omitempty"`
	TotalPrice          *float64          `json:"totalPrice,omitempty"`
	Status              *BookingStatus    `json:"status,omitempty"`
	Address             *string           `json:"address,omitempty"`
	IngredientOption    *IngredientOption `json:"ingredientOption,omitempty"`
	CleanupRequested    *bool             `json:"cleanupRequested,omitempty"`
	CleanupPrice        *float64          `json:"cleanupPrice,omitempty"`
	TrackingEnabled     *bool             `json:"trackingEnabled,omitempty"`
	ChefLocation        *GeoLocation      `json:"chefLocation,omitempty"`
	EstimatedArrival    *string           `json:"estimatedArrival,omitempty"`
	LoyaltyPointsEarned *int              `json:"loyaltyPointsEarned,omitempty"`
	LoyaltyPointsUsed   *int              `json:"loyaltyPointsUsed,omitempty"`
	SubscriptionID      *string           `json:"subscriptionId,omitempty"`
	AISuggested         *bool             `json:"aiSuggested,omitempty"`
	InvoiceGenerated    *bool             `json:"invoiceGenerated,omitempty"`
}

// Apply merges the set fields of u into b and returns the result.
func (u BookingUpdate) Apply(b Booking) Booking {
	if u.MealType != nil {
		b.MealType = *u.MealType
	}
	if u.Date != nil {
		b.Date = *u.Date
	}
	if u.Time != nil {
		b.Time = *u.Time
	}
	if u.Duration != nil {
		b.Duration = *u.Duration
	}
	if u.TotalPrice != nil {
		b.TotalPrice = *u.TotalPrice
	}
	if u.Status != nil {
		b.Status = *u.Status
	}
	if u.Address != nil {
		b.Address = *u.Address
	}
	if u.IngredientOption != nil {
		b.IngredientOption = *u.IngredientOption
	}
	if u.CleanupRequested != nil {
		b.CleanupRequested = *u.CleanupRequested
	}
	if u.CleanupPrice != nil {
		b.CleanupPrice = *u.CleanupPrice
	}
	if u.TrackingEnabled != nil {
		b.TrackingEnabled = *u.TrackingEnabled
	}
	if u.ChefLocation != nil {
		loc := *u.ChefLocation
		b.ChefLocation = &loc
	}
	if u.EstimatedArrival != nil {
		b.EstimatedArrival = *u.EstimatedArrival
	}
	if u.LoyaltyPointsEarned != nil {
		b.LoyaltyPointsEarned = *u.LoyaltyPointsEarned
	}
	if u.LoyaltyPointsUsed != nil {
		b.LoyaltyPointsUsed = *u.LoyaltyPointsUsed
	}
	if u.SubscriptionID != nil {
		b.SubscriptionID = *u.SubscriptionID
	}
	if u.AISuggested != nil {
		b.AISuggested = *u.AISuggested
	}
	if u.InvoiceGenerated != nil {
		b.InvoiceGenerated = *u.InvoiceGenerated
	}
	return b
}
