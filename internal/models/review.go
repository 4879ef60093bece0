package models

import "time"

// ReviewType tells which direction a review runs and therefore which
// category block is populated.
type ReviewType string

const (
	ReviewUserToChef ReviewType = "user-to-chef"
	ReviewChefToUser ReviewType = "chef-to-user"
)

func (t ReviewType) Valid() bool {
	return t == ReviewUserToChef || t == ReviewChefToUser
}

type Review struct {
	ID        string     `json:"id"`
	BookingID string     `json:"bookingId"`
	UserID    string     `json:"userId"`
	ChefID    string     `json:"chefId"`
	Rating    int        `json:"rating"`
	Comment   string     `json:"comment"`
	CreatedAt time.Time  `json:"createdAt"`
	Type      ReviewType `json:"type"`

	// Exactly one of the two category blocks is set, matching Type.
	ChefCategories *ChefReviewCategories `json:"chefCategories,omitempty"`
	UserCategories *UserReviewCategories `json:"userCategories,omitempty"`
}

// ChefReviewCategories scores a chef, filled on user-to-chef reviews.
type ChefReviewCategories struct {
	FoodQuality     int `json:"foodQuality"`
	Punctuality     int `json:"punctuality"`
	Professionalism int `json:"professionalism"`
	Cleanliness     int `json:"cleanliness"`
	Communication   int `json:"communication"`
}

// UserReviewCategories scores a host kitchen, filled on chef-to-user reviews.
type UserReviewCategories struct {
	KitchenCondition int `json:"kitchenCondition"`
	Behavior         int `json:"behavior"`
	Communication    int `json:"communication"`
}
