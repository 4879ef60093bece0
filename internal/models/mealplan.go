package models

import "time"

type MealPlan struct {
	ID            string           `json:"id"`
	UserID        string           `json:"userId"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Duration      int              `json:"duration"`
	Recipes       []MealPlanRecipe `json:"recipes"`
	TotalCalories float64          `json:"totalCalories"`
	DietType      string           `json:"dietType"`
	CreatedAt     time.Time        `json:"createdAt"`
	IsActive      bool             `json:"isActive"`
}

// MealPlanRecipe pins a recipe to a day slot of the plan. Day is 1-based.
type MealPlanRecipe struct {
	RecipeID  string   `json:"recipeId"`
	Day       int      `json:"day"`
	MealType  SlotType `json:"mealType"`
	Scheduled bool     `json:"scheduled"`
}

// SlotType is the meal-of-day slot used by meal plans, distinct from the
// booking MealType enum.
type SlotType string

const (
	SlotBreakfast SlotType = "breakfast"
	SlotLunch     SlotType = "lunch"
	SlotDinner    SlotType = "dinner"
	SlotSnack     SlotType = "snack"
)

func (s SlotType) Valid() bool {
	switch s {
	case SlotBreakfast, SlotLunch, SlotDinner, SlotSnack:
		return true
	}
	return false
}

// MealPlanUpdate carries the partial-merge fields accepted by
// UPDATE_MEAL_PLAN. Nil pointers mean "leave unchanged".
type MealPlanUpdate struct {
	Name          *string           `json:"name,omitempty"`
	Description   *string           `json:"description,omitempty"`
	Duration      *int              `json:"duration,omitempty"`
	Recipes       *[]MealPlanRecipe `json:"recipes,omitempty"`
	TotalCalories *float64          `json:"totalCalories,omitempty"`
	DietType      *string           `json:"dietType,omitempty"`
	IsActive      *bool             `json:"isActive,omitempty"`
}

func (u MealPlanUpdate) Apply(p MealPlan) MealPlan {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Duration != nil {
		p.Duration = *u.Duration
	}
	if u.Recipes != nil {
		p.Recipes = append([]MealPlanRecipe(nil), (*u.Recipes)...)
	}
	if u.TotalCalories != nil {
		p.TotalCalories = *u.TotalCalories
	}
	if u.DietType != nil {
		p.DietType = *u.DietType
	}
	if u.IsActive != nil {
		p.IsActive = *u.IsActive
	}
	return p
}
