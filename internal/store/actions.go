package store

import "github.com/tahirli/sofrachef-backend/internal/models"

// ActionType enumerates every mutation the store accepts. The set is closed:
// dispatching anything else is a no-op.
type ActionType string

const (
	ActionSetUser            ActionType = "SET_USER"
	ActionSetChefs           ActionType = "SET_CHEFS"
	ActionUpdateChefLocation ActionType = "UPDATE_CHEF_LOCATION"
	ActionAddBooking         ActionType = "ADD_BOOKING"
	ActionUpdateBooking      ActionType = "UPDATE_BOOKING"
	ActionAddReview          ActionType = "ADD_REVIEW"
	ActionSetSubscriptions   ActionType = "SET_SUBSCRIPTIONS"
	ActionAddSubscription    ActionType = "ADD_SUBSCRIPTION"
	ActionSetLoyaltyRewards  ActionType = "SET_LOYALTY_REWARDS"
	ActionUpdateLoyaltyPts   ActionType = "UPDATE_LOYALTY_POINTS"
	ActionSetAISuggestions   ActionType = "SET_AI_SUGGESTIONS"
	ActionAddNotification    ActionType = "ADD_NOTIFICATION"
	ActionMarkNotifRead      ActionType = "MARK_NOTIFICATION_READ"
	ActionSetInvoices        ActionType = "SET_INVOICES"
	ActionAddInvoice         ActionType = "ADD_INVOICE"
	ActionSetLoading         ActionType = "SET_LOADING"
	ActionSetLanguage        ActionType = "SET_LANGUAGE"
	ActionToggleTracking     ActionType = "TOGGLE_TRACKING"
	ActionSetRecipes         ActionType = "SET_RECIPES"
	ActionAddRecipe          ActionType = "ADD_RECIPE"
	ActionSetMealPlans       ActionType = "SET_MEAL_PLANS"
	ActionAddMealPlan        ActionType = "ADD_MEAL_PLAN"
	ActionUpdateMealPlan     ActionType = "UPDATE_MEAL_PLAN"
)

// Action is one tagged mutation request. Payload must hold the Go type the
// ActionType expects; the reducer rejects anything else.
type Action struct {
	Type    ActionType
	Payload any
}

// ChefLocationPayload moves a chef's live position.
type ChefLocationPayload struct {
	ChefID   string             `json:"chefId"`
	Location models.GeoLocation `json:"location"`
}

// BookingUpdatePayload partially merges fields into the booking with ID.
type BookingUpdatePayload struct {
	ID      string               `json:"id"`
	Updates models.BookingUpdate `json:"updates"`
}

// LoyaltyPointsPayload replaces the current user's loyalty balance.
type LoyaltyPointsPayload struct {
	UserID string `json:"userId"`
	Points int    `json:"points"`
}

// MealPlanUpdatePayload partially merges fields into the meal plan with ID.
type MealPlanUpdatePayload struct {
	ID      string                `json:"id"`
	Updates models.MealPlanUpdate `json:"updates"`
}

func SetUser(u *models.User) Action {
	return Action{Type: ActionSetUser, Payload: u}
}

func SetChefs(chefs []models.Chef) Action {
	return Action{Type: ActionSetChefs, Payload: chefs}
}

func UpdateChefLocation(chefID string, loc models.GeoLocation) Action {
	return Action{Type: ActionUpdateChefLocation, Payload: ChefLocationPayload{ChefID: chefID, Location: loc}}
}

func AddBooking(b models.Booking) Action {
	return Action{Type: ActionAddBooking, Payload: b}
}

func UpdateBooking(id string, updates models.BookingUpdate) Action {
	return Action{Type: ActionUpdateBooking, Payload: BookingUpdatePayload{ID: id, Updates: updates}}
}

func AddReview(r models.Review) Action {
	return Action{Type: ActionAddReview, Payload: r}
}

func SetSubscriptions(subs []models.Subscription) Action {
	return Action{Type: ActionSetSubscriptions, Payload: subs}
}

func AddSubscription(sub models.Subscription) Action {
	return Action{Type: ActionAddSubscription, Payload: sub}
}

func SetLoyaltyRewards(rewards []models.LoyaltyReward) Action {
	return Action{Type: ActionSetLoyaltyRewards, Payload: rewards}
}

func UpdateLoyaltyPoints(userID string, points int) Action {
	return Action{Type: ActionUpdateLoyaltyPts, Payload: LoyaltyPointsPayload{UserID: userID, Points: points}}
}

func SetAISuggestions(s []models.AIMenuSuggestion) Action {
	return Action{Type: ActionSetAISuggestions, Payload: s}
}

func AddNotification(n models.Notification) Action {
	return Action{Type: ActionAddNotification, Payload: n}
}

func MarkNotificationRead(id string) Action {
	return Action{Type: ActionMarkNotifRead, Payload: id}
}

func SetInvoices(invoices []models.Invoice) Action {
	return Action{Type: ActionSetInvoices, Payload: invoices}
}

func AddInvoice(inv models.Invoice) Action {
	return Action{Type: ActionAddInvoice, Payload: inv}
}

func SetLoading(loading bool) Action {
	return Action{Type: ActionSetLoading, Payload: loading}
}

func SetLanguage(lang models.Language) Action {
	return Action{Type: ActionSetLanguage, Payload: lang}
}

func ToggleTracking(enabled bool) Action {
	return Action{Type: ActionToggleTracking, Payload: enabled}
}

func SetRecipes(recipes []models.Recipe) Action {
	return Action{Type: ActionSetRecipes, Payload: recipes}
}

func AddRecipe(r models.Recipe) Action {
	return Action{Type: ActionAddRecipe, Payload: r}
}

func SetMealPlans(plans []models.MealPlan) Action {
	return Action{Type: ActionSetMealPlans, Payload: plans}
}

func AddMealPlan(p models.MealPlan) Action {
	return Action{Type: ActionAddMealPlan, Payload: p}
}

func UpdateMealPlan(id string, updates models.MealPlanUpdate) Action {
	return Action{Type: ActionUpdateMealPlan, Payload: MealPlanUpdatePayload{ID: id, Updates: updates}}
}
