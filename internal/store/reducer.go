package store

import "github.com/tahirli/sofrachef-backend/internal/models"

// reduce maps the previous snapshot and an action to the next snapshot.
// It is pure: no I/O, no mutation of prev or of the action payload.
// Collections that change are rebuilt; untouched collections are shared
// between snapshots. Unknown action types fall through to the unchanged
// snapshot, matching the reducer this service was lifted from.
func reduce(prev AppState, a Action) (AppState, error) {
	next := prev

	switch a.Type {
	case ActionSetUser:
		user, ok := a.Payload.(*models.User)
		if !ok {
			return prev, validationf(a.Type, "want *models.User, got %T", a.Payload)
		}
		if user != nil {
			u := *user
			next.CurrentUser = &u
		} else {
			next.CurrentUser = nil
		}

	case ActionSetChefs:
		chefs, ok := a.Payload.([]models.Chef)
		if !ok {
			return prev, validationf(a.Type, "want []models.Chef, got %T", a.Payload)
		}
		next.Chefs = replaced(chefs)

	case ActionUpdateChefLocation:
		p, ok := a.Payload.(ChefLocationPayload)
		if !ok {
			return prev, validationf(a.Type, "want ChefLocationPayload, got %T", a.Payload)
		}
		next.Chefs = mapped(prev.Chefs, func(c models.Chef) bool { return c.ID == p.ChefID },
			func(c models.Chef) models.Chef {
				loc := p.Location
				c.CurrentLocation = &loc
				return c
			})

	case ActionAddBooking:
		b, ok := a.Payload.(models.Booking)
		if !ok {
			return prev, validationf(a.Type, "want models.Booking, got %T", a.Payload)
		}
		next.Bookings = appended(prev.Bookings, b)

	case ActionUpdateBooking:
		p, ok := a.Payload.(BookingUpdatePayload)
		if !ok {
			return prev, validationf(a.Type, "want BookingUpdatePayload, got %T", a.Payload)
		}
		next.Bookings = mapped(prev.Bookings, func(b models.Booking) bool { return b.ID == p.ID },
			func(b models.Booking) models.Booking { return p.Updates.Apply(b) })

	case ActionAddReview:
		r, ok := a.Payload.(models.Review)
		if !ok {
			return prev, validationf(a.Type, "want models.Review, got %T", a.Payload)
		}
		next.Reviews = appended(prev.Reviews, r)

	case ActionSetSubscriptions:
		subs, ok := a.Payload.([]models.Subscription)
		if !ok {
			return prev, validationf(a.Type, "want []models.Subscription, got %T", a.Payload)
		}
		next.Subscriptions = replaced(subs)

	case ActionAddSubscription:
		sub, ok := a.Payload.(models.Subscription)
		if !ok {
			return prev, validationf(a.Type, "want models.Subscription, got %T", a.Payload)
		}
		next.Subscriptions = appended(prev.Subscriptions, sub)

	case ActionSetLoyaltyRewards:
		rewards, ok := a.Payload.([]models.LoyaltyReward)
		if !ok {
			return prev, validationf(a.Type, "want []models.LoyaltyReward, got %T", a.Payload)
		}
		next.LoyaltyRewards = replaced(rewards)

	case ActionUpdateLoyaltyPts:
		p, ok := a.Payload.(LoyaltyPointsPayload)
		if !ok {
			return prev, validationf(a.Type, "want LoyaltyPointsPayload, got %T", a.Payload)
		}
		// Only the current user carries a balance; with no user set this
		// is a no-op, never an implicit user creation.
		if prev.CurrentUser != nil {
			u := *prev.CurrentUser
			u.LoyaltyPoints = p.Points
			next.CurrentUser = &u
		}

	case ActionSetAISuggestions:
		s, ok := a.Payload.([]models.AIMenuSuggestion)
		if !ok {
			return prev, validationf(a.Type, "want []models.AIMenuSuggestion, got %T", a.Payload)
		}
		next.AISuggestions = replaced(s)

	case ActionAddNotification:
		n, ok := a.Payload.(models.Notification)
		if !ok {
			return prev, validationf(a.Type, "want models.Notification, got %T", a.Payload)
		}
		next.Notifications = appended(prev.Notifications, n)

	case ActionMarkNotifRead:
		id, ok := a.Payload.(string)
		if !ok {
			return prev, validationf(a.Type, "want string id, got %T", a.Payload)
		}
		next.Notifications = mapped(prev.Notifications, func(n models.Notification) bool { return n.ID == id },
			func(n models.Notification) models.Notification {
				n.IsRead = true
				return n
			})

	case ActionSetInvoices:
		invoices, ok := a.Payload.([]models.Invoice)
		if !ok {
			return prev, validationf(a.Type, "want []models.Invoice, got %T", a.Payload)
		}
		next.Invoices = replaced(invoices)

	case ActionAddInvoice:
		inv, ok := a.Payload.(models.Invoice)
		if !ok {
			return prev, validationf(a.Type, "want models.Invoice, got %T", a.Payload)
		}
		next.Invoices = appended(prev.Invoices, inv)

	case ActionSetLoading:
		loading, ok := a.Payload.(bool)
		if !ok {
			return prev, validationf(a.Type, "want bool, got %T", a.Payload)
		}
		next.Loading = loading

	case ActionSetLanguage:
		lang, ok := a.Payload.(models.Language)
		if !ok {
			return prev, validationf(a.Type, "want models.Language, got %T", a.Payload)
		}
		if !lang.Valid() {
			return prev, validationf(a.Type, "unsupported language %q", lang)
		}
		next.Language = lang

	case ActionToggleTracking:
		enabled, ok := a.Payload.(bool)
		if !ok {
			return prev, validationf(a.Type, "want bool, got %T", a.Payload)
		}
		next.TrackingEnabled = enabled

	case ActionSetRecipes:
		recipes, ok := a.Payload.([]models.Recipe)
		if !ok {
			return prev, validationf(a.Type, "want []models.Recipe, got %T", a.Payload)
		}
		next.Recipes = replaced(recipes)

	case ActionAddRecipe:
		r, ok := a.Payload.(models.Recipe)
		if !ok {
			return prev, validationf(a.Type, "want models.Recipe, got %T", a.Payload)
		}
		next.Recipes = appended(prev.Recipes, r)

	case ActionSetMealPlans:
		plans, ok := a.Payload.([]models.MealPlan)
		if !ok {
			return prev, validationf(a.Type, "want []models.MealPlan, got %T", a.Payload)
		}
		next.MealPlans = replaced(plans)

	case ActionAddMealPlan:
		p, ok := a.Payload.(models.MealPlan)
		if !ok {
			return prev, validationf(a.Type, "want models.MealPlan, got %T", a.Payload)
		}
		next.MealPlans = appended(prev.MealPlans, p)

	case ActionUpdateMealPlan:
		p, ok := a.Payload.(MealPlanUpdatePayload)
		if !ok {
			return prev, validationf(a.Type, "want MealPlanUpdatePayload, got %T", a.Payload)
		}
		next.MealPlans = mapped(prev.MealPlans, func(mp models.MealPlan) bool { return mp.ID == p.ID },
			func(mp models.MealPlan) models.MealPlan { return p.Updates.Apply(mp) })
	}

	return next, nil
}

// replaced returns a fresh copy of list so later caller mutations cannot
// leak into a committed snapshot. Nil normalizes to an empty collection.
func replaced[T any](list []T) []T {
	out := make([]T, len(list))
	copy(out, list)
	return out
}

// appended returns a new slice of list plus v, leaving list untouched.
func appended[T any](list []T, v T) []T {
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	return append(out, v)
}

// mapped rebuilds list applying update to elements matching match.
// Elements that do not match are carried over as-is; if nothing matches the
// result is element-wise identical to list.
func mapped[T any](list []T, match func(T) bool, update func(T) T) []T {
	out := make([]T, len(list))
	for i, v := range list {
		if match(v) {
			out[i] = update(v)
		} else {
			out[i] = v
		}
	}
	return out
}
