package store

import "github.com/tahirli/sofrachef-backend/internal/models"

// checkStrict enforces the invariants the reducer itself does not: closed
// enums, referential ids, duplicate ids on adds, booking status transition
// legality, subscription session accounting, and invoice totals. Called
// before reduce when the store runs in strict mode; lenient mode skips it
// and keeps the original silently-absorbing behavior.
func checkStrict(state AppState, a Action) error {
	switch a.Type {
	case ActionAddBooking:
		b, ok := a.Payload.(models.Booking)
		if !ok {
			return nil // reducer reports the type mismatch
		}
		if !b.Status.Valid() {
			return validationf(a.Type, "unknown booking status %q", b.Status)
		}
		if !b.MealType.Valid() {
			return validationf(a.Type, "unknown meal type %q", b.MealType)
		}
		if b.Duration <= 0 {
			return validationf(a.Type, "duration must be positive, got %d", b.Duration)
		}
		if b.TotalPrice < 0 {
			return validationf(a.Type, "totalPrice must not be negative")
		}
		if hasID(state.Bookings, b.ID, func(x models.Booking) string { return x.ID }) {
			return conflictf(a.Type, "booking %q already exists", b.ID)
		}
		if !hasID(state.Chefs, b.ChefID, func(c models.Chef) string { return c.ID }) {
			return validationf(a.Type, "chef %q does not exist", b.ChefID)
		}

	case ActionUpdateBooking:
		p, ok := a.Payload.(BookingUpdatePayload)
		if !ok {
			return nil
		}
		var current *models.Booking
		for i := range state.Bookings {
			if state.Bookings[i].ID == p.ID {
				current = &state.Bookings[i]
				break
			}
		}
		if current == nil {
			return ErrNotFound
		}
		if s := p.Updates.Status; s != nil {
			if !s.Valid() {
				return validationf(a.Type, "unknown booking status %q", *s)
			}
			if !current.Status.CanTransition(*s) {
				return conflictf(a.Type, "booking %q cannot move %s -> %s", p.ID, current.Status, *s)
			}
		}
		if d := p.Updates.Duration; d != nil && *d <= 0 {
			return validationf(a.Type, "duration must be positive, got %d", *d)
		}

	case ActionUpdateChefLocation:
		p, ok := a.Payload.(ChefLocationPayload)
		if !ok {
			return nil
		}
		if !hasID(state.Chefs, p.ChefID, func(c models.Chef) string { return c.ID }) {
			return ErrNotFound
		}

	case ActionAddReview:
		r, ok := a.Payload.(models.Review)
		if !ok {
			return nil
		}
		if !r.Type.Valid() {
			return validationf(a.Type, "unknown review type %q", r.Type)
		}
		if r.Rating < 1 || r.Rating > 5 {
			return validationf(a.Type, "rating must be in [1,5], got %d", r.Rating)
		}
		// The category block must match the review direction.
		switch r.Type {
		case models.ReviewUserToChef:
			if r.ChefCategories == nil || r.UserCategories != nil {
				return validationf(a.Type, "user-to-chef review requires chefCategories only")
			}
		case models.ReviewChefToUser:
			if r.UserCategories == nil || r.ChefCategories != nil {
				return validationf(a.Type, "chef-to-user review requires userCategories only")
			}
		}
		if !hasID(state.Bookings, r.BookingID, func(b models.Booking) string { return b.ID }) {
			return validationf(a.Type, "booking %q does not exist", r.BookingID)
		}

	case ActionAddSubscription:
		sub, ok := a.Payload.(models.Subscription)
		if !ok {
			return nil
		}
		if err := checkSubscription(a.Type, sub); err != nil {
			return err
		}
		if hasID(state.Subscriptions, sub.ID, func(s models.Subscription) string { return s.ID }) {
			return conflictf(a.Type, "subscription %q already exists", sub.ID)
		}

	case ActionSetSubscriptions:
		subs, ok := a.Payload.([]models.Subscription)
		if !ok {
			return nil
		}
		for _, sub := range subs {
			if err := checkSubscription(a.Type, sub); err != nil {
				return err
			}
		}

	case ActionUpdateLoyaltyPts:
		p, ok := a.Payload.(LoyaltyPointsPayload)
		if !ok {
			return nil
		}
		if p.Points < 0 {
			return validationf(a.Type, "loyalty points must not be negative, got %d", p.Points)
		}

	case ActionSetLoyaltyRewards:
		rewards, ok := a.Payload.([]models.LoyaltyReward)
		if !ok {
			return nil
		}
		for _, r := range rewards {
			if !r.Type.Valid() {
				return validationf(a.Type, "unknown reward type %q", r.Type)
			}
			if r.PointsRequired < 0 {
				return validationf(a.Type, "pointsRequired must not be negative")
			}
			if r.DiscountPercentage < 0 || r.DiscountPercentage > 100 {
				return validationf(a.Type, "discountPercentage must be in [0,100]")
			}
		}

	case ActionSetAISuggestions:
		suggestions, ok := a.Payload.([]models.AIMenuSuggestion)
		if !ok {
			return nil
		}
		for _, s := range suggestions {
			if !s.Difficulty.Valid() {
				return validationf(a.Type, "unknown difficulty %q", s.Difficulty)
			}
			if s.MatchScore < 0 || s.MatchScore > 100 {
				return validationf(a.Type, "matchScore must be in [0,100], got %d", s.MatchScore)
			}
		}

	case ActionAddNotification:
		n, ok := a.Payload.(models.Notification)
		if !ok {
			return nil
		}
		if !n.Type.Valid() {
			return validationf(a.Type, "unknown notification type %q", n.Type)
		}
		if _, err := n.DecodeData(); err != nil {
			return validationf(a.Type, "%v", err)
		}

	case ActionMarkNotifRead:
		id, ok := a.Payload.(string)
		if !ok {
			return nil
		}
		if !hasID(state.Notifications, id, func(n models.Notification) string { return n.ID }) {
			return ErrNotFound
		}

	case ActionAddInvoice:
		inv, ok := a.Payload.(models.Invoice)
		if !ok {
			return nil
		}
		if err := checkInvoice(a.Type, inv); err != nil {
			return err
		}
		if hasID(state.Invoices, inv.ID, func(i models.Invoice) string { return i.ID }) {
			return conflictf(a.Type, "invoice %q already exists", inv.ID)
		}

	case ActionSetInvoices:
		invoices, ok := a.Payload.([]models.Invoice)
		if !ok {
			return nil
		}
		for _, inv := range invoices {
			if err := checkInvoice(a.Type, inv); err != nil {
				return err
			}
		}

	case ActionUpdateMealPlan:
		p, ok := a.Payload.(MealPlanUpdatePayload)
		if !ok {
			return nil
		}
		if !hasID(state.MealPlans, p.ID, func(mp models.MealPlan) string { return mp.ID }) {
			return ErrNotFound
		}
		if p.Updates.Recipes != nil {
			for _, r := range *p.Updates.Recipes {
				if !r.MealType.Valid() {
					return validationf(a.Type, "unknown meal slot %q", r.MealType)
				}
			}
		}
	}

	return nil
}

func checkSubscription(action ActionType, sub models.Subscription) error {
	if sub.SessionsUsed < 0 || sub.SessionsTotal < 0 {
		return validationf(action, "session counts must not be negative")
	}
	if sub.SessionsUsed > sub.SessionsTotal {
		return validationf(action, "sessionsUsed %d exceeds sessionsTotal %d", sub.SessionsUsed, sub.SessionsTotal)
	}
	if sub.Discount < 0 || sub.Discount > 100 {
		return validationf(action, "discount must be in [0,100], got %v", sub.Discount)
	}
	return nil
}

func checkInvoice(action ActionType, inv models.Invoice) error {
	if !inv.Status.Valid() {
		return validationf(action, "unknown invoice status %q", inv.Status)
	}
	if inv.Total != inv.Subtotal+inv.Tax {
		return validationf(action, "total %v does not equal subtotal %v + tax %v", inv.Total, inv.Subtotal, inv.Tax)
	}
	return nil
}

func hasID[T any](list []T, id string, key func(T) string) bool {
	for _, v := range list {
		if key(v) == id {
			return true
		}
	}
	return false
}
