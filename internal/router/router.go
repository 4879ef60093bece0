package router

import (
	"github.com/gin-gonic/gin"

	"github.com/tahirli/sofrachef-backend/internal/api"
	"github.com/tahirli/sofrachef-backend/internal/middleware"
)

// Handlers bundles every API handler the router mounts.
type Handlers struct {
	State        *api.StateHandler
	User         *api.UserHandler
	Chef         *api.ChefHandler
	Booking      *api.BookingHandler
	Review       *api.ReviewHandler
	Subscription *api.SubscriptionHandler
	Loyalty      *api.LoyaltyHandler
	Suggestion   *api.SuggestionHandler
	Notification *api.NotificationHandler
	Invoice      *api.InvoiceHandler
	Recipe       *api.RecipeHandler
	MealPlan     *api.MealPlanHandler
	Settings     *api.SettingsHandler
	Admin        *api.AdminHandler
}

// SetupRouter configures the application routes. The rate limiter is
// optional and only applied when Redis is available.
func SetupRouter(h Handlers, limiter *middleware.RateLimiter) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	router.GET("/health", h.State.Health)

	// API v1 routes
	v1 := router.Group("/api/v1")
	if limiter != nil {
		v1.Use(limiter.RateLimitMiddleware())
	}

	h.State.RegisterRoutes(v1)
	h.User.RegisterRoutes(v1)
	h.Chef.RegisterRoutes(v1)
	h.Booking.RegisterRoutes(v1)
	h.Review.RegisterRoutes(v1)
	h.Subscription.RegisterRoutes(v1)
	h.Loyalty.RegisterRoutes(v1)
	h.Suggestion.RegisterRoutes(v1)
	h.Notification.RegisterRoutes(v1)
	h.Invoice.RegisterRoutes(v1)
	h.Recipe.RegisterRoutes(v1)
	h.MealPlan.RegisterRoutes(v1)
	h.Settings.RegisterRoutes(v1)
	h.Admin.RegisterRoutes(v1)

	return router
}
