package server

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/tahirli/sofrachef-backend/config"
	"github.com/tahirli/sofrachef-backend/internal/api"
	"github.com/tahirli/sofrachef-backend/internal/archive"
	"github.com/tahirli/sofrachef-backend/internal/database"
	"github.com/tahirli/sofrachef-backend/internal/middleware"
	"github.com/tahirli/sofrachef-backend/internal/router"
	"github.com/tahirli/sofrachef-backend/internal/store"
)

// Deps carries the backing services the server wires into its handlers.
// Everything except Store is optional; routes that need a missing
// service answer 503.
type Deps struct {
	Store    *store.Store
	DB       *database.DB
	Archive  *archive.Archive
	Exporter *archive.Exporter
	Redis    *redis.Client
}

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server
}

// New creates a new server instance
func New(cfg *config.Config, deps Deps) *Server {
	var limiter *middleware.RateLimiter
	if deps.Redis != nil {
		limiter = middleware.NewRateLimiter(deps.Redis, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     120,
			KeyPrefix: "ratelimit",
		})
	}

	handlers := router.Handlers{
		State:        api.NewStateHandler(deps.Store, deps.DB),
		User:         api.NewUserHandler(deps.Store),
		Chef:         api.NewChefHandler(deps.Store),
		Booking:      api.NewBookingHandler(deps.Store),
		Review:       api.NewReviewHandler(deps.Store),
		Subscription: api.NewSubscriptionHandler(deps.Store),
		Loyalty:      api.NewLoyaltyHandler(deps.Store),
		Suggestion:   api.NewSuggestionHandler(deps.Store),
		Notification: api.NewNotificationHandler(deps.Store),
		Invoice:      api.NewInvoiceHandler(deps.Store),
		Recipe:       api.NewRecipeHandler(deps.Store),
		MealPlan:     api.NewMealPlanHandler(deps.Store),
		Settings:     api.NewSettingsHandler(deps.Store),
		Admin:        api.NewAdminHandler(deps.Store, deps.Archive, deps.Exporter),
	}

	return &Server{
		cfg:    cfg,
		router: router.SetupRouter(handlers, limiter),
	}
}

// Start runs the server until an interrupt or termination signal
// arrives, then shuts down gracefully.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    net.JoinHostPort(s.cfg.ServerHost, s.cfg.ServerPort),
		Handler: s.router,
	}

	go func() {
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("listening on %s", s.http.Addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Stop(ctx)
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
