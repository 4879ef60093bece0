package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tahirli/sofrachef-backend/internal/models"
	"github.com/tahirli/sofrachef-backend/internal/store"
)

type SubscriptionHandler struct {
	store *store.Store
}

func NewSubscriptionHandler(s *store.Store) *SubscriptionHandler {
	return &SubscriptionHandler{store: s}
}

func (h *SubscriptionHandler) RegisterRoutes(router *gin.RouterGroup) {
	subs := router.Group("/subscriptions")
	{
		subs.GET("", h.ListSubscriptions)
		subs.PUT("", h.SetSubscriptions)
		subs.POST("", h.CreateSubscription)
	}
}

func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	state, ok := snapshot(c, h.store)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscriptions": state.Subscriptions})
}

func (h *SubscriptionHandler) SetSubscriptions(c *gin.Context) {
	var subs []models.Subscription
	if err := c.ShouldBindJSON(&subs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.store.Dispatch(store.SetSubscriptions(subs))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscriptions": state.Subscriptions})
}

func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var sub models.Subscription
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}

	state, err := h.store.Dispatch(store.AddSubscription(sub))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, state.Subscriptions[len(state.Subscriptions)-1])
}
