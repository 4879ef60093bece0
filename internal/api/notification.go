package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tahirli/sofrachef-backend/internal/models"
	"github.com/tahirli/sofrachef-backend/internal/store"
)

type NotificationHandler struct {
	store *store.Store
}

func NewNotificationHandler(s *store.Store) *NotificationHandler {
	return &NotificationHandler{store: s}
}

func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/notifications")
	{
		notifications.GET("", h.ListNotifications)
		notifications.POST("", h.CreateNotification)
		notifications.POST("/:id/read", h.MarkRead)
	}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	state, ok := snapshot(c, h.store)
	if !ok {
		return
	}

	notifications := state.Notifications
	if c.Query("unread") == "true" {
		filtered := make([]models.Notification, 0, len(notifications))
		for _, n := range notifications {
			if !n.IsRead {
				filtered = append(filtered, n)
			}
		}
		notifications = filtered
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var n models.Notification
	if err := c.ShouldBindJSON(&n); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	// Outside strict mode an unrecognized data payload is quarantined
	// rather than stored untyped; strict mode rejects it at dispatch.
	if !h.store.Strict() {
		if _, err := n.DecodeData(); err != nil {
			n.Data = nil
		}
	}

	state, err := h.store.Dispatch(store.AddNotification(n))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, state.Notifications[len(state.Notifications)-1])
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id := c.Param("id")
	state, err := h.store.Dispatch(store.MarkNotificationRead(id))
	if err != nil {
		respondError(c, err)
		return
	}

	for _, n := range state.Notifications {
		if n.ID == id {
			c.JSON(http.StatusOK, n)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
}
