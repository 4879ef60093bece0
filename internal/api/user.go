package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tahirli/sofrachef-backend/internal/models"
	"github.com/tahirli/sofrachef-backend/internal/store"
)

type UserHandler struct {
	store *store.Store
}

func NewUserHandler(s *store.Store) *UserHandler {
	return &UserHandler{store: s}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("/current", h.GetCurrentUser)
		users.PUT("/current", h.SetCurrentUser)
		users.PUT("/current/loyalty-points", h.UpdateLoyaltyPoints)
	}
}

func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	state, ok := snapshot(c, h.store)
	if !ok {
		return
	}
	if state.CurrentUser == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no current user"})
		return
	}
	c.JSON(http.StatusOK, state.CurrentUser)
}

// SetCurrentUser replaces the current user. A JSON null body clears it,
// mirroring the nullable payload of the original SET_USER action.
func (h *UserHandler) SetCurrentUser(c *gin.Context) {
	var user *models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if user != nil {
		if user.ID == "" {
			user.ID = uuid.NewString()
		}
		if user.CreatedAt.IsZero() {
			user.CreatedAt = time.Now().UTC()
		}
	}

	state, err := h.store.Dispatch(store.SetUser(user))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"currentUser": state.CurrentUser})
}

type loyaltyPointsRequest struct {
	UserID string `json:"userId"`
	Points int    `json:"points" binding:"min=0"`
}

// UpdateLoyaltyPoints replaces the current user's balance. Without a
// current user the dispatch is a no-op and the response reflects that.
func (h *UserHandler) UpdateLoyaltyPoints(c *gin.Context) {
	var req loyaltyPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.store.Dispatch(store.UpdateLoyaltyPoints(req.UserID, req.Points))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"currentUser": state.CurrentUser})
}
