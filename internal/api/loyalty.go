package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tahirli/sofrachef-backend/internal/models"
	"github.com/tahirli/sofrachef-backend/internal/store"
)

type LoyaltyHandler struct {
	store *store.Store
}

func NewLoyaltyHandler(s *store.Store) *LoyaltyHandler {
	return &LoyaltyHandler{store: s}
}

func (h *LoyaltyHandler) RegisterRoutes(router *gin.RouterGroup) {
	rewards := router.Group("/loyalty-rewards")
	{
		rewards.GET("", h.ListRewards)
		rewards.PUT("", h.SetRewards)
	}
}

func (h *LoyaltyHandler) ListRewards(c *gin.Context) {
	state, ok := snapshot(c, h.store)
	if !ok {
		return
	}

	rewards := state.LoyaltyRewards
	if c.Query("active") == "true" {
		filtered := make([]models.LoyaltyReward, 0, len(rewards))
		for _, r := range rewards {
			if r.IsActive {
				filtered = append(filtered, r)
			}
		}
		rewards = filtered
	}

	c.JSON(http.StatusOK, gin.H{"loyaltyRewards": rewards})
}

func (h *LoyaltyHandler) SetRewards(c *gin.Context) {
	var rewards []models.LoyaltyReward
	if err := c.ShouldBindJSON(&rewards); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.store.Dispatch(store.SetLoyaltyRewards(rewards))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"loyaltyRewards": state.LoyaltyRewards})
}
