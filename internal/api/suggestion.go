package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tahirli/sofrachef-backend/internal/models"
	"github.com/tahirli/sofrachef-backend/internal/store"
)

type SuggestionHandler struct {
	store *store.Store
}

func NewSuggestionHandler(s *store.Store) *SuggestionHandler {
	return &SuggestionHandler{store: s}
}

func (h *SuggestionHandler) RegisterRoutes(router *gin.RouterGroup) {
	suggestions := router.Group("/ai-suggestions")
	{
		suggestions.GET("", h.ListSuggestions)
		suggestions.PUT("", h.SetSuggestions)
	}
}

func (h *SuggestionHandler) ListSuggestions(c *gin.Context) {
	state, ok := snapshot(c, h.store)
	if !ok {
		return
	}

	suggestions := state.AISuggestions
	if userID := c.Query("userId"); userID != "" {
		filtered := make([]models.AIMenuSuggestion, 0, len(suggestions))
		for _, s := range suggestions {
			if s.UserID == userID {
				filtered = append(filtered, s)
			}
		}
		suggestions = filtered
	}

	c.JSON(http.StatusOK, gin.H{"aiSuggestions": suggestions})
}

func (h *SuggestionHandler) SetSuggestions(c *gin.Context) {
	var suggestions []models.AIMenuSuggestion
	if err := c.ShouldBindJSON(&suggestions); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.store.Dispatch(store.SetAISuggestions(suggestions))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"aiSuggestions": state.AISuggestions})
}
