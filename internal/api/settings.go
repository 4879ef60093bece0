package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tahirli/sofrachef-backend/internal/models"
	"github.com/tahirli/sofrachef-backend/internal/store"
)

// SettingsHandler exposes the scalar snapshot fields: language, live
// tracking, and the loading flag.
type SettingsHandler struct {
	store *store.Store
}

func NewSettingsHandler(s *store.Store) *SettingsHandler {
	return &SettingsHandler{store: s}
}

func (h *SettingsHandler) RegisterRoutes(router *gin.RouterGroup) {
	settings := router.Group("/settings")
	{
		settings.PUT("/language", h.SetLanguage)
		settings.PUT("/tracking", h.SetTracking)
		settings.PUT("/loading", h.SetLoading)
	}
}

type languageRequest struct {
	Language models.Language `json:"language" binding:"required"`
}

func (h *SettingsHandler) SetLanguage(c *gin.Context) {
	var req languageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.store.Dispatch(store.SetLanguage(req.Language))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"currentLanguage": state.Language})
}

type enabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

func (h *SettingsHandler) SetTracking(c *gin.Context) {
	var req enabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.store.Dispatch(store.ToggleTracking(*req.Enabled))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trackingEnabled": state.TrackingEnabled})
}

func (h *SettingsHandler) SetLoading(c *gin.Context) {
	var req enabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.store.Dispatch(store.SetLoading(*req.Enabled))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"loading": state.Loading})
}
