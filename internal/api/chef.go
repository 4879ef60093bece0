package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tahirli/sofrachef-backend/internal/models"
	"github.com/tahirli/sofrachef-backend/internal/store"
)

type ChefHandler struct {
	store *store.Store
}

func NewChefHandler(s *store.Store) *ChefHandler {
	return &ChefHandler{store: s}
}

func (h *ChefHandler) RegisterRoutes(router *gin.RouterGroup) {
	chefs := router.Group("/chefs")
	{
		chefs.GET("", h.ListChefs)
		chefs.GET("/:id", h.GetChef)
		chefs.PUT("", h.SetChefs)
		chefs.PATCH("/:id/location", h.UpdateLocation)
	}
}

func (h *ChefHandler) ListChefs(c *gin.Context) {
	state, ok := snapshot(c, h.store)
	if !ok {
		return
	}

	chefs := state.Chefs
	if specialty := c.Query("specialty"); specialty != "" {
		filtered := make([]models.Chef, 0, len(chefs))
		for _, chef := range chefs {
			for _, s := range chef.Specialties {
				if s == specialty {
					filtered = append(filtered, chef)
					break
				}
			}
		}
		chefs = filtered
	}

	c.JSON(http.StatusOK, gin.H{"chefs": chefs})
}

func (h *ChefHandler) GetChef(c *gin.Context) {
	state, ok := snapshot(c, h.store)
	if !ok {
		return
	}
	id := c.Param("id")
	for _, chef := range state.Chefs {
		if chef.ID == id {
			c.JSON(http.StatusOK, chef)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Chef not found"})
}

func (h *ChefHandler) SetChefs(c *gin.Context) {
	var chefs []models.Chef
	if err := c.ShouldBindJSON(&chefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.store.Dispatch(store.SetChefs(chefs))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chefs": state.Chefs})
}

func (h *ChefHandler) UpdateLocation(c *gin.Context) {
	var loc models.GeoLocation
	if err := c.ShouldBindJSON(&loc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.store.Dispatch(store.UpdateChefLocation(c.Param("id"), loc))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chefs": state.Chefs})
}
