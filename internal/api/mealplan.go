package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tahirli/sofrachef-backend/internal/models"
	"github.com/tahirli/sofrachef-backend/internal/store"
)

type MealPlanHandler struct {
	store *store.Store
}

func NewMealPlanHandler(s *store.Store) *MealPlanHandler {
	return &MealPlanHandler{store: s}
}

func (h *MealPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/meal-plans")
	{
		plans.GET("", h.ListMealPlans)
		plans.PUT("", h.SetMealPlans)
		plans.POST("", h.CreateMealPlan)
		plans.PATCH("/:id", h.UpdateMealPlan)
	}
}

func (h *MealPlanHandler) ListMealPlans(c *gin.Context) {
	state, ok := snapshot(c, h.store)
	if !ok {
		return
	}

	plans := state.MealPlans
	if userID := c.Query("userId"); userID != "" {
		filtered := make([]models.MealPlan, 0, len(plans))
		for _, p := range plans {
			if p.UserID == userID {
				filtered = append(filtered, p)
			}
		}
		plans = filtered
	}

	c.JSON(http.StatusOK, gin.H{"mealPlans": plans})
}

func (h *MealPlanHandler) SetMealPlans(c *gin.Context) {
	var plans []models.MealPlan
	if err := c.ShouldBindJSON(&plans); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.store.Dispatch(store.SetMealPlans(plans))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mealPlans": state.MealPlans})
}

func (h *MealPlanHandler) CreateMealPlan(c *gin.Context) {
	var plan models.MealPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now().UTC()
	}

	state, err := h.store.Dispatch(store.AddMealPlan(plan))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, state.MealPlans[len(state.MealPlans)-1])
}

func (h *MealPlanHandler) UpdateMealPlan(c *gin.Context) {
	var updates models.MealPlanUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("id")

	state, err := h.store.Dispatch(store.UpdateMealPlan(id, updates))
	if err != nil {
		respondError(c, err)
		return
	}

	for _, p := range state.MealPlans {
		if p.ID == id {
			c.JSON(http.StatusOK, p)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Meal plan not found"})
}
