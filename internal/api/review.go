package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tahirli/sofrachef-backend/internal/models"
	"github.com/tahirli/sofrachef-backend/internal/store"
)

type ReviewHandler struct {
	store *store.Store
}

func NewReviewHandler(s *store.Store) *ReviewHandler {
	return &ReviewHandler{store: s}
}

func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup) {
	reviews := router.Group("/reviews")
	{
		reviews.GET("", h.ListReviews)
		reviews.POST("", h.CreateReview)
	}
}

func (h *ReviewHandler) ListReviews(c *gin.Context) {
	state, ok := snapshot(c, h.store)
	if !ok {
		return
	}

	reviews := state.Reviews
	if chefID := c.Query("chefId"); chefID != "" {
		filtered := make([]models.Review, 0, len(reviews))
		for _, r := range reviews {
			if r.ChefID == chefID {
				filtered = append(filtered, r)
			}
		}
		reviews = filtered
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}

	state, err := h.store.Dispatch(store.AddReview(review))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, state.Reviews[len(state.Reviews)-1])
}
