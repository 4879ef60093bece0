package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tahirli/sofrachef-backend/internal/database"
	"github.com/tahirli/sofrachef-backend/internal/store"
)

// StateHandler serves the full snapshot and liveness checks.
type StateHandler struct {
	store *store.Store
	db    *database.DB // nil when the archive database is not configured
}

func NewStateHandler(s *store.Store, db *database.DB) *StateHandler {
	return &StateHandler{store: s, db: db}
}

func (h *StateHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/state", h.GetState)
}

// GetState returns the complete current snapshot.
func (h *StateHandler) GetState(c *gin.Context) {
	state, ok := snapshot(c, h.store)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, state)
}

// Health reports process liveness and archive database reachability.
func (h *StateHandler) Health(c *gin.Context) {
	resp := gin.H{"status": "ok"}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.HealthCheck(ctx); err != nil {
			resp["status"] = "degraded"
			resp["archive"] = err.Error()
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
		resp["archive"] = "ok"
	}

	c.JSON(http.StatusOK, resp)
}
