// Package api exposes the store over HTTP. Every handler follows the same
// shape: bind the request, build the matching action, dispatch, answer with
// the affected collection from the committed snapshot.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tahirli/sofrachef-backend/internal/archive"
	"github.com/tahirli/sofrachef-backend/internal/store"
)

// respondError maps store and archive failures onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var verr *store.ValidationError
	var cerr *store.ConflictError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.As(err, &cerr):
		c.JSON(http.StatusConflict, gin.H{"error": cerr.Error()})
	case errors.Is(err, store.ErrNotFound), errors.Is(err, archive.ErrSnapshotNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrStoreClosed):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}

// snapshot reads the current state, answering the error itself on failure.
func snapshot(c *gin.Context, s *store.Store) (store.AppState, bool) {
	state, err := s.State()
	if err != nil {
		respondError(c, err)
		return store.AppState{}, false
	}
	return state, true
}
