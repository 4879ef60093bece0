package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tahirli/sofrachef-backend/internal/archive"
	"github.com/tahirli/sofrachef-backend/internal/store"
)

func newAdminTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	arc, err := archive.New(db)
	require.NoError(t, err)

	s := store.New(store.Options{})
	t.Cleanup(s.Close)

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewChefHandler(s).RegisterRoutes(v1)
	NewAdminHandler(s, arc, nil).RegisterRoutes(v1)
	return router, s
}

func TestSnapshotSaveListRestore(t *testing.T) {
	router, _ := newAdminTestRouter(t)

	w := PerformRequest(router, "PUT", "/api/v1/chefs", []map[string]interface{}{
		{"id": "1", "name": "Maria"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, "POST", "/api/v1/admin/snapshots", map[string]interface{}{
		"label": "with-maria",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	snapID, _ := decodeBody(t, w)["id"].(string)
	require.NotEmpty(t, snapID)

	// Wipe the chefs, then restore.
	w = PerformRequest(router, "PUT", "/api/v1/chefs", []map[string]interface{}{})
	require.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, "GET", "/api/v1/admin/snapshots", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["snapshots"], 1)

	w = PerformRequest(router, "POST", "/api/v1/admin/snapshots/"+snapID+"/restore", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, "GET", "/api/v1/chefs/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Maria", decodeBody(t, w)["name"])
}

func TestRestoreUnknownSnapshot(t *testing.T) {
	router, _ := newAdminTestRouter(t)

	w := PerformRequest(router, "POST", "/api/v1/admin/snapshots/ghost/restore", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRestoreNotifiesSubscribers(t *testing.T) {
	router, s := newAdminTestRouter(t)

	w := PerformRequest(router, "POST", "/api/v1/admin/snapshots", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	snapID, _ := decodeBody(t, w)["id"].(string)

	var seen []store.ActionType
	unsubscribe := s.Subscribe(func(_ store.AppState, a store.Action) {
		seen = append(seen, a.Type)
	})
	defer unsubscribe()

	w = PerformRequest(router, "POST", "/api/v1/admin/snapshots/"+snapID+"/restore", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, seen, store.ActionRestoreSnapshot)
}

func TestExportWithoutExporterConfigured(t *testing.T) {
	router, _ := newAdminTestRouter(t)

	w := PerformRequest(router, "POST", "/api/v1/admin/snapshots", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	snapID, _ := decodeBody(t, w)["id"].(string)

	w = PerformRequest(router, "POST", "/api/v1/admin/snapshots/"+snapID+"/export", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
