package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tahirli/sofrachef-backend/config"
	"github.com/tahirli/sofrachef-backend/internal/store"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{
		ServerHost: "localhost",
		ServerPort: "8080",
	}

	s := store.New(store.Options{})
	defer s.Close()

	server := New(cfg, Deps{Store: s})
	assert.NotNil(t, server)

	// Health check endpoint
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	server.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSnapshotRoutesWithoutArchive(t *testing.T) {
	cfg := &config.Config{ServerHost: "localhost", ServerPort: "8080"}
	s := store.New(store.Options{})
	defer s.Close()

	server := New(cfg, Deps{Store: s})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/admin/snapshots", nil)
	server.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
