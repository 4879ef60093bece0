package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tahirli/sofrachef-backend/internal/store"
)

// newTestRouter builds a router with every store-backed handler mounted
// under /api/v1, the way the server wires them, minus middleware.
func newTestRouter(t *testing.T, opts store.Options) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.New(opts)
	t.Cleanup(s.Close)

	router := gin.New()
	v1 := router.Group("/api/v1")

	NewStateHandler(s, nil).RegisterRoutes(v1)
	NewUserHandler(s).RegisterRoutes(v1)
	NewChefHandler(s).RegisterRoutes(v1)
	NewBookingHandler(s).RegisterRoutes(v1)
	NewReviewHandler(s).RegisterRoutes(v1)
	NewSubscriptionHandler(s).RegisterRoutes(v1)
	NewLoyaltyHandler(s).RegisterRoutes(v1)
	NewSuggestionHandler(s).RegisterRoutes(v1)
	NewNotificationHandler(s).RegisterRoutes(v1)
	NewInvoiceHandler(s).RegisterRoutes(v1)
	NewRecipeHandler(s).RegisterRoutes(v1)
	NewMealPlanHandler(s).RegisterRoutes(v1)
	NewSettingsHandler(s).RegisterRoutes(v1)

	return router, s
}

// PerformRequest runs one request against the router, JSON-encoding a
// non-nil body.
func PerformRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return out
}
