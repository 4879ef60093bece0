package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahirli/sofrachef-backend/internal/models"
	"github.com/tahirli/sofrachef-backend/internal/store"
)

func TestGetStateServesWireFieldNames(t *testing.T) {
	router, _ := newTestRouter(t, store.Options{})

	w := PerformRequest(router, "GET", "/api/v1/state", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Contains(t, body, "currentLanguage")
	assert.Contains(t, body, "trackingEnabled")
	assert.Contains(t, body, "bookings")
	assert.Equal(t, "en", body["currentLanguage"])
}

func TestBookingLifecycleOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t, store.Options{})

	// Create without id or status: server fills defaults.
	w := PerformRequest(router, "POST", "/api/v1/bookings", map[string]interface{}{
		"userId":     "user-1",
		"chefId":     "1",
		"mealType":   "home-style",
		"date":       "2024-01-15",
		"time":       "18:00",
		"duration":   3,
		"totalPrice": 240,
		"address":    "123 Main St",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	created := decodeBody(t, w)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "pending", created["status"])

	// Walk the booking through its lifecycle.
	for _, status := range []string{"confirmed", "chef-en-route", "chef-arrived", "cooking", "completed"} {
		w = PerformRequest(router, "PATCH", "/api/v1/bookings/"+id, map[string]interface{}{
			"status": status,
		})
		require.Equal(t, http.StatusOK, w.Code, "transition to %s", status)
		assert.Equal(t, status, decodeBody(t, w)["status"])
	}

	// Partial merge leaves untouched fields alone.
	w = PerformRequest(router, "PATCH", "/api/v1/bookings/"+id, map[string]interface{}{
		"estimatedArrival": "18:15",
	})
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody(t, w)
	assert.Equal(t, "18:15", got["estimatedArrival"])
	assert.Equal(t, "completed", got["status"])
	assert.Equal(t, float64(240), got["totalPrice"])
}

func TestUpdateUnknownBookingReturnsNotFound(t *testing.T) {
	router, _ := newTestRouter(t, store.Options{})

	w := PerformRequest(router, "PATCH", "/api/v1/bookings/ghost", map[string]interface{}{
		"status": "confirmed",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// seedStrictChef registers chef "1" so referential checks pass.
func seedStrictChef(t *testing.T, router *gin.Engine) {
	t.Helper()
	w := PerformRequest(router, "PUT", "/api/v1/chefs", []map[string]interface{}{
		{"id": "1", "name": "Maria"},
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestStrictModeRejectsIllegalStatusJump(t *testing.T) {
	router, _ := newTestRouter(t, store.Options{Strict: true})
	seedStrictChef(t, router)

	w := PerformRequest(router, "POST", "/api/v1/bookings", map[string]interface{}{
		"id":       "booking-1",
		"userId":   "user-1",
		"chefId":   "1",
		"mealType": "gourmet",
		"duration": 3,
		"status":   "pending",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = PerformRequest(router, "PATCH", "/api/v1/bookings/booking-1", map[string]interface{}{
		"status": "cooking",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestStrictModeRejectsDuplicateBookingID(t *testing.T) {
	router, _ := newTestRouter(t, store.Options{Strict: true})
	seedStrictChef(t, router)

	booking := map[string]interface{}{
		"id":       "booking-1",
		"userId":   "user-1",
		"chefId":   "1",
		"mealType": "event",
		"duration": 2,
	}
	w := PerformRequest(router, "POST", "/api/v1/bookings", booking)
	require.Equal(t, http.StatusCreated, w.Code)

	w = PerformRequest(router, "POST", "/api/v1/bookings", booking)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestChefSpecialtyFilter(t *testing.T) {
	router, _ := newTestRouter(t, store.Options{})

	w := PerformRequest(router, "PUT", "/api/v1/chefs", []map[string]interface{}{
		{"id": "1", "name": "Maria", "specialties": []string{"Mexican", "Vegetarian"}},
		{"id": "2", "name": "James", "specialties": []string{"Asian Fusion"}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, "GET", "/api/v1/chefs?specialty=Mexican", nil)
	require.Equal(t, http.StatusOK, w.Code)
	chefs := decodeBody(t, w)["chefs"].([]interface{})
	require.Len(t, chefs, 1)
	assert.Equal(t, "Maria", chefs[0].(map[string]interface{})["name"])
}

func TestChefLocationPatch(t *testing.T) {
	router, _ := newTestRouter(t, store.Options{})

	w := PerformRequest(router, "PUT", "/api/v1/chefs", []map[string]interface{}{
		{"id": "1", "name": "Maria"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, "PATCH", "/api/v1/chefs/1/location", map[string]interface{}{
		"latitude":  40.7128,
		"longitude": -74.0060,
		"address":   "En route",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, "GET", "/api/v1/chefs/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	loc := decodeBody(t, w)["currentLocation"].(map[string]interface{})
	assert.Equal(t, "En route", loc["address"])
}

func TestCurrentUserRoundTrip(t *testing.T) {
	router, _ := newTestRouter(t, store.Options{})

	w := PerformRequest(router, "GET", "/api/v1/users/current", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = PerformRequest(router, "PUT", "/api/v1/users/current", map[string]interface{}{
		"id":            "user-1",
		"name":          "John Doe",
		"userType":      "user",
		"loyaltyPoints": 250,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, "GET", "/api/v1/users/current", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "John Doe", decodeBody(t, w)["name"])

	// JSON null clears the user again.
	w = PerformRequest(router, "PUT", "/api/v1/users/current", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, "GET", "/api/v1/users/current", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoyaltyPointsReplaceBalance(t *testing.T) {
	router, _ := newTestRouter(t, store.Options{})

	w := PerformRequest(router, "PUT", "/api/v1/users/current", map[string]interface{}{
		"id":            "user-1",
		"name":          "John Doe",
		"loyaltyPoints": 250,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, "PUT", "/api/v1/users/current/loyalty-points", map[string]interface{}{
		"userId": "user-1",
		"points": 300,
	})
	require.Equal(t, http.StatusOK, w.Code)

	user := decodeBody(t, w)["currentUser"].(map[string]interface{})
	assert.Equal(t, float64(300), user["loyaltyPoints"])
}

func TestNotificationDataQuarantinedInLenientMode(t *testing.T) {
	router, _ := newTestRouter(t, store.Options{})

	w := PerformRequest(router, "POST", "/api/v1/notifications", map[string]interface{}{
		"id":      "notif-1",
		"userId":  "user-1",
		"type":    "chef-en-route",
		"title":   "Chef is on the way!",
		"message": "ETA 15 minutes",
		"data":    map[string]interface{}{"chefId": "1", "bogus": true},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// The malformed payload is dropped, not stored.
	body := decodeBody(t, w)
	_, hasData := body["data"]
	assert.False(t, hasData)
}

func TestNotificationDataRejectedInStrictMode(t *testing.T) {
	router, _ := newTestRouter(t, store.Options{Strict: true})

	w := PerformRequest(router, "POST", "/api/v1/notifications", map[string]interface{}{
		"id":      "notif-1",
		"userId":  "user-1",
		"type":    "chef-en-route",
		"title":   "Chef is on the way!",
		"message": "ETA 15 minutes",
		"data":    map[string]interface{}{"chefId": "1", "bogus": true},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarkNotificationRead(t *testing.T) {
	router, _ := newTestRouter(t, store.Options{})

	w := PerformRequest(router, "POST", "/api/v1/notifications", map[string]interface{}{
		"id":      "notif-1",
		"userId":  "user-1",
		"type":    "booking-confirmed",
		"title":   "Booking confirmed",
		"message": "See you at 18:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = PerformRequest(router, "POST", "/api/v1/notifications/notif-1/read", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["isRead"])

	w = PerformRequest(router, "GET", "/api/v1/notifications?unread=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["notifications"])
}

func TestRecipeFilters(t *testing.T) {
	router, s := newTestRouter(t, store.Options{})

	_, err := s.Dispatch(store.SetRecipes([]models.Recipe{
		{
			ID:          "recipe-1",
			Title:       "Quinoa Power Bowl",
			Category:    "Healthy",
			Ingredients: []models.Ingredient{{ID: "i1", Name: "Quinoa"}, {ID: "i2", Name: "Chicken breast"}},
		},
		{
			ID:          "recipe-2",
			Title:       "Chiles Rellenos",
			Category:    "Mexican",
			Ingredients: []models.Ingredient{{ID: "i3", Name: "Poblano peppers"}, {ID: "i4", Name: "Oaxaca cheese"}},
		},
	}))
	require.NoError(t, err)

	cases := []struct {
		query string
		want  []string
	}{
		{"q=quinoa", []string{"recipe-1"}},
		{"category=Mexican", []string{"recipe-2"}},
		{"exclude=chicken", []string{"recipe-2"}},
		{"exclude=chicken,cheese", nil},
	}
	for _, tc := range cases {
		w := PerformRequest(router, "GET", "/api/v1/recipes?"+tc.query, nil)
		require.Equal(t, http.StatusOK, w.Code, tc.query)

		var body struct {
			Recipes []models.Recipe `json:"recipes"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), tc.query)

		var ids []string
		for _, r := range body.Recipes {
			ids = append(ids, r.ID)
		}
		assert.Equal(t, tc.want, ids, tc.query)
	}
}

func TestMealPlanPartialUpdate(t *testing.T) {
	router, _ := newTestRouter(t, store.Options{})

	w := PerformRequest(router, "POST", "/api/v1/meal-plans", map[string]interface{}{
		"id":       "plan-1",
		"userId":   "user-1",
		"name":     "Gluten-Free Week",
		"duration": 7,
		"isActive": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = PerformRequest(router, "PATCH", "/api/v1/meal-plans/plan-1", map[string]interface{}{
		"name": "Gluten-Free Fortnight",
	})
	require.Equal(t, http.StatusOK, w.Code)

	got := decodeBody(t, w)
	assert.Equal(t, "Gluten-Free Fortnight", got["name"])
	assert.Equal(t, float64(7), got["duration"])
	assert.Equal(t, true, got["isActive"])
}

func TestSettingsEndpoints(t *testing.T) {
	router, _ := newTestRouter(t, store.Options{})

	w := PerformRequest(router, "PUT", "/api/v1/settings/language", map[string]interface{}{
		"language": "az",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "az", decodeBody(t, w)["currentLanguage"])

	w = PerformRequest(router, "PUT", "/api/v1/settings/tracking", map[string]interface{}{
		"enabled": false,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["trackingEnabled"])

	w = PerformRequest(router, "PUT", "/api/v1/settings/loading", map[string]interface{}{
		"enabled": true,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["loading"])
}

func TestUnknownLanguageRejected(t *testing.T) {
	router, _ := newTestRouter(t, store.Options{})

	w := PerformRequest(router, "PUT", "/api/v1/settings/language", map[string]interface{}{
		"language": "fr",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvoiceStatusFilter(t *testing.T) {
	router, _ := newTestRouter(t, store.Options{})

	w := PerformRequest(router, "PUT", "/api/v1/invoices", []map[string]interface{}{
		{"id": "inv-1", "bookingId": "booking-1", "status": "pending", "subtotal": 240, "tax": 24, "total": 264},
		{"id": "inv-2", "bookingId": "booking-2", "status": "paid", "subtotal": 180, "tax": 18, "total": 198},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, "GET", "/api/v1/invoices?status=paid", nil)
	require.Equal(t, http.StatusOK, w.Code)
	invoices := decodeBody(t, w)["invoices"].([]interface{})
	require.Len(t, invoices, 1)
	assert.Equal(t, "inv-2", invoices[0].(map[string]interface{})["id"])
}

func TestReviewCategoriesFollowDirection(t *testing.T) {
	router, _ := newTestRouter(t, store.Options{Strict: true})
	seedStrictChef(t, router)

	w0 := PerformRequest(router, "POST", "/api/v1/bookings", map[string]interface{}{
		"id":       "booking-1",
		"userId":   "user-1",
		"chefId":   "1",
		"mealType": "home-style",
		"duration": 3,
	})
	require.Equal(t, http.StatusCreated, w0.Code)

	// chef-to-user review carrying chef categories is the wrong block.
	w := PerformRequest(router, "POST", "/api/v1/reviews", map[string]interface{}{
		"id":        "review-1",
		"bookingId": "booking-1",
		"userId":    "user-1",
		"chefId":    "1",
		"rating":    5,
		"type":      "chef-to-user",
		"chefCategories": map[string]interface{}{
			"foodQuality": 5,
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = PerformRequest(router, "POST", "/api/v1/reviews", map[string]interface{}{
		"id":        "review-1",
		"bookingId": "booking-1",
		"userId":    "user-1",
		"chefId":    "1",
		"rating":    5,
		"type":      "chef-to-user",
		"userCategories": map[string]interface{}{
			"kitchenCondition": 5,
			"behavior":         5,
			"communication":    5,
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSubscriptionAccounting(t *testing.T) {
	router, _ := newTestRouter(t, store.Options{Strict: true})

	w := PerformRequest(router, "POST", "/api/v1/subscriptions", map[string]interface{}{
		"id":            "sub-1",
		"userId":        "user-1",
		"type":          "basic-10",
		"sessionsTotal": 10,
		"sessionsUsed":  12,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConcurrentBookingCreatesAllLand(t *testing.T) {
	router, _ := newTestRouter(t, store.Options{})

	done := make(chan int, 8)
	for i := 0; i < 8; i++ {
		go func(n int) {
			w := PerformRequest(router, "POST", "/api/v1/bookings", map[string]interface{}{
				"id":       fmt.Sprintf("booking-%d", n),
				"userId":   "user-1",
				"chefId":   "1",
				"mealType": "home-style",
			})
			done <- w.Code
		}(i)
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, http.StatusCreated, <-done)
	}

	w := PerformRequest(router, "GET", "/api/v1/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["bookings"], 8)
}
