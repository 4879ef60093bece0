package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahirli/sofrachef-backend/internal/models"
)

func newStrictWithChef(t *testing.T) *Store {
	t.Helper()
	s := New(Options{Strict: true})
	_, err := s.Dispatch(SetChefs([]models.Chef{testChef("c1")}))
	require.NoError(t, err)
	return s
}

func TestStrictRejectsIllegalStatusJump(t *testing.T) {
	s := newStrictWithChef(t)
	_, err := s.Dispatch(AddBooking(testBooking("b1")))
	require.NoError(t, err)

	completed := models.BookingCompleted
	_, err = s.Dispatch(UpdateBooking("b1", models.BookingUpdate{Status: &completed}))
	var cerr *ConflictError
	require.ErrorAs(t, err, &cerr, "pending -> completed must be rejected")

	// The legal path goes through every intermediate state.
	for _, status := range []models.BookingStatus{
		models.BookingConfirmed,
		models.BookingChefEnRoute,
		models.BookingChefArrived,
		models.BookingCooking,
		models.BookingCompleted,
	} {
		st := status
		_, err = s.Dispatch(UpdateBooking("b1", models.BookingUpdate{Status: &st}))
		require.NoError(t, err, "transition to %s", status)
	}
}

func TestStrictAllowsCancellingPendingAndConfirmedOnly(t *testing.T) {
	s := newStrictWithChef(t)
	_, err := s.Dispatch(AddBooking(testBooking("b1")))
	require.NoError(t, err)

	cancelled := models.BookingCancelled
	_, err = s.Dispatch(UpdateBooking("b1", models.BookingUpdate{Status: &cancelled}))
	require.NoError(t, err)

	b2 := testBooking("b2")
	b2.Status = models.BookingCooking
	_, err = s.Dispatch(AddBooking(b2))
	require.NoError(t, err)
	_, err = s.Dispatch(UpdateBooking("b2", models.BookingUpdate{Status: &cancelled}))
	var cerr *ConflictError
	assert.ErrorAs(t, err, &cerr, "cooking -> cancelled must be rejected")
}

func TestStrictRejectsUnknownEnumValues(t *testing.T) {
	s := newStrictWithChef(t)

	b := testBooking("b1")
	b.Status = "teleporting"
	_, err := s.Dispatch(AddBooking(b))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	b = testBooking("b1")
	b.MealType = "midnight-feast"
	_, err = s.Dispatch(AddBooking(b))
	require.ErrorAs(t, err, &verr)
}

func TestStrictRejectsDuplicateAndDanglingBooking(t *testing.T) {
	s := newStrictWithChef(t)
	_, err := s.Dispatch(AddBooking(testBooking("b1")))
	require.NoError(t, err)

	_, err = s.Dispatch(AddBooking(testBooking("b1")))
	var cerr *ConflictError
	require.ErrorAs(t, err, &cerr)

	dangling := testBooking("b2")
	dangling.ChefID = "ghost"
	_, err = s.Dispatch(AddBooking(dangling))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestStrictUpdateUnknownIDReturnsNotFound(t *testing.T) {
	s := New(Options{Strict: true})

	confirmed := models.BookingConfirmed
	_, err := s.Dispatch(UpdateBooking("nope", models.BookingUpdate{Status: &confirmed}))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Dispatch(MarkNotificationRead("nope"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStrictSubscriptionSessionAccounting(t *testing.T) {
	s := New(Options{Strict: true})

	sub := models.Subscription{ID: "sub-1", UserID: "u1", SessionsTotal: 10, SessionsUsed: 11, Discount: 15, IsActive: true}
	_, err := s.Dispatch(AddSubscription(sub))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	sub.SessionsUsed = 3
	sub.Discount = 120
	_, err = s.Dispatch(AddSubscription(sub))
	require.ErrorAs(t, err, &verr)

	sub.Discount = 15
	_, err = s.Dispatch(AddSubscription(sub))
	require.NoError(t, err)
}

func TestStrictInvoiceTotalMustAddUp(t *testing.T) {
	s := New(Options{Strict: true})

	inv := models.Invoice{
		ID: "inv-1", BookingID: "b1", InvoiceNumber: "INV-2024-001",
		IssueDate: time.Now(), Subtotal: 240, Tax: 24, Total: 300,
		Status: models.InvoicePending,
	}
	_, err := s.Dispatch(AddInvoice(inv))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	inv.Total = 264
	_, err = s.Dispatch(AddInvoice(inv))
	require.NoError(t, err)
}

func TestStrictNotificationDataShapes(t *testing.T) {
	s := New(Options{Strict: true})

	n := models.Notification{
		ID:   "n1",
		Type: models.NotifChefEnRoute,
		Data: json.RawMessage(`{"chefId":"c1","eta":"15 minutes"}`),
	}
	_, err := s.Dispatch(AddNotification(n))
	require.NoError(t, err)

	n.ID = "n2"
	n.Data = json.RawMessage(`{"chefId":"c1","launchCodes":"0000"}`)
	_, err = s.Dispatch(AddNotification(n))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr, "unknown fields in the data payload must be rejected")

	n.ID = "n3"
	n.Type = "carrier-pigeon"
	n.Data = nil
	_, err = s.Dispatch(AddNotification(n))
	require.ErrorAs(t, err, &verr)
}

func TestStrictReviewCategoryShapeMatchesDirection(t *testing.T) {
	s := newStrictWithChef(t)
	_, err := s.Dispatch(AddBooking(testBooking("b1")))
	require.NoError(t, err)

	r := models.Review{
		ID: "r1", BookingID: "b1", UserID: "u1", ChefID: "c1",
		Rating: 5, Type: models.ReviewUserToChef,
		UserCategories: &models.UserReviewCategories{KitchenCondition: 5},
	}
	_, err = s.Dispatch(AddReview(r))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr, "user-to-chef review with the chef-to-user block must be rejected")

	r.UserCategories = nil
	r.ChefCategories = &models.ChefReviewCategories{FoodQuality: 5, Punctuality: 5, Professionalism: 5, Cleanliness: 4, Communication: 5}
	_, err = s.Dispatch(AddReview(r))
	require.NoError(t, err)
}

func TestLenientModeAbsorbsWhatStrictRejects(t *testing.T) {
	s := New(Options{})

	b := testBooking("b1")
	b.ChefID = "ghost"
	b.Status = models.BookingPending
	_, err := s.Dispatch(AddBooking(b))
	require.NoError(t, err, "lenient mode accepts dangling references")

	completed := models.BookingCompleted
	state, err := s.Dispatch(UpdateBooking("b1", models.BookingUpdate{Status: &completed}))
	require.NoError(t, err, "lenient mode accepts any status overwrite")
	assert.Equal(t, models.BookingCompleted, state.Bookings[0].Status)
}
