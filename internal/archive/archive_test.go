package archive

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tahirli/sofrachef-backend/internal/models"
	"github.com/tahirli/sofrachef-backend/internal/store"
)

func testArchive(t *testing.T) *Archive {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	a, err := New(db)
	require.NoError(t, err)
	return a
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	a := testArchive(t)
	ctx := context.Background()

	state := store.InitialState()
	state.Chefs = []models.Chef{{ID: "c1", Name: "Maria Rodriguez", Rating: 4.8}}
	state.Bookings = []models.Booking{{ID: "b1", ChefID: "c1", Status: models.BookingPending, TotalPrice: 240}}
	state.Language = models.LanguageAZ

	snap, err := a.Save(ctx, "before-demo", state)
	require.NoError(t, err)
	require.NotEmpty(t, snap.ID)

	loaded, err := a.Load(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, state.Chefs, loaded.Chefs)
	assert.Equal(t, state.Bookings, loaded.Bookings)
	assert.Equal(t, models.LanguageAZ, loaded.Language)
}

func TestListNewestFirstWithoutBlobs(t *testing.T) {
	a := testArchive(t)
	ctx := context.Background()

	for _, label := range []string{"first", "second"} {
		_, err := a.Save(ctx, label, store.InitialState())
		require.NoError(t, err)
	}

	snaps, err := a.List(ctx)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	for _, s := range snaps {
		assert.NotEmpty(t, s.Label)
		assert.Empty(t, s.State, "list must not carry state blobs")
	}
}

func TestLoadUnknownSnapshot(t *testing.T) {
	a := testArchive(t)

	_, err := a.Load(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}
