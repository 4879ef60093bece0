// Package archive persists named snapshots of the application state to a
// relational database. The live store stays in memory; the archive is the
// explicit durability escape hatch for seeding, backup and restore.
package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tahirli/sofrachef-backend/config"
	"github.com/tahirli/sofrachef-backend/internal/database"
	"github.com/tahirli/sofrachef-backend/internal/store"
)

// ErrSnapshotNotFound is returned when no snapshot matches the given id.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Snapshot is one archived state, stored as a JSON document.
type Snapshot struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Label     string    `gorm:"size:255;not null" json:"label"`
	State     string    `gorm:"type:text;not null" json:"-"`
}

func (Snapshot) TableName() string { return "snapshots" }

// Archive stores and retrieves snapshots.
type Archive struct {
	db *gorm.DB
}

// Open connects to the configured archive database and migrates the
// snapshot table.
func Open(cfg *config.Config) (*Archive, error) {
	db, err := gorm.Open(postgres.Open(database.DSN(cfg)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open archive database: %w", err)
	}
	return New(db)
}

// New wraps an existing gorm connection. Used directly by tests with sqlite.
func New(db *gorm.DB) (*Archive, error) {
	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate snapshot table: %w", err)
	}
	return &Archive{db: db}, nil
}

// Save archives the given state under a label and returns the stored row.
func (a *Archive) Save(ctx context.Context, label string, state store.AppState) (Snapshot, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to encode state: %w", err)
	}

	snap := Snapshot{
		ID:    uuid.NewString(),
		Label: label,
		State: string(raw),
	}
	if err := a.db.WithContext(ctx).Create(&snap).Error; err != nil {
		return Snapshot{}, fmt.Errorf("failed to save snapshot: %w", err)
	}
	return snap, nil
}

// List returns all snapshots, newest first, without their state blobs.
func (a *Archive) List(ctx context.Context) ([]Snapshot, error) {
	var snaps []Snapshot
	err := a.db.WithContext(ctx).
		Select("id", "created_at", "label").
		Order("created_at DESC").
		Find(&snaps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return snaps, nil
}

// Get returns one snapshot row including its state blob.
func (a *Archive) Get(ctx context.Context, id string) (Snapshot, error) {
	var snap Snapshot
	err := a.db.WithContext(ctx).First(&snap, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Snapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return snap, nil
}

// Load decodes the archived state of the snapshot with the given id.
func (a *Archive) Load(ctx context.Context, id string) (store.AppState, error) {
	snap, err := a.Get(ctx, id)
	if err != nil {
		return store.AppState{}, err
	}

	var state store.AppState
	if err := json.Unmarshal([]byte(snap.State), &state); err != nil {
		return store.AppState{}, fmt.Errorf("failed to decode snapshot %s: %w", id, err)
	}
	return state, nil
}
