package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"

	"github.com/tahirli/sofrachef-backend/config"
)

// DB represents the snapshot archive database connection
type DB struct {
	*sql.DB
}

// DSN builds the Postgres connection string for the archive database.
func DSN(cfg *config.Config) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.ArchiveDBHost, cfg.ArchiveDBPort, cfg.ArchiveDBUser,
		cfg.ArchiveDBPassword, cfg.ArchiveDBName, cfg.ArchiveDBSSLMode,
	)
}

// New creates a new database connection
func New(cfg *config.Config) (*DB, error) {
	log.Printf("Connecting to archive database at %s:%s as user %s",
		cfg.ArchiveDBHost, cfg.ArchiveDBPort, cfg.ArchiveDBUser)

	db, err := sql.Open("postgres", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("error opening database: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %v", err)
	}

	log.Printf("Successfully connected to archive database")
	return &DB{db}, nil
}

// HealthCheck checks if the database is accessible
func (db *DB) HealthCheck(ctx context.Context) error {
	return db.PingContext(ctx)
}
