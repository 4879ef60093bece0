// Seeds the snapshot archive with the demo dataset so a fresh
// deployment can restore a populated state through the admin API.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/tahirli/sofrachef-backend/config"
	"github.com/tahirli/sofrachef-backend/internal/archive"
	"github.com/tahirli/sofrachef-backend/internal/seed"
)

func main() {
	label := flag.String("label", "demo dataset", "label stored with the snapshot")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if !cfg.ArchiveEnabled() {
		log.Fatal("ARCHIVE_DB_HOST is not set; nowhere to write the snapshot")
	}

	arc, err := archive.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open snapshot archive: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	snap, err := arc.Save(ctx, *label, seed.DemoState())
	if err != nil {
		log.Fatalf("Failed to save snapshot: %v", err)
	}
	log.Printf("Saved snapshot %s (%q)", snap.ID, snap.Label)
}
