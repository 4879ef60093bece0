package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/tahirli/sofrachef-backend/config"
	"github.com/tahirli/sofrachef-backend/internal/archive"
	"github.com/tahirli/sofrachef-backend/internal/database"
	"github.com/tahirli/sofrachef-backend/internal/events"
	"github.com/tahirli/sofrachef-backend/internal/seed"
	"github.com/tahirli/sofrachef-backend/internal/server"
	"github.com/tahirli/sofrachef-backend/internal/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	st := store.New(store.Options{Strict: cfg.StrictValidation})
	defer st.Close()

	if cfg.SeedDemoData {
		if err := st.Restore(seed.DemoState()); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		log.Println("Seeded demo data")
	}

	deps := server.Deps{Store: st}

	if cfg.ArchiveEnabled() {
		db, err := database.New(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to archive database: %v", err)
		}
		defer db.Close()
		deps.DB = db

		arc, err := archive.Open(cfg)
		if err != nil {
			log.Fatalf("Failed to open snapshot archive: %v", err)
		}
		deps.Archive = arc

		if cfg.ExportBucket != "" {
			s3cfg, err := config.NewS3Config(context.Background(), cfg.ExportBucket)
			if err != nil {
				log.Fatalf("Failed to configure snapshot export: %v", err)
			}
			deps.Exporter = archive.NewExporter(s3cfg)
		}
	}

	var redisClient *redis.Client
	if cfg.RedisEnabled() {
		redisClient, err = database.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		deps.Redis = redisClient

		publisher := events.NewPublisher(redisClient, cfg.EventsChannel)
		detach := publisher.Attach(st)
		defer detach()
	}

	srv := server.New(cfg, deps)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
