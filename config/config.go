package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Store behavior
	StrictValidation bool
	SeedDemoData     bool

	// Snapshot archive database (optional; archive is disabled when
	// ArchiveDBHost is empty)
	ArchiveDBHost     string
	ArchiveDBPort     string
	ArchiveDBUser     string
	ArchiveDBPassword string
	ArchiveDBName     string
	ArchiveDBSSLMode  string

	// Redis configuration (rate limiting and the store event channel)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string
	EventsChannel string

	// Snapshot export bucket
	ExportBucket string
}

// LoadConfig creates a new Config instance with values from environment
// variables or secrets, depending on the detected environment.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	switch env {
	case CI, Test:
		loadEnvConfig(cfg)
	case Development:
		loadDevConfig(cfg)
	case Production:
		if err := loadProdConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load production configuration: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	applyDefaults(cfg)

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadEnvConfig reads everything straight from environment variables.
func loadEnvConfig(cfg *Config) {
	cfg.ServerPort = os.Getenv("SERVER_PORT")
	cfg.ServerHost = os.Getenv("SERVER_HOST")
	cfg.StrictValidation = boolEnv("STRICT_VALIDATION")
	cfg.SeedDemoData = boolEnv("SEED_DEMO_DATA")
	cfg.ArchiveDBHost = os.Getenv("ARCHIVE_DB_HOST")
	cfg.ArchiveDBPort = os.Getenv("ARCHIVE_DB_PORT")
	cfg.ArchiveDBUser = os.Getenv("ARCHIVE_DB_USER")
	cfg.ArchiveDBPassword = os.Getenv("ARCHIVE_DB_PASSWORD")
	cfg.ArchiveDBName = os.Getenv("ARCHIVE_DB_NAME")
	cfg.ArchiveDBSSLMode = os.Getenv("ARCHIVE_DB_SSL_MODE")
	cfg.RedisHost = os.Getenv("REDIS_HOST")
	cfg.RedisPort = os.Getenv("REDIS_PORT")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.RedisURL = os.Getenv("REDIS_URL")
	cfg.EventsChannel = os.Getenv("EVENTS_CHANNEL")
	cfg.ExportBucket = os.Getenv("EXPORT_BUCKET")
	if db := os.Getenv("REDIS_DB"); db != "" {
		if n, err := strconv.Atoi(db); err == nil {
			cfg.RedisDB = n
		}
	}
}

// loadDevConfig loads configuration for development: environment variables
// plus docker secrets for credentials. Secrets are optional in development;
// env values win when both exist.
func loadDevConfig(cfg *Config) {
	loadEnvConfig(cfg)

	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}

	secrets := readSecrets(secretsDir, []string{
		"archive_db_user",
		"archive_db_password",
		"redis_password",
	})
	if cfg.ArchiveDBUser == "" {
		cfg.ArchiveDBUser = secrets["archive_db_user"]
	}
	if cfg.ArchiveDBPassword == "" {
		cfg.ArchiveDBPassword = secrets["archive_db_password"]
	}
	if cfg.RedisPassword == "" {
		cfg.RedisPassword = secrets["redis_password"]
	}
}

// loadProdConfig loads configuration for production, requiring credentials
// from the secrets directory when the matching backend is configured.
func loadProdConfig(cfg *Config) error {
	loadEnvConfig(cfg)

	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}

	if cfg.ArchiveDBHost != "" && cfg.ArchiveDBPassword == "" {
		content, err := os.ReadFile(filepath.Join(secretsDir, "archive_db_password"))
		if err != nil {
			return fmt.Errorf("archive database is configured but archive_db_password secret is missing: %w", err)
		}
		cfg.ArchiveDBPassword = strings.TrimSpace(string(content))
	}
	if cfg.RedisEnabled() && cfg.RedisPassword == "" {
		if content, err := os.ReadFile(filepath.Join(secretsDir, "redis_password")); err == nil {
			cfg.RedisPassword = strings.TrimSpace(string(content))
		}
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.ServerHost == "" {
		cfg.ServerHost = "0.0.0.0"
	}
	if cfg.ArchiveDBPort == "" {
		cfg.ArchiveDBPort = "5432"
	}
	if cfg.ArchiveDBSSLMode == "" {
		cfg.ArchiveDBSSLMode = "disable"
	}
	if cfg.RedisPort == "" {
		cfg.RedisPort = "6379"
	}
	if cfg.EventsChannel == "" {
		cfg.EventsChannel = "sofrachef.store.actions"
	}
}

// ArchiveEnabled reports whether a snapshot archive database is configured.
func (c *Config) ArchiveEnabled() bool {
	return c.ArchiveDBHost != ""
}

// RedisEnabled reports whether Redis-backed features are configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != "" || c.RedisURL != ""
}

func readSecrets(dir string, names []string) map[string]string {
	secrets := make(map[string]string)
	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		secrets[name] = strings.TrimSpace(string(content))
	}
	return secrets
}

func boolEnv(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
