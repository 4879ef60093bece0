package config

import (
	"fmt"
	"strconv"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks the loaded configuration for internal consistency.
// Optional backends (archive, Redis, export bucket) are only validated when
// they are switched on.
func ValidateConfig(cfg *Config) error {
	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("must be numeric, got %q", cfg.ServerPort)}
	}

	if cfg.ArchiveEnabled() {
		if cfg.ArchiveDBUser == "" {
			return ValidationError{Field: "ARCHIVE_DB_USER", Message: "required when ARCHIVE_DB_HOST is set"}
		}
		if cfg.ArchiveDBName == "" {
			return ValidationError{Field: "ARCHIVE_DB_NAME", Message: "required when ARCHIVE_DB_HOST is set"}
		}
		if _, err := strconv.Atoi(cfg.ArchiveDBPort); err != nil {
			return ValidationError{Field: "ARCHIVE_DB_PORT", Message: fmt.Sprintf("must be numeric, got %q", cfg.ArchiveDBPort)}
		}
	}

	if cfg.RedisEnabled() && cfg.RedisURL == "" {
		if _, err := strconv.Atoi(cfg.RedisPort); err != nil {
			return ValidationError{Field: "REDIS_PORT", Message: fmt.Sprintf("must be numeric, got %q", cfg.RedisPort)}
		}
	}

	if IsProduction() && cfg.ExportBucket != "" && cfg.ArchiveDBHost == "" {
		return ValidationError{Field: "EXPORT_BUCKET", Message: "snapshot export requires the archive database"}
	}

	return nil
}
