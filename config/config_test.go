package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("STRICT_VALIDATION", "true")
	t.Setenv("ARCHIVE_DB_HOST", "localhost")
	t.Setenv("ARCHIVE_DB_PORT", "5432")
	t.Setenv("ARCHIVE_DB_USER", "postgres")
	t.Setenv("ARCHIVE_DB_PASSWORD", "postgres")
	t.Setenv("ARCHIVE_DB_NAME", "sofrachef")
	t.Setenv("REDIS_URL", "redis://localhost:6379")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "127.0.0.1", cfg.ServerHost)
	assert.True(t, cfg.StrictValidation)
	assert.True(t, cfg.ArchiveEnabled())
	assert.Equal(t, "postgres", cfg.ArchiveDBUser)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Equal(t, "sofrachef.store.actions", cfg.EventsChannel)
}

func TestLoadConfigWithDefaults(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("CI", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("ARCHIVE_DB_HOST", "")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("STRICT_VALIDATION", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.False(t, cfg.StrictValidation)
	assert.False(t, cfg.ArchiveEnabled())
	assert.False(t, cfg.RedisEnabled())
}

func TestValidateConfigRejectsPartialArchive(t *testing.T) {
	cfg := &Config{
		ServerPort:    "8080",
		ArchiveDBHost: "localhost",
		ArchiveDBPort: "5432",
	}

	err := ValidateConfig(cfg)
	require.Error(t, err)
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "ARCHIVE_DB_USER", verr.Field)
}

func TestValidateConfigRejectsBadPort(t *testing.T) {
	cfg := &Config{ServerPort: "not-a-port"}
	err := ValidateConfig(cfg)
	require.Error(t, err)
}
