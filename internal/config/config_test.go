package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/emrgen/resourcesync/internal/model"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "DATABASE_URL", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "LOG_LEVEL", "BACKFILL_SCHEDULE"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	config, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
	assert.Equal(t, logrus.InfoLevel, config.LogLevel())

	kinds, err := config.BackfillKinds()
	require.NoError(t, err)
	assert.Equal(t, model.ParentKinds, kinds)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
database:
  driver: postgres
  dsn: postgres://localhost/resources
redis:
  addr: localhost:6379
  ttl: 5m
log:
  level: debug
backfill:
  batch_size: 10
  kinds: [objective, nextStep]
`), 0o644))

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, config.Database.Driver)
	assert.Equal(t, "postgres://localhost/resources", config.Database.DSN)
	assert.Equal(t, "localhost:6379", config.Redis.Addr)
	assert.Equal(t, 5*time.Minute, config.Redis.TTL)
	assert.Equal(t, logrus.DebugLevel, config.LogLevel())
	assert.Equal(t, 10, config.Backfill.BatchSize)
	assert.Equal(t, 4, config.Backfill.Concurrency)
	assert.Equal(t, "@every 1h", config.Backfill.Schedule)

	kinds, err := config.BackfillKinds()
	require.NoError(t, err)
	assert.Equal(t, []model.ParentKind{model.KindObjective, model.KindNextStep}, kinds)
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "/tmp/other.db")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("BACKFILL_SCHEDULE", "@every 5m")

	config, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.db", config.Database.DSN)
	assert.Equal(t, "redis:6379", config.Redis.Addr)
	assert.Equal(t, 2, config.Redis.DB)
	assert.Equal(t, logrus.WarnLevel, config.LogLevel())
	assert.Equal(t, "@every 5m", config.Backfill.Schedule)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		yaml string
		is   error
	}{
		{name: "driver", env: map[string]string{"DB_DRIVER": "mysql"}, is: ErrUnsupportedDriver},
		{name: "log level", env: map[string]string{"LOG_LEVEL": "loud"}},
		{name: "redis db", env: map[string]string{"REDIS_DB": "first"}},
		{name: "batch size", yaml: "backfill:\n  batch_size: 0\n"},
		{name: "kinds", yaml: "backfill:\n  kinds: [goal]\n"},
		{name: "malformed", yaml: "database: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := filepath.Join(t.TempDir(), "config.yml")
			if tt.yaml != "" {
				require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))
			}

			_, err := Load(path)
			assert.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestGetDb(t *testing.T) {
	config := DefaultConfig()
	config.Database.DSN = filepath.Join(t.TempDir(), "resources.db")

	db, err := GetDb(config)
	require.NoError(t, err)
	require.NoError(t, model.Migrate(db))

	config.Database.Driver = "mysql"
	_, err = GetDb(config)
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}
