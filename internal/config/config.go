// Package config loads the settings shared by every command.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/emrgen/resourcesync/internal/model"
	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	defaultConfigPath = "config.yml"
)

var (
	// ErrUnsupportedDriver is returned for a database driver other than sqlite or postgres.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Log      LogConfig      `yaml:"log"`
	Backfill BackfillConfig `yaml:"backfill"`
}

type DatabaseConfig struct {
	// Driver is sqlite or postgres.
	Driver string `yaml:"driver"`
	// DSN is the sqlite file path or the postgres connection string.
	DSN string `yaml:"dsn"`
}

// RedisConfig configures the url to resource id cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type BackfillConfig struct {
	// Schedule is a cron spec for the periodic backfill job.
	Schedule    string `yaml:"schedule"`
	BatchSize   int    `yaml:"batch_size"`
	Concurrency int    `yaml:"concurrency"`
	// Kinds restricts the backfill to some parent kinds. Empty means all.
	Kinds []string `yaml:"kinds"`
}

func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver: DriverSQLite,
			DSN:    "resources.db",
		},
		Redis: RedisConfig{
			TTL: 24 * time.Hour,
		},
		Log: LogConfig{
			Level: "info",
		},
		Backfill: BackfillConfig{
			Schedule:    "@every 1h",
			BatchSize:   100,
			Concurrency: 4,
		},
	}
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Backfill.BatchSize <= 0 {
		return fmt.Errorf("backfill.batch_size must be positive")
	}
	if c.Backfill.Concurrency <= 0 {
		return fmt.Errorf("backfill.concurrency must be positive")
	}
	if _, err := c.BackfillKinds(); err != nil {
		return err
	}

	return nil
}

// BackfillKinds returns the parent kinds the backfill covers.
func (c *Config) BackfillKinds() ([]model.ParentKind, error) {
	if len(c.Backfill.Kinds) == 0 {
		return model.ParentKinds, nil
	}

	kinds := make([]model.ParentKind, 0, len(c.Backfill.Kinds))
	for _, name := range c.Backfill.Kinds {
		kind, ok := model.ParseParentKind(name)
		if !ok {
			return nil, fmt.Errorf("backfill.kinds: unknown kind %q", name)
		}
		kinds = append(kinds, kind)
	}

	return kinds, nil
}

// LogLevel is the parsed log level, info when it does not parse.
func (c *Config) LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}

	return level
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		logrus.Debugf("config file %s not found, using defaults", path)
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadConfig loads the file named by RESOURCES_CONFIG, or config.yml.
func LoadConfig() (*Config, error) {
	path := os.Getenv("RESOURCES_CONFIG")
	if path == "" {
		path = defaultConfigPath
	}

	return Load(path)
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("REDIS_DB: %w", err)
		}
		c.Redis.DB = db
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("BACKFILL_SCHEDULE"); v != "" {
		c.Backfill.Schedule = v
	}

	return nil
}
