package config

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GetDb opens the configured database. Unique violations surface as
// gorm.ErrDuplicatedKey.
func GetDb(config *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch config.Database.Driver {
	case DriverSQLite:
		dialector = sqlite.Open(config.Database.DSN)
	case DriverPostgres:
		dialector = postgres.Open(config.Database.DSN)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, config.Database.Driver)
	}

	logLevel := logger.Warn
	if config.LogLevel() >= logrus.DebugLevel {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(logrus.StandardLogger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", config.Database.Driver, err)
	}

	if config.Database.Driver == DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}
