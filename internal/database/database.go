package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/redditjury/reddit-jury-backend/internal/config"
	"github.com/redditjury/reddit-jury-backend/internal/logging"
	"github.com/redditjury/reddit-jury-backend/internal/storage"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to Postgres and migrates the schema. Only wired up when the
// postgres storage driver is selected.
func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.AutoMigrate(&storage.CollectionRecord{}, &logging.SystemLog{}); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	slog.Info("database connected")
	return db, nil
}
