package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"soundvibe/compatibility-api/internal/models"
)

// InitDatabase connects to the profiles database. In production the main
// application owns the profiles table, so schema migration is skipped there
// and only runs in other environments.
func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := cfg.GetDatabaseDSN()

	logLevel := logger.Silent
	if cfg.Server.Env == "development" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("✅ Database connected successfully")

	if cfg.Server.Env != "production" {
		if err := db.AutoMigrate(&models.Profile{}); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		log.Println("✅ Database migration completed")
	}

	return db, nil
}
