package database

import (
	"time"

	"github.com/pushp314/newsletter-api/internal/config"
	"github.com/pushp314/newsletter-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database described by cfg. With DATABASE_URL set it
// connects to PostgreSQL; otherwise it falls back to a local SQLite file,
// which is what development and the seeder use.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.DatabaseURL != "" {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// SQLite tolerates a single writer; keep the pool tight there and
	// only open it up for Postgres.
	if cfg.DatabaseURL != "" {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
	} else {
		sqlDB.SetMaxOpenConns(1)
	}
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// Migrate brings the schema up to date via GORM auto-migration.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Newsletter{})
}
