package database

import (
	"fmt"
	"log"
	"sync"

	"contactdesk/internal/config"
	"contactdesk/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the process-wide database handle, set by Connect.
var DB *gorm.DB

var (
	mu        sync.Mutex
	connected bool
)

// Connect opens the database and runs migrations. It is safe to call
// repeatedly: after the first success it is a no-op, while a failed
// attempt leaves the next call free to retry.
func Connect(cfg *config.Config) error {
	mu.Lock()
	defer mu.Unlock()

	if connected {
		return nil
	}

	dialector, err := openDialector(cfg)
	if err != nil {
		return err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("database: connecting (%s): %w", cfg.DBDriver, err)
	}

	if err := db.AutoMigrate(&models.Contact{}); err != nil {
		return fmt.Errorf("database: migrating: %w", err)
	}

	DB = db
	connected = true
	log.Printf("Connected to %s database", cfg.DBDriver)
	return nil
}

func openDialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "sqlite", "":
		return sqlite.Open(cfg.DBPath), nil
	case "postgres":
		return postgres.Open(cfg.DBDSN), nil
	case "mysql":
		return mysql.Open(cfg.DBDSN), nil
	default:
		return nil, fmt.Errorf("database: unknown driver %q", cfg.DBDriver)
	}
}

// Reset closes the current connection state so Connect can be called
// again. Used by tests that need a fresh database per case.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	if DB != nil {
		if sqlDB, err := DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
	DB = nil
	connected = false
}
