package database

import (
	"fmt"
	"time"

	"task-list-web/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options controls how the database is opened.
type Options struct {
	// Path is the SQLite file; ":memory:" opens a private in-memory database.
	Path string
	// LogLevel is the gorm SQL log level.
	LogLevel logger.LogLevel
}

// Open connects to the SQLite database and runs migrations.
// The file is created on first use.
func Open(opts Options) (*gorm.DB, error) {
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Warn
	}

	// glebarez/sqlite is a pure Go driver (no CGO required)
	db, err := gorm.Open(sqlite.Open(opts.Path), &gorm.Config{
		Logger:  logger.Default.LogMode(opts.LogLevel),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open database %q: %w", opts.Path, err)
	}

	// SQLite allows a single writer; one connection also keeps ":memory:" on one database
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the tasks table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Task{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
