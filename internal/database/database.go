// Package database opens the gorm connection for the configured driver and
// prepares the schema.
package database

import (
	"fmt"
	"log/slog"
	"time"

	"blogly/internal/config"
	"blogly/internal/models"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured store. Constraint violations are translated
// into gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DSN)
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	logMode := logger.Warn
	if cfg.LogSQL {
		logMode = logger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logMode),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if cfg.Driver == config.DriverSQLite {
		// SQLite has a single writer; one connection keeps transactions serialized.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := setupJoinTables(db); err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	slog.Debug("database opened", slog.String("driver", cfg.Driver), slog.Bool("auto_migrate", cfg.AutoMigrate))
	return db, nil
}

// OpenInMemory opens a private, migrated SQLite database that lives as long as
// the returned handle. Each call gets its own database.
func OpenInMemory() (*gorm.DB, error) {
	return Open(config.DatabaseConfig{
		Driver:      config.DriverSQLite,
		DSN:         fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.NewString()),
		AutoMigrate: true,
	})
}

// Migrate creates or updates the users, posts, tags and posts_tags tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}
	return nil
}

// setupJoinTables binds both sides of the post/tag relation to models.PostTag.
func setupJoinTables(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Post{}, "Tags", &models.PostTag{}); err != nil {
		return fmt.Errorf("failed to set up posts_tags for Post.Tags: %w", err)
	}
	if err := db.SetupJoinTable(&models.Tag{}, "Posts", &models.PostTag{}); err != nil {
		return fmt.Errorf("failed to set up posts_tags for Tag.Posts: %w", err)
	}
	return nil
}
