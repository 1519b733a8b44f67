package database

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/osse101/JobHunter_Go/internal/domain"
)

// Pinger is the readiness probe surface of the database
type Pinger interface {
	Ping(ctx context.Context) error
}

// DB wraps the gorm handle and owns the underlying connection
type DB struct {
	*gorm.DB
}

// Open opens (creating if needed) the SQLite file at path and applies pending migrations
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateDir, err)
		}
	}

	// busy_timeout lets the reset CLI and a running server share the file
	dsn := path + "?_busy_timeout=5000&_journal_mode=WAL"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrDatabaseError, ErrMsgFailedToOpenDatabase, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrDatabaseError, ErrMsgFailedToGetSQLDB, err)
	}
	sqlDB.SetMaxOpenConns(MaxOpenConns)
	sqlDB.SetConnMaxLifetime(ConnMaxLifetime)

	db := &DB{DB: gdb}
	if err := db.Migrate(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	slog.Default().Info(LogMsgSuccessfullyOpenedDatabase, "path", path)
	return db, nil
}

// Ping verifies the connection is usable
func (db *DB) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToGetSQLDB, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}
	return nil
}

// Close releases the underlying connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToGetSQLDB, err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCloseDatabase, err)
	}
	return nil
}
