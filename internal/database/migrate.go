package database

import (
	"embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/pressly/goose/v3"

	"github.com/osse101/JobHunter_Go/internal/domain"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies every pending embedded migration
func (db *DB) Migrate() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToGetSQLDB, err)
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{})
	if err := goose.SetDialect(Dialect); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrMigrationFailed, ErrMsgFailedToSetDialect, err)
	}
	if err := goose.Up(sqlDB, MigrationsDir); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrMigrationFailed, ErrMsgFailedToApplyMigrations, err)
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrMigrationFailed, ErrMsgFailedToReadVersion, err)
	}
	slog.Default().Debug(LogMsgMigrationsApplied, "version", version)
	return nil
}

// SchemaVersion reports the latest applied migration
func (db *DB) SchemaVersion() (int64, error) {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToGetSQLDB, err)
	}
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(Dialect); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToSetDialect, err)
	}
	return goose.GetDBVersion(sqlDB)
}

// gooseLogger routes goose output through slog
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...interface{}) {
	slog.Default().Debug(fmt.Sprintf(format, v...), "component", "goose")
}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Default().Error(fmt.Sprintf(format, v...), "component", "goose")
	os.Exit(1)
}
