package database

import "time"

// SQLite connection settings
const (
	// MaxOpenConns is one: SQLite serializes writers and the tracker has a single actor
	MaxOpenConns    = 1
	ConnMaxLifetime = time.Hour

	// Dialect is the goose dialect name for SQLite
	Dialect = "sqlite3"

	// MigrationsDir is the directory inside the embedded filesystem
	MigrationsDir = "migrations"

	dirPermissions = 0o755
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToCreateDir        = "failed to create database directory"
	ErrMsgFailedToOpenDatabase     = "failed to open database"
	ErrMsgFailedToGetSQLDB         = "failed to get sql DB"
	ErrMsgFailedToPingDatabase     = "failed to ping database"
	ErrMsgFailedToSetDialect       = "failed to set migration dialect"
	ErrMsgFailedToApplyMigrations  = "failed to apply migrations"
	ErrMsgFailedToReadVersion      = "failed to read schema version"
	ErrMsgFailedToCloseDatabase    = "failed to close database"
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
)

// Log Messages
const (
	LogMsgSuccessfullyOpenedDatabase = "Successfully opened the database"
	LogMsgMigrationsApplied          = "Database migrations applied"
)
