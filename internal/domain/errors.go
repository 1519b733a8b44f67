package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Entity errors
	ErrMsgNotFound        = "not found"
	ErrMsgJobNotFound     = "job not found"
	ErrMsgContactNotFound = "contact not found"
	ErrMsgTaskNotFound    = "task not found"

	// Input errors
	ErrMsgInvalidInput     = "invalid input"
	ErrMsgInvalidJobStatus = "invalid job status"

	// Persistence errors
	ErrMsgSnapshotNotFound = "no saved snapshot"
	ErrMsgDatabaseError    = "database error"
	ErrMsgMigrationFailed  = "migration failed"

	// Config errors
	ErrMsgInvalidConfig = "invalid configuration"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNotFound        = errors.New(ErrMsgNotFound)
	ErrJobNotFound     = errors.New(ErrMsgJobNotFound)
	ErrContactNotFound = errors.New(ErrMsgContactNotFound)
	ErrTaskNotFound    = errors.New(ErrMsgTaskNotFound)

	ErrInvalidInput     = errors.New(ErrMsgInvalidInput)
	ErrInvalidJobStatus = errors.New(ErrMsgInvalidJobStatus)

	// ErrSnapshotNotFound is returned by repositories when nothing has been saved yet
	ErrSnapshotNotFound = errors.New(ErrMsgSnapshotNotFound)
	ErrDatabaseError    = errors.New(ErrMsgDatabaseError)
	ErrMigrationFailed  = errors.New(ErrMsgMigrationFailed)

	ErrInvalidConfig = errors.New(ErrMsgInvalidConfig)
)
