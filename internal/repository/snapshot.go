package repository

import (
	"context"

	"github.com/osse101/JobHunter_Go/internal/domain"
)

// Snapshot defines the persistence interface for the tracker aggregate.
// The whole state is written at once; last successful write wins.
type Snapshot interface {
	// Load returns domain.ErrSnapshotNotFound when nothing has been saved yet
	Load(ctx context.Context) (*domain.State, error)
	Save(ctx context.Context, state domain.State) error
	Clear(ctx context.Context) error
}
