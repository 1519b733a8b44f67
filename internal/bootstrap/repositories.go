package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/osse101/JobHunter_Go/internal/config"
	"github.com/osse101/JobHunter_Go/internal/database"
	"github.com/osse101/JobHunter_Go/internal/database/sqlite"
	"github.com/osse101/JobHunter_Go/internal/domain"
	"github.com/osse101/JobHunter_Go/internal/event"
	"github.com/osse101/JobHunter_Go/internal/tracker"
)

// Storage holds the open database and the repositories built on it
type Storage struct {
	DB       *database.DB
	Snapshot *sqlite.SnapshotRepository
}

// InitializeStorage opens the SQLite file, migrating it if needed
func InitializeStorage(cfg *config.Config) (*Storage, error) {
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStorage, err)
	}
	return &Storage{
		DB:       db,
		Snapshot: sqlite.NewSnapshotRepository(db.DB),
	}, nil
}

// InitializeTracker builds the tracker service over storage and restores the
// last saved snapshot. A storage failure during restore is logged and the
// tracker starts from defaults.
func InitializeTracker(ctx context.Context, cfg *config.Config, storage *Storage, bus event.Bus) (tracker.Service, error) {
	tasks, err := config.LoadTaskCatalog(cfg.TasksFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadTasks, err)
	}
	slog.Info(LogMsgTaskCatalogLoaded, "tasks", len(tasks), "file", cfg.TasksFile)

	svc := tracker.NewService(storage.Snapshot, bus, tracker.Config{
		Tasks:    tasks,
		Location: cfg.Location(),
	})

	if err := svc.Restore(ctx); err != nil {
		if !errors.Is(err, domain.ErrDatabaseError) {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedRestore, err)
		}
		slog.Error(ErrMsgFailedRestore, "error", err)
		return svc, nil
	}

	st := svc.Snapshot(ctx)
	slog.Info(LogMsgTrackerRestored,
		"level", st.Level,
		"xp", st.XP,
		"jobs", len(st.Jobs),
		"contacts", len(st.Contacts))
	return svc, nil
}
