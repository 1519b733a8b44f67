package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/JobHunter_Go/internal/domain"
	"github.com/osse101/JobHunter_Go/internal/logger"
	"github.com/osse101/JobHunter_Go/internal/metrics"
	"github.com/osse101/JobHunter_Go/internal/progression"
)

// persist writes a best-effort snapshot. Failures are logged and counted, never returned.
func (s *service) persist(ctx context.Context, snapshot domain.State) {
	if s.repo == nil {
		return
	}
	// The transition is already committed in memory; a cancelled request must not skip the write
	err := s.repo.Save(context.WithoutCancel(ctx), snapshot)
	metrics.RecordSnapshotSave(err)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgSnapshotSaveFailed, "error", err)
	}
}

// Restore replaces the in-memory state with the saved snapshot
func (s *service) Restore(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	log := logger.FromContext(ctx)

	loaded, err := s.repo.Load(ctx)
	if errors.Is(err, domain.ErrSnapshotNotFound) {
		log.Info(LogMsgNoSnapshot)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to restore tracker snapshot: %w", err)
	}

	st := s.reconcile(*loaded)

	s.mu.Lock()
	s.state = st
	s.revision++
	s.mu.Unlock()

	log.Info(LogMsgSnapshotRestored, "level", st.Level, "xp", st.XP, "jobs", len(st.Jobs), "contacts", len(st.Contacts))
	return nil
}

// reconcile repairs a loaded snapshot against the current catalogs so older
// saves keep working after the achievement table or task list changes
func (s *service) reconcile(st domain.State) domain.State {
	st.LevelUpPending = false

	// Re-resolving with a zero delta restores 0 <= xp < threshold(level)
	st.XP, st.Level, _ = progression.Resolve(st.XP, st.Level, 0)
	if st.Streak < 0 {
		st.Streak = 0
	}
	if st.DisplayName == "" {
		st.DisplayName = domain.DefaultDisplayName
	}
	if st.Jobs == nil {
		st.Jobs = []domain.Job{}
	}
	if st.Contacts == nil {
		st.Contacts = []domain.Contact{}
	}
	if len(st.DailyTasks) == 0 {
		st.DailyTasks = domain.DefaultState(s.tasks).DailyTasks
	}

	unlocked := make(map[string]bool, len(st.Achievements))
	for _, a := range st.Achievements {
		if a.Unlocked {
			unlocked[a.ID] = true
		}
	}
	st.Achievements = domain.DefaultAchievements()
	for i := range st.Achievements {
		st.Achievements[i].Unlocked = unlocked[st.Achievements[i].ID]
	}

	// Conditions met before an achievement existed unlock quietly, without a toast
	progression.Evaluate(&st)
	return st
}
