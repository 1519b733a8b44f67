package tracker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/JobHunter_Go/internal/domain"
	"github.com/osse101/JobHunter_Go/internal/event"
	"github.com/osse101/JobHunter_Go/internal/logger"
	"github.com/osse101/JobHunter_Go/internal/progression"
	"github.com/osse101/JobHunter_Go/internal/repository"
)

// Service is the progression store: the only mutation surface of the tracker.
// Operations never fail; an unknown id is reported as Outcome.Changed == false.
type Service interface {
	// Queries
	Snapshot(ctx context.Context) domain.State
	Dashboard(ctx context.Context) domain.Dashboard
	SearchJobs(ctx context.Context, query string) []domain.Job
	JobBoard(ctx context.Context) []domain.JobColumn
	FollowUpsDue(ctx context.Context) []domain.Contact

	// Jobs
	AddJob(ctx context.Context, job domain.NewJob) domain.Outcome
	UpdateJobStatus(ctx context.Context, id string, status domain.JobStatus) domain.Outcome
	DeleteJob(ctx context.Context, id string) domain.Outcome

	// Daily tasks
	CompleteTask(ctx context.Context, id string) domain.Outcome
	ResetDailyTasks(ctx context.Context) domain.Outcome

	// Contacts
	AddContact(ctx context.Context, contact domain.NewContact) domain.Outcome
	UpdateContact(ctx context.Context, id string, update domain.ContactUpdate) domain.Outcome
	DeleteContact(ctx context.Context, id string) domain.Outcome
	LogContactInteraction(ctx context.Context, id string) domain.Outcome

	// Profile
	SetDisplayName(ctx context.Context, name string) domain.Outcome
	SetVisaExpiry(ctx context.Context, date *time.Time) domain.Outcome

	// Notifications
	AcknowledgeLevelUp(ctx context.Context) domain.Outcome
	DismissAchievement(ctx context.Context) domain.Outcome

	ResetAll(ctx context.Context) domain.Outcome

	// Restore loads the last saved snapshot, keeping defaults when there is none
	Restore(ctx context.Context) error
}

// Config holds the collaborators and knobs of the service. Zero values get defaults.
type Config struct {
	// Tasks is the daily task catalog; defaults to domain.DefaultDailyTasks
	Tasks []domain.DailyTask
	// Location is where calendar days are counted for streaks and follow-ups
	Location *time.Location
	Now      func() time.Time
	NewID    func() string
	Policy   progression.StreakPolicy

	SearchCacheSize int
	SearchCacheTTL  time.Duration
}

type service struct {
	mu       sync.RWMutex
	state    domain.State
	revision uint64

	repo   repository.Snapshot
	bus    event.Bus
	tasks  []domain.DailyTask
	loc    *time.Location
	now    func() time.Time
	newID  func() string
	policy progression.StreakPolicy

	searchCache *searchCache
}

// NewService creates the tracker service. repo and bus may be nil, in which
// case nothing is persisted or published.
func NewService(repo repository.Snapshot, bus event.Bus, cfg Config) Service {
	if len(cfg.Tasks) == 0 {
		cfg.Tasks = domain.DefaultDailyTasks()
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}
	if cfg.Policy == nil {
		cfg.Policy = progression.WeekendExemptPolicy
	}
	if cfg.SearchCacheSize <= 0 {
		cfg.SearchCacheSize = DefaultSearchCacheSize
	}
	if cfg.SearchCacheTTL <= 0 {
		cfg.SearchCacheTTL = DefaultSearchCacheTTL
	}

	tasks := append([]domain.DailyTask{}, cfg.Tasks...)
	return &service{
		state:       domain.DefaultState(tasks),
		repo:        repo,
		bus:         bus,
		tasks:       tasks,
		loc:         cfg.Location,
		now:         cfg.Now,
		newID:       cfg.NewID,
		policy:      cfg.Policy,
		searchCache: newSearchCache(cfg.SearchCacheSize, cfg.SearchCacheTTL),
	}
}

// clock returns the current time in the tracker's location
func (s *service) clock() time.Time {
	return s.now().In(s.loc)
}

// mutation is the body of one state transition. It edits st in place, fills
// out (Changed must be set for anything to happen) and returns the events to
// publish once the transition is committed.
type mutation func(st *domain.State, out *domain.Outcome) []event.Event

// mutate commits fn, then publishes its events outside the lock
func (s *service) mutate(ctx context.Context, op string, fn mutation) domain.Outcome {
	out, events := s.commit(ctx, op, fn)
	s.publish(ctx, events)
	return out
}

// commit is the critical section of mutate. It runs fn, then snapshots and,
// when something changed, persists. Persistence happens under the lock so
// saves land in order.
func (s *service) commit(ctx context.Context, op string, fn mutation) (domain.Outcome, []event.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := domain.Outcome{OldLevel: s.state.Level}
	events := fn(&s.state, &out)
	out.NewLevel = s.state.Level

	snapshot := s.state.Clone()
	out.State = &snapshot

	if !out.Changed {
		logger.FromContext(ctx).Debug(LogMsgNoOp, "operation", op, "entity_id", out.EntityID)
		return out, nil
	}

	s.revision++
	s.persist(ctx, snapshot)
	return out, append(events, event.NewStateChangedEvent(op, s.revision, snapshot))
}

// award folds amount into the progression and records it on out.
// Callers add all XP for one operation in a single award so multi-level
// jumps are resolved once.
func (s *service) award(ctx context.Context, st *domain.State, out *domain.Outcome, source string, amount int64) []event.Event {
	if amount == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	oldLevel := st.Level
	xp, level, leveledUp := progression.Resolve(st.XP, st.Level, amount)
	st.XP = xp
	st.Level = level
	out.XPGained += amount

	log.Info(LogMsgXPAwarded, "source", source, "amount", amount, "xp", xp, "level", level)
	events := []event.Event{event.NewXPAwardedEvent(source, amount, out.EntityID, xp, level)}

	if leveledUp {
		st.LevelUpPending = true
		out.LeveledUp = true
		title := progression.LevelTitle(level)
		log.Info(LogMsgLevelUp, "old_level", oldLevel, "new_level", level, "title", title)
		events = append(events, event.NewLevelUpEvent(oldLevel, level, title, source))
	}
	return events
}

// evaluate re-checks the achievement table. The first new unlock takes the
// toast slot; all of them are reported on out.
func (s *service) evaluate(ctx context.Context, st *domain.State, out *domain.Outcome) []event.Event {
	unlocked := progression.Evaluate(st)
	if len(unlocked) == 0 {
		return nil
	}

	first := unlocked[0]
	st.LastUnlockedAchievement = &first
	out.Unlocked = append(out.Unlocked, unlocked...)

	log := logger.FromContext(ctx)
	events := make([]event.Event, 0, len(unlocked))
	for _, a := range unlocked {
		log.Info(LogMsgAchievementUnlocked, "achievement", a.ID, "title", a.Title)
		events = append(events, event.NewAchievementUnlockedEvent(a))
	}
	return events
}

func (s *service) publish(ctx context.Context, events []event.Event) {
	if s.bus == nil {
		return
	}
	for _, e := range events {
		if err := s.bus.Publish(ctx, e); err != nil {
			logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "type", e.Type, "error", err)
		}
	}
}
