package tracker

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JobHunter_Go/internal/domain"
	"github.com/osse101/JobHunter_Go/internal/event"
	"github.com/osse101/JobHunter_Go/internal/progression"
	"github.com/osse101/JobHunter_Go/internal/repository"
)

// 2024-01-01 is a Monday
var (
	monday   = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	friday   = time.Date(2024, 1, 5, 18, 0, 0, 0, time.UTC)
	nextMon  = time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC)
	nextTues = time.Date(2024, 1, 9, 8, 0, 0, 0, time.UTC)
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

type testEnv struct {
	svc   Service
	clock *fakeClock
	bus   *recordingBus
}

func newTestService(t *testing.T, repo repository.Snapshot) *testEnv {
	t.Helper()
	clock := &fakeClock{t: monday}
	bus := &recordingBus{}
	ids := 0
	svc := NewService(repo, bus, Config{
		Location: time.UTC,
		Now:      clock.Now,
		NewID: func() string {
			ids++
			return fmt.Sprintf("id-%d", ids)
		},
	})
	return &testEnv{svc: svc, clock: clock, bus: bus}
}

func completeAll(t *testing.T, svc Service) domain.Outcome {
	t.Helper()
	var last domain.Outcome
	for _, task := range svc.Snapshot(context.Background()).DailyTasks {
		if !task.IsCompleted {
			last = svc.CompleteTask(context.Background(), task.ID)
			require.True(t, last.Changed)
		}
	}
	return last
}

func achievement(st domain.State, id string) domain.Achievement {
	for _, a := range st.Achievements {
		if a.ID == id {
			return a
		}
	}
	return domain.Achievement{}
}

func TestNewService_DefaultState(t *testing.T) {
	env := newTestService(t, nil)

	st := env.svc.Snapshot(context.Background())

	assert.Equal(t, domain.DefaultState(domain.DefaultDailyTasks()), st)
	assert.Equal(t, 1, st.Level)
	assert.Equal(t, "Hunter", st.DisplayName)
}

func TestAddJob(t *testing.T) {
	ctx := context.Background()

	t.Run("awards xp and unlocks first blood", func(t *testing.T) {
		env := newTestService(t, nil)

		out := env.svc.AddJob(ctx, domain.NewJob{Company: "Globex", Position: "SRE"})

		require.True(t, out.Changed)
		assert.Equal(t, "id-1", out.EntityID)
		assert.Equal(t, int64(150), out.XPGained)
		assert.False(t, out.LeveledUp)
		require.Len(t, out.Unlocked, 1)
		assert.Equal(t, domain.AchievementFirstBlood, out.Unlocked[0].ID)

		st := env.svc.Snapshot(ctx)
		require.Len(t, st.Jobs, 1)
		assert.Equal(t, domain.JobStatusApplied, st.Jobs[0].Status, "empty status defaults to Applied")
		assert.Equal(t, monday, st.Jobs[0].CreatedAt)
		assert.Equal(t, int64(150), st.XP)
		assert.True(t, achievement(st, domain.AchievementFirstBlood).Unlocked)
		require.NotNil(t, st.LastUnlockedAchievement)
		assert.Equal(t, domain.AchievementFirstBlood, st.LastUnlockedAchievement.ID)
	})

	t.Run("keeps caller status and unlocks every satisfied achievement", func(t *testing.T) {
		env := newTestService(t, nil)

		out := env.svc.AddJob(ctx, domain.NewJob{Company: "Initech", Position: "Dev", Status: domain.JobStatusInterview})

		require.Len(t, out.Unlocked, 2)
		assert.Equal(t, domain.AchievementFirstBlood, out.Unlocked[0].ID)
		assert.Equal(t, domain.AchievementInterviewReady, out.Unlocked[1].ID)
		assert.Equal(t, int64(150), out.XPGained, "adding a job only awards the application xp")

		st := env.svc.Snapshot(ctx)
		assert.Equal(t, domain.AchievementFirstBlood, st.LastUnlockedAchievement.ID, "the toast slot holds the first unlock")
	})
}

func TestUpdateJobStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("offer from level one jumps two levels", func(t *testing.T) {
		repo := new(MockSnapshotRepository)
		loaded := domain.DefaultState(domain.DefaultDailyTasks())
		loaded.Jobs = []domain.Job{{ID: "j1", Company: "Acme", Position: "Dev", Status: domain.JobStatusApplied, CreatedAt: monday}}
		repo.On("Load", mock.Anything).Return(&loaded, nil)
		repo.On("Save", mock.Anything, mock.Anything).Return(nil)

		env := newTestService(t, repo)
		require.NoError(t, env.svc.Restore(ctx))

		out := env.svc.UpdateJobStatus(ctx, "j1", domain.JobStatusOffer)

		require.True(t, out.Changed)
		assert.Equal(t, int64(1000), out.XPGained)
		assert.True(t, out.LeveledUp)
		assert.Equal(t, 1, out.OldLevel)
		assert.Equal(t, 3, out.NewLevel)

		st := env.svc.Snapshot(ctx)
		assert.Equal(t, int64(250), st.XP)
		assert.Equal(t, 3, st.Level)
		assert.True(t, st.LevelUpPending)
		repo.AssertExpectations(t)
	})

	t.Run("interview awards xp and unlocks interview ready", func(t *testing.T) {
		env := newTestService(t, nil)
		id := env.svc.AddJob(ctx, domain.NewJob{Company: "Globex", Position: "SRE"}).EntityID

		out := env.svc.UpdateJobStatus(ctx, id, domain.JobStatusInterview)

		assert.Equal(t, int64(300), out.XPGained)
		require.Len(t, out.Unlocked, 1)
		assert.Equal(t, domain.AchievementInterviewReady, out.Unlocked[0].ID)
		assert.Equal(t, domain.JobStatusInterview, env.svc.Snapshot(ctx).Jobs[0].Status)
	})

	t.Run("setting the same status awards again", func(t *testing.T) {
		env := newTestService(t, nil)
		id := env.svc.AddJob(ctx, domain.NewJob{Company: "Globex", Position: "SRE"}).EntityID
		env.svc.UpdateJobStatus(ctx, id, domain.JobStatusInterview)
		env.bus.Reset()

		out := env.svc.UpdateJobStatus(ctx, id, domain.JobStatusInterview)

		assert.True(t, out.Changed)
		assert.Equal(t, int64(300), out.XPGained)
		assert.NotContains(t, env.bus.Types(), event.JobStatusChanged)
	})

	t.Run("other statuses award nothing", func(t *testing.T) {
		env := newTestService(t, nil)
		id := env.svc.AddJob(ctx, domain.NewJob{Company: "Globex", Position: "SRE"}).EntityID

		for _, status := range []domain.JobStatus{domain.JobStatusOnlineAssessment, domain.JobStatusRejected, domain.JobStatusApplied} {
			out := env.svc.UpdateJobStatus(ctx, id, status)
			assert.True(t, out.Changed)
			assert.Zero(t, out.XPGained, status)
		}
		assert.Equal(t, int64(150), env.svc.Snapshot(ctx).XP)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		repo := new(MockSnapshotRepository)
		env := newTestService(t, repo)

		out := env.svc.UpdateJobStatus(ctx, "missing", domain.JobStatusOffer)

		assert.False(t, out.Changed)
		assert.Zero(t, out.XPGained)
		assert.Empty(t, env.bus.Types())
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("invalid status is a no-op", func(t *testing.T) {
		env := newTestService(t, nil)
		id := env.svc.AddJob(ctx, domain.NewJob{Company: "Globex", Position: "SRE"}).EntityID

		out := env.svc.UpdateJobStatus(ctx, id, domain.JobStatus("Ghosted"))

		assert.False(t, out.Changed)
		assert.Equal(t, domain.JobStatusApplied, env.svc.Snapshot(ctx).Jobs[0].Status)
	})
}

func TestDeleteJob(t *testing.T) {
	ctx := context.Background()
	env := newTestService(t, nil)
	first := env.svc.AddJob(ctx, domain.NewJob{Company: "A", Position: "1"}).EntityID
	second := env.svc.AddJob(ctx, domain.NewJob{Company: "B", Position: "2"}).EntityID

	out := env.svc.DeleteJob(ctx, first)

	assert.True(t, out.Changed)
	assert.Zero(t, out.XPGained)
	st := env.svc.Snapshot(ctx)
	require.Len(t, st.Jobs, 1)
	assert.Equal(t, second, st.Jobs[0].ID)
	assert.Equal(t, int64(300), st.XP, "deleting keeps earned xp")

	env.svc.DeleteJob(ctx, second)
	st = env.svc.Snapshot(ctx)
	assert.Empty(t, st.Jobs)
	assert.True(t, achievement(st, domain.AchievementFirstBlood).Unlocked, "achievements never re-lock")

	assert.False(t, env.svc.DeleteJob(ctx, second).Changed)
}

func TestCompleteTask(t *testing.T) {
	ctx := context.Background()

	t.Run("awards the task reward", func(t *testing.T) {
		env := newTestService(t, nil)

		out := env.svc.CompleteTask(ctx, "1")

		assert.True(t, out.Changed)
		assert.Equal(t, int64(250), out.XPGained)
		assert.Nil(t, out.Streak)
		st := env.svc.Snapshot(ctx)
		assert.True(t, st.DailyTasks[0].IsCompleted)
		assert.Equal(t, 0, st.Streak)
	})

	t.Run("completion is idempotent", func(t *testing.T) {
		env := newTestService(t, nil)
		env.svc.CompleteTask(ctx, "1")
		before := env.svc.Snapshot(ctx)

		out := env.svc.CompleteTask(ctx, "1")

		assert.False(t, out.Changed)
		assert.Zero(t, out.XPGained)
		assert.Equal(t, before, env.svc.Snapshot(ctx))
	})

	t.Run("unknown task is a no-op", func(t *testing.T) {
		env := newTestService(t, nil)
		assert.False(t, env.svc.CompleteTask(ctx, "99").Changed)
	})

	t.Run("last task starts the streak and adds the bonus", func(t *testing.T) {
		env := newTestService(t, nil)
		env.svc.CompleteTask(ctx, "1") // 250 at level 1
		second := env.svc.CompleteTask(ctx, "2")
		assert.True(t, second.LeveledUp, "400 xp crosses the level 1 threshold of 350")

		out := env.svc.CompleteTask(ctx, "3")

		require.NotNil(t, out.Streak)
		assert.Equal(t, 0, out.Streak.Previous)
		assert.Equal(t, 1, out.Streak.Current)
		assert.False(t, out.Streak.Reset)
		assert.Equal(t, progression.XPThreshold(2)/4, out.Streak.BonusXP)
		assert.Equal(t, int64(300+100), out.XPGained)

		st := env.svc.Snapshot(ctx)
		assert.Equal(t, 1, st.Streak)
		require.NotNil(t, st.LastStreakDate)
		assert.Equal(t, monday, *st.LastStreakDate)
		assert.Equal(t, 3, st.Level)
		assert.Equal(t, int64(50), st.XP)
	})
}

func TestStreak(t *testing.T) {
	ctx := context.Background()

	t.Run("consecutive days build the streak and unlock consistent", func(t *testing.T) {
		env := newTestService(t, nil)

		completeAll(t, env.svc)
		for day := 1; day <= 2; day++ {
			env.clock.Set(monday.AddDate(0, 0, day))
			env.svc.ResetDailyTasks(ctx)
			out := completeAll(t, env.svc)
			require.NotNil(t, out.Streak)
			assert.Equal(t, day+1, out.Streak.Current)
			if day == 2 {
				require.Len(t, out.Unlocked, 1)
				assert.Equal(t, domain.AchievementStreakMaster, out.Unlocked[0].ID)
			}
		}

		assert.Equal(t, 3, env.svc.Snapshot(ctx).Streak)
	})

	t.Run("friday to monday keeps the streak", func(t *testing.T) {
		env := newTestService(t, nil)
		env.clock.Set(friday)
		completeAll(t, env.svc)

		env.clock.Set(nextMon)
		env.svc.ResetDailyTasks(ctx)
		out := completeAll(t, env.svc)

		assert.Equal(t, 2, out.Streak.Current)
		assert.False(t, out.Streak.Reset)
	})

	t.Run("friday to tuesday resets the streak", func(t *testing.T) {
		env := newTestService(t, nil)
		env.clock.Set(friday)
		completeAll(t, env.svc)

		env.clock.Set(nextTues)
		env.svc.ResetDailyTasks(ctx)
		out := completeAll(t, env.svc)

		assert.Equal(t, 1, out.Streak.Current)
		assert.True(t, out.Streak.Reset)
		assert.Equal(t, nextTues, *env.svc.Snapshot(ctx).LastStreakDate)
	})
}

func TestResetDailyTasks(t *testing.T) {
	ctx := context.Background()
	env := newTestService(t, nil)
	env.svc.CompleteTask(ctx, "1")
	env.svc.CompleteTask(ctx, "2")
	xp := env.svc.Snapshot(ctx).XP
	env.bus.Reset()

	out := env.svc.ResetDailyTasks(ctx)

	assert.True(t, out.Changed)
	st := env.svc.Snapshot(ctx)
	for _, task := range st.DailyTasks {
		assert.False(t, task.IsCompleted, task.ID)
	}
	assert.Equal(t, xp, st.XP)
	assert.Equal(t, []event.Type{event.DailyResetComplete, event.StateChanged}, env.bus.Types())
}

func TestAddContact(t *testing.T) {
	ctx := context.Background()

	t.Run("status type and timestamp are forced", func(t *testing.T) {
		env := newTestService(t, nil)
		followUp := monday.Add(48 * time.Hour)

		out := env.svc.AddContact(ctx, domain.NewContact{
			Name:           "Ada",
			Company:        "Globex",
			Role:           "Recruiter",
			Status:         domain.ContactStatusConnected,
			Type:           domain.ContactTypeMentor,
			NextFollowUpAt: &followUp,
		})

		assert.True(t, out.Changed)
		assert.Equal(t, int64(50), out.XPGained)
		c := env.svc.Snapshot(ctx).Contacts[0]
		assert.Equal(t, domain.ContactStatusNew, c.Status)
		assert.Equal(t, domain.ContactTypeOther, c.Type)
		assert.Equal(t, monday, c.LastContactedAt)
		assert.Equal(t, followUp, *c.NextFollowUpAt)
		assert.Equal(t, int64(50), env.svc.Snapshot(ctx).XP)
	})

	t.Run("networker unlocks exactly on the fifth contact", func(t *testing.T) {
		env := newTestService(t, nil)

		for i := 1; i <= 5; i++ {
			out := env.svc.AddContact(ctx, domain.NewContact{Name: fmt.Sprintf("c%d", i)})
			if i < 5 {
				assert.Empty(t, out.Unlocked, "contact %d", i)
				continue
			}
			require.Len(t, out.Unlocked, 1)
			assert.Equal(t, domain.AchievementNetworker, out.Unlocked[0].ID)
		}
	})
}

func TestUpdateContact(t *testing.T) {
	ctx := context.Background()
	env := newTestService(t, nil)
	id := env.svc.AddContact(ctx, domain.NewContact{Name: "Ada", Company: "Globex"}).EntityID
	xp := env.svc.Snapshot(ctx).XP

	role := "Hiring Manager"
	status := domain.ContactStatusMeeting
	out := env.svc.UpdateContact(ctx, id, domain.ContactUpdate{Role: &role, Status: &status})

	assert.True(t, out.Changed)
	assert.Zero(t, out.XPGained)
	c := env.svc.Snapshot(ctx).Contacts[0]
	assert.Equal(t, "Ada", c.Name, "nil fields are untouched")
	assert.Equal(t, role, c.Role)
	assert.Equal(t, domain.ContactStatusMeeting, c.Status)
	assert.Equal(t, xp, env.svc.Snapshot(ctx).XP)

	assert.False(t, env.svc.UpdateContact(ctx, "missing", domain.ContactUpdate{Role: &role}).Changed)

	t.Run("follow-up can be set and cleared", func(t *testing.T) {
		follow := monday.AddDate(0, 0, 3)
		env.svc.UpdateContact(ctx, id, domain.ContactUpdate{NextFollowUpAt: &follow})
		require.NotNil(t, env.svc.Snapshot(ctx).Contacts[0].NextFollowUpAt)

		out := env.svc.UpdateContact(ctx, id, domain.ContactUpdate{Notes: &role})
		assert.True(t, out.Changed)
		assert.NotNil(t, env.svc.Snapshot(ctx).Contacts[0].NextFollowUpAt, "omitting the date leaves it alone")

		out = env.svc.UpdateContact(ctx, id, domain.ContactUpdate{ClearNextFollowUp: true, NextFollowUpAt: &follow})
		assert.True(t, out.Changed)
		c := env.svc.Snapshot(ctx).Contacts[0]
		assert.Nil(t, c.NextFollowUpAt, "clearing wins over a date in the same update")
		assert.Equal(t, role, c.Role)
	})
}

func TestDeleteContact(t *testing.T) {
	ctx := context.Background()
	env := newTestService(t, nil)
	id := env.svc.AddContact(ctx, domain.NewContact{Name: "Ada"}).EntityID

	assert.True(t, env.svc.DeleteContact(ctx, id).Changed)
	assert.Empty(t, env.svc.Snapshot(ctx).Contacts)
	assert.False(t, env.svc.DeleteContact(ctx, id).Changed)
}

func TestLogContactInteraction(t *testing.T) {
	ctx := context.Background()
	env := newTestService(t, nil)
	id := env.svc.AddContact(ctx, domain.NewContact{Name: "Ada"}).EntityID
	later := monday.Add(26 * time.Hour)
	env.clock.Set(later)

	out := env.svc.LogContactInteraction(ctx, id)

	assert.True(t, out.Changed)
	assert.Equal(t, int64(50), out.XPGained)
	c := env.svc.Snapshot(ctx).Contacts[0]
	assert.Equal(t, domain.ContactStatusContacted, c.Status)
	assert.Equal(t, later, c.LastContactedAt)

	t.Run("later statuses are kept", func(t *testing.T) {
		replied := domain.ContactStatusReplied
		env.svc.UpdateContact(ctx, id, domain.ContactUpdate{Status: &replied})

		env.svc.LogContactInteraction(ctx, id)

		assert.Equal(t, domain.ContactStatusReplied, env.svc.Snapshot(ctx).Contacts[0].Status)
	})

	t.Run("unknown contact is a no-op", func(t *testing.T) {
		assert.False(t, env.svc.LogContactInteraction(ctx, "missing").Changed)
	})
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	env := newTestService(t, nil)

	env.svc.SetDisplayName(ctx, "  Sam  ")
	assert.Equal(t, "Sam", env.svc.Snapshot(ctx).DisplayName)

	env.svc.SetDisplayName(ctx, "   ")
	assert.Equal(t, domain.DefaultDisplayName, env.svc.Snapshot(ctx).DisplayName)

	visa := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	env.svc.SetVisaExpiry(ctx, &visa)
	visa = visa.AddDate(1, 0, 0)
	assert.Equal(t, 2025, env.svc.Snapshot(ctx).VisaExpiryDate.Year(), "the service keeps its own copy")

	env.svc.SetVisaExpiry(ctx, nil)
	assert.Nil(t, env.svc.Snapshot(ctx).VisaExpiryDate)

	t.Run("visa expiry keeps only the calendar day", func(t *testing.T) {
		loc := time.FixedZone("UTC-5", -5*60*60)
		svc := NewService(nil, nil, Config{Location: loc})

		// 02:30 UTC on the 1st is still the 30th in UTC-5
		ts := time.Date(2026, 12, 1, 2, 30, 0, 0, time.UTC)
		svc.SetVisaExpiry(ctx, &ts)

		got := svc.Snapshot(ctx).VisaExpiryDate
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2026, 11, 30, 0, 0, 0, 0, loc), *got)
	})
}

func TestNotifications(t *testing.T) {
	ctx := context.Background()
	env := newTestService(t, nil)

	assert.False(t, env.svc.AcknowledgeLevelUp(ctx).Changed)
	assert.False(t, env.svc.DismissAchievement(ctx).Changed)

	env.svc.AddJob(ctx, domain.NewJob{Company: "A", Position: "B", Status: domain.JobStatusOffer})
	env.svc.UpdateJobStatus(ctx, env.svc.Snapshot(ctx).Jobs[0].ID, domain.JobStatusOffer)
	require.True(t, env.svc.Snapshot(ctx).LevelUpPending)

	assert.True(t, env.svc.AcknowledgeLevelUp(ctx).Changed)
	assert.False(t, env.svc.Snapshot(ctx).LevelUpPending)

	out := env.svc.DismissAchievement(ctx)
	assert.True(t, out.Changed)
	assert.Equal(t, domain.AchievementFirstBlood, out.EntityID)
	st := env.svc.Snapshot(ctx)
	assert.Nil(t, st.LastUnlockedAchievement)
	assert.True(t, achievement(st, domain.AchievementFirstBlood).Unlocked)
}

func TestResetAll(t *testing.T) {
	ctx := context.Background()
	env := newTestService(t, nil)

	env.svc.AddJob(ctx, domain.NewJob{Company: "Globex", Position: "SRE", Status: domain.JobStatusInterview})
	env.svc.AddContact(ctx, domain.NewContact{Name: "Ada"})
	completeAll(t, env.svc)
	env.svc.SetDisplayName(ctx, "Sam")
	visa := monday.AddDate(0, 3, 0)
	env.svc.SetVisaExpiry(ctx, &visa)
	env.svc.SearchJobs(ctx, "globex")

	out := env.svc.ResetAll(ctx)

	assert.True(t, out.Changed)
	assert.Equal(t, domain.DefaultState(domain.DefaultDailyTasks()), env.svc.Snapshot(ctx))
	assert.Zero(t, env.svc.(*service).searchCache.Len())
}

func TestOutcomeEvents(t *testing.T) {
	ctx := context.Background()
	env := newTestService(t, nil)

	env.svc.AddJob(ctx, domain.NewJob{Company: "Globex", Position: "SRE"})
	assert.Equal(t, []event.Type{event.XPAwarded, event.AchievementUnlocked, event.StateChanged}, env.bus.Types())

	env.bus.Reset()
	env.svc.UpdateJobStatus(ctx, "id-1", domain.JobStatusInterview)
	assert.Equal(t, []event.Type{
		event.JobStatusChanged,
		event.XPAwarded,
		event.LevelUp,
		event.AchievementUnlocked,
		event.StateChanged,
	}, env.bus.Types())

	env.bus.Reset()
	env.svc.DeleteJob(ctx, "missing")
	assert.Empty(t, env.bus.Types(), "no-ops publish nothing")
}

func TestSnapshot_IsACopy(t *testing.T) {
	ctx := context.Background()
	env := newTestService(t, nil)
	env.svc.AddJob(ctx, domain.NewJob{Company: "Globex", Position: "SRE"})

	st := env.svc.Snapshot(ctx)
	st.Jobs[0].Company = "Mutated"
	st.Achievements[0].Unlocked = false
	st.XP = 9999

	fresh := env.svc.Snapshot(ctx)
	assert.Equal(t, "Globex", fresh.Jobs[0].Company)
	assert.True(t, fresh.Achievements[0].Unlocked)
	assert.Equal(t, int64(150), fresh.XP)
}

func TestConcurrentOperations(t *testing.T) {
	ctx := context.Background()
	env := newTestService(t, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			env.svc.AddContact(ctx, domain.NewContact{Name: fmt.Sprintf("c%d", i)})
			env.svc.Snapshot(ctx)
		}(i)
	}
	wg.Wait()

	st := env.svc.Snapshot(ctx)
	assert.Len(t, st.Contacts, 20)
	wantXP, wantLevel, _ := progression.Resolve(0, 1, 20*progression.XPContactAdded)
	assert.Equal(t, wantXP, st.XP)
	assert.Equal(t, wantLevel, st.Level)
	assert.True(t, achievement(st, domain.AchievementNetworker).Unlocked)
}

func TestOutcomeState(t *testing.T) {
	ctx := context.Background()
	env := newTestService(t, nil)

	out := env.svc.AddJob(ctx, domain.NewJob{Company: "Globex", Position: "SRE"})
	require.NotNil(t, out.State)
	assert.Len(t, out.State.Jobs, 1)
	assert.Equal(t, int64(150), out.State.XP)

	env.svc.AddJob(ctx, domain.NewJob{Company: "Initech", Position: "Go Developer"})
	assert.Len(t, out.State.Jobs, 1, "later operations do not leak into an earlier outcome")

	out.State.Jobs[0].Company = "Mutated"
	assert.Equal(t, "Globex", env.svc.Snapshot(ctx).Jobs[0].Company)

	noop := env.svc.DeleteJob(ctx, "missing")
	require.NotNil(t, noop.State)
	assert.Len(t, noop.State.Jobs, 2, "no-ops report the current state too")
}

// waitFor runs op in a goroutine and fails if it does not return promptly
func waitFor(t *testing.T, op func() domain.Outcome) domain.Outcome {
	t.Helper()
	done := make(chan domain.Outcome, 1)
	go func() { done <- op() }()
	select {
	case out := <-done:
		return out
	case <-time.After(time.Second):
		t.Fatal("operation blocked: tracker lock still held")
		return domain.Outcome{}
	}
}

func TestMutate_PanicReleasesLock(t *testing.T) {
	ctx := context.Background()

	t.Run("panicking save", func(t *testing.T) {
		repo := &MockSnapshotRepository{}
		repo.On("Save", mock.Anything, mock.Anything).Run(func(mock.Arguments) { panic("disk gone") }).Once()
		repo.On("Save", mock.Anything, mock.Anything).Return(nil)
		env := newTestService(t, repo)

		assert.Panics(t, func() { env.svc.SetDisplayName(ctx, "Sam") })

		out := waitFor(t, func() domain.Outcome { return env.svc.SetDisplayName(ctx, "Ada") })
		assert.True(t, out.Changed)
		assert.Equal(t, "Ada", env.svc.Snapshot(ctx).DisplayName)
		repo.AssertNumberOfCalls(t, "Save", 2)
	})

	t.Run("panicking mutation", func(t *testing.T) {
		env := newTestService(t, nil)
		svc := env.svc.(*service)

		assert.Panics(t, func() {
			svc.mutate(ctx, "explode", func(st *domain.State, out *domain.Outcome) []event.Event {
				panic("boom")
			})
		})

		out := waitFor(t, func() domain.Outcome {
			return env.svc.AddJob(ctx, domain.NewJob{Company: "Globex", Position: "SRE"})
		})
		assert.True(t, out.Changed)
	})
}
