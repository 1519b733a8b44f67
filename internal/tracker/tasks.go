package tracker

import (
	"context"

	"github.com/osse101/JobHunter_Go/internal/domain"
	"github.com/osse101/JobHunter_Go/internal/event"
	"github.com/osse101/JobHunter_Go/internal/logger"
	"github.com/osse101/JobHunter_Go/internal/progression"
)

// CompleteTask marks a daily task done and awards its reward. Completing the
// last open task also advances the streak and adds the streak bonus to the
// same award.
func (s *service) CompleteTask(ctx context.Context, id string) domain.Outcome {
	return s.mutate(ctx, OpCompleteTask, func(st *domain.State, out *domain.Outcome) []event.Event {
		out.EntityID = id
		idx := taskIndex(st.DailyTasks, id)
		if idx == -1 || st.DailyTasks[idx].IsCompleted {
			return nil
		}

		st.DailyTasks[idx].IsCompleted = true
		out.Changed = true
		amount := st.DailyTasks[idx].XPReward

		var events []event.Event
		if domain.AllTasksCompleted(st.DailyTasks) {
			update := s.advanceStreak(ctx, st)
			amount += update.BonusXP
			out.Streak = &update
			events = append(events, event.NewStreakUpdatedEvent(update))
		}

		events = append(s.award(ctx, st, out, domain.XPSourceTaskCompleted, amount), events...)
		return append(events, s.evaluate(ctx, st, out)...)
	})
}

// advanceStreak applies the streak policy for today and returns the bonus
// owed at the level held before the award
func (s *service) advanceStreak(ctx context.Context, st *domain.State) domain.StreakUpdate {
	today := s.clock()
	previous := st.Streak

	streak, reset := progression.NextStreak(st.Streak, st.LastStreakDate, today, s.policy)
	st.Streak = streak
	st.LastStreakDate = &today

	update := domain.StreakUpdate{
		Previous: previous,
		Current:  streak,
		BonusXP:  progression.StreakBonus(st.Level),
		Reset:    reset,
	}
	logger.FromContext(ctx).Info(LogMsgStreakUpdated,
		"previous", previous, "current", streak, "reset", reset, "bonus_xp", update.BonusXP)
	return update
}

// ResetDailyTasks re-arms the task catalog for a new day.
// Streak and XP are untouched; a missed day is only noticed at the next completion.
func (s *service) ResetDailyTasks(ctx context.Context) domain.Outcome {
	var rearmed int
	out := s.mutate(ctx, OpResetDailyTasks, func(st *domain.State, out *domain.Outcome) []event.Event {
		for _, t := range st.DailyTasks {
			if t.IsCompleted {
				rearmed++
			}
		}
		st.DailyTasks = domain.DefaultState(s.tasks).DailyTasks
		out.Changed = true
		return []event.Event{event.NewDailyResetCompleteEvent(s.clock(), rearmed)}
	})
	logger.FromContext(ctx).Info(LogMsgDailyTasksReset, "tasks_rearmed", rearmed)
	return out
}

func taskIndex(tasks []domain.DailyTask, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
