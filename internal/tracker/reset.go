package tracker

import (
	"context"

	"github.com/osse101/JobHunter_Go/internal/domain"
	"github.com/osse101/JobHunter_Go/internal/event"
	"github.com/osse101/JobHunter_Go/internal/logger"
)

// ResetAll returns the tracker to its initial state: fresh tasks, level 1,
// no streak, no jobs or contacts, every achievement locked, default profile
// and no pending notifications
func (s *service) ResetAll(ctx context.Context) domain.Outcome {
	out := s.mutate(ctx, OpResetAll, func(st *domain.State, out *domain.Outcome) []event.Event {
		*st = domain.DefaultState(s.tasks)
		out.Changed = true
		return nil
	})
	s.searchCache.Clear()
	logger.FromContext(ctx).Info(LogMsgTrackerReset)
	return out
}
