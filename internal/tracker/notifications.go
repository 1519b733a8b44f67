package tracker

import (
	"context"

	"github.com/osse101/JobHunter_Go/internal/domain"
	"github.com/osse101/JobHunter_Go/internal/event"
)

// AcknowledgeLevelUp clears the pending level-up flag
func (s *service) AcknowledgeLevelUp(ctx context.Context) domain.Outcome {
	return s.mutate(ctx, OpAcknowledgeLevelUp, func(st *domain.State, out *domain.Outcome) []event.Event {
		if !st.LevelUpPending {
			return nil
		}
		st.LevelUpPending = false
		out.Changed = true
		return nil
	})
}

// DismissAchievement clears the last-unlocked toast slot. The achievement stays unlocked.
func (s *service) DismissAchievement(ctx context.Context) domain.Outcome {
	return s.mutate(ctx, OpDismissAchievement, func(st *domain.State, out *domain.Outcome) []event.Event {
		if st.LastUnlockedAchievement == nil {
			return nil
		}
		out.EntityID = st.LastUnlockedAchievement.ID
		st.LastUnlockedAchievement = nil
		out.Changed = true
		return nil
	})
}
