package tracker

import (
	"context"

	"github.com/osse101/JobHunter_Go/internal/domain"
	"github.com/osse101/JobHunter_Go/internal/event"
	"github.com/osse101/JobHunter_Go/internal/progression"
)

// AddJob records a new application and awards the application XP
func (s *service) AddJob(ctx context.Context, in domain.NewJob) domain.Outcome {
	return s.mutate(ctx, OpAddJob, func(st *domain.State, out *domain.Outcome) []event.Event {
		status := in.Status
		if !status.Valid() {
			status = domain.JobStatusApplied
		}

		job := domain.Job{
			ID:        s.newID(),
			Company:   in.Company,
			Position:  in.Position,
			Status:    status,
			CreatedAt: s.clock(),
			Notes:     in.Notes,
			Link:      in.Link,
		}
		st.Jobs = append(st.Jobs, job)
		out.Changed = true
		out.EntityID = job.ID

		events := s.award(ctx, st, out, domain.XPSourceJobAdded, progression.XPJobAdded)
		return append(events, s.evaluate(ctx, st, out)...)
	})
}

// UpdateJobStatus moves an application to status. Interview and Offer award
// XP every time they are set, including when the status is unchanged.
func (s *service) UpdateJobStatus(ctx context.Context, id string, status domain.JobStatus) domain.Outcome {
	return s.mutate(ctx, OpUpdateJobStatus, func(st *domain.State, out *domain.Outcome) []event.Event {
		out.EntityID = id
		idx := jobIndex(st.Jobs, id)
		if idx == -1 || !status.Valid() {
			return nil
		}

		oldStatus := st.Jobs[idx].Status
		st.Jobs[idx].Status = status
		out.Changed = true

		var events []event.Event
		if oldStatus != status {
			events = append(events, event.NewJobStatusChangedEvent(st.Jobs[idx], oldStatus))
		}
		events = append(events, s.award(ctx, st, out, domain.XPSourceJobStatus, statusXP(status))...)
		return append(events, s.evaluate(ctx, st, out)...)
	})
}

// DeleteJob permanently removes an application. Achievements stay unlocked.
func (s *service) DeleteJob(ctx context.Context, id string) domain.Outcome {
	return s.mutate(ctx, OpDeleteJob, func(st *domain.State, out *domain.Outcome) []event.Event {
		out.EntityID = id
		idx := jobIndex(st.Jobs, id)
		if idx == -1 {
			return nil
		}
		st.Jobs = append(st.Jobs[:idx], st.Jobs[idx+1:]...)
		out.Changed = true
		return nil
	})
}

// statusXP is the reward for reaching a pipeline stage
func statusXP(status domain.JobStatus) int64 {
	switch status {
	case domain.JobStatusInterview:
		return progression.XPJobInterview
	case domain.JobStatusOffer:
		return progression.XPJobOffer
	default:
		return 0
	}
}

func jobIndex(jobs []domain.Job, id string) int {
	for i, j := range jobs {
		if j.ID == id {
			return i
		}
	}
	return -1
}
