package tracker

import (
	"context"
	"strings"
	"time"

	"github.com/osse101/JobHunter_Go/internal/domain"
	"github.com/osse101/JobHunter_Go/internal/event"
)

// SetDisplayName renames the profile; a blank name falls back to the default
func (s *service) SetDisplayName(ctx context.Context, name string) domain.Outcome {
	return s.mutate(ctx, OpSetDisplayName, func(st *domain.State, out *domain.Outcome) []event.Event {
		name = strings.TrimSpace(name)
		if name == "" {
			name = domain.DefaultDisplayName
		}
		st.DisplayName = name
		out.Changed = true
		return nil
	})
}

// SetVisaExpiry sets or, with nil, clears the visa expiry date.
// Only the calendar day of date in the tracker's location is kept.
func (s *service) SetVisaExpiry(ctx context.Context, date *time.Time) domain.Outcome {
	return s.mutate(ctx, OpSetVisaExpiry, func(st *domain.State, out *domain.Outcome) []event.Event {
		if date == nil {
			st.VisaExpiryDate = nil
		} else {
			d := calendarDay(*date, s.loc)
			st.VisaExpiryDate = &d
		}
		out.Changed = true
		return nil
	})
}

// calendarDay returns midnight of t's date in loc
func calendarDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
