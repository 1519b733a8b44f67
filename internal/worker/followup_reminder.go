package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/JobHunter_Go/internal/domain"
	"github.com/osse101/JobHunter_Go/internal/logger"
	"github.com/osse101/JobHunter_Go/internal/metrics"
)

// FollowUpSource lists contacts whose follow-up time has arrived
type FollowUpSource interface {
	FollowUpsDue(ctx context.Context) []domain.Contact
}

// Notifier pushes a message to connected clients
type Notifier interface {
	Broadcast(eventType string, payload interface{})
}

// FollowUpContact is the reminder entry for one contact
type FollowUpContact struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Company string    `json:"company"`
	DueAt   time.Time `json:"due_at"`
}

// FollowUpReminderPayload lists the contacts that became due since the last sweep
type FollowUpReminderPayload struct {
	Contacts []FollowUpContact `json:"contacts"`
	TotalDue int               `json:"total_due"`
}

// FollowUpReminder is a pool job that sweeps due follow-ups, keeps the gauge
// current and announces each due follow-up once
type FollowUpReminder struct {
	source   FollowUpSource
	notifier Notifier

	mu        sync.Mutex
	announced map[string]time.Time
}

// NewFollowUpReminder creates the sweep job. notifier may be nil.
func NewFollowUpReminder(source FollowUpSource, notifier Notifier) *FollowUpReminder {
	return &FollowUpReminder{
		source:    source,
		notifier:  notifier,
		announced: make(map[string]time.Time),
	}
}

// Process implements Job
func (r *FollowUpReminder) Process(ctx context.Context) error {
	due := r.source.FollowUpsDue(ctx)
	metrics.FollowUpsDue.Set(float64(len(due)))

	r.mu.Lock()
	fresh := make([]FollowUpContact, 0, len(due))
	current := make(map[string]time.Time, len(due))
	for _, c := range due {
		at := *c.NextFollowUpAt
		current[c.ID] = at
		// Rescheduling a follow-up announces it again
		if prev, ok := r.announced[c.ID]; ok && prev.Equal(at) {
			continue
		}
		fresh = append(fresh, FollowUpContact{ID: c.ID, Name: c.Name, Company: c.Company, DueAt: at})
	}
	r.announced = current
	r.mu.Unlock()

	if len(fresh) == 0 {
		return nil
	}

	logger.FromContext(ctx).Info(LogMsgFollowUpsDue, "new", len(fresh), "total_due", len(due))
	if r.notifier != nil {
		r.notifier.Broadcast(domain.EventTypeFollowUpsDue, FollowUpReminderPayload{
			Contacts: fresh,
			TotalDue: len(due),
		})
	}
	return nil
}
