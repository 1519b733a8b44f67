package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JobHunter_Go/internal/domain"
	"github.com/osse101/JobHunter_Go/internal/metrics"
)

type stubFollowUps struct {
	contacts []domain.Contact
}

func (s *stubFollowUps) FollowUpsDue(ctx context.Context) []domain.Contact {
	return s.contacts
}

type recordingNotifier struct {
	mu       sync.Mutex
	payloads []FollowUpReminderPayload
}

func (n *recordingNotifier) Broadcast(eventType string, payload interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if eventType == domain.EventTypeFollowUpsDue {
		n.payloads = append(n.payloads, payload.(FollowUpReminderPayload))
	}
}

func dueContact(id string, at time.Time) domain.Contact {
	return domain.Contact{ID: id, Name: "name-" + id, Company: "Globex", NextFollowUpAt: &at}
}

func TestFollowUpReminder(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	source := &stubFollowUps{contacts: []domain.Contact{dueContact("a", at), dueContact("b", at)}}
	notifier := &recordingNotifier{}
	reminder := NewFollowUpReminder(source, notifier)

	require.NoError(t, reminder.Process(ctx))
	require.Len(t, notifier.payloads, 1)
	assert.Equal(t, 2, notifier.payloads[0].TotalDue)
	assert.Equal(t, "name-a", notifier.payloads[0].Contacts[0].Name)
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.FollowUpsDue))

	t.Run("already announced contacts stay quiet", func(t *testing.T) {
		require.NoError(t, reminder.Process(ctx))
		assert.Len(t, notifier.payloads, 1)
	})

	t.Run("rescheduled and new contacts are announced", func(t *testing.T) {
		source.contacts = []domain.Contact{dueContact("a", at.Add(time.Hour)), dueContact("b", at), dueContact("c", at)}

		require.NoError(t, reminder.Process(ctx))

		require.Len(t, notifier.payloads, 2)
		last := notifier.payloads[1]
		assert.Equal(t, 3, last.TotalDue)
		require.Len(t, last.Contacts, 2)
		assert.Equal(t, "a", last.Contacts[0].ID)
		assert.Equal(t, "c", last.Contacts[1].ID)
	})

	t.Run("nothing due clears the gauge", func(t *testing.T) {
		source.contacts = nil

		require.NoError(t, reminder.Process(ctx))

		assert.Zero(t, testutil.ToFloat64(metrics.FollowUpsDue))
		assert.Len(t, notifier.payloads, 2)
	})
}

func TestFollowUpReminder_NilNotifier(t *testing.T) {
	at := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	reminder := NewFollowUpReminder(&stubFollowUps{contacts: []domain.Contact{dueContact("a", at)}}, nil)

	assert.NoError(t, reminder.Process(context.Background()))
}
