package metrics

import (
	"context"

	"github.com/osse101/JobHunter_Go/internal/event"
	"github.com/osse101/JobHunter_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	event.SubscribeAll(bus, e.HandleEvent)
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch p := evt.Payload.(type) {
	case event.XPAwardedPayloadV1:
		XPAwarded.WithLabelValues(p.Source).Add(float64(p.Amount))
		CurrentLevel.Set(float64(p.Level))
	case event.LevelUpPayloadV1:
		LevelUps.Add(float64(p.NewLevel - p.OldLevel))
		CurrentLevel.Set(float64(p.NewLevel))
	case event.AchievementUnlockedPayloadV1:
		AchievementsUnlocked.WithLabelValues(p.Achievement.ID).Inc()
	case event.StreakUpdatedPayloadV1:
		CurrentStreak.Set(float64(p.Current))
	case event.JobStatusChangedPayloadV1:
		JobStatusChanges.WithLabelValues(string(p.NewStatus)).Inc()
	case event.StateChangedPayloadV1:
		CurrentLevel.Set(float64(p.State.Level))
		CurrentStreak.Set(float64(p.State.Streak))
	case event.DailyResetCompletePayloadV1:
		DailyResets.Inc()
	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// RecordSnapshotSave counts a persistence attempt
func RecordSnapshotSave(err error) {
	if err != nil {
		SnapshotSaves.WithLabelValues(ResultError).Inc()
		return
	}
	SnapshotSaves.WithLabelValues(ResultSuccess).Inc()
}
