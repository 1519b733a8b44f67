package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/JobHunter_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Tracker event types
const (
	XPAwarded           Type = domain.EventTypeXPAwarded
	LevelUp             Type = domain.EventTypeLevelUp
	AchievementUnlocked Type = domain.EventTypeAchievementUnlocked
	StreakUpdated       Type = domain.EventTypeStreakUpdated
	JobStatusChanged    Type = domain.EventTypeJobStatusChanged
	StateChanged        Type = domain.EventTypeStateChanged
	DailyResetComplete  Type = domain.EventTypeDailyResetComplete
)

// AllTypes lists every tracker event type, used by fan-out subscribers
var AllTypes = []Type{
	XPAwarded,
	LevelUp,
	AchievementUnlocked,
	StreakUpdated,
	JobStatusChanged,
	StateChanged,
	DailyResetComplete,
}

// Typed event payloads for type safety

// XPAwardedPayloadV1 is the typed payload for xp award events
type XPAwardedPayloadV1 struct {
	Source   string `json:"source"`
	Amount   int64  `json:"amount"`
	EntityID string `json:"entity_id,omitempty"`
	TotalXP  int64  `json:"total_xp"`
	Level    int    `json:"level"`
}

// LevelUpPayloadV1 is the typed payload for level up events
type LevelUpPayloadV1 struct {
	OldLevel int    `json:"old_level"`
	NewLevel int    `json:"new_level"`
	Title    string `json:"title"`
	Source   string `json:"source,omitempty"`
}

// AchievementUnlockedPayloadV1 is the typed payload for achievement events
type AchievementUnlockedPayloadV1 struct {
	Achievement domain.Achievement `json:"achievement"`
}

// StreakUpdatedPayloadV1 is the typed payload for streak events
type StreakUpdatedPayloadV1 struct {
	Previous int   `json:"previous"`
	Current  int   `json:"current"`
	BonusXP  int64 `json:"bonus_xp"`
	Reset    bool  `json:"reset"`
}

// JobStatusChangedPayloadV1 is the typed payload for job pipeline moves
type JobStatusChangedPayloadV1 struct {
	JobID     string           `json:"job_id"`
	Company   string           `json:"company"`
	Position  string           `json:"position"`
	OldStatus domain.JobStatus `json:"old_status"`
	NewStatus domain.JobStatus `json:"new_status"`
}

// StateChangedPayloadV1 carries the snapshot after a transition
type StateChangedPayloadV1 struct {
	Operation string       `json:"operation"`
	Revision  uint64       `json:"revision"`
	State     domain.State `json:"state"`
}

// DailyResetCompletePayloadV1 is the typed payload for daily reset complete events
type DailyResetCompletePayloadV1 struct {
	ResetTime  time.Time `json:"reset_time"`
	TasksReset int       `json:"tasks_reset"`
}

// Type-safe event constructors

// NewXPAwardedEvent creates an xp award event
func NewXPAwardedEvent(source string, amount int64, entityID string, totalXP int64, level int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    XPAwarded,
		Payload: XPAwardedPayloadV1{
			Source:   source,
			Amount:   amount,
			EntityID: entityID,
			TotalXP:  totalXP,
			Level:    level,
		},
		Metadata: map[string]interface{}{
			MetadataKeySource: source,
		},
	}
}

// NewLevelUpEvent creates a level up event
func NewLevelUpEvent(oldLevel, newLevel int, title, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LevelUp,
		Payload: LevelUpPayloadV1{
			OldLevel: oldLevel,
			NewLevel: newLevel,
			Title:    title,
			Source:   source,
		},
		Metadata: map[string]interface{}{
			MetadataKeySource: source,
		},
	}
}

// NewAchievementUnlockedEvent creates an achievement unlocked event
func NewAchievementUnlockedEvent(a domain.Achievement) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     AchievementUnlocked,
		Payload:  AchievementUnlockedPayloadV1{Achievement: a},
		Metadata: nil,
	}
}

// NewStreakUpdatedEvent creates a streak event
func NewStreakUpdatedEvent(u domain.StreakUpdate) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    StreakUpdated,
		Payload: StreakUpdatedPayloadV1{
			Previous: u.Previous,
			Current:  u.Current,
			BonusXP:  u.BonusXP,
			Reset:    u.Reset,
		},
		Metadata: nil,
	}
}

// NewJobStatusChangedEvent creates a job status event
func NewJobStatusChangedEvent(job domain.Job, oldStatus domain.JobStatus) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    JobStatusChanged,
		Payload: JobStatusChangedPayloadV1{
			JobID:     job.ID,
			Company:   job.Company,
			Position:  job.Position,
			OldStatus: oldStatus,
			NewStatus: job.Status,
		},
		Metadata: nil,
	}
}

// NewStateChangedEvent creates a snapshot event; state must already be a copy
func NewStateChangedEvent(operation string, revision uint64, state domain.State) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    StateChanged,
		Payload: StateChangedPayloadV1{
			Operation: operation,
			Revision:  revision,
			State:     state,
		},
		Metadata: map[string]interface{}{
			MetadataKeyOperation: operation,
		},
	}
}

// NewDailyResetCompleteEvent creates a new daily reset complete event
func NewDailyResetCompleteEvent(resetTime time.Time, tasksReset int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DailyResetComplete,
		Payload: DailyResetCompletePayloadV1{
			ResetTime:  resetTime,
			TasksReset: tasksReset,
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order; every handler runs even if an earlier one fails.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll subscribes one handler to every tracker event type
func SubscribeAll(bus Bus, handler Handler) {
	for _, t := range AllTypes {
		bus.Subscribe(t, handler)
	}
}
