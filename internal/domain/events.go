package domain

// Event type constants used for event bus subscriptions, metrics and SSE.
//
// Event types follow the pattern: <entity>.<action> (e.g., "level.up")
const (
	// EventTypeXPAwarded is published whenever an operation awards a non-zero amount of XP
	EventTypeXPAwarded = "xp.awarded"

	// EventTypeLevelUp is published when the resolver crossed at least one level threshold
	EventTypeLevelUp = "level.up"

	// EventTypeAchievementUnlocked is published once per newly unlocked achievement
	EventTypeAchievementUnlocked = "achievement.unlocked"

	// EventTypeStreakUpdated is published when completing all daily tasks moved the streak
	EventTypeStreakUpdated = "streak.updated"

	// EventTypeJobStatusChanged is published when a job application changes status
	EventTypeJobStatusChanged = "job.status_changed"

	// EventTypeStateChanged is published after every state transition with the new snapshot
	EventTypeStateChanged = "state.changed"

	// EventTypeDailyResetComplete is published when the daily task list was re-armed
	EventTypeDailyResetComplete = "daily_reset.complete"

	// EventTypeFollowUpsDue is streamed by the follow-up sweep; it never goes through the bus
	EventTypeFollowUpsDue = "follow_ups.due"
)

// XP sources, used as event metadata and metric labels
const (
	XPSourceJobAdded           = "job_added"
	XPSourceJobStatus          = "job_status"
	XPSourceTaskCompleted      = "task_completed"
	XPSourceContactAdded       = "contact_added"
	XPSourceContactInteraction = "contact_interaction"
)
