package tracker

import "time"

// Search cache settings
const (
	DefaultSearchCacheSize = 128
	DefaultSearchCacheTTL  = 5 * time.Minute

	// SearchCacheSchemaVersion invalidates cached results when the cached shape changes
	SearchCacheSchemaVersion = "1.0"
)

// Operation names, used in logs and state.changed events
const (
	OpAddJob             = "add_job"
	OpUpdateJobStatus    = "update_job_status"
	OpDeleteJob          = "delete_job"
	OpCompleteTask       = "complete_task"
	OpResetDailyTasks    = "reset_daily_tasks"
	OpAddContact         = "add_contact"
	OpUpdateContact      = "update_contact"
	OpDeleteContact      = "delete_contact"
	OpLogInteraction     = "log_contact_interaction"
	OpSetDisplayName     = "set_display_name"
	OpSetVisaExpiry      = "set_visa_expiry"
	OpAcknowledgeLevelUp = "acknowledge_level_up"
	OpDismissAchievement = "dismiss_achievement"
	OpResetAll           = "reset_all"
)

// Visa urgency bands, in days remaining
const (
	VisaOKAboveDays      = 60
	VisaWarningAboveDays = 30
)

// Log messages
const (
	LogMsgXPAwarded           = "XP awarded"
	LogMsgLevelUp             = "Level up"
	LogMsgAchievementUnlocked = "Achievement unlocked"
	LogMsgStreakUpdated       = "Streak updated"
	LogMsgNoOp                = "Operation had no effect"
	LogMsgSnapshotSaveFailed  = "Failed to save tracker snapshot"
	LogMsgSnapshotRestored    = "Tracker snapshot restored"
	LogMsgNoSnapshot          = "No saved snapshot, starting fresh"
	LogMsgEventPublishFailed  = "Failed to publish tracker event"
	LogMsgDailyTasksReset     = "Daily tasks re-armed"
	LogMsgTrackerReset        = "Tracker reset to defaults"
)
