package worker

import "time"

// Daily reset scheduling
const (
	// StandbyThreshold is the distance from the reset above which the worker only naps
	StandbyThreshold = time.Hour
	// StandbyLead is how long before the reset a napping worker wakes up again
	StandbyLead = 45 * time.Minute
	// JitterTolerance is how early a reset timer may fire before it is rescheduled
	JitterTolerance = 10 * time.Second
	// LateWindow bounds the remaining time that still counts as "just after" a reset
	LateWindow = 23 * time.Hour
)

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobPanicked = "Worker job panicked"
	LogMsgPoolQueueFull     = "Worker pool queue full, dropping job"
)

// ============================================================================
// Log Messages - Daily Reset Worker
// ============================================================================

const (
	LogMsgDailyResetStarting  = "Daily reset starting"
	LogMsgDailyResetCompleted = "Daily reset completed"
	LogMsgDailyResetStandby   = "Daily reset standby"
	LogMsgDailyResetApproach  = "Daily reset scheduled"
	LogMsgDailyResetShutdown  = "Shutting down daily reset worker"
	LogMsgDailyResetCancelled = "Cancelled pending daily reset"
	LogMsgDailyResetStopped   = "Daily reset worker shutdown complete"
	LogMsgDailyResetTimeout   = "Daily reset worker shutdown timeout, a reset may still be running"
)

// ============================================================================
// Log Messages - Follow-up Reminder
// ============================================================================

const LogMsgFollowUpsDue = "Follow-ups due"
