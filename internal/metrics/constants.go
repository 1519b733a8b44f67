package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Tracker metric names
const (
	MetricNameXPAwarded            = "tracker_xp_awarded_total"
	MetricNameLevelUps             = "tracker_level_ups_total"
	MetricNameCurrentLevel         = "tracker_level"
	MetricNameCurrentStreak        = "tracker_streak_days"
	MetricNameAchievementsUnlocked = "tracker_achievements_unlocked_total"
	MetricNameJobStatusChanges     = "tracker_job_status_changes_total"
	MetricNameDailyResets          = "tracker_daily_resets_total"
	MetricNameSnapshotSaves        = "tracker_snapshot_saves_total"
	MetricNameSSEClients           = "sse_clients"
	MetricNameFollowUpsDue         = "tracker_follow_ups_due"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Tracker metric help text
const (
	HelpTextXPAwarded            = "Total experience awarded, by source"
	HelpTextLevelUps             = "Total number of levels gained"
	HelpTextCurrentLevel         = "Current player level"
	HelpTextCurrentStreak        = "Current daily streak in days"
	HelpTextAchievementsUnlocked = "Total number of achievements unlocked"
	HelpTextJobStatusChanges     = "Total number of job status changes, by new status"
	HelpTextDailyResets          = "Total number of daily task resets"
	HelpTextSnapshotSaves        = "Total number of snapshot saves, by result"
	HelpTextSSEClients           = "Current number of connected SSE clients"
	HelpTextFollowUpsDue         = "Contacts whose follow-up time has arrived, as of the last sweep"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod      = "method"
	LabelPath        = "path"
	LabelStatus      = "status"
	LabelType        = "type"
	LabelSource      = "source"
	LabelAchievement = "achievement"
	LabelResult      = "result"
)

// Snapshot save results
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)

// unmatchedRoute labels requests that no route pattern matched
const unmatchedRoute = "unmatched"
