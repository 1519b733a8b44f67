package domain

// VisaUrgency buckets the remaining visa days for display
type VisaUrgency string

const (
	VisaUrgencyNone     VisaUrgency = ""
	VisaUrgencyOK       VisaUrgency = "ok"
	VisaUrgencyWarning  VisaUrgency = "warning"
	VisaUrgencyCritical VisaUrgency = "critical"
)

// Dashboard is the derived summary shown on the home screen
type Dashboard struct {
	DisplayName       string            `json:"display_name"`
	Level             int               `json:"level"`
	LevelTitle        string            `json:"level_title"`
	XP                int64             `json:"xp"`
	XPForNextLevel    int64             `json:"xp_for_next_level"`
	ProgressPercent   float64           `json:"progress_percent"`
	Streak            int               `json:"streak"`
	ActiveJobs        int               `json:"active_jobs"`
	TotalJobs         int               `json:"total_jobs"`
	JobsByStatus      map[JobStatus]int `json:"jobs_by_status"`
	CompletedTasks    int               `json:"completed_tasks"`
	TotalTasks        int               `json:"total_tasks"`
	UnlockedCount     int               `json:"unlocked_achievements"`
	TotalAchievements int               `json:"total_achievements"`
	VisaDaysRemaining *int              `json:"visa_days_remaining"`
	VisaUrgency       VisaUrgency       `json:"visa_urgency,omitempty"`
	FollowUpsDue      int               `json:"follow_ups_due"`
}
