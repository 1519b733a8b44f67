package domain

import "time"

// JobStatus is the pipeline stage of a job application
type JobStatus string

const (
	JobStatusApplied          JobStatus = "Applied"
	JobStatusOnlineAssessment JobStatus = "Online Assessment"
	JobStatusInterview        JobStatus = "Interview"
	JobStatusOffer            JobStatus = "Offer"
	JobStatusRejected         JobStatus = "Rejected"
)

// JobStatuses lists every status in pipeline (board column) order
var JobStatuses = []JobStatus{
	JobStatusApplied,
	JobStatusOnlineAssessment,
	JobStatusInterview,
	JobStatusOffer,
	JobStatusRejected,
}

// Valid reports whether s is one of the known statuses
func (s JobStatus) Valid() bool {
	for _, status := range JobStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsActive reports whether an application in this status is still in play
func (s JobStatus) IsActive() bool {
	return s != JobStatusOffer && s != JobStatusRejected
}

// Job is a tracked job application
type Job struct {
	ID        string    `json:"id"`
	Company   string    `json:"company"`
	Position  string    `json:"position"`
	Status    JobStatus `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Notes     string    `json:"notes,omitempty"`
	Link      string    `json:"link,omitempty"`
}

// NewJob holds the caller-supplied fields for a job application.
// ID and CreatedAt are always assigned by the tracker.
type NewJob struct {
	Company  string    `json:"company"`
	Position string    `json:"position"`
	Status   JobStatus `json:"status"`
	Notes    string    `json:"notes,omitempty"`
	Link     string    `json:"link,omitempty"`
}

// JobColumn groups the jobs of one status for board rendering
type JobColumn struct {
	Status JobStatus `json:"status"`
	Jobs   []Job     `json:"jobs"`
}
