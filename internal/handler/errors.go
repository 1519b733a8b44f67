package handler

// Generic HTTP error messages for client responses.
// Internal error details are never exposed; handlers and tests share these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidDate           = "Invalid date, expected YYYY-MM-DD"
	ErrMsgResetNotConfirmed     = "Reset must be confirmed"

	ErrMsgJobNotFound     = "Job not found"
	ErrMsgContactNotFound = "Contact not found"
	ErrMsgTaskNotFound    = "Task not found"
)

// Validation messages keyed by validator tag
const (
	ValidationMsgRequired      = "This field is required"
	ValidationMsgMax           = "Must be at most %s characters"
	ValidationMsgMin           = "Must be at least %s characters"
	ValidationMsgURL           = "Must be a valid URL"
	ValidationMsgJobStatus     = "Must be one of Applied, Online Assessment, Interview, Offer, Rejected"
	ValidationMsgContactStatus = "Must be one of New, Contacted, Replied, Meeting, Connected"
	ValidationMsgContactType   = "Must be one of Recruiter, Hiring Manager, Peer, Mentor, Other"
	ValidationMsgExcludedWith  = "Conflicts with another field in this request"
	ValidationMsgInvalidFormat = "Invalid request format"
	ValidationMsgInvalidValue  = "Invalid value"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"
