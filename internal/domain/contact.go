package domain

import (
	"slices"
	"time"
)

// ContactStatus tracks how far a networking relationship has progressed
type ContactStatus string

const (
	ContactStatusNew       ContactStatus = "New"
	ContactStatusContacted ContactStatus = "Contacted"
	ContactStatusReplied   ContactStatus = "Replied"
	ContactStatusMeeting   ContactStatus = "Meeting"
	ContactStatusConnected ContactStatus = "Connected"
)

// ContactType classifies a networking contact
type ContactType string

const (
	ContactTypeRecruiter     ContactType = "Recruiter"
	ContactTypeHiringManager ContactType = "Hiring Manager"
	ContactTypePeer          ContactType = "Peer"
	ContactTypeMentor        ContactType = "Mentor"
	ContactTypeOther         ContactType = "Other"
)

// ContactStatuses lists every contact status in relationship order
var ContactStatuses = []ContactStatus{
	ContactStatusNew,
	ContactStatusContacted,
	ContactStatusReplied,
	ContactStatusMeeting,
	ContactStatusConnected,
}

// ContactTypes lists every contact type
var ContactTypes = []ContactType{
	ContactTypeRecruiter,
	ContactTypeHiringManager,
	ContactTypePeer,
	ContactTypeMentor,
	ContactTypeOther,
}

// Valid reports whether s is one of the known statuses
func (s ContactStatus) Valid() bool {
	return slices.Contains(ContactStatuses, s)
}

// Valid reports whether t is one of the known types
func (t ContactType) Valid() bool {
	return slices.Contains(ContactTypes, t)
}

// Contact is a person in the user's job-search network
type Contact struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Company         string        `json:"company"`
	Role            string        `json:"role"`
	Status          ContactStatus `json:"status"`
	Type            ContactType   `json:"type"`
	LastContactedAt time.Time     `json:"last_contacted_at"`
	NextFollowUpAt  *time.Time    `json:"next_follow_up_at,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	Link            string        `json:"link,omitempty"`
}

// NewContact holds the caller-supplied fields for a contact.
// Status and Type are accepted for symmetry with Contact but are always
// overridden on creation.
type NewContact struct {
	Name           string        `json:"name"`
	Company        string        `json:"company"`
	Role           string        `json:"role"`
	Status         ContactStatus `json:"status,omitempty"`
	Type           ContactType   `json:"type,omitempty"`
	NextFollowUpAt *time.Time    `json:"next_follow_up_at,omitempty"`
	Notes          string        `json:"notes,omitempty"`
	Link           string        `json:"link,omitempty"`
}

// ContactUpdate is a partial update; nil fields are left untouched.
// ClearNextFollowUp removes the follow-up date and wins over NextFollowUpAt.
type ContactUpdate struct {
	Name            *string        `json:"name,omitempty"`
	Company         *string        `json:"company,omitempty"`
	Role            *string        `json:"role,omitempty"`
	Status          *ContactStatus `json:"status,omitempty"`
	Type            *ContactType   `json:"type,omitempty"`
	LastContactedAt *time.Time     `json:"last_contacted_at,omitempty"`
	NextFollowUpAt  *time.Time     `json:"next_follow_up_at,omitempty"`
	Notes           *string        `json:"notes,omitempty"`
	Link            *string        `json:"link,omitempty"`

	ClearNextFollowUp bool `json:"clear_next_follow_up,omitempty"`
}

// Apply merges the non-nil fields of u into c
func (u ContactUpdate) Apply(c *Contact) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Company != nil {
		c.Company = *u.Company
	}
	if u.Role != nil {
		c.Role = *u.Role
	}
	if u.Status != nil {
		c.Status = *u.Status
	}
	if u.Type != nil {
		c.Type = *u.Type
	}
	if u.LastContactedAt != nil {
		c.LastContactedAt = *u.LastContactedAt
	}
	switch {
	case u.ClearNextFollowUp:
		c.NextFollowUpAt = nil
	case u.NextFollowUpAt != nil:
		t := *u.NextFollowUpAt
		c.NextFollowUpAt = &t
	}
	if u.Notes != nil {
		c.Notes = *u.Notes
	}
	if u.Link != nil {
		c.Link = *u.Link
	}
}
