package handler

import (
	"net/http"
	"time"

	"github.com/osse101/JobHunter_Go/internal/domain"
)

// AddContactRequest is the body of POST /contacts.
// New contacts always start as New/Other, so neither field is accepted here.
type AddContactRequest struct {
	Name           string     `json:"name" validate:"required,max=200"`
	Company        string     `json:"company" validate:"max=200"`
	Role           string     `json:"role" validate:"max=200"`
	NextFollowUpAt *time.Time `json:"next_follow_up_at"`
	Notes          string     `json:"notes" validate:"max=2000"`
	Link           string     `json:"link" validate:"omitempty,url,max=2000"`
}

// UpdateContactRequest is a partial update; omitted fields are left untouched.
// clear_next_follow_up removes the follow-up date and cannot be combined with next_follow_up_at.
type UpdateContactRequest struct {
	Name            *string               `json:"name" validate:"omitnil,min=1,max=200"`
	Company         *string               `json:"company" validate:"omitempty,max=200"`
	Role            *string               `json:"role" validate:"omitempty,max=200"`
	Status          *domain.ContactStatus `json:"status" validate:"omitempty,contactstatus"`
	Type            *domain.ContactType   `json:"type" validate:"omitempty,contacttype"`
	LastContactedAt *time.Time            `json:"last_contacted_at"`
	NextFollowUpAt  *time.Time            `json:"next_follow_up_at"`
	Notes           *string               `json:"notes" validate:"omitempty,max=2000"`
	Link            *string               `json:"link" validate:"omitempty,url,max=2000"`

	ClearNextFollowUp bool `json:"clear_next_follow_up" validate:"excluded_with=NextFollowUpAt"`
}

// ContactsResponse wraps a contact list
type ContactsResponse struct {
	Contacts []domain.Contact `json:"contacts"`
}

// HandleAddContact adds a networking contact
// @Summary Add contact
// @Description Awards contact XP; status and type start as New and Other
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body AddContactRequest true "Contact"
// @Success 201 {object} MutationResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /contacts [post]
func (h *TrackerHandler) HandleAddContact(w http.ResponseWriter, r *http.Request) {
	var req AddContactRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add contact"); err != nil {
		return
	}

	out := h.service.AddContact(r.Context(), domain.NewContact{
		Name:           req.Name,
		Company:        req.Company,
		Role:           req.Role,
		NextFollowUpAt: req.NextFollowUpAt,
		Notes:          req.Notes,
		Link:           req.Link,
	})
	h.respondMutation(w, r, http.StatusCreated, out, nil)
}

// HandleUpdateContact edits contact fields without awarding XP
func (h *TrackerHandler) HandleUpdateContact(w http.ResponseWriter, r *http.Request) {
	var req UpdateContactRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update contact"); err != nil {
		return
	}

	out := h.service.UpdateContact(r.Context(), pathID(r), domain.ContactUpdate{
		Name:            req.Name,
		Company:         req.Company,
		Role:            req.Role,
		Status:          req.Status,
		Type:            req.Type,
		LastContactedAt: req.LastContactedAt,
		NextFollowUpAt:  req.NextFollowUpAt,
		Notes:           req.Notes,
		Link:            req.Link,

		ClearNextFollowUp: req.ClearNextFollowUp,
	})
	h.respondMutation(w, r, http.StatusOK, out, domain.ErrContactNotFound)
}

// HandleDeleteContact removes a contact
func (h *TrackerHandler) HandleDeleteContact(w http.ResponseWriter, r *http.Request) {
	out := h.service.DeleteContact(r.Context(), pathID(r))
	h.respondMutation(w, r, http.StatusOK, out, domain.ErrContactNotFound)
}

// HandleLogInteraction records that the user reached out to a contact
// @Summary Log contact interaction
// @Description Awards interaction XP and moves New contacts to Contacted
// @Tags contacts
// @Param id path string true "Contact ID"
// @Success 200 {object} MutationResponse
// @Failure 404 {object} ErrorResponse
// @Router /contacts/{id}/interactions [post]
func (h *TrackerHandler) HandleLogInteraction(w http.ResponseWriter, r *http.Request) {
	out := h.service.LogContactInteraction(r.Context(), pathID(r))
	h.respondMutation(w, r, http.StatusOK, out, domain.ErrContactNotFound)
}

// HandleFollowUpsDue lists contacts whose follow-up time has arrived
func (h *TrackerHandler) HandleFollowUpsDue(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ContactsResponse{Contacts: h.service.FollowUpsDue(r.Context())})
}
