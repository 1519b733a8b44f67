package handler

import (
	"net/http"
	"time"
)

// DisplayNameRequest is the body of PUT /profile/name. A blank name restores the default.
type DisplayNameRequest struct {
	Name string `json:"name" validate:"max=50"`
}

// VisaExpiryRequest is the body of PUT /profile/visa-expiry. A null date clears it.
type VisaExpiryRequest struct {
	Date *string `json:"date"`
}

// HandleSetDisplayName renames the profile
func (h *TrackerHandler) HandleSetDisplayName(w http.ResponseWriter, r *http.Request) {
	var req DisplayNameRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set display name"); err != nil {
		return
	}
	h.respondMutation(w, r, http.StatusOK, h.service.SetDisplayName(r.Context(), req.Name), nil)
}

// HandleSetVisaExpiry sets or clears the visa expiry date
// @Summary Set visa expiry
// @Tags profile
// @Accept json
// @Produce json
// @Param request body VisaExpiryRequest true "YYYY-MM-DD, or null to clear"
// @Success 200 {object} MutationResponse
// @Failure 400 {object} ErrorResponse
// @Router /profile/visa-expiry [put]
func (h *TrackerHandler) HandleSetVisaExpiry(w http.ResponseWriter, r *http.Request) {
	var req VisaExpiryRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set visa expiry"); err != nil {
		return
	}

	var expiry *time.Time
	if req.Date != nil && *req.Date != "" {
		t, err := parseDate(*req.Date, h.loc)
		if err != nil {
			loggerFor(r).Debug("Rejected visa expiry", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidDate)
			return
		}
		expiry = &t
	}
	h.respondMutation(w, r, http.StatusOK, h.service.SetVisaExpiry(r.Context(), expiry), nil)
}

// HandleAcknowledgeLevelUp clears the level-up modal
func (h *TrackerHandler) HandleAcknowledgeLevelUp(w http.ResponseWriter, r *http.Request) {
	h.respondMutation(w, r, http.StatusOK, h.service.AcknowledgeLevelUp(r.Context()), nil)
}

// HandleDismissAchievement clears the achievement toast
func (h *TrackerHandler) HandleDismissAchievement(w http.ResponseWriter, r *http.Request) {
	h.respondMutation(w, r, http.StatusOK, h.service.DismissAchievement(r.Context()), nil)
}
