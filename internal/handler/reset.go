package handler

import "net/http"

// ResetAllRequest guards the destructive reset
type ResetAllRequest struct {
	Confirm bool `json:"confirm"`
}

// HandleResetAll wipes all progress back to the initial state
// @Summary Reset everything
// @Description Deletes jobs, contacts, XP, streak and achievements. Requires {"confirm": true}.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body ResetAllRequest true "Confirmation"
// @Success 200 {object} MutationResponse
// @Failure 400 {object} ErrorResponse
// @Router /reset [post]
func (h *TrackerHandler) HandleResetAll(w http.ResponseWriter, r *http.Request) {
	var req ResetAllRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Reset all"); err != nil {
		return
	}
	if !req.Confirm {
		respondError(w, http.StatusBadRequest, ErrMsgResetNotConfirmed)
		return
	}

	loggerFor(r).Warn("Resetting all tracker progress")
	h.respondMutation(w, r, http.StatusOK, h.service.ResetAll(r.Context()), nil)
}
