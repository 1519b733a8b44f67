package handler

import (
	"net/http"

	"github.com/osse101/JobHunter_Go/internal/domain"
)

// HandleCompleteTask marks a daily task done.
// Completing an already completed task is answered with changed=false, not 404.
// @Summary Complete daily task
// @Tags tasks
// @Param id path string true "Task ID"
// @Success 200 {object} MutationResponse
// @Failure 404 {object} ErrorResponse
// @Router /tasks/{id}/complete [post]
func (h *TrackerHandler) HandleCompleteTask(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	out := h.service.CompleteTask(r.Context(), id)

	var notFound error
	if !out.Changed && !taskExists(out.State, id) {
		notFound = domain.ErrTaskNotFound
	}
	h.respondMutation(w, r, http.StatusOK, out, notFound)
}

// HandleResetDailyTasks re-arms the daily tasks ahead of the scheduled reset
func (h *TrackerHandler) HandleResetDailyTasks(w http.ResponseWriter, r *http.Request) {
	out := h.service.ResetDailyTasks(r.Context())
	h.respondMutation(w, r, http.StatusOK, out, nil)
}

func taskExists(st *domain.State, id string) bool {
	if st == nil {
		return false
	}
	for _, t := range st.DailyTasks {
		if t.ID == id {
			return true
		}
	}
	return false
}
