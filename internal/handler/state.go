package handler

import "net/http"

// HandleGetState returns the full tracker state
// @Summary Tracker state
// @Description Returns progression, jobs, daily tasks, contacts and achievements
// @Tags state
// @Produce json
// @Success 200 {object} domain.State
// @Router /state [get]
func (h *TrackerHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Snapshot(r.Context()))
}

// HandleGetDashboard returns the derived home-screen summary
// @Summary Dashboard
// @Description Level, progress, streak, pipeline counts, visa countdown and due follow-ups
// @Tags state
// @Produce json
// @Success 200 {object} domain.Dashboard
// @Router /dashboard [get]
func (h *TrackerHandler) HandleGetDashboard(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Dashboard(r.Context()))
}
