package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/JobHunter_Go/internal/domain"
	"github.com/osse101/JobHunter_Go/internal/tracker"
)

// TrackerHandler exposes the tracker service over HTTP
type TrackerHandler struct {
	service tracker.Service
	loc     *time.Location
}

// NewTrackerHandler creates the handler. loc is where date-only inputs are anchored.
func NewTrackerHandler(service tracker.Service, loc *time.Location) *TrackerHandler {
	if loc == nil {
		loc = time.Local
	}
	return &TrackerHandler{
		service: service,
		loc:     loc,
	}
}

// Routes registers the tracker API on r
func (h *TrackerHandler) Routes(r chi.Router) {
	r.Get("/state", h.HandleGetState)
	r.Get("/dashboard", h.HandleGetDashboard)

	r.Route("/jobs", func(r chi.Router) {
		r.Get("/", h.HandleSearchJobs)
		r.Post("/", h.HandleAddJob)
		r.Get("/board", h.HandleJobBoard)
		r.Patch("/{id}/status", h.HandleUpdateJobStatus)
		r.Delete("/{id}", h.HandleDeleteJob)
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Post("/{id}/complete", h.HandleCompleteTask)
		r.Post("/reset", h.HandleResetDailyTasks)
	})

	r.Route("/contacts", func(r chi.Router) {
		r.Post("/", h.HandleAddContact)
		r.Get("/follow-ups", h.HandleFollowUpsDue)
		r.Patch("/{id}", h.HandleUpdateContact)
		r.Delete("/{id}", h.HandleDeleteContact)
		r.Post("/{id}/interactions", h.HandleLogInteraction)
	})

	r.Route("/profile", func(r chi.Router) {
		r.Put("/name", h.HandleSetDisplayName)
		r.Put("/visa-expiry", h.HandleSetVisaExpiry)
	})

	r.Route("/notifications", func(r chi.Router) {
		r.Post("/level-up/ack", h.HandleAcknowledgeLevelUp)
		r.Post("/achievement/dismiss", h.HandleDismissAchievement)
	})

	r.Post("/reset", h.HandleResetAll)
}

// respondMutation answers a state-changing request with the outcome and the
// state that operation left behind. notFound, when set, turns a no-op into a 404.
func (h *TrackerHandler) respondMutation(w http.ResponseWriter, r *http.Request, status int, out domain.Outcome, notFound error) {
	if !out.Changed && notFound != nil {
		respondServiceError(w, r, "mutation", notFound)
		return
	}
	resp := MutationResponse{Outcome: out}
	if out.State != nil {
		resp.State = *out.State
	}
	respondJSON(w, status, resp)
}
