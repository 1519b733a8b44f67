package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/JobHunter_Go/internal/database"
)

// ReadinessTimeout bounds the database ping of /readyz
const ReadinessTimeout = 2 * time.Second

// Probe states
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// HealthResponse is the body of the probe endpoints. Checks names each
// dependency that was consulted.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HandleHealthz answers as long as the process can serve HTTP
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz reports ready once the snapshot database answers a ping.
// Failure details stay in the log.
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(db database.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), ReadinessTimeout)
		defer cancel()

		status, code := StatusOK, http.StatusOK
		if err := db.Ping(ctx); err != nil {
			loggerFor(r).Error("Readiness check failed", "check", "database", "error", err)
			status, code = StatusUnavailable, http.StatusServiceUnavailable
		}

		respondJSON(w, code, HealthResponse{
			Status: status,
			Checks: map[string]string{"database": status},
		})
	}
}
